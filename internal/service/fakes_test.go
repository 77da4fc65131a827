package service

import (
	"context"
	"database/sql"
	"sort"
	"strings"
	"sync"
	"time"

	"hoteldesk-backoffice/internal/domain"
	"hoteldesk-backoffice/internal/repository"

	"github.com/shopspring/decimal"
)

// fakeStore is an in-memory implementation of the repository interfaces.
// Writes go through fakeTx, which stages them and applies everything at
// Commit while holding the per-hotel register lock, so the services see the
// same atomicity and serialization guarantees the Postgres layer provides.
type fakeStore struct {
	mu sync.Mutex

	nextID int64

	hotels     map[int64]*domain.Hotel
	registers  map[int64]*domain.CashRegister // by hotel id
	movements  []domain.Movement
	operations map[int64]*domain.Operation
	transfers  map[int64]*domain.Transfer
	incassos   map[int64]*domain.Incasso
	articles   map[int64]*domain.Article
	companies  map[int64]*domain.Company
	folios     map[int64]*domain.Folio
	folioIDs   map[[2]int64]int64 // (hotel, company) -> folio id
	folioItems []domain.FolioItem
	stays      map[int64]*domain.Stay

	hotelLocks map[int64]*sync.Mutex

	// insertMovementHook, when set, runs before a movement is staged and can
	// fail the write to simulate a storage error mid-transaction.
	insertMovementHook func(m *domain.Movement) error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		hotels:     make(map[int64]*domain.Hotel),
		registers:  make(map[int64]*domain.CashRegister),
		operations: make(map[int64]*domain.Operation),
		transfers:  make(map[int64]*domain.Transfer),
		incassos:   make(map[int64]*domain.Incasso),
		articles:   make(map[int64]*domain.Article),
		companies:  make(map[int64]*domain.Company),
		folios:     make(map[int64]*domain.Folio),
		folioIDs:   make(map[[2]int64]int64),
		stays:      make(map[int64]*domain.Stay),
		hotelLocks: make(map[int64]*sync.Mutex),
	}
}

func (s *fakeStore) newID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	return s.nextID
}

func (s *fakeStore) hotelLock(hotelID int64) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.hotelLocks[hotelID] == nil {
		s.hotelLocks[hotelID] = &sync.Mutex{}
	}
	return s.hotelLocks[hotelID]
}

// test seeding helpers

func (s *fakeStore) seedHotel(name string) *domain.Hotel {
	hotel := &domain.Hotel{ID: s.newID(), Name: name, IsActive: true, CreatedAt: time.Now()}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hotels[hotel.ID] = hotel
	s.registers[hotel.ID] = &domain.CashRegister{ID: hotel.ID, HotelID: hotel.ID}
	return hotel
}

func (s *fakeStore) seedArticle(kind domain.Kind, name string, active bool) *domain.Article {
	a := &domain.Article{ID: s.newID(), Kind: kind, Name: name, IsActive: active}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.articles[a.ID] = a
	return a
}

func (s *fakeStore) seedCompany(name string, terms domain.PayTerms) *domain.Company {
	c := &domain.Company{ID: s.newID(), Name: name, PayTerms: terms, IsActive: true}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.companies[c.ID] = c
	return c
}

func (s *fakeStore) setBalance(hotelID int64, account domain.Account, v decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registers[hotelID].SetBalance(account, v)
}

func (s *fakeStore) balance(hotelID int64, account domain.Account) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registers[hotelID].Balance(account)
}

func (s *fakeStore) movementCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.movements)
}

// HotelRepository

func (s *fakeStore) Create(ctx context.Context, hotel *domain.Hotel) error {
	hotel.ID = s.newID()
	hotel.CreatedAt = time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *hotel
	s.hotels[hotel.ID] = &copied
	s.registers[hotel.ID] = &domain.CashRegister{ID: hotel.ID, HotelID: hotel.ID}
	return nil
}

func (s *fakeStore) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	hotel, ok := s.hotels[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *hotel
	return &copied, nil
}

func (s *fakeStore) List(ctx context.Context, activeOnly bool) ([]domain.Hotel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Hotel
	for _, h := range s.hotels {
		if activeOnly && !h.IsActive {
			continue
		}
		out = append(out, *h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ArticleRepository

type fakeArticles struct{ store *fakeStore }

func (f *fakeArticles) GetByID(ctx context.Context, id int64) (*domain.Article, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	a, ok := f.store.articles[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *a
	return &copied, nil
}

func (f *fakeArticles) ListActive(ctx context.Context, kind domain.Kind) ([]domain.Article, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	var out []domain.Article
	for _, a := range f.store.articles {
		if !a.IsActive {
			continue
		}
		if kind != "" && a.Kind != kind {
			continue
		}
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeArticles) FirstActiveIncome(ctx context.Context) (*domain.Article, error) {
	articles, _ := f.ListActive(ctx, domain.KindIncome)
	if len(articles) == 0 {
		return nil, sql.ErrNoRows
	}
	return &articles[0], nil
}

func (f *fakeArticles) EnsureArticle(ctx context.Context, kind domain.Kind, name string) (*domain.Article, error) {
	f.store.mu.Lock()
	for _, a := range f.store.articles {
		if a.Kind == kind && strings.EqualFold(a.Name, name) {
			copied := *a
			f.store.mu.Unlock()
			return &copied, nil
		}
	}
	f.store.mu.Unlock()
	return f.store.seedArticle(kind, name, true), nil
}

func (f *fakeArticles) EnsureStayIncomeArticle(ctx context.Context) (*domain.Article, error) {
	return f.EnsureArticle(ctx, domain.KindIncome, "Stay payment")
}

// OperationRepository

type fakeOperations struct{ store *fakeStore }

func (f *fakeOperations) GetByID(ctx context.Context, id int64) (*domain.Operation, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	op, ok := f.store.operations[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *op
	return &copied, nil
}

func (f *fakeOperations) List(ctx context.Context, filter repository.OperationFilter) ([]domain.Operation, int32, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	var out []domain.Operation
	for _, op := range f.store.operations {
		if op.HotelID != filter.HotelID {
			continue
		}
		if filter.Kind != "" && op.ArticleKind != filter.Kind {
			continue
		}
		if !filter.IncludeVoided && op.IsVoided {
			continue
		}
		if filter.ExcludeIncasso && op.IsIncasso() {
			continue
		}
		out = append(out, *op)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, int32(len(out)), nil
}

func (f *fakeOperations) MarkVoided(ctx context.Context, id int64, voidedBy int64, reason string, at time.Time) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	op, ok := f.store.operations[id]
	if !ok {
		return sql.ErrNoRows
	}
	if op.IsVoided {
		return domain.ErrOperationVoided
	}
	op.IsVoided = true
	op.VoidReason = reason
	op.VoidedAt = &at
	op.VoidedBy = &voidedBy
	return nil
}

// TransferRepository

type fakeTransfers struct{ store *fakeStore }

func (f *fakeTransfers) GetByID(ctx context.Context, id int64) (*domain.Transfer, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	tr, ok := f.store.transfers[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *tr
	return &copied, nil
}

func (f *fakeTransfers) ListByHotel(ctx context.Context, hotelID int64, page, pageSize int32) ([]domain.Transfer, int32, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	var out []domain.Transfer
	for _, tr := range f.store.transfers {
		if tr.HotelID == hotelID {
			out = append(out, *tr)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, int32(len(out)), nil
}

// IncassoRepository

type fakeIncassos struct{ store *fakeStore }

func (f *fakeIncassos) GetByID(ctx context.Context, id int64) (*domain.Incasso, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	inc, ok := f.store.incassos[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *inc
	return &copied, nil
}

func (f *fakeIncassos) ListByHotel(ctx context.Context, hotelID int64, page, pageSize int32) ([]domain.Incasso, int32, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	var out []domain.Incasso
	for _, inc := range f.store.incassos {
		if inc.HotelID == hotelID {
			out = append(out, *inc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, int32(len(out)), nil
}

// FolioRepository

type fakeFolios struct{ store *fakeStore }

func (f *fakeFolios) GetByID(ctx context.Context, id int64) (*domain.Folio, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	folio, ok := f.store.folios[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *folio
	return &copied, nil
}

func (f *fakeFolios) GetByHotelCompany(ctx context.Context, hotelID, companyID int64) (*domain.Folio, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	id, ok := f.store.folioIDs[[2]int64{hotelID, companyID}]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *f.store.folios[id]
	return &copied, nil
}

func (f *fakeFolios) ListByHotel(ctx context.Context, hotelID int64, openOnly bool) ([]domain.Folio, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	var out []domain.Folio
	for _, folio := range f.store.folios {
		if folio.HotelID != hotelID {
			continue
		}
		if openOnly && folio.IsClosed {
			continue
		}
		out = append(out, *folio)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeFolios) ListItems(ctx context.Context, folioID int64) ([]domain.FolioItem, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	var out []domain.FolioItem
	for _, item := range f.store.folioItems {
		if item.FolioID == folioID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeFolios) Balance(ctx context.Context, folioID int64) (decimal.Decimal, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	return f.store.folioBalanceLocked(folioID, nil), nil
}

func (f *fakeFolios) GetCompany(ctx context.Context, companyID int64) (*domain.Company, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	c, ok := f.store.companies[companyID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *c
	return &copied, nil
}

// StayRepository

type fakeStays struct{ store *fakeStore }

func (f *fakeStays) GetByID(ctx context.Context, id int64) (*domain.Stay, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	stay, ok := f.store.stays[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *stay
	return &copied, nil
}

func (f *fakeStays) ListByHotel(ctx context.Context, hotelID int64, status domain.StayStatus, page, pageSize int32) ([]domain.Stay, int32, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	var out []domain.Stay
	for _, stay := range f.store.stays {
		if stay.HotelID != hotelID {
			continue
		}
		if status != "" && stay.Status != status {
			continue
		}
		out = append(out, *stay)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, int32(len(out)), nil
}

// folioBalanceLocked sums committed items plus any staged extras. Callers
// hold s.mu.
func (s *fakeStore) folioBalanceLocked(folioID int64, staged []domain.FolioItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.folioItems {
		if item.FolioID == folioID {
			total = total.Add(item.SignedAmount)
		}
	}
	for _, item := range staged {
		if item.FolioID == folioID {
			total = total.Add(item.SignedAmount)
		}
	}
	return total
}

// LedgerRepository

type fakeLedger struct{ store *fakeStore }

func (f *fakeLedger) GetOrCreateRegister(ctx context.Context, hotelID int64) (*domain.CashRegister, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	reg, ok := f.store.registers[hotelID]
	if !ok {
		reg = &domain.CashRegister{ID: hotelID, HotelID: hotelID}
		f.store.registers[hotelID] = reg
	}
	copied := *reg
	return &copied, nil
}

func (f *fakeLedger) GetRegister(ctx context.Context, hotelID int64) (*domain.CashRegister, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	reg, ok := f.store.registers[hotelID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *reg
	return &copied, nil
}

func (f *fakeLedger) ListMovements(ctx context.Context, hotelID int64, page, pageSize int32) ([]domain.Movement, int32, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	var out []domain.Movement
	for _, m := range f.store.movements {
		if m.HotelID == hotelID {
			out = append(out, m)
		}
	}
	return out, int32(len(out)), nil
}

func (f *fakeLedger) GetMovementByOperation(ctx context.Context, operationID int64, account domain.Account, direction domain.Direction) (*domain.Movement, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	for _, m := range f.store.movements {
		if m.OperationID != nil && *m.OperationID == operationID && m.Account == account && m.Direction == direction {
			copied := m
			return &copied, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeLedger) SumMovementsByAccount(ctx context.Context, hotelID int64) (map[domain.Account]decimal.Decimal, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	sums := make(map[domain.Account]decimal.Decimal, len(domain.Accounts))
	for _, account := range domain.Accounts {
		sums[account] = decimal.Zero
	}
	for _, m := range f.store.movements {
		if m.HotelID == hotelID {
			sums[m.Account] = sums[m.Account].Add(m.SignedAmount())
		}
	}
	return sums, nil
}

func (f *fakeLedger) Begin(ctx context.Context) (repository.LedgerTx, error) {
	return &fakeTx{store: f.store, locked: make(map[int64]*sync.Mutex)}, nil
}

// fakeTx stages every write and applies the batch at Commit. The per-hotel
// mutex taken in LockRegister is held until Commit or Rollback, mirroring
// the row lock in the Postgres implementation.
type fakeTx struct {
	store  *fakeStore
	staged []func()
	locked map[int64]*sync.Mutex
	done   bool

	stagedMovements  []domain.Movement
	stagedFolioItems []domain.FolioItem
	newFolios        map[int64]*domain.Folio
}

func (t *fakeTx) LockRegister(ctx context.Context, hotelID int64) (*domain.CashRegister, error) {
	if _, already := t.locked[hotelID]; !already {
		lock := t.store.hotelLock(hotelID)
		lock.Lock()
		t.locked[hotelID] = lock
	}

	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	reg, ok := t.store.registers[hotelID]
	if !ok {
		reg = &domain.CashRegister{ID: hotelID, HotelID: hotelID}
		t.store.registers[hotelID] = reg
	}
	copied := *reg
	return &copied, nil
}

func (t *fakeTx) SetBalance(ctx context.Context, registerID int64, account domain.Account, value decimal.Decimal) error {
	t.staged = append(t.staged, func() {
		for _, reg := range t.store.registers {
			if reg.ID == registerID {
				reg.SetBalance(account, value)
				reg.UpdatedAt = time.Now()
				return
			}
		}
	})
	return nil
}

func (t *fakeTx) InsertMovement(ctx context.Context, m *domain.Movement) error {
	exists, _ := t.MovementExists(ctx, orZero(m.OperationID), m.Account, m.Direction)
	if m.OperationID != nil && exists {
		return repository.ErrDuplicateMovement
	}
	if hook := t.store.insertMovementHook; hook != nil {
		if err := hook(m); err != nil {
			return err
		}
	}
	m.ID = t.store.newID()
	m.CreatedAt = time.Now()
	copied := *m
	t.stagedMovements = append(t.stagedMovements, copied)
	t.staged = append(t.staged, func() {
		t.store.movements = append(t.store.movements, copied)
	})
	return nil
}

func orZero(p *int64) int64 {
	if p == nil {
		return 0
	}
	return *p
}

func (t *fakeTx) MovementExists(ctx context.Context, operationID int64, account domain.Account, direction domain.Direction) (bool, error) {
	if operationID == 0 {
		return false, nil
	}
	for _, m := range t.stagedMovements {
		if m.OperationID != nil && *m.OperationID == operationID && m.Account == account && m.Direction == direction {
			return true, nil
		}
	}
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	for _, m := range t.store.movements {
		if m.OperationID != nil && *m.OperationID == operationID && m.Account == account && m.Direction == direction {
			return true, nil
		}
	}
	return false, nil
}

func (t *fakeTx) InsertOperation(ctx context.Context, op *domain.Operation) error {
	op.ID = t.store.newID()
	op.CreatedAt = time.Now()
	copied := *op
	t.staged = append(t.staged, func() {
		t.store.operations[copied.ID] = &copied
	})
	return nil
}

func (t *fakeTx) InsertTransfer(ctx context.Context, tr *domain.Transfer) error {
	tr.ID = t.store.newID()
	tr.CreatedAt = time.Now()
	copied := *tr
	t.staged = append(t.staged, func() {
		t.store.transfers[copied.ID] = &copied
	})
	return nil
}

func (t *fakeTx) InsertIncasso(ctx context.Context, inc *domain.Incasso) error {
	inc.ID = t.store.newID()
	inc.CreatedAt = time.Now()
	copied := *inc
	t.staged = append(t.staged, func() {
		t.store.incassos[copied.ID] = &copied
	})
	return nil
}

func (t *fakeTx) GetOrCreateFolio(ctx context.Context, hotelID, companyID int64) (*domain.Folio, error) {
	t.store.mu.Lock()
	if id, ok := t.store.folioIDs[[2]int64{hotelID, companyID}]; ok {
		copied := *t.store.folios[id]
		t.store.mu.Unlock()
		return &copied, nil
	}
	t.store.mu.Unlock()

	if t.newFolios == nil {
		t.newFolios = make(map[int64]*domain.Folio)
	}
	for _, folio := range t.newFolios {
		if folio.HotelID == hotelID && folio.CompanyID == companyID {
			copied := *folio
			return &copied, nil
		}
	}

	folio := &domain.Folio{ID: t.store.newID(), HotelID: hotelID, CompanyID: companyID, CreatedAt: time.Now()}
	t.newFolios[folio.ID] = folio
	copied := *folio
	t.staged = append(t.staged, func() {
		t.store.folios[copied.ID] = &copied
		t.store.folioIDs[[2]int64{hotelID, companyID}] = copied.ID
	})
	return folio, nil
}

func (t *fakeTx) InsertFolioItem(ctx context.Context, item *domain.FolioItem) error {
	item.ID = t.store.newID()
	item.CreatedAt = time.Now()
	copied := *item
	t.stagedFolioItems = append(t.stagedFolioItems, copied)
	t.staged = append(t.staged, func() {
		t.store.folioItems = append(t.store.folioItems, copied)
	})
	return nil
}

func (t *fakeTx) FolioBalance(ctx context.Context, folioID int64) (decimal.Decimal, error) {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	return t.store.folioBalanceLocked(folioID, t.stagedFolioItems), nil
}

func (t *fakeTx) SetFolioClosed(ctx context.Context, folioID int64, closed bool, closedAt *time.Time) error {
	t.staged = append(t.staged, func() {
		if folio, ok := t.store.folios[folioID]; ok {
			folio.IsClosed = closed
			folio.ClosedAt = closedAt
		}
	})
	return nil
}

func (t *fakeTx) InsertStay(ctx context.Context, stay *domain.Stay) error {
	stay.ID = t.store.newID()
	stay.CreatedAt = time.Now()
	copied := *stay
	t.staged = append(t.staged, func() {
		t.store.stays[copied.ID] = &copied
	})
	return nil
}

func (t *fakeTx) UpdateStayStatus(ctx context.Context, stayID int64, status domain.StayStatus) error {
	t.staged = append(t.staged, func() {
		if stay, ok := t.store.stays[stayID]; ok {
			stay.Status = status
		}
	})
	return nil
}

func (t *fakeTx) UpdateStaySettlement(ctx context.Context, stayID int64, operationID, movementID *int64) error {
	t.staged = append(t.staged, func() {
		if stay, ok := t.store.stays[stayID]; ok {
			stay.OperationID = operationID
			stay.MovementID = movementID
		}
	})
	return nil
}

func (t *fakeTx) Commit() error {
	if t.done {
		return sql.ErrTxDone
	}
	t.store.mu.Lock()
	for _, apply := range t.staged {
		apply()
	}
	t.store.mu.Unlock()
	t.finish()
	return nil
}

func (t *fakeTx) Rollback() error {
	if t.done {
		return sql.ErrTxDone
	}
	t.staged = nil
	t.finish()
	return nil
}

func (t *fakeTx) finish() {
	t.done = true
	for _, lock := range t.locked {
		lock.Unlock()
	}
	t.locked = map[int64]*sync.Mutex{}
}

// testEnv wires every service against one shared fake store.
type testEnv struct {
	store    *fakeStore
	hotels   HotelService
	ledger   LedgerService
	ops      OperationService
	incassos IncassoService
	stays    StayService
	folios   FolioService
}

func newTestEnv() *testEnv {
	store := newFakeStore()
	ledgerRepo := &fakeLedger{store: store}
	articleRepo := &fakeArticles{store: store}
	opRepo := &fakeOperations{store: store}
	transferRepo := &fakeTransfers{store: store}
	incassoRepo := &fakeIncassos{store: store}
	folioRepo := &fakeFolios{store: store}
	stayRepo := &fakeStays{store: store}

	return &testEnv{
		store:    store,
		hotels:   NewHotelService(store),
		ledger:   NewLedgerService(ledgerRepo, transferRepo),
		ops:      NewOperationService(opRepo, articleRepo, ledgerRepo),
		incassos: NewIncassoService(incassoRepo, articleRepo, ledgerRepo),
		stays:    NewStayService(stayRepo, folioRepo, articleRepo, ledgerRepo, opRepo),
		folios:   NewFolioService(folioRepo, articleRepo, ledgerRepo),
	}
}

// fakeAlerts records alerts instead of mailing them.
type fakeAlerts struct {
	mu    sync.Mutex
	sent  int
	last  []AccountMismatch
	hotel *domain.Hotel
}

func (f *fakeAlerts) SendReconciliationAlert(ctx context.Context, hotel *domain.Hotel, mismatches []AccountMismatch) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent++
	f.hotel = hotel
	f.last = mismatches
	return nil
}
