package service

import (
	"context"
	"time"

	"hoteldesk-backoffice/internal/domain"
	"hoteldesk-backoffice/internal/repository"

	"github.com/shopspring/decimal"
)

type HotelService interface {
	CreateHotel(ctx context.Context, name string) (*domain.Hotel, error)
	GetHotel(ctx context.Context, id int64) (*domain.Hotel, error)
	ListHotels(ctx context.Context, activeOnly bool) ([]domain.Hotel, error)
}

// LedgerService is the movement engine: the only component allowed to change
// register balances. Everything else funnels through it.
type LedgerService interface {
	GetSnapshot(ctx context.Context, hotelID int64) (*domain.RegisterSnapshot, error)
	// ApplyMovement posts one standalone movement, e.g. a compensating
	// correction after a void.
	ApplyMovement(ctx context.Context, in MovementInput) (*domain.Movement, error)
	ListMovements(ctx context.Context, hotelID int64, page, pageSize int32) ([]domain.Movement, int32, error)
	Transfer(ctx context.Context, in TransferInput) (*domain.Transfer, error)
	ListTransfers(ctx context.Context, hotelID int64, page, pageSize int32) ([]domain.Transfer, int32, error)
	// Reconcile cross-checks each account's stored balance against the sum of
	// its movements and returns one entry per mismatching account.
	Reconcile(ctx context.Context, hotelID int64) ([]AccountMismatch, error)
}

type OperationService interface {
	Record(ctx context.Context, in RecordOperationInput) (*domain.Operation, *domain.Movement, error)
	// Void annotates the operation as voided. The linked movement and the
	// register balances are left untouched.
	Void(ctx context.Context, operationID, actorID int64, reason string) (*domain.Operation, error)
	// Get returns the operation and its ledger movement. The movement is nil
	// for bookkeeping-only entries.
	Get(ctx context.Context, id int64) (*domain.Operation, *domain.Movement, error)
	List(ctx context.Context, f repository.OperationFilter) ([]domain.Operation, int32, error)
	ListArticles(ctx context.Context, kind domain.Kind) ([]domain.Article, error)
}

type IncassoService interface {
	Create(ctx context.Context, in IncassoInput) (*domain.Incasso, error)
	Get(ctx context.Context, id int64) (*domain.Incasso, error)
	List(ctx context.Context, hotelID int64, page, pageSize int32) ([]domain.Incasso, int32, error)
}

type StayService interface {
	CheckIn(ctx context.Context, in CheckInInput) (*domain.Stay, error)
	CheckOut(ctx context.Context, stayID, actorID int64) (*domain.Stay, error)
	Cancel(ctx context.Context, stayID, actorID int64, markNoShow bool) (*domain.Stay, error)
	Get(ctx context.Context, id int64) (*domain.Stay, error)
	List(ctx context.Context, hotelID int64, status domain.StayStatus, page, pageSize int32) ([]domain.Stay, int32, error)
}

type FolioService interface {
	AddPayment(ctx context.Context, in FolioPaymentInput) (*domain.FolioItem, error)
	GetFolio(ctx context.Context, folioID int64) (*domain.Folio, []domain.FolioItem, decimal.Decimal, error)
	ListFolios(ctx context.Context, hotelID int64, openOnly bool) ([]domain.Folio, error)
}

// AlertService delivers operational alerts to the accounting team.
type AlertService interface {
	SendReconciliationAlert(ctx context.Context, hotel *domain.Hotel, mismatches []AccountMismatch) error
}

// MovementInput posts one movement outside any operation or transfer.
type MovementInput struct {
	HotelID    int64
	ActorID    int64
	Account    domain.Account
	Direction  domain.Direction
	Amount     decimal.Decimal
	HappenedAt time.Time
	Comment    string
}

// TransferInput moves funds between two accounts of one hotel's register.
type TransferInput struct {
	HotelID     int64
	ActorID     int64
	FromAccount domain.Account
	ToAccount   domain.Account
	Amount      decimal.Decimal
	HappenedAt  time.Time
	Comment     string
}

// RecordOperationInput creates an income or expense operation together with
// its cash movement. The article decides the direction.
type RecordOperationInput struct {
	HotelID      int64
	ActorID      int64
	ArticleID    int64
	Amount       decimal.Decimal
	Method       domain.Account
	HappenedAt   time.Time
	Counterparty string
	Comment      string
	// BookkeepingOnly records the entry without a cash movement, for amounts
	// settled outside the register.
	BookkeepingOnly bool
}

// IncassoInput takes funds out of a settlement account for handover to
// accounting.
type IncassoInput struct {
	HotelID    int64
	ActorID    int64
	Amount     decimal.Decimal
	Method     domain.Account
	HappenedAt time.Time
	Comment    string
}

// CheckInInput registers a stay. Walk-in stays settle immediately through
// the cash ledger; corporate stays defer payment to the company folio.
type CheckInInput struct {
	HotelID    int64
	ActorID    int64
	RoomLabel  string
	GuestName  string
	CompanyID  *int64
	StayType   domain.StayType
	CheckIn    time.Time
	CheckOut   time.Time
	TotalToPay decimal.Decimal
	// Method is the settlement account for walk-in payment. Ignored for
	// corporate stays.
	Method domain.Account
}

// FolioPaymentInput books a company payment against its folio: one income
// operation, one incoming movement, one negative folio item.
type FolioPaymentInput struct {
	HotelID    int64
	ActorID    int64
	CompanyID  int64
	Amount     decimal.Decimal
	Method     domain.Account
	HappenedAt time.Time
	// ArticleID optionally overrides the default income article.
	ArticleID int64
	Comment   string
}

// AccountMismatch is one reconciliation finding: the stored register balance
// of an account disagrees with the signed sum of its movements.
type AccountMismatch struct {
	Account  domain.Account  `json:"account"`
	Stored   decimal.Decimal `json:"stored"`
	Computed decimal.Decimal `json:"computed"`
}
