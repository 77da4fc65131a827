package repository

import (
	"context"
	"errors"
	"time"

	"hoteldesk-backoffice/internal/domain"

	"github.com/shopspring/decimal"
)

// ErrDuplicateMovement is returned when inserting a movement would violate
// the one-movement-per-(operation, account, direction) constraint. It means
// the effect was already applied by an earlier submission; callers treat it
// as success, not failure.
var ErrDuplicateMovement = errors.New("movement already posted for this operation")

type HotelRepository interface {
	// Create persists the hotel and its cash register in one transaction.
	Create(ctx context.Context, hotel *domain.Hotel) error
	GetByID(ctx context.Context, id int64) (*domain.Hotel, error)
	List(ctx context.Context, activeOnly bool) ([]domain.Hotel, error)
}

type ArticleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Article, error)
	ListActive(ctx context.Context, kind domain.Kind) ([]domain.Article, error)
	// FirstActiveIncome returns the lowest-id active income article, used as
	// the fallback for folio payments when no article is chosen.
	FirstActiveIncome(ctx context.Context) (*domain.Article, error)
	// EnsureArticle returns the article with the given kind and name,
	// creating it (active, uncategorized) when absent.
	EnsureArticle(ctx context.Context, kind domain.Kind, name string) (*domain.Article, error)
	// EnsureStayIncomeArticle resolves the default article stay payments are
	// booked under, creating category and article on first use.
	EnsureStayIncomeArticle(ctx context.Context) (*domain.Article, error)
}

// LedgerRepository owns the cash register rows and the append-only movement
// log. All balance mutations happen inside a LedgerTx.
type LedgerRepository interface {
	GetOrCreateRegister(ctx context.Context, hotelID int64) (*domain.CashRegister, error)
	GetRegister(ctx context.Context, hotelID int64) (*domain.CashRegister, error)
	ListMovements(ctx context.Context, hotelID int64, page, pageSize int32) ([]domain.Movement, int32, error)
	GetMovementByOperation(ctx context.Context, operationID int64, account domain.Account, direction domain.Direction) (*domain.Movement, error)
	// SumMovementsByAccount aggregates the signed movement log per account.
	// Read-only and non-authoritative: used by reconciliation to cross-check
	// the register snapshot, never to rebuild it.
	SumMovementsByAccount(ctx context.Context, hotelID int64) (map[domain.Account]decimal.Decimal, error)
	Begin(ctx context.Context) (LedgerTx, error)
}

// LedgerTx is one atomic unit of work against a hotel's ledger. Every write
// the movement engine and its orchestrators compose lives here; either all
// of them commit or none do.
type LedgerTx interface {
	// LockRegister get-or-creates the hotel's register row and acquires an
	// exclusive row lock on it for the remainder of the transaction. All
	// reads feeding a mutation decision must go through this.
	LockRegister(ctx context.Context, hotelID int64) (*domain.CashRegister, error)
	// SetBalance writes one account's new balance and refreshes updated_at.
	SetBalance(ctx context.Context, registerID int64, account domain.Account, value decimal.Decimal) error
	InsertMovement(ctx context.Context, m *domain.Movement) error
	MovementExists(ctx context.Context, operationID int64, account domain.Account, direction domain.Direction) (bool, error)

	InsertOperation(ctx context.Context, op *domain.Operation) error
	InsertTransfer(ctx context.Context, t *domain.Transfer) error
	InsertIncasso(ctx context.Context, inc *domain.Incasso) error

	GetOrCreateFolio(ctx context.Context, hotelID, companyID int64) (*domain.Folio, error)
	InsertFolioItem(ctx context.Context, item *domain.FolioItem) error
	FolioBalance(ctx context.Context, folioID int64) (decimal.Decimal, error)
	SetFolioClosed(ctx context.Context, folioID int64, closed bool, closedAt *time.Time) error

	InsertStay(ctx context.Context, stay *domain.Stay) error
	UpdateStayStatus(ctx context.Context, stayID int64, status domain.StayStatus) error
	UpdateStaySettlement(ctx context.Context, stayID int64, operationID, movementID *int64) error

	Commit() error
	Rollback() error
}

type OperationFilter struct {
	HotelID       int64
	Kind          domain.Kind // empty = both
	ArticleID     int64       // 0 = any
	From, To      *time.Time
	IncludeVoided bool
	// ExcludeIncasso drops source="incasso" rows, matching how reporting
	// keeps pickup entries out of normal expense views.
	ExcludeIncasso bool
	Page, PageSize int32
}

type OperationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Operation, error)
	List(ctx context.Context, f OperationFilter) ([]domain.Operation, int32, error)
	// MarkVoided sets the void fields on a non-voided operation. It never
	// touches the linked movement.
	MarkVoided(ctx context.Context, id int64, voidedBy int64, reason string, at time.Time) error
}

type TransferRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Transfer, error)
	ListByHotel(ctx context.Context, hotelID int64, page, pageSize int32) ([]domain.Transfer, int32, error)
}

type IncassoRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Incasso, error)
	ListByHotel(ctx context.Context, hotelID int64, page, pageSize int32) ([]domain.Incasso, int32, error)
}

type FolioRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Folio, error)
	GetByHotelCompany(ctx context.Context, hotelID, companyID int64) (*domain.Folio, error)
	ListByHotel(ctx context.Context, hotelID int64, openOnly bool) ([]domain.Folio, error)
	ListItems(ctx context.Context, folioID int64) ([]domain.FolioItem, error)
	Balance(ctx context.Context, folioID int64) (decimal.Decimal, error)
	GetCompany(ctx context.Context, companyID int64) (*domain.Company, error)
}

// StayRepository reads stays. Inserts and settlement updates go through
// LedgerTx so they commit atomically with the ledger writes.
type StayRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Stay, error)
	ListByHotel(ctx context.Context, hotelID int64, status domain.StayStatus, page, pageSize int32) ([]domain.Stay, int32, error)
}
