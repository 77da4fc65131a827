package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"hoteldesk-backoffice/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCorporateStay(t *testing.T, env *testEnv, hotelID, companyID int64, total string) *domain.Folio {
	t.Helper()
	_, err := env.stays.CheckIn(context.Background(), CheckInInput{
		HotelID:    hotelID,
		ActorID:    1,
		RoomLabel:  "77",
		GuestName:  "guest",
		CompanyID:  &companyID,
		StayType:   domain.StayTypeCorporate,
		CheckIn:    time.Now(),
		CheckOut:   time.Now().AddDate(0, 0, 1),
		TotalToPay: dec(total),
	})
	require.NoError(t, err)

	folios, err := env.folios.ListFolios(context.Background(), hotelID, false)
	require.NoError(t, err)
	require.Len(t, folios, 1)
	return &folios[0]
}

func TestFolioPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("PartialPaymentKeepsFolioOpen", func(t *testing.T) {
		env := newTestEnv()
		hotel := env.store.seedHotel("Astoria")
		company := env.store.seedCompany("Acme Travel", domain.PayTermsInvoice)
		env.store.seedArticle(domain.KindIncome, "Room revenue", true)
		folio := seedCorporateStay(t, env, hotel.ID, company.ID, "400.00")

		item, err := env.folios.AddPayment(ctx, FolioPaymentInput{
			HotelID:    hotel.ID,
			ActorID:    2,
			CompanyID:  company.ID,
			Amount:     dec("250.00"),
			Method:     domain.AccountMkassa,
			HappenedAt: time.Now(),
		})
		require.NoError(t, err)
		assert.Equal(t, domain.FolioItemPayment, item.ItemType)
		assert.True(t, item.SignedAmount.Equal(dec("-250.00")))

		got, _, balance, err := env.folios.GetFolio(ctx, folio.ID)
		require.NoError(t, err)
		assert.False(t, got.IsClosed)
		assert.True(t, balance.Equal(dec("150.00")))

		// The payment also hits the cash ledger.
		assert.True(t, env.store.balance(hotel.ID, domain.AccountMkassa).Equal(dec("250.00")))
		require.NotNil(t, item.OperationID)
		op, _, err := env.ops.Get(ctx, *item.OperationID)
		require.NoError(t, err)
		assert.Equal(t, "company_folio", op.Source)
		assert.Equal(t, "Acme Travel", op.Counterparty)
	})

	t.Run("FullPaymentClosesFolio", func(t *testing.T) {
		env := newTestEnv()
		hotel := env.store.seedHotel("Astoria")
		company := env.store.seedCompany("Acme Travel", domain.PayTermsInvoice)
		env.store.seedArticle(domain.KindIncome, "Room revenue", true)
		folio := seedCorporateStay(t, env, hotel.ID, company.ID, "400.00")

		_, err := env.folios.AddPayment(ctx, FolioPaymentInput{
			HotelID:    hotel.ID,
			CompanyID:  company.ID,
			Amount:     dec("400.00"),
			Method:     domain.AccountCash,
			HappenedAt: time.Now(),
		})
		require.NoError(t, err)

		got, _, balance, err := env.folios.GetFolio(ctx, folio.ID)
		require.NoError(t, err)
		assert.True(t, got.IsClosed)
		assert.NotNil(t, got.ClosedAt)
		assert.True(t, balance.IsZero())
	})

	t.Run("NewChargeReopensClosedFolio", func(t *testing.T) {
		env := newTestEnv()
		hotel := env.store.seedHotel("Astoria")
		company := env.store.seedCompany("Acme Travel", domain.PayTermsInvoice)
		env.store.seedArticle(domain.KindIncome, "Room revenue", true)
		folio := seedCorporateStay(t, env, hotel.ID, company.ID, "100.00")

		_, err := env.folios.AddPayment(ctx, FolioPaymentInput{
			HotelID:    hotel.ID,
			CompanyID:  company.ID,
			Amount:     dec("100.00"),
			Method:     domain.AccountCash,
			HappenedAt: time.Now(),
		})
		require.NoError(t, err)

		got, _, _, err := env.folios.GetFolio(ctx, folio.ID)
		require.NoError(t, err)
		require.True(t, got.IsClosed)

		// Another corporate stay charges the same folio and reopens it.
		_, err = env.stays.CheckIn(ctx, CheckInInput{
			HotelID:    hotel.ID,
			RoomLabel:  "78",
			CompanyID:  &company.ID,
			StayType:   domain.StayTypeCorporate,
			CheckIn:    time.Now(),
			CheckOut:   time.Now().AddDate(0, 0, 1),
			TotalToPay: dec("60.00"),
		})
		require.NoError(t, err)

		got, _, balance, err := env.folios.GetFolio(ctx, folio.ID)
		require.NoError(t, err)
		assert.False(t, got.IsClosed)
		assert.Nil(t, got.ClosedAt)
		assert.True(t, balance.Equal(dec("60.00")))
	})

	t.Run("FallsBackToFirstActiveIncomeArticle", func(t *testing.T) {
		env := newTestEnv()
		hotel := env.store.seedHotel("Astoria")
		company := env.store.seedCompany("Acme Travel", domain.PayTermsInvoice)
		fallback := env.store.seedArticle(domain.KindIncome, "Room revenue", true)
		seedCorporateStay(t, env, hotel.ID, company.ID, "50.00")

		item, err := env.folios.AddPayment(ctx, FolioPaymentInput{
			HotelID:    hotel.ID,
			CompanyID:  company.ID,
			Amount:     dec("50.00"),
			Method:     domain.AccountCash,
			HappenedAt: time.Now(),
		})
		require.NoError(t, err)

		op, _, err := env.ops.Get(ctx, *item.OperationID)
		require.NoError(t, err)
		assert.Equal(t, fallback.ID, op.ArticleID)
	})

	t.Run("PaymentWithoutFolioRejected", func(t *testing.T) {
		env := newTestEnv()
		hotel := env.store.seedHotel("Astoria")
		company := env.store.seedCompany("Acme Travel", domain.PayTermsInvoice)
		env.store.seedArticle(domain.KindIncome, "Room revenue", true)

		_, err := env.folios.AddPayment(ctx, FolioPaymentInput{
			HotelID:    hotel.ID,
			CompanyID:  company.ID,
			Amount:     dec("10.00"),
			Method:     domain.AccountCash,
			HappenedAt: time.Now(),
		})
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Equal(t, 0, env.store.movementCount())
	})

	t.Run("ExpenseArticleRejected", func(t *testing.T) {
		env := newTestEnv()
		hotel := env.store.seedHotel("Astoria")
		company := env.store.seedCompany("Acme Travel", domain.PayTermsInvoice)
		expense := env.store.seedArticle(domain.KindExpense, "Supplies", true)

		_, err := env.folios.AddPayment(ctx, FolioPaymentInput{
			HotelID:    hotel.ID,
			CompanyID:  company.ID,
			Amount:     dec("10.00"),
			Method:     domain.AccountCash,
			HappenedAt: time.Now(),
			ArticleID:  expense.ID,
		})
		assert.ErrorIs(t, err, domain.ErrArticleNotUsable)
	})
}

func TestHotelCreateProvisionsRegister(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	hotel, err := env.hotels.CreateHotel(ctx, "  Seaside  ")
	require.NoError(t, err)
	assert.Equal(t, "Seaside", hotel.Name)
	assert.True(t, hotel.IsActive)

	snapshot, err := env.ledger.GetSnapshot(ctx, hotel.ID)
	require.NoError(t, err)
	assert.True(t, snapshot.Total.IsZero())

	_, err = env.hotels.CreateHotel(ctx, "   ")
	assert.Error(t, err)
}
