package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestParseAccount(t *testing.T) {
	for _, valid := range []string{"cash", "mkassa", "zadatok", "optima"} {
		account, err := ParseAccount(valid)
		require.NoError(t, err)
		assert.Equal(t, Account(valid), account)
	}

	for _, invalid := range []string{"", "Cash", "vault", "card"} {
		_, err := ParseAccount(invalid)
		assert.ErrorIs(t, err, ErrUnknownAccount, "input %q", invalid)
	}
}

func TestParseDirection(t *testing.T) {
	for _, valid := range []string{"in", "out"} {
		direction, err := ParseDirection(valid)
		require.NoError(t, err)
		assert.Equal(t, Direction(valid), direction)
	}
	_, err := ParseDirection("sideways")
	assert.ErrorIs(t, err, ErrInvalidDirection)
}

func TestRegisterBalances(t *testing.T) {
	reg := &CashRegister{HotelID: 1}

	for i, account := range Accounts {
		reg.SetBalance(account, decimal.NewFromInt(int64(10*(i+1))))
	}

	assert.True(t, reg.Balance(AccountCash).Equal(mustDec("10")))
	assert.True(t, reg.Balance(AccountOptima).Equal(mustDec("40")))
	assert.True(t, reg.NoncashTotal().Equal(mustDec("90")))
	assert.True(t, reg.Total().Equal(mustDec("100")))

	// Unknown accounts read as zero and writes are dropped.
	assert.True(t, reg.Balance(Account("vault")).IsZero())
	reg.SetBalance(Account("vault"), mustDec("5"))
	assert.True(t, reg.Total().Equal(mustDec("100")))

	snapshot := reg.Snapshot()
	assert.Equal(t, int64(1), snapshot.HotelID)
	assert.True(t, snapshot.NoncashTotal.Equal(mustDec("90")))
	assert.True(t, snapshot.Total.Equal(mustDec("100")))
}

func TestMovementSignedAmount(t *testing.T) {
	in := Movement{Direction: DirectionIn, Amount: mustDec("12.50")}
	out := Movement{Direction: DirectionOut, Amount: mustDec("12.50")}

	assert.True(t, in.SignedAmount().Equal(mustDec("12.50")))
	assert.True(t, out.SignedAmount().Equal(mustDec("-12.50")))
}

func TestSignFolioAmount(t *testing.T) {
	amount := mustDec("30.00")
	assert.True(t, SignFolioAmount(FolioItemCharge, amount).Equal(amount))
	assert.True(t, SignFolioAmount(FolioItemAdjust, amount).Equal(amount))
	assert.True(t, SignFolioAmount(FolioItemPayment, amount).Equal(amount.Neg()))
}

func TestOperationIsIncasso(t *testing.T) {
	assert.True(t, (&Operation{Source: SourceIncasso}).IsIncasso())
	assert.False(t, (&Operation{Source: "pms:stay:7"}).IsIncasso())
	assert.False(t, (&Operation{}).IsIncasso())
}

func TestErrorPredicates(t *testing.T) {
	ife := &InsufficientFundsError{
		Account:   AccountCash,
		Requested: mustDec("50.00"),
		Available: mustDec("20.00"),
	}

	assert.True(t, IsInsufficientFunds(ife))
	assert.True(t, IsInsufficientFunds(fmt.Errorf("posting failed: %w", ife)))
	assert.False(t, IsInsufficientFunds(ErrInvalidAmount))
	assert.Contains(t, ife.Error(), "requested 50.00, available 20.00")

	assert.True(t, IsValidation(ife))
	assert.True(t, IsValidation(ErrUnknownAccount))
	assert.True(t, IsValidation(fmt.Errorf("transfer: %w", ErrSameAccountTransfer)))
	assert.False(t, IsValidation(ErrConcurrencyConflict))
	assert.False(t, IsValidation(errors.New("boom")))
}
