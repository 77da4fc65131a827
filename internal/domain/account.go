package domain

// Account identifies one of the four settlement accounts a hotel's cash
// register tracks. The set is closed: everything that touches a balance goes
// through ParseAccount or an exhaustive switch, never a string lookup.
type Account string

const (
	// AccountCash is physical cash in the front-desk drawer.
	AccountCash Account = "cash"
	// AccountMkassa is the Mkassa acquiring account.
	AccountMkassa Account = "mkassa"
	// AccountZadatok holds guest deposits (prepayments).
	AccountZadatok Account = "zadatok"
	// AccountOptima is the Optima acquiring account.
	AccountOptima Account = "optima"
)

// Accounts lists every settlement account in display order.
var Accounts = []Account{AccountCash, AccountMkassa, AccountZadatok, AccountOptima}

// ParseAccount validates a free-form account/method selector coming from a
// caller. Unrecognized values fail with ErrUnknownAccount.
func ParseAccount(s string) (Account, error) {
	switch Account(s) {
	case AccountCash, AccountMkassa, AccountZadatok, AccountOptima:
		return Account(s), nil
	}
	return "", ErrUnknownAccount
}

// IsCash reports whether the account is the physical cash drawer.
func (a Account) IsCash() bool {
	return a == AccountCash
}

type Direction string

const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"
)

// ParseDirection validates a movement direction.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case DirectionIn, DirectionOut:
		return Direction(s), nil
	}
	return "", ErrInvalidDirection
}
