package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Account is a single customer account. The movement history is append-only:
// positive amounts are deposits/credits, negative amounts are
// withdrawals/debits, stored in chronological order. Balance is never stored;
// it is always derived from the movements.
//
// Fields are unexported so that all mutation goes through the ledger
// operations; accessors hand out copies, never internal state.
type Account struct {
	owner        string
	username     string
	credential   int
	interestRate decimal.Decimal
	movements    []decimal.Decimal
}

// NewAccount creates an account with an opening movement history. The
// username is left empty; the registry derives it exactly once.
func NewAccount(owner string, credential int, interestRate decimal.Decimal, movements []decimal.Decimal) *Account {
	movs := make([]decimal.Decimal, len(movements))
	copy(movs, movements)
	return &Account{
		owner:        owner,
		credential:   credential,
		interestRate: interestRate,
		movements:    movs,
	}
}

// Owner returns the full display name.
func (a *Account) Owner() string {
	return a.owner
}

// FirstName returns the first whitespace-separated token of the owner name,
// used for the login greeting.
func (a *Account) FirstName() string {
	fields := strings.Fields(a.owner)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// Username returns the derived username, or "" before derivation.
func (a *Account) Username() string {
	return a.username
}

// SetUsername assigns the derived username. The first assignment wins;
// re-derivation with the same owner is a no-op either way.
func (a *Account) SetUsername(username string) {
	if a.username != "" {
		return
	}
	a.username = username
}

// Credential returns the numeric PIN used for login and closure confirmation.
func (a *Account) Credential() int {
	return a.credential
}

// InterestRate returns the interest rate as a percentage.
func (a *Account) InterestRate() decimal.Decimal {
	return a.interestRate
}

// Movements returns a copy of the movement history in chronological order.
func (a *Account) Movements() []decimal.Decimal {
	movs := make([]decimal.Decimal, len(a.movements))
	copy(movs, a.movements)
	return movs
}

// AddMovement appends a signed amount to the history. Ledger operations are
// the only intended callers.
func (a *Account) AddMovement(amount decimal.Decimal) {
	a.movements = append(a.movements, amount)
}
