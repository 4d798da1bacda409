package ledger

import "errors"

// Validation failures are expected, recoverable outcomes. Every rejected
// operation leaves all account and session state untouched.
var (
	// ErrNotLoggedIn means an operation was invoked without an
	// authenticated session. This is a caller bug, not a user outcome.
	ErrNotLoggedIn = errors.New("no authenticated session")

	// ErrInvalidAmount rejects zero or negative amounts (transfers and loans).
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrUnknownRecipient means the transfer target username does not exist.
	ErrUnknownRecipient = errors.New("unknown recipient")

	// ErrInsufficientFunds means the sender's balance does not cover the
	// transfer amount.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrSelfTransfer rejects transfers to the sender's own account.
	ErrSelfTransfer = errors.New("cannot transfer to own account")

	// ErrInsufficientHistory means no single past movement covers 10% of
	// the requested loan.
	ErrInsufficientHistory = errors.New("no qualifying movement for loan")

	// ErrCloseMismatch means the closure confirmation username or PIN did
	// not match the logged-in account.
	ErrCloseMismatch = errors.New("confirmation does not match account")
)
