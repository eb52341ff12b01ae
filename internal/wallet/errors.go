package wallet

import "errors"

// Failure conditions produced by the wallet core. The API layer returns the
// error text verbatim to clients, so the wording here is part of the contract.
var (
	// ErrNotFound occurs when a wallet lookup by id or name misses.
	ErrNotFound = errors.New("wallet not found")

	// ErrOwnerNotFound occurs when a creation request references a user id
	// that the user directory cannot resolve.
	ErrOwnerNotFound = errors.New("The userID that is assign to this wallet doesn't exist")

	// ErrNameTaken indicates the requested wallet name already exists.
	ErrNameTaken = errors.New("wallet name already exists")

	// ErrInvalidAmount rejects non-positive deposit/withdrawal amounts.
	ErrInvalidAmount = errors.New("No negative amounts")

	// ErrInsufficientFunds rejects withdrawals exceeding the current balance.
	ErrInsufficientFunds = errors.New("Insufficient funds")
)
