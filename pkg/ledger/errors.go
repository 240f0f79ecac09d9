package ledger

import (
	"github.com/pkg/errors"
)

var (
	ErrNullAddress               = errors.New("the null address cannot hold tokens")
	ErrInsufficientBalance       = errors.New("the address does not hold enough tokens")
	ErrInsufficientAllowance     = errors.New("the spender allowance does not cover the amount")
	ErrSupplyOverflow            = errors.New("the operation would overflow the total supply")
	ErrUnknownSnapshot           = errors.New("the given snapshot id was never taken")
	ErrResetAlreadyInitialized   = errors.New("the reset of this ledger was already initialized")
	ErrResetNotInitialized       = errors.New("the reset of this ledger was not initialized yet")
	ErrNoResetTokensToClaim      = errors.New("the address held no tokens at the reset snapshot")
	ErrResetTokensAlreadyClaimed = errors.New("the address already claimed its reset tokens")
	ErrInvalidClaim              = errors.New("invalid claim record")
)
