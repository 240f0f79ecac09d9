package governance

import (
	"github.com/pkg/errors"
)

var (
	ErrGovernanceCorruptedStorage  = errors.New("the governance database was not shutdown properly")
	ErrOnlyGovernor                = errors.New("the caller is not the current governor")
	ErrTaxOutOfRange               = errors.New("the tax is outside of the allowed tax range")
	ErrInvalidTaxRange             = errors.New("the lower tax bound exceeds the upper one")
	ErrEmergencyMethodNotSupported = errors.New("the emergency method is not supported")
	ErrNullCollaborator            = errors.New("governor, vault and cash token must be set")
	ErrZeroParameter               = errors.New("tax, inflator and fixed inflation must be non-zero")
)
