package ledger

import (
	"fmt"

	iotago "github.com/iotaledger/iota.go/v3"
)

// AddressLength is the length of a ledger address.
const AddressLength = 32

// Address is the opaque identifier of an account in a ledger.
type Address [AddressLength]byte

// NullAddress is the zero value of an Address. It can never hold tokens.
var NullAddress = Address{}

// ToHex converts the Address to its hex string representation.
func (a Address) ToHex() string {
	return iotago.EncodeHex(a[:])
}

// IsNull tells whether the Address is the null address.
func (a Address) IsNull() bool {
	return a == NullAddress
}

// AddressFromHex creates an Address from a hex string representation.
func AddressFromHex(hexString string) (Address, error) {
	b, err := iotago.DecodeHex(hexString)
	if err != nil {
		return NullAddress, err
	}

	if len(b) != AddressLength {
		return NullAddress, fmt.Errorf("unknown address length (%d)", len(b))
	}

	var addr Address
	copy(addr[:], b)

	return addr, nil
}
