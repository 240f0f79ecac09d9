package governance

import (
	"fmt"

	iotago "github.com/iotaledger/iota.go/v3"
	"golang.org/x/crypto/blake2b"

	"github.com/iotaledger/inx-governance/pkg/ledger"
)

// KeyLength is the length of a registry key and value.
const KeyLength = 32

// Key is an opaque 32 byte registry key.
type Key [KeyLength]byte

// Value is an opaque 32 byte registry value.
type Value [KeyLength]byte

// NullValue is the zero value of a Value, it marks an absent registry entry.
var NullValue = Value{}

// ToHex converts the Key to its hex string representation.
func (k Key) ToHex() string {
	return iotago.EncodeHex(k[:])
}

// ToHex converts the Value to its hex string representation.
func (v Value) ToHex() string {
	return iotago.EncodeHex(v[:])
}

// IsNull tells whether the Value marks an absent registry entry.
func (v Value) IsNull() bool {
	return v == NullValue
}

// KeyFromHex creates a Key from a hex string representation.
func KeyFromHex(hexString string) (Key, error) {
	b, err := iotago.DecodeHex(hexString)
	if err != nil {
		return Key{}, err
	}

	if len(b) != KeyLength {
		return Key{}, fmt.Errorf("unknown key length (%d)", len(b))
	}

	var key Key
	copy(key[:], b)

	return key, nil
}

// ConfigKey derives the registry key of a named configuration value.
// The name is used directly as the key, names longer than 32 bytes are rejected.
func ConfigKey(name string) (Key, error) {
	if len(name) > KeyLength {
		return Key{}, fmt.Errorf("config name exceeds %d bytes (%d)", KeyLength, len(name))
	}

	var key Key
	copy(key[:], name)

	return key, nil
}

// ListKey derives the registry key of a list membership record. Hashing the
// list name together with the address keeps membership keys out of the plain
// config key space.
func ListKey(list string, address ledger.Address) Key {
	h := blake2b.Sum256(append([]byte(list), address[:]...))

	return Key(h)
}

// Method identifies a governance entry point.
type Method string

const (
	MethodAddToList      Method = "addToList"
	MethodRemoveFromList Method = "removeFromList"
	MethodUpdateConfig   Method = "updateConfig"
	MethodChangeTax      Method = "changeTax"
	MethodChangeTaxRange Method = "changeTaxRange"
	MethodEmergency      Method = "emergency"
	MethodReset          Method = "reset"
	MethodChargeFee      Method = "chargeFee"
)

var governedMethods = map[Method]struct{}{
	MethodAddToList:      {},
	MethodRemoveFromList: {},
	MethodUpdateConfig:   {},
	MethodChangeTax:      {},
	MethodChangeTaxRange: {},
	MethodEmergency:      {},
	MethodReset:          {},
}

// IsGovernedMethod tells whether the given method is gated by the governor check.
func IsGovernedMethod(method Method) bool {
	_, governed := governedMethods[method]

	return governed
}
