package governance

import (
	"fmt"

	"github.com/iotaledger/hive.go/serializer/v2"

	"github.com/iotaledger/inx-governance/pkg/ledger"
)

// EmergencyMethod selects the action executed by the emergency bypass path.
type EmergencyMethod uint8

const (
	// EmergencyMethodRemoveFromList removes an address from a list.
	EmergencyMethodRemoveFromList EmergencyMethod = 0
	// EmergencyMethodAddToList adds an address to a list.
	EmergencyMethodAddToList EmergencyMethod = 1
	// EmergencyMethodUpdateConfig overwrites a config value.
	EmergencyMethodUpdateConfig EmergencyMethod = 2
)

// ListNameMaxLength is the maximum length of a serialized list name.
const ListNameMaxLength = 255

// EmergencyListArgs is the payload of a list mutating emergency action.
type EmergencyListArgs struct {
	// List is the name of the list to mutate.
	List string
	// Address is the member to add or remove.
	Address ledger.Address
}

func (a *EmergencyListArgs) Deserialize(data []byte, _ serializer.DeSerializationMode, _ interface{}) (int, error) {
	var listBytes []byte

	n, err := serializer.NewDeserializer(data).
		ReadVariableByteSlice(&listBytes, serializer.SeriLengthPrefixTypeAsByte, func(err error) error {
			return fmt.Errorf("unable to deserialize list name in emergency args: %w", err)
		}, 0, ListNameMaxLength).
		ReadBytesInPlace(a.Address[:], func(err error) error {
			return fmt.Errorf("unable to deserialize address in emergency args: %w", err)
		}).
		Done()
	if err != nil {
		return n, err
	}

	a.List = string(listBytes)

	return n, nil
}

func (a *EmergencyListArgs) Serialize(_ serializer.DeSerializationMode, _ interface{}) ([]byte, error) {
	return serializer.NewSerializer().
		WriteVariableByteSlice([]byte(a.List), serializer.SeriLengthPrefixTypeAsByte, func(err error) error {
			return fmt.Errorf("unable to serialize list name in emergency args: %w", err)
		}, 0, ListNameMaxLength).
		WriteBytes(a.Address[:], func(err error) error {
			return fmt.Errorf("unable to serialize address in emergency args: %w", err)
		}).
		Serialize()
}

// EmergencyConfigArgs is the payload of a config mutating emergency action.
type EmergencyConfigArgs struct {
	// Key is the config key to overwrite.
	Key Key
	// Value is the new config value.
	Value Value
}

func (a *EmergencyConfigArgs) Deserialize(data []byte, _ serializer.DeSerializationMode, _ interface{}) (int, error) {
	return serializer.NewDeserializer(data).
		ReadBytesInPlace(a.Key[:], func(err error) error {
			return fmt.Errorf("unable to deserialize key in emergency args: %w", err)
		}).
		ReadBytesInPlace(a.Value[:], func(err error) error {
			return fmt.Errorf("unable to deserialize value in emergency args: %w", err)
		}).
		Done()
}

func (a *EmergencyConfigArgs) Serialize(_ serializer.DeSerializationMode, _ interface{}) ([]byte, error) {
	return serializer.NewSerializer().
		WriteBytes(a.Key[:], func(err error) error {
			return fmt.Errorf("unable to serialize key in emergency args: %w", err)
		}).
		WriteBytes(a.Value[:], func(err error) error {
			return fmt.Errorf("unable to serialize value in emergency args: %w", err)
		}).
		Serialize()
}
