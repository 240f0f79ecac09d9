package governance

import (
	"github.com/iotaledger/hive.go/kvstore"
	"github.com/iotaledger/hive.go/core/marshalutil"

	"github.com/iotaledger/inx-governance/pkg/ledger"
)

// listMemberValue is the registry value marking a present list member.
var listMemberValue = Value{KeyLength - 1: 1}

// Registry is the configuration registry of the governance core, a persistent
// mapping from opaque 32 byte keys to opaque 32 byte values. Plain config keys
// and derived list membership keys share the same key space.
type Registry struct {
	store kvstore.KVStore
}

// NewRegistry creates a new Registry on the given store.
func NewRegistry(store kvstore.KVStore) *Registry {
	return &Registry{
		store: store,
	}
}

func registryKey(key Key) []byte {
	m := marshalutil.New(33)
	m.WriteByte(GovernanceStoreKeyPrefixRegistry)
	m.WriteBytes(key[:])

	return m.Bytes()
}

// Set stores the given value under the given key, overwriting any previous value.
func (r *Registry) Set(key Key, value Value) error {
	return r.store.Set(registryKey(key), value[:])
}

// Get returns the value stored under the given key, absent keys read as the null value.
func (r *Registry) Get(key Key) (Value, error) {
	valueBytes, err := r.store.Get(registryKey(key))
	if err != nil {
		if err == kvstore.ErrKeyNotFound {
			return NullValue, nil
		}

		return NullValue, err
	}

	var value Value
	copy(value[:], valueBytes)

	return value, nil
}

// GetBatch returns the values stored under the given keys, in order.
func (r *Registry) GetBatch(keys []Key) ([]Value, error) {
	values := make([]Value, len(keys))
	for i, key := range keys {
		value, err := r.Get(key)
		if err != nil {
			return nil, err
		}
		values[i] = value
	}

	return values, nil
}

// Delete removes the value stored under the given key.
func (r *Registry) Delete(key Key) error {
	return r.store.Delete(registryKey(key))
}

// ListContains tells whether the given address is a member of the given list.
func (r *Registry) ListContains(list string, address ledger.Address) (bool, error) {
	value, err := r.Get(ListKey(list, address))
	if err != nil {
		return false, err
	}

	return !value.IsNull(), nil
}
