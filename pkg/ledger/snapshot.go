package ledger

import (
	"github.com/iotaledger/hive.go/kvstore"
	"github.com/iotaledger/hive.go/core/marshalutil"
)

// SnapshotID is the id of a balance snapshot. The zero value is never a valid snapshot.
type SnapshotID uint32

func snapshotSupplyKey(snapshotID SnapshotID) []byte {
	m := marshalutil.New(5)
	m.WriteByte(LedgerStoreKeyPrefixSnapshotSupply)
	m.WriteUint32(uint32(snapshotID))

	return m.Bytes()
}

func snapshotBalanceKey(snapshotID SnapshotID, address Address) []byte {
	m := marshalutil.New(37)
	m.WriteByte(LedgerStoreKeyPrefixSnapshotBalances)
	m.WriteUint32(uint32(snapshotID))
	m.WriteBytes(address[:])

	return m.Bytes()
}

func (l *Ledger) readSnapshotCounter() (SnapshotID, error) {
	value, err := l.store.Get(statusKey(statusKeySnapshotCounter))
	if err != nil {
		if errorIsKeyNotFound(err) {
			return 0, nil
		}

		return 0, err
	}

	counter, err := marshalutil.New(value).ReadUint32()
	if err != nil {
		return 0, err
	}

	return SnapshotID(counter), nil
}

// LatestSnapshotID returns the id of the latest snapshot, 0 if none was taken yet.
func (l *Ledger) LatestSnapshotID() (SnapshotID, error) {
	l.RLock()
	defer l.RUnlock()

	return l.readSnapshotCounter()
}

// Snapshot captures the current balances and total supply as a new immutable
// snapshot and returns its id. Snapshot ids are sequential, starting at 1.
func (l *Ledger) Snapshot() (SnapshotID, error) {
	l.Lock()
	defer l.Unlock()

	counter, err := l.readSnapshotCounter()
	if err != nil {
		return 0, err
	}
	snapshotID := counter + 1

	supply, err := l.readAmount(statusKey(statusKeyTotalSupply))
	if err != nil {
		return 0, err
	}

	mutations, err := l.store.Batched()
	if err != nil {
		return 0, err
	}

	// archive every current balance under the new snapshot id
	var innerErr error
	if err := l.store.Iterate([]byte{LedgerStoreKeyPrefixBalances}, func(key kvstore.Key, value kvstore.Value) bool {
		var address Address
		copy(address[:], key[1:])

		if err := mutations.Set(snapshotBalanceKey(snapshotID, address), value); err != nil {
			innerErr = err

			return false
		}

		return true
	}); err != nil {
		mutations.Cancel()

		return 0, err
	}
	if innerErr != nil {
		mutations.Cancel()

		return 0, innerErr
	}

	if err := mutations.Set(snapshotSupplyKey(snapshotID), amountBytes(supply)); err != nil {
		mutations.Cancel()

		return 0, err
	}

	counterBytes := marshalutil.New(4)
	counterBytes.WriteUint32(uint32(snapshotID))
	if err := mutations.Set(statusKey(statusKeySnapshotCounter), counterBytes.Bytes()); err != nil {
		mutations.Cancel()

		return 0, err
	}

	if err := mutations.Commit(); err != nil {
		return 0, err
	}

	return snapshotID, nil
}

func (l *Ledger) checkSnapshotIDWithoutLocking(snapshotID SnapshotID) error {
	counter, err := l.readSnapshotCounter()
	if err != nil {
		return err
	}

	if snapshotID == 0 || snapshotID > counter {
		return ErrUnknownSnapshot
	}

	return nil
}

// BalanceOfAt returns the balance the given address held at the given snapshot.
func (l *Ledger) BalanceOfAt(address Address, snapshotID SnapshotID) (uint64, error) {
	l.RLock()
	defer l.RUnlock()

	if err := l.checkSnapshotIDWithoutLocking(snapshotID); err != nil {
		return 0, err
	}

	return l.readAmount(snapshotBalanceKey(snapshotID, address))
}

// TotalSupplyAt returns the total supply of the ledger at the given snapshot.
func (l *Ledger) TotalSupplyAt(snapshotID SnapshotID) (uint64, error) {
	l.RLock()
	defer l.RUnlock()

	if err := l.checkSnapshotIDWithoutLocking(snapshotID); err != nil {
		return 0, err
	}

	return l.readAmount(snapshotSupplyKey(snapshotID))
}
