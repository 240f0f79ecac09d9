package ledger

import (
	"github.com/iotaledger/hive.go/kvstore"
	"github.com/iotaledger/hive.go/core/marshalutil"
)

// VoteLedger is a Ledger whose circulating supply can be invalidated once and
// reissued against a snapshot of the value ledger. After the reset every prior
// value holder can claim a vote balance equal to its snapshotted value balance,
// exactly once.
type VoteLedger struct {
	*Ledger

	// the ledger whose snapshot anchors the claims
	value *Ledger
}

// NewVoteLedger creates a new VoteLedger on the given store, claims are
// resolved against snapshots of the given value ledger.
func NewVoteLedger(store kvstore.KVStore, value *Ledger) *VoteLedger {
	return &VoteLedger{
		Ledger: NewLedger(store),
		value:  value,
	}
}

func claimKey(snapshotID SnapshotID, address Address) []byte {
	m := marshalutil.New(37)
	m.WriteByte(LedgerStoreKeyPrefixResetClaims)
	m.WriteUint32(uint32(snapshotID))
	m.WriteBytes(address[:])

	return m.Bytes()
}

// Claim holds the information tracked for a single reset claim.
type Claim struct {
	// SnapshotID is the id of the reset snapshot the claim was made against.
	SnapshotID SnapshotID
	// Address is the address that claimed.
	Address Address
	// Amount is the amount of tokens that were reissued by the claim.
	Amount uint64
}

// ClaimFromBytes parses a Claim from its key and value representation.
func ClaimFromBytes(key []byte, value []byte) (*Claim, error) {
	if len(key) != 37 {
		return nil, ErrInvalidClaim
	}

	if len(value) != 8 {
		return nil, ErrInvalidClaim
	}

	mKey := marshalutil.New(key)

	// Skip prefix
	if _, err := mKey.ReadByte(); err != nil {
		return nil, err
	}

	snapshotID, err := mKey.ReadUint32()
	if err != nil {
		return nil, err
	}

	addressBytes, err := mKey.ReadBytes(AddressLength)
	if err != nil {
		return nil, err
	}
	var address Address
	copy(address[:], addressBytes)

	amount, err := marshalutil.New(value).ReadUint64()
	if err != nil {
		return nil, err
	}

	return &Claim{
		SnapshotID: SnapshotID(snapshotID),
		Address:    address,
		Amount:     amount,
	}, nil
}

// ValueBytes returns the value part of the serialized Claim.
func (c *Claim) ValueBytes() []byte {
	m := marshalutil.New(8)
	m.WriteUint64(c.Amount) // 8 bytes

	return m.Bytes()
}

func (v *VoteLedger) readResetSnapshotID() (SnapshotID, error) {
	value, err := v.store.Get(statusKey(statusKeyResetSnapshot))
	if err != nil {
		if errorIsKeyNotFound(err) {
			return 0, nil
		}

		return 0, err
	}

	snapshotID, err := marshalutil.New(value).ReadUint32()
	if err != nil {
		return 0, err
	}

	return SnapshotID(snapshotID), nil
}

// ResetSnapshotID returns the snapshot id the reset of this ledger is anchored
// to, 0 if the reset was not initialized yet.
func (v *VoteLedger) ResetSnapshotID() (SnapshotID, error) {
	v.RLock()
	defer v.RUnlock()

	return v.readResetSnapshotID()
}

// Reset invalidates the current circulating supply of the ledger and opens the
// claim window against the given snapshot of the value ledger. It can only be
// called once for the lifetime of the ledger.
func (v *VoteLedger) Reset(snapshotID SnapshotID) error {
	v.Lock()
	defer v.Unlock()

	current, err := v.readResetSnapshotID()
	if err != nil {
		return err
	}
	if current != 0 {
		return ErrResetAlreadyInitialized
	}

	// the snapshot must have been taken on the value ledger before
	if _, err := v.value.TotalSupplyAt(snapshotID); err != nil {
		return err
	}

	mutations, err := v.store.Batched()
	if err != nil {
		return err
	}

	// void the circulating supply in the same commit that marks the reset,
	// claims reissue it
	var innerErr error
	if err := v.store.IterateKeys([]byte{LedgerStoreKeyPrefixBalances}, func(key kvstore.Key) bool {
		deleteKey := make([]byte, len(key))
		copy(deleteKey, key)

		if err := mutations.Delete(deleteKey); err != nil {
			innerErr = err

			return false
		}

		return true
	}); err != nil {
		mutations.Cancel()

		return err
	}
	if innerErr != nil {
		mutations.Cancel()

		return innerErr
	}

	if err := mutations.Delete(statusKey(statusKeyTotalSupply)); err != nil {
		mutations.Cancel()

		return err
	}

	snapshotIDBytes := marshalutil.New(4)
	snapshotIDBytes.WriteUint32(uint32(snapshotID))
	if err := mutations.Set(statusKey(statusKeyResetSnapshot), snapshotIDBytes.Bytes()); err != nil {
		mutations.Cancel()

		return err
	}

	return mutations.Commit()
}

// ResetBalanceOf returns the balance the given address can claim, i.e. its
// value ledger balance at the reset snapshot.
func (v *VoteLedger) ResetBalanceOf(address Address) (uint64, error) {
	v.RLock()
	defer v.RUnlock()

	snapshotID, err := v.readResetSnapshotID()
	if err != nil {
		return 0, err
	}
	if snapshotID == 0 {
		return 0, ErrResetNotInitialized
	}

	return v.value.BalanceOfAt(address, snapshotID)
}

// ClaimPreviousSupply reissues the snapshotted pre-reset balance of the given
// address into its current balance. Each address can claim at most once per
// reset snapshot.
func (v *VoteLedger) ClaimPreviousSupply(address Address) (uint64, error) {
	v.Lock()
	defer v.Unlock()

	snapshotID, err := v.readResetSnapshotID()
	if err != nil {
		return 0, err
	}
	if snapshotID == 0 {
		return 0, ErrResetNotInitialized
	}

	amount, err := v.value.BalanceOfAt(address, snapshotID)
	if err != nil {
		return 0, err
	}
	if amount == 0 {
		return 0, ErrNoResetTokensToClaim
	}

	if _, err := v.store.Get(claimKey(snapshotID, address)); err == nil {
		return 0, ErrResetTokensAlreadyClaimed
	} else if !errorIsKeyNotFound(err) {
		return 0, err
	}

	balance, err := v.readAmount(balanceKey(address))
	if err != nil {
		return 0, err
	}

	supply, err := v.readAmount(statusKey(statusKeyTotalSupply))
	if err != nil {
		return 0, err
	}

	if supply+amount < supply {
		return 0, ErrSupplyOverflow
	}

	claim := &Claim{
		SnapshotID: snapshotID,
		Address:    address,
		Amount:     amount,
	}

	// the claim record and the reissued balance commit together
	mutations, err := v.store.Batched()
	if err != nil {
		return 0, err
	}

	if err := mutations.Set(claimKey(snapshotID, address), claim.ValueBytes()); err != nil {
		mutations.Cancel()

		return 0, err
	}

	if err := setAmount(balanceKey(address), balance+amount, mutations); err != nil {
		mutations.Cancel()

		return 0, err
	}

	if err := setAmount(statusKey(statusKeyTotalSupply), supply+amount, mutations); err != nil {
		mutations.Cancel()

		return 0, err
	}

	if err := mutations.Commit(); err != nil {
		return 0, err
	}

	return amount, nil
}

// HasClaimed tells whether the given address already claimed against the
// current reset snapshot.
func (v *VoteLedger) HasClaimed(address Address) (bool, error) {
	v.RLock()
	defer v.RUnlock()

	snapshotID, err := v.readResetSnapshotID()
	if err != nil {
		return false, err
	}
	if snapshotID == 0 {
		return false, ErrResetNotInitialized
	}

	if _, err := v.store.Get(claimKey(snapshotID, address)); err != nil {
		if errorIsKeyNotFound(err) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}
