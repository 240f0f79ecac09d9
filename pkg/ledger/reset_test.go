//nolint:gosec // we don't care about these linters in test cases
package ledger_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/hive.go/kvstore/mapdb"
	"github.com/iotaledger/hive.go/core/marshalutil"

	"github.com/iotaledger/inx-governance/pkg/ledger"
)

func newVoteLedger(t *testing.T) (*ledger.VoteLedger, *ledger.Ledger) {
	t.Helper()

	value := ledger.NewLedger(mapdb.NewMapDB())
	vote := ledger.NewVoteLedger(mapdb.NewMapDB(), value)

	return vote, value
}

func TestVoteLedger_ResetRequiresKnownSnapshot(t *testing.T) {
	vote, _ := newVoteLedger(t)

	err := vote.Reset(1)
	require.ErrorIs(t, err, ledger.ErrUnknownSnapshot)
}

func TestVoteLedger_ResetOnlyOnce(t *testing.T) {
	vote, value := newVoteLedger(t)

	snapshotID, err := value.Snapshot()
	require.NoError(t, err)

	require.NoError(t, vote.Reset(snapshotID))

	err = vote.Reset(snapshotID)
	require.ErrorIs(t, err, ledger.ErrResetAlreadyInitialized)

	resetSnapshotID, err := vote.ResetSnapshotID()
	require.NoError(t, err)
	require.Equal(t, snapshotID, resetSnapshotID)
}

func TestVoteLedger_ResetVoidsCirculatingSupply(t *testing.T) {
	vote, value := newVoteLedger(t)

	holder1 := RandAddress()
	holder2 := RandAddress()
	require.NoError(t, value.Mint(holder1, 100))
	require.NoError(t, vote.Mint(holder1, 42))
	require.NoError(t, vote.Mint(holder2, 7))

	snapshotID, err := value.Snapshot()
	require.NoError(t, err)

	require.NoError(t, vote.Reset(snapshotID))

	// every balance is voided and the reset marker is set in the same commit
	for _, holder := range []ledger.Address{holder1, holder2} {
		balance, err := vote.BalanceOf(holder)
		require.NoError(t, err)
		require.EqualValues(t, 0, balance)
	}

	supply, err := vote.TotalSupply()
	require.NoError(t, err)
	require.EqualValues(t, 0, supply)

	resetSnapshotID, err := vote.ResetSnapshotID()
	require.NoError(t, err)
	require.Equal(t, snapshotID, resetSnapshotID)
}

func TestVoteLedger_ClaimGuards(t *testing.T) {
	vote, value := newVoteLedger(t)

	holder := RandAddress()
	empty := RandAddress()

	// claiming before the reset was initialized
	_, err := vote.ClaimPreviousSupply(holder)
	require.ErrorIs(t, err, ledger.ErrResetNotInitialized)

	_, err = vote.ResetBalanceOf(holder)
	require.ErrorIs(t, err, ledger.ErrResetNotInitialized)

	require.NoError(t, value.Mint(holder, 100))

	snapshotID, err := value.Snapshot()
	require.NoError(t, err)
	require.NoError(t, vote.Reset(snapshotID))

	// an address without a snapshotted balance has nothing to claim
	_, err = vote.ClaimPreviousSupply(empty)
	require.ErrorIs(t, err, ledger.ErrNoResetTokensToClaim)

	claimed, err := vote.ClaimPreviousSupply(holder)
	require.NoError(t, err)
	require.EqualValues(t, 100, claimed)

	hasClaimed, err := vote.HasClaimed(holder)
	require.NoError(t, err)
	require.True(t, hasClaimed)

	// the second claim of the same address must fail
	_, err = vote.ClaimPreviousSupply(holder)
	require.ErrorIs(t, err, ledger.ErrResetTokensAlreadyClaimed)
}

func TestVoteLedger_FailedClaimLeavesNoTrace(t *testing.T) {
	vote, value := newVoteLedger(t)

	holder := RandAddress()
	other := RandAddress()
	require.NoError(t, value.Mint(holder, 100))

	snapshotID, err := value.Snapshot()
	require.NoError(t, err)
	require.NoError(t, vote.Reset(snapshotID))

	// leave less than the claimable amount of headroom in the supply
	require.NoError(t, vote.Mint(other, math.MaxUint64-50))

	_, err = vote.ClaimPreviousSupply(holder)
	require.ErrorIs(t, err, ledger.ErrSupplyOverflow)

	// the failed claim must not be recorded or mint anything
	hasClaimed, err := vote.HasClaimed(holder)
	require.NoError(t, err)
	require.False(t, hasClaimed)

	balance, err := vote.BalanceOf(holder)
	require.NoError(t, err)
	require.EqualValues(t, 0, balance)

	// with enough headroom the retry goes through
	require.NoError(t, vote.Burn(other, 1_000))

	claimed, err := vote.ClaimPreviousSupply(holder)
	require.NoError(t, err)
	require.EqualValues(t, 100, claimed)
}

func TestVoteLedger_ResetBalanceOf(t *testing.T) {
	vote, value := newVoteLedger(t)

	holder := RandAddress()
	require.NoError(t, value.Mint(holder, 77))

	snapshotID, err := value.Snapshot()
	require.NoError(t, err)
	require.NoError(t, vote.Reset(snapshotID))

	// the claimable balance does not change with the live value ledger
	require.NoError(t, value.Mint(holder, 1000))

	resetBalance, err := vote.ResetBalanceOf(holder)
	require.NoError(t, err)
	require.EqualValues(t, 77, resetBalance)
}

// Three value holders with 50/60/30 go through a reset, two of them claim.
func TestVoteLedger_ResetAndClaimCycle(t *testing.T) {
	vote, value := newVoteLedger(t)

	holder1 := RandAddress()
	holder2 := RandAddress()
	holder3 := RandAddress()

	require.NoError(t, value.Mint(holder1, 50))
	require.NoError(t, value.Mint(holder2, 60))
	require.NoError(t, value.Mint(holder3, 30))

	snapshotID, err := value.Snapshot()
	require.NoError(t, err)
	require.NoError(t, vote.Reset(snapshotID))

	supply, err := vote.TotalSupply()
	require.NoError(t, err)
	require.EqualValues(t, 0, supply)

	claimed, err := vote.ClaimPreviousSupply(holder1)
	require.NoError(t, err)
	require.EqualValues(t, 50, claimed)

	claimed, err = vote.ClaimPreviousSupply(holder2)
	require.NoError(t, err)
	require.EqualValues(t, 60, claimed)

	// the unclaimed tokens of holder3 stay unminted
	supply, err = vote.TotalSupply()
	require.NoError(t, err)
	require.EqualValues(t, 110, supply)

	// claimed tokens behave like ordinary balances
	require.NoError(t, vote.Transfer(holder2, holder1, 50))

	balance, err := vote.BalanceOf(holder1)
	require.NoError(t, err)
	require.EqualValues(t, 100, balance)

	balance, err = vote.BalanceOf(holder2)
	require.NoError(t, err)
	require.EqualValues(t, 10, balance)

	err = vote.Transfer(holder2, holder3, 20)
	require.ErrorIs(t, err, ledger.ErrInsufficientBalance)
}

func TestClaim_Serialization(t *testing.T) {
	claim := &ledger.Claim{
		SnapshotID: ledger.SnapshotID(rand.Int31()),
		Address:    RandAddress(),
		Amount:     uint64(rand.Int63()),
	}

	ms := marshalutil.New(claim.ValueBytes())
	amount, err := ms.ReadUint64()
	require.NoError(t, err)
	require.Exactly(t, claim.Amount, amount)
	require.Equal(t, 8, ms.ReadOffset())
}

func TestClaim_Deserialization(t *testing.T) {
	snapshotID := ledger.SnapshotID(rand.Int31())
	address := RandAddress()
	amount := uint64(rand.Int63())

	ms := marshalutil.New(37)
	ms.WriteByte(ledger.LedgerStoreKeyPrefixResetClaims)
	ms.WriteUint32(uint32(snapshotID))
	ms.WriteBytes(address[:])

	key := ms.Bytes()
	require.Equal(t, 37, len(key))

	ms = marshalutil.New(8)
	ms.WriteUint64(amount)

	value := ms.Bytes()
	require.Equal(t, 8, len(value))

	claim, err := ledger.ClaimFromBytes(key, value)
	require.NoError(t, err)

	require.Equal(t, snapshotID, claim.SnapshotID)
	require.Equal(t, address, claim.Address)
	require.Exactly(t, amount, claim.Amount)

	_, err = ledger.ClaimFromBytes(key[:10], value)
	require.ErrorIs(t, err, ledger.ErrInvalidClaim)
}
