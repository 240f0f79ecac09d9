//nolint:gosec // we don't care about these linters in test cases
package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/hive.go/kvstore/mapdb"

	"github.com/iotaledger/inx-governance/pkg/ledger"
)

func TestLedger_SnapshotIDsAreSequential(t *testing.T) {
	l := ledger.NewLedger(mapdb.NewMapDB())

	latest, err := l.LatestSnapshotID()
	require.NoError(t, err)
	require.EqualValues(t, 0, latest)

	first, err := l.Snapshot()
	require.NoError(t, err)
	require.EqualValues(t, 1, first)

	second, err := l.Snapshot()
	require.NoError(t, err)
	require.EqualValues(t, 2, second)

	latest, err = l.LatestSnapshotID()
	require.NoError(t, err)
	require.Equal(t, second, latest)
}

func TestLedger_SnapshotIsImmutable(t *testing.T) {
	l := ledger.NewLedger(mapdb.NewMapDB())

	holder1 := RandAddress()
	holder2 := RandAddress()

	require.NoError(t, l.Mint(holder1, 100))
	require.NoError(t, l.Mint(holder2, 50))

	snapshotID, err := l.Snapshot()
	require.NoError(t, err)

	// mutate the current balances after the snapshot
	require.NoError(t, l.Transfer(holder1, holder2, 60))
	require.NoError(t, l.Burn(holder2, 10))

	// the archived balances are unaffected
	balanceAt, err := l.BalanceOfAt(holder1, snapshotID)
	require.NoError(t, err)
	require.EqualValues(t, 100, balanceAt)

	balanceAt, err = l.BalanceOfAt(holder2, snapshotID)
	require.NoError(t, err)
	require.EqualValues(t, 50, balanceAt)

	supplyAt, err := l.TotalSupplyAt(snapshotID)
	require.NoError(t, err)
	require.EqualValues(t, 150, supplyAt)

	// the current balances reflect the mutations
	balance, err := l.BalanceOf(holder2)
	require.NoError(t, err)
	require.EqualValues(t, 100, balance)

	supply, err := l.TotalSupply()
	require.NoError(t, err)
	require.EqualValues(t, 140, supply)
}

func TestLedger_SnapshotHoldsPerSnapshotHistory(t *testing.T) {
	l := ledger.NewLedger(mapdb.NewMapDB())

	holder := RandAddress()

	require.NoError(t, l.Mint(holder, 10))
	first, err := l.Snapshot()
	require.NoError(t, err)

	require.NoError(t, l.Mint(holder, 15))
	second, err := l.Snapshot()
	require.NoError(t, err)

	balanceAt, err := l.BalanceOfAt(holder, first)
	require.NoError(t, err)
	require.EqualValues(t, 10, balanceAt)

	balanceAt, err = l.BalanceOfAt(holder, second)
	require.NoError(t, err)
	require.EqualValues(t, 25, balanceAt)
}

func TestLedger_UnknownSnapshot(t *testing.T) {
	l := ledger.NewLedger(mapdb.NewMapDB())

	holder := RandAddress()

	_, err := l.BalanceOfAt(holder, 0)
	require.ErrorIs(t, err, ledger.ErrUnknownSnapshot)

	_, err = l.TotalSupplyAt(1)
	require.ErrorIs(t, err, ledger.ErrUnknownSnapshot)

	snapshotID, err := l.Snapshot()
	require.NoError(t, err)

	_, err = l.BalanceOfAt(holder, snapshotID)
	require.NoError(t, err)

	_, err = l.BalanceOfAt(holder, snapshotID+1)
	require.ErrorIs(t, err, ledger.ErrUnknownSnapshot)
}

func TestLedger_SnapshotOfEmptyLedger(t *testing.T) {
	l := ledger.NewLedger(mapdb.NewMapDB())

	snapshotID, err := l.Snapshot()
	require.NoError(t, err)

	supplyAt, err := l.TotalSupplyAt(snapshotID)
	require.NoError(t, err)
	require.EqualValues(t, 0, supplyAt)

	balanceAt, err := l.BalanceOfAt(RandAddress(), snapshotID)
	require.NoError(t, err)
	require.EqualValues(t, 0, balanceAt)
}
