package epoch_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/inx-governance/pkg/epoch"
)

var genesisTime = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

func TestClock_EpochAt(t *testing.T) {
	c := epoch.NewClock(genesisTime, time.Hour)

	// before genesis there are no epochs yet
	require.EqualValues(t, 0, c.EpochAt(genesisTime.Add(-time.Second)))

	// the first epoch starts at genesis
	require.EqualValues(t, 1, c.EpochAt(genesisTime))
	require.EqualValues(t, 1, c.EpochAt(genesisTime.Add(59*time.Minute)))

	// the epoch boundary belongs to the next epoch
	require.EqualValues(t, 2, c.EpochAt(genesisTime.Add(time.Hour)))
	require.EqualValues(t, 25, c.EpochAt(genesisTime.Add(24*time.Hour)))
}

func TestClock_CurrentEpoch(t *testing.T) {
	now := genesisTime.Add(90 * time.Minute)
	c := epoch.NewClock(genesisTime, time.Hour, epoch.WithNowFunc(func() time.Time { return now }))

	require.EqualValues(t, 2, c.CurrentEpoch())

	now = now.Add(time.Hour)
	require.EqualValues(t, 3, c.CurrentEpoch())
}

func TestClock_EpochBounds(t *testing.T) {
	c := epoch.NewClock(genesisTime, time.Hour)

	require.Equal(t, genesisTime, c.EpochStart(1))
	require.Equal(t, genesisTime.Add(time.Hour), c.EpochEnd(1))
	require.Equal(t, genesisTime.Add(4*time.Hour), c.EpochStart(5))

	// an epoch ends exactly where its successor starts
	for index := epoch.Index(1); index < 10; index++ {
		require.Equal(t, c.EpochEnd(index), c.EpochStart(index+1))
		require.Equal(t, index+1, c.EpochAt(c.EpochEnd(index)))
	}
}
