//nolint:gosec // we don't care about these linters in test cases
package governance_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/inx-governance/pkg/governance"
)

func TestConfigKey(t *testing.T) {
	key, err := governance.ConfigKey("quorum")
	require.NoError(t, err)

	// the name is embedded directly, padded with zeros
	expected := governance.Key{}
	copy(expected[:], "quorum")
	require.Equal(t, expected, key)

	_, err = governance.ConfigKey(strings.Repeat("x", governance.KeyLength+1))
	require.Error(t, err)
}

func TestListKey(t *testing.T) {
	address1 := RandAddress()
	address2 := RandAddress()

	require.Equal(t, governance.ListKey("collateral", address1), governance.ListKey("collateral", address1))
	require.NotEqual(t, governance.ListKey("collateral", address1), governance.ListKey("collateral", address2))
	require.NotEqual(t, governance.ListKey("collateral", address1), governance.ListKey("minters", address1))

	// a derived list key never collides with the plain name as a config key
	configKey, err := governance.ConfigKey("collateral")
	require.NoError(t, err)
	require.NotEqual(t, configKey, governance.ListKey("collateral", address1))
}

func TestKeyHexRoundtrip(t *testing.T) {
	key := governance.Key(RandAddress())

	parsed, err := governance.KeyFromHex(key.ToHex())
	require.NoError(t, err)
	require.Equal(t, key, parsed)

	_, err = governance.KeyFromHex("0xdeadbeef")
	require.Error(t, err)
}

func TestIsGovernedMethod(t *testing.T) {
	require.True(t, governance.IsGovernedMethod(governance.MethodAddToList))
	require.True(t, governance.IsGovernedMethod(governance.MethodReset))
	require.True(t, governance.IsGovernedMethod(governance.MethodEmergency))

	// charging the fee is open to everyone who pays
	require.False(t, governance.IsGovernedMethod(governance.MethodChargeFee))
	require.False(t, governance.IsGovernedMethod(governance.Method("unknown")))
}
