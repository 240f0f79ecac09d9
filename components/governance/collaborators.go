package governance

import (
	"github.com/iotaledger/inx-governance/pkg/epoch"
	"github.com/iotaledger/inx-governance/pkg/governance"
	"github.com/iotaledger/inx-governance/pkg/ledger"
)

// operatorGovernor is the governor collaborator of a hosted deployment. The
// proposal engine deciding on changes runs out of process and acts through the
// admin API under the configured governor identity.
type operatorGovernor struct {
	address ledger.Address
	vote    *ledger.VoteLedger
}

func (g *operatorGovernor) Address() ledger.Address {
	return g.address
}

func (g *operatorGovernor) Initialize(_ *governance.Manager) error {
	return nil
}

func (g *operatorGovernor) Vote() *ledger.VoteLedger {
	return g.vote
}

// loggingVault records fee deposits per epoch in the component log. The
// communal property accounting itself lives in the out of process vault, the
// tokens already sit on the vault address of the cash ledger.
type loggingVault struct {
	address ledger.Address
}

func (v *loggingVault) Address() ledger.Address {
	return v.address
}

func (v *loggingVault) Deposit(index epoch.Index, amount uint64) error {
	Component.LogInfof("Vault received %d at epoch %d", amount, index)

	return nil
}
