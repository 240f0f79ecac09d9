package governance

import (
	"github.com/iotaledger/inx-governance/pkg/epoch"
	"github.com/iotaledger/inx-governance/pkg/ledger"
)

// EpochProvider returns the current epoch, it is consumed as a pure function.
type EpochProvider func() epoch.Index

// Governor is the proposal executor that is currently authorized to invoke the
// governed entry points of the Manager. Collaborators must not cache the
// governor indefinitely, the Manager swaps it on every reset.
type Governor interface {
	// Address is the identity the governed entry points authorize against.
	Address() ledger.Address
	// Initialize hands the governance core to a freshly installed governor.
	Initialize(manager *Manager) error
	// Vote returns the vote ledger handle of the governor.
	Vote() *ledger.VoteLedger
}

// Vault receives the proposal fees, tagged with the epoch they were charged in.
type Vault interface {
	// Address is the destination the fees are transferred to.
	Address() ledger.Address
	// Deposit records a fee deposit for the given epoch.
	Deposit(index epoch.Index, amount uint64) error
}

// CashToken is the fee denominated asset, standard transfer-from semantics.
type CashToken interface {
	TransferFrom(spender ledger.Address, from ledger.Address, to ledger.Address, amount uint64) error
}
