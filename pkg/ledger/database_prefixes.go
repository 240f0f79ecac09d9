package ledger

const (
	// Holds the ledger status (total supply, snapshot counter, reset snapshot).
	LedgerStoreKeyPrefixStatus byte = 0

	// Holds the current balance per address.
	LedgerStoreKeyPrefixBalances byte = 1

	// Holds the allowances per owner and spender.
	LedgerStoreKeyPrefixAllowances byte = 2

	// Snapshots.
	LedgerStoreKeyPrefixSnapshotSupply   byte = 3
	LedgerStoreKeyPrefixSnapshotBalances byte = 4

	// Tracks the claims made against a reset snapshot.
	LedgerStoreKeyPrefixResetClaims byte = 5
)

const (
	statusKeyTotalSupply     byte = 0
	statusKeySnapshotCounter byte = 1
	statusKeyResetSnapshot   byte = 2
)
