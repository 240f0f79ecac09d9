package governance

const (
	// DBVersionGovernance defines the version of the governance database.
	DBVersionGovernance byte = 1

	// Holds the governance status (tax and tax range).
	GovernanceStoreKeyPrefixStatus byte = 0

	// Holds the configuration registry (plain config keys and list membership keys).
	GovernanceStoreKeyPrefixRegistry byte = 1
)

const (
	statusKeyTax           byte = 0
	statusKeyTaxLowerBound byte = 1
	statusKeyTaxUpperBound byte = 2
)
