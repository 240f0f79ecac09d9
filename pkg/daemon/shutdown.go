package daemon

// Please add the dependencies if you add your own priority here.
// Otherwise investigating deadlocks at shutdown is much more complicated.

const (
	PriorityCloseGovernanceDatabase = iota // no dependencies
	PriorityStopGovernance
	PriorityStopGovernanceAPI
	PriorityDisconnectINX
)
