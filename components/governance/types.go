package governance

import (
	"github.com/iotaledger/inx-governance/pkg/epoch"
	"github.com/iotaledger/inx-governance/pkg/ledger"
)

// InfoResponse defines the response of a GET RouteInfo REST API call.
type InfoResponse struct {
	// The hex encoded address of the current governor.
	GovernorAddress string `json:"governorAddress"`
	// The fee charged per governed call.
	Tax uint64 `json:"tax"`
	// The inclusive lower bound of the valid tax range.
	TaxLowerBound uint64 `json:"taxLowerBound"`
	// The inclusive upper bound of the valid tax range.
	TaxUpperBound uint64 `json:"taxUpperBound"`
	// The reward scaling constant in percent.
	Inflator uint64 `json:"inflator"`
	// The fixed value token inflation per epoch.
	ValueFixedInflation uint64 `json:"valueFixedInflation"`
	// The epoch the core is currently in.
	CurrentEpoch epoch.Index `json:"currentEpoch"`
}

// ConfigResponse defines the response of a GET RouteConfig REST API call.
type ConfigResponse struct {
	// The hex encoded key of the config value.
	Key string `json:"key"`
	// The hex encoded config value.
	Value string `json:"value"`
}

// ConfigBatchResponse defines the response of a GET RouteConfigs REST API call.
type ConfigBatchResponse struct {
	// The config values in the order the keys were given.
	Values []*ConfigResponse `json:"values"`
}

// ListContainsResponse defines the response of a GET RouteListContains REST API call.
type ListContainsResponse struct {
	// The name of the list.
	List string `json:"list"`
	// The hex encoded address that was checked.
	Address string `json:"address"`
	// Whether the address is a member of the list.
	Contains bool `json:"contains"`
}

// ResetStatusResponse defines the response of a GET RouteResetStatus REST API call.
type ResetStatusResponse struct {
	// Whether the reset of the vote ledger was initialized.
	Initialized bool `json:"initialized"`
	// The snapshot id the reset is anchored to, 0 if not initialized.
	ResetSnapshotID ledger.SnapshotID `json:"resetSnapshotId"`
	// The current circulating supply of the vote ledger.
	TotalSupply uint64 `json:"totalSupply"`
}
