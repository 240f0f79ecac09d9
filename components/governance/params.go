package governance

import (
	"time"

	"github.com/iotaledger/hive.go/app"
)

type ParametersGovernance struct {
	Database struct {
		// Engine defines the used database engine (pebble/rocksdb/mapdb).
		Engine string `default:"rocksdb" usage:"the used database engine (pebble/rocksdb/mapdb)"`
		// Path defines the path to the database folder.
		Path string `default:"database" usage:"the path to the database folder"`
	}

	Epochs struct {
		// GenesisTime defines the unix timestamp epoch one starts at.
		GenesisTime int64 `default:"0" usage:"the unix timestamp in seconds epoch one starts at"`
		// Duration defines the length of an epoch.
		Duration time.Duration `default:"168h" usage:"the length of an epoch"`
	}

	// CoreAddress defines the hex encoded identity of the governance core towards the cash token.
	CoreAddress string `default:"" usage:"the hex encoded identity of the governance core towards the cash token"`
	// GovernorAddress defines the hex encoded address of the initial governor.
	GovernorAddress string `default:"" usage:"the hex encoded address of the initial governor"`
	// VaultAddress defines the hex encoded address the proposal fees are forwarded to.
	VaultAddress string `default:"" usage:"the hex encoded address the proposal fees are forwarded to"`

	Tax struct {
		// Amount defines the fee charged per governed call, denominated in the cash token.
		Amount uint64 `default:"5" usage:"the fee charged per governed call, denominated in the cash token"`
		// LowerBound defines the inclusive lower bound of the valid tax range.
		LowerBound uint64 `default:"1" usage:"the inclusive lower bound of the valid tax range"`
		// UpperBound defines the inclusive upper bound of the valid tax range.
		UpperBound uint64 `default:"10" usage:"the inclusive upper bound of the valid tax range"`
	}

	Inflation struct {
		// Inflator defines the reward scaling constant in percent.
		Inflator uint64 `default:"10" usage:"the reward scaling constant in percent"`
		// ValueFixedInflation defines the fixed value token inflation per epoch.
		ValueFixedInflation uint64 `default:"100" usage:"the fixed value token inflation per epoch"`
	}
}

type ParametersRestAPI struct {
	// BindAddress defines the bind address on which the governance HTTP server listens.
	BindAddress string `default:"localhost:9992" usage:"the bind address on which the governance HTTP server listens"`

	// AdvertiseAddress defines the address of the governance HTTP server which is advertised to the INX Server (optional).
	AdvertiseAddress string `default:"" usage:"the address of the governance HTTP server which is advertised to the INX Server (optional)"`

	// DebugRequestLoggerEnabled defines whether the debug logging for requests should be enabled.
	DebugRequestLoggerEnabled bool `default:"false" usage:"whether the debug logging for requests should be enabled"`
}

var (
	ParamsGovernance = &ParametersGovernance{}
	ParamsRestAPI    = &ParametersRestAPI{}
)

var params = &app.ComponentParams{
	Params: map[string]any{
		"governance": ParamsGovernance,
		"restAPI":    ParamsRestAPI,
	},
	Masked: nil,
}
