package governance

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/dig"

	"github.com/iotaledger/hive.go/app"
	"github.com/iotaledger/hive.go/app/shutdown"
	"github.com/iotaledger/hive.go/core/events"
	hivedb "github.com/iotaledger/hive.go/kvstore/database"
	hornetdb "github.com/iotaledger/hornet/v2/pkg/database"
	"github.com/iotaledger/inx-app/pkg/httpserver"
	"github.com/iotaledger/inx-app/pkg/nodebridge"

	"github.com/iotaledger/inx-governance/pkg/daemon"
	"github.com/iotaledger/inx-governance/pkg/epoch"
	"github.com/iotaledger/inx-governance/pkg/governance"
	"github.com/iotaledger/inx-governance/pkg/ledger"
)

var (
	AllowedEnginesStorage = []hivedb.Engine{
		hivedb.EnginePebble,
		hivedb.EngineRocksDB,
	}

	AllowedEnginesStorageAuto = append(AllowedEnginesStorage, hivedb.EngineAuto)
)

// store realms of the single governance database.
var (
	storeRealmGovernance = []byte{0}
	storeRealmValue      = []byte{1}
	storeRealmVote       = []byte{2}
	storeRealmCash       = []byte{3}
)

func init() {
	Component = &app.Component{
		Name:      "Governance",
		Params:    params,
		DepsFunc:  func(cDeps dependencies) { deps = cDeps },
		Provide:   provide,
		Configure: configure,
		Run:       run,
	}
}

var (
	Component *app.Component
	deps      dependencies
)

type dependencies struct {
	dig.In
	GovernanceManager *governance.Manager
	EpochClock        *epoch.Clock
	NodeBridge        *nodebridge.NodeBridge
	ShutdownHandler   *shutdown.ShutdownHandler
}

func provide(c *dig.Container) error {

	if err := c.Provide(func() *epoch.Clock {
		return epoch.NewClock(time.Unix(ParamsGovernance.Epochs.GenesisTime, 0), ParamsGovernance.Epochs.Duration)
	}); err != nil {
		return err
	}

	type governanceDeps struct {
		dig.In
		EpochClock *epoch.Clock
	}

	return c.Provide(func(deps governanceDeps) *governance.Manager {

		dbEngine, err := hivedb.EngineFromStringAllowed(ParamsGovernance.Database.Engine, AllowedEnginesStorageAuto)
		if err != nil {
			Component.LogErrorAndExit(err)
		}

		governanceStore, err := hornetdb.StoreWithDefaultSettings(ParamsGovernance.Database.Path, true, dbEngine)
		if err != nil {
			Component.LogErrorAndExit(err)
		}

		coreAddress, err := ledger.AddressFromHex(ParamsGovernance.CoreAddress)
		if err != nil {
			Component.LogErrorfAndExit("invalid core address: %s", err)
		}
		governorAddress, err := ledger.AddressFromHex(ParamsGovernance.GovernorAddress)
		if err != nil {
			Component.LogErrorfAndExit("invalid governor address: %s", err)
		}
		vaultAddress, err := ledger.AddressFromHex(ParamsGovernance.VaultAddress)
		if err != nil {
			Component.LogErrorfAndExit("invalid vault address: %s", err)
		}

		valueLedger := ledger.NewLedger(governanceStore.WithRealm(storeRealmValue))
		voteLedger := ledger.NewVoteLedger(governanceStore.WithRealm(storeRealmVote), valueLedger)
		cashLedger := ledger.NewLedger(governanceStore.WithRealm(storeRealmCash))

		gm, err := governance.NewManager(
			governanceStore.WithRealm(storeRealmGovernance),
			coreAddress,
			valueLedger,
			cashLedger,
			&loggingVault{address: vaultAddress},
			&operatorGovernor{address: governorAddress, vote: voteLedger},
			deps.EpochClock.CurrentEpoch,
			governance.WithTax(ParamsGovernance.Tax.Amount),
			governance.WithTaxRange(ParamsGovernance.Tax.LowerBound, ParamsGovernance.Tax.UpperBound),
			governance.WithInflator(ParamsGovernance.Inflation.Inflator),
			governance.WithFixedInflation(ParamsGovernance.Inflation.ValueFixedInflation),
		)
		if err != nil {
			Component.LogErrorAndExit(err)
		}
		Component.LogInfof("Initialized GovernanceManager at epoch %d", gm.CurrentEpoch())

		return gm
	})
}

func configure() error {
	if err := Component.App().Daemon().BackgroundWorker("Close Governance database", func(ctx context.Context) {
		<-ctx.Done()

		Component.LogInfo("Syncing Governance database to disk ...")
		if err := deps.GovernanceManager.CloseDatabase(); err != nil {
			Component.LogErrorfAndExit("Syncing Governance database to disk ... failed: %s", err)
		}
		Component.LogInfo("Syncing Governance database to disk ... done")
	}, daemon.PriorityCloseGovernanceDatabase); err != nil {
		Component.LogPanicf("failed to start worker: %s", err)
	}

	// mirror the governance notifications into the component log
	deps.GovernanceManager.Events.AddressAddedToList.Attach(events.NewClosure(func(ev *governance.ListEvent) {
		Component.LogInfof("Added %s to list %q", ev.Address.ToHex(), ev.List)
	}))
	deps.GovernanceManager.Events.AddressRemovedFromList.Attach(events.NewClosure(func(ev *governance.ListEvent) {
		Component.LogInfof("Removed %s from list %q", ev.Address.ToHex(), ev.List)
	}))
	deps.GovernanceManager.Events.ConfigUpdated.Attach(events.NewClosure(func(ev *governance.ConfigEvent) {
		Component.LogInfof("Updated config %s", ev.Key.ToHex())
	}))
	deps.GovernanceManager.Events.TaxChanged.Attach(events.NewClosure(func(ev *governance.TaxEvent) {
		Component.LogInfof("Changed tax to %d", ev.Tax)
	}))
	deps.GovernanceManager.Events.TaxRangeChanged.Attach(events.NewClosure(func(ev *governance.TaxRangeEvent) {
		Component.LogInfof("Changed tax range to [%d, %d]", ev.LowerBound, ev.UpperBound)
	}))
	deps.GovernanceManager.Events.ProposalFeeCharged.Attach(events.NewClosure(func(ev *governance.FeeEvent) {
		Component.LogInfof("Charged %d from %s for %s at epoch %d", ev.Amount, ev.Payer.ToHex(), ev.Method, ev.Epoch)
	}))
	deps.GovernanceManager.Events.EmergencyExecuted.Attach(events.NewClosure(func(ev *governance.EmergencyEvent) {
		Component.LogWarnf("Emergency executed, method %d", ev.Method)
	}))
	deps.GovernanceManager.Events.ResetExecuted.Attach(events.NewClosure(func(ev *governance.ResetEvent) {
		Component.LogWarnf("Governance reset, new governor %s, snapshot %d", ev.Governor.ToHex(), ev.SnapshotID)
	}))

	return nil
}

func run() error {
	// create a background worker that handles the API
	if err := Component.Daemon().BackgroundWorker("API", func(ctx context.Context) {
		Component.LogInfo("Starting API ... done")

		Component.LogInfo("Starting API server ...")

		e := httpserver.NewEcho(Component.Logger(), nil, ParamsRestAPI.DebugRequestLoggerEnabled)

		setupRoutes(e.Group(APIRoute))

		go func() {
			Component.LogInfof("You can now access the API using: http://%s", ParamsRestAPI.BindAddress)
			if err := e.Start(ParamsRestAPI.BindAddress); err != nil && !errors.Is(err, http.ErrServerClosed) {
				Component.LogErrorfAndExit("Stopped REST-API server due to an error (%s)", err)
			}
		}()

		ctxRegister, cancelRegister := context.WithTimeout(ctx, 5*time.Second)

		advertisedAddress := ParamsRestAPI.BindAddress
		if ParamsRestAPI.AdvertiseAddress != "" {
			advertisedAddress = ParamsRestAPI.AdvertiseAddress
		}

		routeName := strings.Replace(APIRoute, "/api/", "", 1)

		if err := deps.NodeBridge.RegisterAPIRoute(ctxRegister, routeName, advertisedAddress, APIRoute); err != nil {
			Component.LogErrorfAndExit("Registering INX api route failed: %s", err)
		}

		cancelRegister()

		Component.LogInfo("Starting API server ... done")
		<-ctx.Done()
		Component.LogInfo("Stopping API ...")

		ctxUnregister, cancelUnregister := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancelUnregister()

		//nolint:contextcheck // false positive
		if err := deps.NodeBridge.UnregisterAPIRoute(ctxUnregister, routeName); err != nil {
			Component.LogWarnf("Unregistering INX api route failed: %s", err)
		}

		shutdownCtx, shutdownCtxCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCtxCancel()

		//nolint:contextcheck // false positive
		if err := e.Shutdown(shutdownCtx); err != nil {
			Component.LogWarn(err)
		}

		Component.LogInfo("Stopping API ... done")
	}, daemon.PriorityStopGovernanceAPI); err != nil {
		Component.LogPanicf("failed to start worker: %s", err)
	}

	return nil
}
