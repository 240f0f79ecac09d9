package inx

import (
	"context"

	"go.uber.org/dig"

	"github.com/iotaledger/hive.go/app"
	"github.com/iotaledger/inx-app/pkg/nodebridge"

	"github.com/iotaledger/inx-governance/pkg/daemon"
)

func init() {
	Component = &app.Component{
		Name:     "INX",
		DepsFunc: func(cDeps dependencies) { deps = cDeps },
		Params:   params,
		Provide:  provide,
		Run:      run,
	}
}

type dependencies struct {
	dig.In
	NodeBridge *nodebridge.NodeBridge
}

var (
	Component *app.Component
	deps      dependencies
)

func provide(c *dig.Container) error {
	return c.Provide(func() (*nodebridge.NodeBridge, error) {
		return nodebridge.NewNodeBridge(Component.Daemon().ContextStopped(),
			ParamsINX.Address,
			Component.Logger())
	})
}

func run() error {
	return Component.Daemon().BackgroundWorker("INX", func(ctx context.Context) {
		Component.LogInfo("Starting NodeBridge")
		deps.NodeBridge.Run(ctx)
		Component.LogInfo("Stopped NodeBridge")
	}, daemon.PriorityDisconnectINX)
}
