package main

import (
	"github.com/iotaledger/inx-governance/components/app"
)

func main() {
	app.App().Run()
}
