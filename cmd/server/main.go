package main

import (
	"github.com/Mirhasankhan/flood-disaster-server/internal/bootstrap"
	pkg "github.com/Mirhasankhan/flood-disaster-server/pkg/routes"

	"go.uber.org/fx"
)

func main() {
	bootstrap.Loadenv()

	app := fx.New(
		pkg.EchoModules,
	)

	app.Run()
}
