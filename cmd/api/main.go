package main

import (
	appfx "github.com/sabur-pro/rayan-admin/internal/fx"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		appfx.AppModule,
	).Run()
}
