package main

import (
	"go.uber.org/fx"

	"github.com/bazaar-dev/bazaar/internal/app"
)

func main() {
	fx.New(app.Module).Run()
}
