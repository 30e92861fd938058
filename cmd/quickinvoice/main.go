package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/quickinvoice/internal/archive"
	"github.com/smallbiznis/quickinvoice/internal/auth"
	"github.com/smallbiznis/quickinvoice/internal/config"
	"github.com/smallbiznis/quickinvoice/internal/history"
	"github.com/smallbiznis/quickinvoice/internal/invoice"
	"github.com/smallbiznis/quickinvoice/internal/logger"
	"github.com/smallbiznis/quickinvoice/internal/obs"
	"github.com/smallbiznis/quickinvoice/internal/server"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		logger.Module,
		obs.Module,
		fx.Provide(RegisterSnowflake),

		// Functional domains
		history.Module,
		archive.Module,
		auth.Module,
		invoice.Module,

		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
