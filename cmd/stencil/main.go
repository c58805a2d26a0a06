package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/stencil/internal/clock"
	"github.com/smallbiznis/stencil/internal/config"
	"github.com/smallbiznis/stencil/internal/designer/catalog"
	"github.com/smallbiznis/stencil/internal/invoicetemplate"
	"github.com/smallbiznis/stencil/internal/migration"
	"github.com/smallbiznis/stencil/internal/observability/logger"
	"github.com/smallbiznis/stencil/internal/seed"
	"github.com/smallbiznis/stencil/internal/server"
	"github.com/smallbiznis/stencil/pkg/db"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var version = "dev"

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		fx.Provide(func() *snowflake.Node {
			node, err := snowflake.NewNode(1)
			if err != nil {
				panic(err)
			}
			return node
		}),
		fx.Provide(catalog.New),
		db.Module,
		clock.Module,
		fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := migration.RunMigrations(sqlDB); err != nil {
				return err
			}
			if cfg.Bootstrap.SeedSystemTemplates {
				return seed.EnsureSystemTemplates(conn, cfg.Bootstrap.BootstrapOrgID)
			}
			return nil
		}),
		invoicetemplate.Module,
		server.Module,
	)
	app.Run()
}
