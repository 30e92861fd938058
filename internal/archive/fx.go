package archive

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/smallbiznis/quickinvoice/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func NewFromConfig(cfg config.Config, log *zap.Logger, genID *snowflake.Node) (*Store, error) {
	if cfg.ArchiveDB == "" {
		log.Info("invoice archive disabled")
		return NewStore(nil, log, genID)
	}

	db, err := gorm.Open(sqlite.Open(cfg.ArchiveDB), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return NewStore(db, log, genID)
}

func probe(lc fx.Lifecycle, s *Store) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return s.Touch(ctx)
		},
	})
}

var Module = fx.Module("archive.store",
	fx.Provide(NewFromConfig),
	fx.Invoke(probe),
)
