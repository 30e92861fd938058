package history

import (
	"github.com/smallbiznis/quickinvoice/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func NewFromConfig(cfg config.Config, log *zap.Logger) *Store {
	return NewStore(cfg.HistoryFile, log)
}

var Module = fx.Module("history.store",
	fx.Provide(NewFromConfig),
)
