package auth

import (
	"github.com/smallbiznis/quickinvoice/internal/auth/session"
	"github.com/smallbiznis/quickinvoice/internal/config"
	"go.uber.org/fx"
)

func provideVerifier(cfg config.Config) Verifier {
	return NewStaticVerifier(cfg)
}

func provideSessionStore(cfg config.Config) *session.Store {
	return session.NewStore(cfg.SessionTTL)
}

var Module = fx.Module("auth",
	fx.Provide(provideVerifier),
	fx.Provide(provideSessionStore),
	fx.Provide(session.NewManager),
)
