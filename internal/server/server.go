package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/smallbiznis/quickinvoice/internal/auth"
	"github.com/smallbiznis/quickinvoice/internal/auth/session"
	"github.com/smallbiznis/quickinvoice/internal/config"
	invoicedomain "github.com/smallbiznis/quickinvoice/internal/invoice/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(func(s *Server) {}),
	fx.Invoke(run),
)

func NewEngine(log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(log))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server starting", zap.String("addr", cfg.HTTPAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine     *gin.Engine
	cfg        config.Config
	log        *zap.Logger
	invoiceSvc invoicedomain.Service
	verifier   auth.Verifier
	sessions   *session.Store
	cookies    *session.Manager
}

type ServerParams struct {
	fx.In

	Gin        *gin.Engine
	Cfg        config.Config
	Log        *zap.Logger
	InvoiceSvc invoicedomain.Service
	Verifier   auth.Verifier
	Sessions   *session.Store
	Cookies    *session.Manager
}

func NewServer(p ServerParams) *Server {
	s := &Server{
		engine:     p.Gin,
		cfg:        p.Cfg,
		log:        p.Log.Named("http.server"),
		invoiceSvc: p.InvoiceSvc,
		verifier:   p.Verifier,
		sessions:   p.Sessions,
		cookies:    p.Cookies,
	}

	s.registerAuthRoutes()
	s.registerAPIRoutes()

	return s
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAuthRoutes() {
	authGroup := s.engine.Group("/auth")

	authGroup.POST("/login", s.Login)
	authGroup.POST("/logout", s.Logout)
	authGroup.GET("/me", s.AuthRequired(), s.Me)
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api", s.AuthRequired())

	api.POST("/invoices/preview", s.PreviewInvoice)
	api.POST("/invoices", s.GenerateInvoice)
	api.GET("/history", s.ListHistory)
}
