package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"opsboard/internal/board"
	"opsboard/internal/config"
	"opsboard/internal/middleware"
	"opsboard/internal/modules/activity"
	"opsboard/internal/modules/company"
	"opsboard/internal/modules/dispatch"
	"opsboard/internal/modules/equipment"
	"opsboard/internal/modules/notification"
	"opsboard/internal/modules/project"
	"opsboard/internal/modules/timesheet"
	"opsboard/internal/modules/transfer"
	"opsboard/internal/modules/worker"
	jwtsvc "opsboard/internal/pkg/jwt"
	"opsboard/internal/pkg/response"
	"opsboard/internal/seed"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(commandContext(cmd), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	b, err := openBoard(ctx)
	if err != nil {
		return err
	}
	if cfg.AutoSeed {
		seeded, err := seed.IfEmpty(board.WithActor(ctx, board.DefaultActor), b)
		if err != nil {
			return err
		}
		if seeded {
			logger.Info("board was empty, loaded sample data")
		}
	}

	if cfg.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}
	tokens := jwtsvc.New(cfg.ActorJWTSecret, cfg.ActorTokenTTL)
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           newRouter(b, tokens, cfg, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("addr", cfg.HTTPAddr), zap.String("env", cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

func newRouter(b *board.Board, tokens *jwtsvc.Service, cfg *config.Config, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	r.Use(middleware.ErrorLogger(log))
	r.Use(middleware.RequestLogger(log))

	r.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok", "undo": b.UndoDepth()})
	})

	v1 := r.Group("/api/v1")
	v1.Use(middleware.Actor(tokens, cfg.DefaultActor))
	{
		company.NewHandler(b).RegisterRoutes(v1)
		worker.NewHandler(b).RegisterRoutes(v1)
		equipment.NewHandler(b).RegisterRoutes(v1)
		project.NewHandler(b).RegisterRoutes(v1)
		dispatch.NewHandler(b).RegisterRoutes(v1)
		timesheet.NewHandler(b).RegisterRoutes(v1)
		notification.NewHandler(b).RegisterRoutes(v1)
		activity.NewHandler(b).RegisterRoutes(v1)
		transfer.NewHandler(b).RegisterRoutes(v1)
	}
	return r
}
