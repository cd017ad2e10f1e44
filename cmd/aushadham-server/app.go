package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/HelloOjasMutreja/Aushadham/internal/config"
	"github.com/HelloOjasMutreja/Aushadham/internal/domain/triage"
	"github.com/HelloOjasMutreja/Aushadham/internal/platform/health"
	"github.com/HelloOjasMutreja/Aushadham/internal/platform/middleware"
	"github.com/HelloOjasMutreja/Aushadham/pkg/envelope"
)

var triageModule = fx.Module("triage",
	fx.Provide(
		triage.NewMemorySessionRepo,
		newEngine,
		newAdvisor,
		triage.NewService,
		triage.NewHandler,
	),
)

func newEngine(cfg *config.Config) *triage.Engine {
	return triage.NewEngine(triage.EngineOptions{DedupConditionals: cfg.DedupConditionals})
}

func newAdvisor(cfg *config.Config) *triage.Advisor {
	return triage.NewAdvisor(cfg.FallbackAdvice)
}

// appOptions wires the whole server. The session store lives exactly as
// long as the fx app.
func appOptions(cfg *config.Config, logger zerolog.Logger) fx.Option {
	return fx.Options(
		fx.WithLogger(func() fxevent.Logger { return fxLogger{log: logger} }),
		fx.StopTimeout(time.Duration(cfg.ShutdownTimeout)*time.Second),
		fx.Supply(cfg, logger),
		triageModule,
		fx.Provide(newEcho),
		fx.Invoke(startServer),
	)
}

func newLogger(cfg *config.Config) zerolog.Logger {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if cfg.IsDev() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	return logger.Level(cfg.Level())
}

func newEcho(cfg *config.Config, logger zerolog.Logger, h *triage.Handler, svc *triage.Service) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = envelope.ErrorHandler(logger)

	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.SecurityHeaders(middleware.SecurityHeadersConfig{HSTS: cfg.IsProduction()}))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, middleware.RequestIDHeader},
	}))
	e.Use(echomw.BodyLimit(cfg.BodyLimit))
	e.Use(middleware.RateLimit(middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}))

	e.GET("/health_check", health.Handler(svc, nil))
	h.RegisterRoutes(e.Group(""))

	return e
}

func startServer(lc fx.Lifecycle, sd fx.Shutdowner, e *echo.Echo, cfg *config.Config, logger zerolog.Logger) {
	addr := ":" + cfg.Port
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", addr)
			if err != nil {
				return fmt.Errorf("listen on %s: %w", addr, err)
			}
			e.Listener = ln
			go func() {
				logger.Info().Str("addr", addr).Msg("starting server")
				if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error().Err(err).Msg("server error")
					_ = sd.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("shutting down server")
			if err := e.Shutdown(ctx); err != nil {
				return fmt.Errorf("server shutdown: %w", err)
			}
			logger.Info().Msg("server stopped")
			return nil
		},
	})
}

// fxLogger routes fx lifecycle events through zerolog. Only failures are
// logged above debug.
type fxLogger struct {
	log zerolog.Logger
}

func (l fxLogger) LogEvent(event fxevent.Event) {
	var err error
	switch ev := event.(type) {
	case *fxevent.Provided:
		err = ev.Err
	case *fxevent.Invoked:
		err = ev.Err
	case *fxevent.OnStartExecuted:
		err = ev.Err
	case *fxevent.OnStopExecuted:
		err = ev.Err
	case *fxevent.Started:
		err = ev.Err
	case *fxevent.Stopped:
		err = ev.Err
	case *fxevent.RolledBack:
		err = ev.Err
	}
	if err != nil {
		l.log.Error().Err(err).Str("event", fmt.Sprintf("%T", event)).Msg("fx")
		return
	}
	l.log.Debug().Str("event", fmt.Sprintf("%T", event)).Msg("fx")
}
