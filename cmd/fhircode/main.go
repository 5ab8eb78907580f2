package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ehr/fhircode/internal/config"
	"github.com/ehr/fhircode/internal/domain/terminology"
	"github.com/ehr/fhircode/internal/platform/auth"
	"github.com/ehr/fhircode/internal/platform/db"
	"github.com/ehr/fhircode/internal/platform/fhir"
	"github.com/ehr/fhircode/internal/platform/middleware"
	"github.com/ehr/fhircode/pkg/fhircode"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "fhircode",
		Short:         "FHIR code system bindings and terminology server",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(
		serveCmd(),
		migrateCmd(),
		importCmd(),
		lookupCmd(),
		validateCmd(),
		listCmd(),
		generateCmd(),
	)
	return root
}

func newLogger(cfg *config.Config) (zerolog.Logger, error) {
	lvl, err := cfg.Level()
	if err != nil {
		return zerolog.Nop(), err
	}
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if cfg.IsDev() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}
	return logger.Level(lvl), nil
}

// runtime bundles what every command needs. pool is nil when no database is
// configured.
type runtime struct {
	cfg    *config.Config
	logger zerolog.Logger
	pool   *pgxpool.Pool
	svc    *terminology.Service
}

func (r *runtime) Close() {
	if r.pool != nil {
		r.pool.Close()
	}
}

func setup(ctx context.Context) (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}

	rt := &runtime{cfg: cfg, logger: logger}
	custom := terminology.NewMemoryRepo()
	if cfg.HasDatabase() {
		pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
		if err != nil {
			return nil, err
		}
		rt.pool = pool
		custom = terminology.NewCodeSystemRepoPG(pool)
		logger.Debug().Msg("connected to database")
	} else {
		logger.Warn().Msg("DATABASE_URL not set; custom code systems are kept in memory")
	}
	rt.svc = terminology.NewService(terminology.NewBuiltinRepo(fhircode.Default()), custom, logger)
	return rt, nil
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the terminology server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			rt, err := setup(ctx)
			if err != nil {
				return err
			}
			defer rt.Close()
			return serve(ctx, rt)
		},
	}
}

func serve(ctx context.Context, rt *runtime) error {
	e := newServer(rt.cfg, rt.logger, rt.svc, rt.pool)
	addr := ":" + rt.cfg.Port

	errCh := make(chan error, 1)
	go func() {
		rt.logger.Info().Str("addr", addr).Str("base_url", rt.cfg.BaseURL).Msg("starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	rt.logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	rt.logger.Info().Msg("server stopped")
	return nil
}

func newServer(cfg *config.Config, logger zerolog.Logger, svc *terminology.Service, pool *pgxpool.Pool) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.IPExtractor = echo.ExtractIPDirect()
	e.HTTPErrorHandler = errorHandler(e)

	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  cfg.CORSOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowHeaders:  []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderXRequestID},
		ExposeHeaders: []string{echo.HeaderXRequestID, echo.HeaderLocation},
	}))
	e.Use(middleware.BodyLimit(cfg.BodyLimit))
	e.Use(middleware.RateLimit(middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}))
	e.Use(middleware.RequestTimeout(cfg.RequestTimeout))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "version": version})
	})
	e.GET("/health/db", db.HealthHandler(pool))

	fhirGroup := e.Group("/fhir")
	if cfg.IsDev() {
		fhirGroup.Use(auth.DevAuthMiddleware())
	} else {
		fhirGroup.Use(auth.JWTMiddleware(auth.JWTConfig{
			Issuer:     cfg.AuthIssuer,
			Audience:   cfg.AuthAudience,
			JWKSURL:    cfg.AuthJWKSURL,
			SigningKey: []byte(cfg.AuthSigningKey),
			Skipper:    auth.AuthSkipper,
		}))
	}
	terminology.NewHandler(svc, cfg.BaseURL, version).RegisterRoutes(fhirGroup)
	return e
}

// errorHandler renders errors that escape handlers, such as unknown routes,
// as OperationOutcome resources.
func errorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		code := http.StatusInternalServerError
		msg := "internal server error"
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			msg = fmt.Sprint(he.Message)
		}

		var oo *fhir.OperationOutcome
		switch code {
		case http.StatusNotFound:
			oo = fhir.NewOperationOutcome(fhircode.IssueSeverityError, fhircode.IssueTypeNotFound, msg)
		case http.StatusMethodNotAllowed:
			oo = fhir.NotSupportedOutcome(msg)
		case http.StatusRequestEntityTooLarge:
			oo = fhir.NewOperationOutcome(fhircode.IssueSeverityError, fhircode.IssueTypeTooCostly, msg)
		case http.StatusInternalServerError:
			oo = fhir.InternalErrorOutcome(msg)
		default:
			oo = fhir.ErrorOutcome(msg)
		}
		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, oo)
		}
		if err != nil {
			e.Logger.Error(err)
		}
	}
}
