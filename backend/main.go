package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"posadmin/m/internal/api"
	"posadmin/m/internal/config"
	"posadmin/m/internal/database"
	"posadmin/m/internal/logger"
	"posadmin/m/internal/migrations"
	"posadmin/m/internal/seed"
	"posadmin/m/internal/service"
	"posadmin/m/internal/store"
	"posadmin/m/internal/tracing"
)

const usage = `usage: backend [command]

commands:
  serve              run the HTTP API (default)
  migrate            create the database schema
  seed               replace all data with the demo data set
  reset              drop every table
  check-duplicates   list supplier descriptions used more than once
  token [-sub name] [-ttl 24h]
                     print a bearer token signed with AUTH_SECRET
`

func main() {
	cfg := config.Load()
	logger.Init(cfg.ServiceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	cmd, args := "serve", []string(nil)
	if len(os.Args) > 1 {
		cmd, args = os.Args[1], os.Args[2:]
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var err error
	switch cmd {
	case "serve":
		err = serve(ctx, cfg)
	case "migrate":
		err = withDB(ctx, cfg, func(db *sqlx.DB) error { return migrations.Run(ctx, db) })
	case "seed":
		err = withDB(ctx, cfg, func(db *sqlx.DB) error {
			if err := migrations.Run(ctx, db); err != nil {
				return err
			}
			sum, err := seed.Load(ctx, store.New(db))
			if err != nil {
				return err
			}
			fmt.Printf("Database seeded: %s\n", sum)
			return nil
		})
	case "reset":
		err = withDB(ctx, cfg, func(db *sqlx.DB) error {
			if err := migrations.Reset(ctx, db); err != nil {
				return err
			}
			fmt.Println("All tables dropped. Run `backend migrate` to recreate the schema.")
			return nil
		})
	case "check-duplicates":
		err = withDB(ctx, cfg, func(db *sqlx.DB) error {
			_, err := seed.CheckDuplicates(ctx, store.New(db), os.Stdout)
			return err
		})
	case "token":
		err = printToken(cfg, args)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err != nil {
		logger.Logger.Fatal().Err(err).Str("command", cmd).Msg("command failed")
	}
}

func withDB(ctx context.Context, cfg config.Config, fn func(db *sqlx.DB) error) error {
	db, err := database.Connect(ctx, cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer db.Close()
	return fn(db)
}

func serve(ctx context.Context, cfg config.Config) error {
	logger.Logger.Info().
		Str("environment", cfg.Environment).
		Str("log_level", cfg.LogLevel).
		Str("driver", cfg.DatabaseDriver).
		Msg("Starting POS admin service")

	tp, err := tracing.InitTracer(ctx, cfg.ServiceName, cfg.JaegerEndpoint)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else if tp != nil {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(shutdownCtx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	db, err := database.Connect(ctx, cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := migrations.Run(ctx, db); err != nil {
		return err
	}

	st := store.New(db)
	handler := api.New(api.FromServices(service.New(st), st), api.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AuthSecret:     cfg.AuthSecret,
	})
	if cfg.AuthSecret == "" {
		logger.Logger.Warn().Msg("AUTH_SECRET not set, API is unauthenticated")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           otelhttp.NewHandler(handler.Router(), cfg.ServiceName),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Logger.Info().Str("port", cfg.HTTPPort).Msg("HTTP server listening")
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

	logger.Logger.Info().Msg("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func printToken(cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	subject := fs.String("sub", "admin", "token subject")
	ttl := fs.Duration("ttl", 24*time.Hour, "token lifetime")
	if err := fs.Parse(args); err != nil {
		return err
	}
	token, err := api.GenerateToken(cfg.AuthSecret, *subject, *ttl)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}
