package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/genpass/genpass-go/internal/cli"
	"github.com/genpass/genpass-go/internal/clipboard"
	"github.com/genpass/genpass-go/internal/config"
	"github.com/genpass/genpass-go/internal/crypto"
	"github.com/genpass/genpass-go/internal/handler"
	"github.com/genpass/genpass-go/internal/service"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "genpass: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	// A missing .env file is the normal case.
	_ = godotenv.Load()

	cfg := config.Load()
	inv, shouldExit, err := cli.Parse(args, stderr, cfg)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	level := cfg.LogLevel
	if inv.Options.Verbose {
		level = "debug"
	}
	logger := config.NewLogger(level, inv.LogFormat, stderr)
	slog.SetDefault(logger)

	switch inv.Command {
	case cli.CommandServe:
		return serve(cfg, inv, logger)
	case cli.CommandToken:
		return mintToken(cfg, inv, stdout)
	case cli.CommandHold:
		// Runs detached with /dev/null for output.
		return hold()
	}

	svc := service.NewGeneratorService(stdout, clipboard.NewPublisher(), logger, cfg.Length)
	return svc.Run(context.Background(), inv.Options)
}

func hold() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := clipboard.Hold(ctx, os.Stdin, clipboard.ReadyFile(), clipboard.NewSystemWriter())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func mintToken(cfg config.Config, inv *cli.Invocation, stdout io.Writer) error {
	if cfg.JWTSecret == "" {
		return errors.New("GENPASS_JWT_SECRET must be set to mint tokens")
	}
	token, err := crypto.GenerateToken(inv.Subject, cfg.JWTSecret, inv.TTL)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, token)
	return err
}

func serve(cfg config.Config, inv *cli.Invocation, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.JWTSecret == "" {
		logger.Warn("GENPASS_JWT_SECRET is not set, generate API is unauthenticated")
	}

	// The HTTP path never copies to a clipboard; the publisher is unused.
	svc := service.NewGeneratorService(io.Discard, clipboard.SyncPublisher{}, logger, cfg.Length)
	router := handler.NewRouter(ctx, svc, handler.RouterConfig{
		JWTSecret: cfg.JWTSecret,
		RateRPS:   cfg.RateRPS,
		RateBurst: cfg.RateBurst,
	})

	srv := &http.Server{
		Addr:              inv.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", inv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
