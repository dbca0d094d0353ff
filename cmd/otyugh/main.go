// Package main is the entry point for the Otyugh dungeon.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/otyugh/internal/game"
	"github.com/samdwyer/otyugh/internal/gamedata"
	"github.com/samdwyer/otyugh/internal/telemetry"
	"github.com/samdwyer/otyugh/internal/ui"
)

func main() {
	// Env vars may be set directly, so a missing .env is not fatal.
	envErr := godotenv.Load()

	log := logrus.StandardLogger()
	configureLogging(log)
	if envErr != nil {
		log.WithError(envErr).Debug(".env file not loaded")
	}

	setupOTelEnv()
	ctx := context.Background()

	if telemetry.Enabled() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.WithError(err).Warn("telemetry setup failed, running without tracing")
			telemetry.Disable()
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.WithError(err).Error("telemetry shutdown")
				}
			}()
		}
	} else {
		telemetry.Disable()
	}

	runCtx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGHUP)
	err := run(runCtx, log)
	stop()
	if err != nil {
		log.WithError(err).Error("otyugh exited")
		os.Exit(1)
	}
}

func run(ctx context.Context, log *logrus.Logger) error {
	cfg, err := game.ConfigFromEnv()
	if err != nil {
		return err
	}
	treasures, err := gamedata.LoadTreasureRegistry()
	if err != nil {
		return fmt.Errorf("load treasures: %w", err)
	}

	engine, err := game.New(ctx, cfg, nil)
	if err != nil {
		return fmt.Errorf("build dungeon: %w", err)
	}
	engine.SetLogger(log)
	fields := logrus.Fields{
		"rows":     cfg.Rows,
		"cols":     cfg.Cols,
		"wrapping": cfg.Wrapping,
		"caves":    engine.Map().CaveCount(),
		"tunnels":  engine.Map().TunnelCount(),
	}
	if seed, ok := engine.Seed(); ok {
		fields["seed"] = seed
	}
	log.WithFields(fields).Info("dungeon generated")

	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer screen.Close()

	ui.NewSession(engine).Run(ctx, screen, ui.NewRenderer(screen, treasures))
	log.WithField("outcome", engine.Outcome()).Info("session ended")
	return nil
}

// configureLogging keeps the terminal free for the game: entries go to
// OTYUGH_LOG_FILE when set, otherwise only warnings reach stderr.
func configureLogging(log *logrus.Logger) {
	log.SetLevel(logrus.WarnLevel)
	if raw := os.Getenv("OTYUGH_LOG_LEVEL"); raw != "" {
		level, err := logrus.ParseLevel(raw)
		if err != nil {
			log.WithError(err).Warn("ignoring OTYUGH_LOG_LEVEL")
		} else {
			log.SetLevel(level)
		}
	}

	if path := os.Getenv("OTYUGH_LOG_FILE"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.WithError(err).Warn("cannot open log file")
			return
		}
		log.SetOutput(f)
		log.SetFormatter(&logrus.JSONFormatter{})
	}
}

// setupOTelEnv points the OTLP exporter at Honeycomb when an API key is
// configured and no endpoint is set explicitly.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_OTYUGH_API_KEY")
	if apiKey == "" {
		return
	}
	if os.Getenv(telemetry.EnvEndpoint) == "" {
		os.Setenv(telemetry.EnvEndpoint, "https://api.honeycomb.io")
	}
	dataset := os.Getenv("HONEYCOMB_OTYUGH_DATASET")
	if dataset == "" {
		dataset = "otyugh"
	}
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
