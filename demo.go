package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"promptlab/ai"
	"promptlab/config"
	"promptlab/console"
	"promptlab/flow"
	"promptlab/logger"
)

// errReported marks failures the session already showed to the operator.
var errReported = errors.New("demo failed")

type settings struct {
	configPath string
	provider   string
	model      string
}

type demoFactory func(provider ai.AiServiceProvider, model string, reporter flow.Reporter, tracker flow.Tracker) flow.Demo

func loadConfig(s settings) (*config.Config, error) {
	cfg, err := config.Load(s.configPath, config.DefaultEnvFiles...)
	if err != nil {
		return nil, err
	}

	if s.provider != "" {
		cfg.Provider = s.provider
	}
	if s.model != "" {
		cfg.Model = s.model
	}
	return cfg, nil
}

func runDemo(ctx context.Context, s settings, build demoFactory) error {
	logger.Setup(os.Stderr, "")

	cfg, err := loadConfig(s)
	if err != nil {
		return err
	}

	logger.Setup(os.Stderr, cfg.Log.Level)
	for _, warning := range cfg.Validate() {
		log.Warn().Str("component", logger.CONFIG).Msg(warning)
	}

	provider, err := ai.NewAiServiceProvider(cfg.ServiceType(), cfg.ProviderOptions())
	if err != nil {
		return err
	}
	if err := provider.Prepare(); err != nil {
		return err
	}

	log.Info().
		Str("component", logger.APP).
		Str("provider", provider.String()).
		Str("model", cfg.ResolvedModel()).
		Msg("Provider ready")

	reporter := console.NewReporter(os.Stdout, os.Stderr, cfg.ServiceType())

	var tracker flow.Tracker
	if console.IsTerminal(os.Stderr) {
		tracker = console.NewProgress(os.Stderr)
	}

	session := flow.NewSession(console.NewLineReader(os.Stdin, os.Stdout), reporter)
	if err := session.Run(ctx, build(provider, cfg.ResolvedModel(), reporter, tracker)); err != nil {
		return fmt.Errorf("%w: %w", errReported, err)
	}
	return nil
}
