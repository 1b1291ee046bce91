package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/tmorimoto/writedesk/internal/config"
	"github.com/tmorimoto/writedesk/internal/llm"
	"github.com/tmorimoto/writedesk/internal/pipeline"
)

// configPath is bound to the root --config flag.
var configPath string

// loadConfig resolves configuration. With --config, the file supplies all
// settings and GEMINI_API_KEY from the environment overrides the file's key.
// Without a file the environment is the only source.
func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return config.FromEnv()
	}

	fileCfg, err := config.LoadFile(configPath)
	if err != nil {
		return nil, err
	}

	envCfg := config.Config{APIKey: os.Getenv("GEMINI_API_KEY")}
	merged := envCfg.MergeWithDefaults(*fileCfg)
	return &merged, merged.Validate()
}

// modelConfig starts from the default model set and applies any
// WRITEDESK_MODEL_* environment overrides.
func modelConfig() *llm.Config {
	mc := llm.DefaultConfig()
	for _, tier := range []llm.ModelTier{llm.TierLite, llm.TierStandard, llm.TierAdvanced} {
		if m := os.Getenv("WRITEDESK_MODEL_" + strings.ToUpper(string(tier))); m != "" {
			mc = mc.WithModel(tier, m)
		}
	}
	return mc
}

// newClient loads configuration and builds the completion client shared by
// all subcommands. Missing credentials fail here, before any pipeline runs.
func newClient(ctx context.Context) (llm.Client, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	client, err := llm.NewGeminiClient(ctx, modelConfig(), cfg.APIKey, cfg.Timeout())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create completion client: %w", err)
	}

	return client, cfg, nil
}

// resolveInput validates the text/file flag pair shared by the correct and
// analyze commands.
func resolveInput(text, file string) (pipeline.Input, error) {
	if text == "" && file == "" {
		return pipeline.Input{}, fmt.Errorf("either --text or --file must be provided")
	}
	if text != "" && file != "" {
		return pipeline.Input{}, fmt.Errorf("--text and --file are mutually exclusive; provide only one")
	}
	return pipeline.Input{Text: text, Path: file}, nil
}
