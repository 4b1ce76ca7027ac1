package main

import (
	"context"
	"fmt"

	"github.com/yqhu-dev/wordtrainer/internal/cli"
	"github.com/yqhu-dev/wordtrainer/internal/config"
	"github.com/yqhu-dev/wordtrainer/internal/userdata"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

// newInteractiveCLI loads the configuration, connects the REST repository and
// fetches the user's record. The returned cleanup closes the repository.
func newInteractiveCLI(ctx context.Context) (*cli.InteractiveCLI, *config.Config, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	repository := userdata.NewRESTRepository(cfg.API.BaseURL, cfg.API.RetryAttempts)
	base, err := cli.NewInteractiveCLI(ctx, cfg.API.Username, repository)
	if err != nil {
		_ = repository.Close()
		return nil, nil, nil, err
	}

	cleanup := func() {
		_ = repository.Close()
	}
	return base, cfg, cleanup, nil
}
