package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/sunside/internal/domain/catalog"
	"github.com/yanqian/sunside/internal/domain/imagesearch"
	"github.com/yanqian/sunside/internal/domain/seatadvisor"
	"github.com/yanqian/sunside/internal/infra/config"
	"github.com/yanqian/sunside/internal/infra/imagestore"
	"github.com/yanqian/sunside/internal/infra/unsplash"
)

func provideAdvisorConfig(cfg *config.Config) (seatadvisor.Config, error) {
	loc, err := cfg.Advisor.Location()
	if err != nil {
		return seatadvisor.Config{}, fmt.Errorf("resolve advisor timezone: %w", err)
	}
	return seatadvisor.Config{
		Location:       loc,
		CorridorKm:     cfg.Advisor.CorridorKm,
		CruiseSpeedKmh: cfg.Advisor.CruiseSpeedKmh,
	}, nil
}

func provideCatalog() *catalog.Catalog {
	return catalog.Default()
}

func provideImageSearchConfig(cfg *config.Config) imagesearch.Config {
	return imagesearch.Config{
		PerPage:  cfg.Images.Unsplash.PerPage,
		CacheTTL: cfg.Images.CacheTTL,
	}
}

func provideUnsplashClient(cfg *config.Config, logger *slog.Logger) *unsplash.Client {
	if strings.TrimSpace(cfg.Images.Unsplash.AccessKey) == "" {
		logger.Warn("unsplash access key not set, landmark images disabled")
	}
	return unsplash.NewClient(cfg.Images.Unsplash.BaseURL, cfg.Images.Unsplash.AccessKey, cfg.Images.Unsplash.Timeout)
}

func provideImageStore(cfg *config.Config, logger *slog.Logger) imagesearch.Store {
	memory := func() imagesearch.Store {
		return imagestore.NewMemoryStore(cfg.Images.CacheSize, cfg.Images.CacheTTL)
	}
	if cfg.Images.Redis.Enabled {
		opt, err := buildValkeyOptions(cfg)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
			return memory()
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory store", "error", err)
			return memory()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory store", "error", err)
			client.Close()
		} else {
			logger.Info("image valkey store enabled", "addr", cfg.Images.Redis.Addr)
			return imagestore.NewValkeyStore(client, "img")
		}
	}
	return memory()
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(cfg.Images.Redis.Addr, "://") {
		opt, err = valkey.ParseURL(cfg.Images.Redis.Addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{cfg.Images.Redis.Addr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}
