package main

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/sunside/internal/infra/config"
	"github.com/yanqian/sunside/internal/infra/imagestore"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestProvideAdvisorConfig(t *testing.T) {
	cfg := &config.Config{Advisor: config.AdvisorConfig{Timezone: "UTC", CorridorKm: 40, CruiseSpeedKmh: 800}}
	got, err := provideAdvisorConfig(cfg)
	require.NoError(t, err)
	require.Equal(t, time.UTC.String(), got.Location.String())
	require.Equal(t, 40.0, got.CorridorKm)

	cfg.Advisor.Timezone = "Nowhere/Land"
	_, err = provideAdvisorConfig(cfg)
	require.Error(t, err)
}

func TestProvideImageStoreDefaultsToMemory(t *testing.T) {
	cfg := &config.Config{Images: config.ImagesConfig{CacheSize: 8, CacheTTL: time.Minute}}
	store := provideImageStore(cfg, testLogger())
	_, ok := store.(*imagestore.MemoryStore)
	require.True(t, ok)
}

func TestProvideImageStoreFallsBackWhenValkeyUnreachable(t *testing.T) {
	cfg := &config.Config{Images: config.ImagesConfig{
		CacheSize: 8,
		CacheTTL:  time.Minute,
		Redis:     config.RedisConfig{Enabled: true, Addr: "127.0.0.1:1"},
	}}
	store := provideImageStore(cfg, testLogger())
	_, ok := store.(*imagestore.MemoryStore)
	require.True(t, ok)
}
