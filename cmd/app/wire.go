//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/sunside/internal/bootstrap"
	"github.com/yanqian/sunside/internal/domain/imagesearch"
	"github.com/yanqian/sunside/internal/domain/seatadvisor"
	"github.com/yanqian/sunside/internal/infra/config"
	"github.com/yanqian/sunside/internal/infra/unsplash"
	httpiface "github.com/yanqian/sunside/internal/interface/http"
	"github.com/yanqian/sunside/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideAdvisorConfig,
		provideCatalog,
		provideImageSearchConfig,
		provideUnsplashClient,
		provideImageStore,
		seatadvisor.NewService,
		imagesearch.NewService,
		wire.Bind(new(imagesearch.Client), new(*unsplash.Client)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
