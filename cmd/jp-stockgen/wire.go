//go:build wireinject
// +build wireinject

package main

import (
	"jp-stockgen/internal/app"
	"jp-stockgen/internal/catalog"
	"jp-stockgen/internal/pipeline"
	"jp-stockgen/internal/provider"

	"github.com/google/wire"
)

// App holds application dependencies built by Wire.
type App struct {
	Config   *app.Config
	Catalog  *catalog.Catalog
	DP       provider.DataProvider
	Pipeline *pipeline.Pipeline
}

// InitializeApp builds App via Wire.
// Caller must call the returned cleanup when done.
func InitializeApp() (*App, func(), error) {
	wire.Build(
		app.ProvideConfig,
		app.ProvideSaver,
		app.ProvideCatalog,
		app.ProvideClock,
		app.ProvideMockProvider,
		app.ProvideRecorder,
		app.ProvidePipeline,
		wire.Bind(new(provider.DataProvider), new(*provider.MockProvider)),
		wire.Struct(new(App), "Config", "Catalog", "DP", "Pipeline"),
	)
	return nil, nil, nil
}
