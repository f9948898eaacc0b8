package catalog_fx

import (
	"go.uber.org/fx"
	"roamio/internal/engine"
)

var Module = fx.Provide(provideCatalog, provideGenerator)

func provideCatalog() *engine.Catalog {
	return engine.LoadDefaultCatalog()
}

func provideGenerator(catalog *engine.Catalog) *engine.Generator {
	return engine.NewGenerator(catalog)
}
