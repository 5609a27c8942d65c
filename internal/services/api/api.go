// Package api provides the HTTP API for the application
package api

import (
	"herdbook/internal/platform/config"
	"herdbook/internal/platform/logger"
	"herdbook/internal/platform/metrics"
	phttp "herdbook/internal/platform/net/http"
	"herdbook/internal/platform/net/middleware"
	"herdbook/internal/platform/store"

	"herdbook/internal/modkit"
	"herdbook/internal/modkit/httpkit"
	"herdbook/internal/modkit/module"
	"herdbook/internal/modkit/swaggerkit"

	answersmod "herdbook/internal/services/answers/module"
	catalogmod "herdbook/internal/services/catalog/module"
	lineagemod "herdbook/internal/services/lineage/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	Auth           middleware.AuthPort
	Metrics        *metrics.Registry
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}

	// the catalog module owns question resolution; answers consumes its
	// Reader port for snapshot building
	catalog := catalogmod.New(deps)
	reader := module.MustPortsOf[catalogmod.Ports](catalog).Reader

	answers := answersmod.New(
		deps,
		modkit.WithPorts(answersmod.Ports{Catalog: reader}),
	)
	lineage := lineagemod.New(deps)

	public := []module.Module{catalog}
	secured := []module.Module{answers, lineage}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// swagger, profiler, metrics
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
		if opt.Metrics != nil {
			r.Handle("/metrics", opt.Metrics.Handler())
		}

		for _, m := range public {
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}

		// answer and lineage routes act on behalf of one owner and
		// require the trusted user id
		httpkit.Protected(api, opt.Auth, func(sec httpkit.Router) {
			for _, m := range secured {
				module.Register(m.Name(), m.Ports())
				m.MountRoutes(sec)
			}
		})
	})
}
