// Package module wires lineage into the API using modkit
package module

import (
	"net/http"

	modkit "herdbook/internal/modkit"
	"herdbook/internal/modkit/httpkit"
	str "herdbook/internal/platform/strings"
	linhttp "herdbook/internal/services/lineage/http"
	linrepo "herdbook/internal/services/lineage/repo"
	linsvc "herdbook/internal/services/lineage/service"
)

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc linsvc.Service
}

// New constructs a lineage module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("lineage"), modkit.WithPrefix("/lineage")}, opts...)...)

	o := FromConfig(deps.Cfg)

	repo := linrepo.NewPG()
	svc := linsvc.New(deps.PG, repo, linsvc.Options{
		DeliveryDateTag: o.DeliveryDateTag,
		AIDateTag:       o.AIDateTag,
		BullNumberTag:   o.BullNumberTag,
		SemenCompanyTag: o.SemenCompanyTag,
		MotherYieldTag:  o.MotherYieldTag,
	})

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptLineagePort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		linhttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
