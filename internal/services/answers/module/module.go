// Package module wires answers into the API using modkit
package module

import (
	"net/http"

	modkit "herdbook/internal/modkit"
	"herdbook/internal/modkit/httpkit"

	"herdbook/internal/core/classify"
	str "herdbook/internal/platform/strings"
	anshttp "herdbook/internal/services/answers/http"
	ansrepo "herdbook/internal/services/answers/repo"
	anssvc "herdbook/internal/services/answers/service"
	catdom "herdbook/internal/services/catalog/domain"
)

// Ports declares the injected catalog dependency for this module
type Ports struct {
	Catalog catdom.ReaderPort
}

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

	svc anssvc.Service
}

// New constructs an answers module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("answers"), modkit.WithPrefix("/answers")}, opts...)...)

	var injected Ports
	if p, ok := b.Ports.(Ports); ok {
		injected = p
	}
	if injected.Catalog == nil {
		panic("answers module requires the catalog Reader port")
	}

	o := FromConfig(deps.Cfg)

	repo := ansrepo.NewPG()
	svc := anssvc.New(
		deps.PG,
		repo,
		injected.Catalog,
		classify.New(o.Terms),
		anssvc.Options{
			PregnancyTag:   o.PregnancyTag,
			LactatingTag:   o.LactatingTag,
			EventDateTag:   o.EventDateTag,
			HeatCategoryID: o.HeatCategoryID,
			HeatDateTag:    o.HeatDateTag,
		},
	)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptAnswersPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		anshttp.Register(r, m.svc)
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
