// Package home serves the landing page at the site root.
package home

import (
	"net/http"

	"github.com/a-h/templ"
	module "github.com/developerdao/schoolofcode/internal/services/web/module"
	"github.com/developerdao/schoolofcode/internal/services/web/routepath"
	"github.com/developerdao/schoolofcode/internal/services/web/templates"
	"go.uber.org/zap"
)

// Config wires the home module collaborators.
type Config struct {
	// Hero replaces the default Hero. Any zero-argument component works.
	Hero templ.Component
	// Logger receives render failures. Nil discards them.
	Logger *zap.Logger
}

// Module provides the landing page routes.
type Module struct {
	hero   templ.Component
	logger *zap.Logger
}

// New returns a home module with the default Hero.
func New() Module {
	return NewWithConfig(Config{})
}

// NewWithConfig returns a home module using cfg.
func NewWithConfig(cfg Config) Module {
	hero := cfg.Hero
	if hero == nil {
		hero = templates.Hero()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return Module{hero: hero, logger: logger}
}

// ID returns the module identifier.
func (Module) ID() string { return "home" }

// Mount wires the landing page under the root prefix.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.hero, m.logger))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
