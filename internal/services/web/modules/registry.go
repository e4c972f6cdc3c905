// Package modules defines web module registry helpers.
package modules

import (
	"github.com/a-h/templ"
	module "github.com/developerdao/schoolofcode/internal/services/web/module"
	"github.com/developerdao/schoolofcode/internal/services/web/modules/home"
	"go.uber.org/zap"
)

// Module aliases the module interface contract.
type Module = module.Module

// Dependencies carries the collaborators shared across modules.
type Dependencies struct {
	Hero   templ.Component
	Logger *zap.Logger
}

// DefaultModules returns the modules mounted by the web service.
func DefaultModules(deps Dependencies) []Module {
	return []Module{
		home.NewWithConfig(home.Config{Hero: deps.Hero, Logger: deps.Logger}),
	}
}
