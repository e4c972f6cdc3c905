// Package routepath stores canonical HTTP paths for web modules.
package routepath

import "github.com/developerdao/schoolofcode/internal/platform/branding"

const (
	Root         = "/"
	Health       = "/healthz"
	Favicon      = branding.FaviconPath
	StaticPrefix = "/static/"
	Stylesheet   = StaticPrefix + "site.css"
)
