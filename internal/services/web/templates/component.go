// Package templates renders the landing page shell and its components.
//
// Markup is assembled from gomponents nodes and exposed as templ.Component
// so handlers and tests share one render contract.
package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// Component exposes a gomponents node as a templ component.
func Component(node g.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if node == nil {
			return nil
		}
		return node.Render(w)
	})
}

// embed places a templ component inside a gomponents tree. The child is
// rendered with ctx so request-scoped values still reach it.
type embed struct {
	ctx   context.Context
	child templ.Component
}

func (e embed) Render(w io.Writer) error {
	if e.child == nil {
		return nil
	}
	return e.child.Render(e.ctx, w)
}
