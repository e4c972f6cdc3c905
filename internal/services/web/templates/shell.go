package templates

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	h "maragu.dev/gomponents/html"
)

// DefaultLang is the document language used when none is resolved.
const DefaultLang = "en-US"

// Shell renders a complete document: the head metadata followed by a single
// main region holding content. A nil content falls back to the children
// attached to the render context with templ.WithChildren.
//
// Output depends only on the arguments, so repeated renders are identical.
func Shell(head Head, lang string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if ctx == nil {
			ctx = context.Background()
		}
		if err := head.Validate(); err != nil {
			return fmt.Errorf("page head: %w", err)
		}
		docLang := strings.TrimSpace(lang)
		if docLang == "" {
			docLang = DefaultLang
		}
		child := content
		if child == nil {
			child = templ.GetChildren(ctx)
			ctx = templ.ClearChildren(ctx)
		}
		return h.Doctype(
			h.HTML(
				h.Lang(docLang),
				h.Head(head.nodes()...),
				h.Body(
					h.Main(embed{ctx: ctx, child: child}),
				),
			),
		).Render(w)
	})
}
