package templates

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/developerdao/schoolofcode/internal/platform/branding"
	"github.com/developerdao/schoolofcode/internal/services/web/routepath"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// ErrorMarker is the data-component value carried by the error state root.
const ErrorMarker = "error-state"

func normalizeStatus(status int) int {
	if http.StatusText(status) == "" {
		return http.StatusInternalServerError
	}
	return status
}

// ErrorTitle returns the page title for an error status.
func ErrorTitle(status int) string {
	status = normalizeStatus(status)
	return ComposePageTitle(fmt.Sprintf("%d %s", status, http.StatusText(status)))
}

// ErrorHead returns error page metadata. Description and icon match the
// landing page.
func ErrorHead(status int) Head {
	head := HomeHead()
	head.Title = ErrorTitle(status)
	return head
}

// ErrorState renders the status heading and a link back to the landing page.
func ErrorState(status int) templ.Component {
	status = normalizeStatus(status)
	return Component(
		h.Section(
			h.Class("error-state"),
			g.Attr("data-component", ErrorMarker),
			h.H1(g.Text(strconv.Itoa(status))),
			h.P(g.Text(http.StatusText(status))),
			h.A(h.Href(routepath.Root), g.Text("Back to "+branding.AppName)),
		),
	)
}

// ErrorPage renders the error state inside the page shell.
func ErrorPage(status int, lang string) templ.Component {
	return Shell(ErrorHead(status), lang, ErrorState(status))
}
