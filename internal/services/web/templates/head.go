package templates

import (
	"errors"
	"strings"

	"github.com/developerdao/schoolofcode/internal/platform/branding"
	"github.com/developerdao/schoolofcode/internal/services/web/routepath"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Head is the document metadata attached to a rendered page.
type Head struct {
	Title       string
	Description string
	IconPath    string
}

// HomeHead returns the landing page metadata.
func HomeHead() Head {
	return Head{
		Title:       branding.AppName,
		Description: branding.Description,
		IconPath:    branding.FaviconPath,
	}
}

// Validate reports every empty metadata field.
func (hd Head) Validate() error {
	var errs []error
	if strings.TrimSpace(hd.Title) == "" {
		errs = append(errs, errors.New("title is required"))
	}
	if strings.TrimSpace(hd.Description) == "" {
		errs = append(errs, errors.New("description is required"))
	}
	if strings.TrimSpace(hd.IconPath) == "" {
		errs = append(errs, errors.New("icon path is required"))
	}
	return errors.Join(errs...)
}

// ComposePageTitle appends the product name to a page title unless the
// title already is, or already ends with, the product name.
func ComposePageTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" || title == branding.AppName {
		return branding.AppName
	}
	suffix := " | " + branding.AppName
	if strings.HasSuffix(title, suffix) {
		return title
	}
	if base, ok := strings.CutSuffix(title, " - "+branding.AppName); ok {
		return strings.TrimSpace(base) + suffix
	}
	return title + suffix
}

func (hd Head) nodes() []g.Node {
	return []g.Node{
		h.Meta(h.Charset("utf-8")),
		h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
		h.TitleEl(g.Text(hd.Title)),
		h.Meta(h.Name("description"), h.Content(hd.Description)),
		h.Link(h.Rel("icon"), h.Href(hd.IconPath)),
		h.Link(h.Rel("stylesheet"), h.Href(routepath.Stylesheet)),
	}
}
