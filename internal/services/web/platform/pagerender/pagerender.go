// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/a-h/templ"
	"github.com/developerdao/schoolofcode/internal/platform/i18n"
	"github.com/developerdao/schoolofcode/internal/services/web/platform/httpx"
	"github.com/developerdao/schoolofcode/internal/services/web/platform/weberror"
	"github.com/developerdao/schoolofcode/internal/services/web/templates"
)

// Page describes one full-document response.
type Page struct {
	Head       templates.Head
	StatusCode int
	Content    templ.Component
}

// WritePage renders page inside the shell and writes it. The document is
// rendered into a buffer first so a failing component never leaves a
// truncated response behind.
func WritePage(w http.ResponseWriter, r *http.Request, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}

	lang := i18n.ResolveLang(w, r)
	var rendered bytes.Buffer
	if err := templates.Shell(page.Head, lang, page.Content).Render(httpx.RequestContext(r), &rendered); err != nil {
		http.Error(w, weberror.PublicMessage(err), weberror.Status(err))
		return fmt.Errorf("render page: %w", err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	if r != nil && r.Method == http.MethodHead {
		return nil
	}
	_, err := w.Write(rendered.Bytes())
	return err
}

// WriteErrorPage writes the shell error page for statusCode. Statuses that do
// not get a page are coerced to 500.
func WriteErrorPage(w http.ResponseWriter, r *http.Request, statusCode int) error {
	if !weberror.ShouldRenderErrorPage(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	return WritePage(w, r, Page{
		Head:       templates.ErrorHead(statusCode),
		StatusCode: statusCode,
		Content:    templates.ErrorState(statusCode),
	})
}

// WriteError writes the response for a request-level failure. The status comes
// from the error kind; statuses with a shell page render it, the rest get
// plain status text. The returned error reports only write failures.
func WriteError(w http.ResponseWriter, r *http.Request, err error) error {
	statusCode := weberror.Status(err)
	if !weberror.ShouldRenderErrorPage(statusCode) {
		http.Error(w, weberror.PublicMessage(err), statusCode)
		return nil
	}
	return WriteErrorPage(w, r, statusCode)
}
