package home

import (
	"net/http"

	"github.com/a-h/templ"
	apperrors "github.com/developerdao/schoolofcode/internal/services/web/platform/errors"
	"github.com/developerdao/schoolofcode/internal/services/web/platform/httpx"
	"github.com/developerdao/schoolofcode/internal/services/web/platform/pagerender"
	"github.com/developerdao/schoolofcode/internal/services/web/templates"
	"go.uber.org/zap"
)

type handlers struct {
	hero   templ.Component
	logger *zap.Logger
}

func newHandlers(hero templ.Component, logger *zap.Logger) handlers {
	return handlers{hero: hero, logger: logger}
}

func (h handlers) handleRoot(w http.ResponseWriter, r *http.Request) {
	h.logRenderError(r, pagerender.WritePage(w, r, pagerender.Page{
		Head:    templates.HomeHead(),
		Content: h.hero,
	}))
}

func (h handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteHTML(w, http.StatusOK, "ok")
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.logRenderError(r, pagerender.WriteError(w, r, apperrors.E(apperrors.KindNotFound, "no page at "+r.URL.Path)))
}

func (h handlers) logRenderError(r *http.Request, err error) {
	if err == nil {
		return
	}
	h.logger.Error("render page",
		zap.String("path", r.URL.Path),
		zap.String("request_id", r.Header.Get(httpx.RequestIDHeader)),
		zap.Error(err),
	)
}
