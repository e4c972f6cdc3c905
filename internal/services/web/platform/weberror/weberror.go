// Package weberror resolves user-safe error text for web responses.
package weberror

import (
	"net/http"

	apperrors "github.com/developerdao/schoolofcode/internal/services/web/platform/errors"
)

// ShouldRenderErrorPage reports whether status should use the shell error page.
func ShouldRenderErrorPage(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// Status maps err to the response status. Untyped errors are 500.
func Status(err error) int {
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest || http.StatusText(statusCode) == "" {
		return http.StatusInternalServerError
	}
	return statusCode
}

// PublicMessage resolves a user-safe error message. Internal error text is
// never exposed; only the text of Status(err) is.
func PublicMessage(err error) string {
	if err == nil {
		return ""
	}
	return http.StatusText(Status(err))
}
