package weberror

import (
	"errors"
	"net/http"
	"testing"

	apperrors "github.com/developerdao/schoolofcode/internal/services/web/platform/errors"
)

func TestShouldRenderErrorPage(t *testing.T) {
	t.Parallel()

	for status, want := range map[int]bool{
		http.StatusNotFound:            true,
		http.StatusInternalServerError: true,
		http.StatusServiceUnavailable:  true,
		http.StatusBadRequest:          false,
		http.StatusOK:                  false,
	} {
		if got := ShouldRenderErrorPage(status); got != want {
			t.Fatalf("ShouldRenderErrorPage(%d) = %t, want %t", status, got, want)
		}
	}
}

func TestPublicMessageHidesInternalErrorText(t *testing.T) {
	t.Parallel()

	if got := PublicMessage(errors.New("template exploded at line 4")); got != "Internal Server Error" {
		t.Fatalf("PublicMessage() = %q, want %q", got, "Internal Server Error")
	}
}

func TestPublicMessageUsesMappedStatus(t *testing.T) {
	t.Parallel()

	if got := PublicMessage(apperrors.E(apperrors.KindNotFound, "page /x not found")); got != "Not Found" {
		t.Fatalf("PublicMessage() = %q, want %q", got, "Not Found")
	}
	if got := PublicMessage(nil); got != "" {
		t.Fatalf("PublicMessage(nil) = %q, want empty", got)
	}
}

func TestStatusMatchesPublicMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: http.StatusInternalServerError},
		{name: "untyped", err: errors.New("boom"), want: http.StatusInternalServerError},
		{name: "not found", err: apperrors.E(apperrors.KindNotFound, "no page"), want: http.StatusNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Status(tc.err)
			if got != tc.want {
				t.Fatalf("Status() = %d, want %d", got, tc.want)
			}
			if tc.err != nil && PublicMessage(tc.err) != http.StatusText(got) {
				t.Fatalf("PublicMessage() = %q, want %q", PublicMessage(tc.err), http.StatusText(got))
			}
		})
	}
}
