package i18n

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/text/language"
)

func TestDefaultTagIsAmericanEnglish(t *testing.T) {
	t.Parallel()

	if got := DefaultTag(); got != language.AmericanEnglish {
		t.Fatalf("DefaultTag() = %v, want %v", got, language.AmericanEnglish)
	}
}

func TestSupportedTagsReturnsCopy(t *testing.T) {
	t.Parallel()

	tags := SupportedTags()
	tags[0] = language.French
	if got := SupportedTags()[0]; got != language.AmericanEnglish {
		t.Fatalf("SupportedTags()[0] = %v after caller mutation, want %v", got, language.AmericanEnglish)
	}
}

func TestParseTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		ok    bool
	}{
		{name: "exact", value: "en-US", ok: true},
		{name: "base language", value: "en", ok: true},
		{name: "empty", value: "   ", ok: false},
		{name: "malformed", value: "not a tag!", ok: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tag, ok := ParseTag(tc.value)
			if ok != tc.ok {
				t.Fatalf("ParseTag(%q) ok = %t, want %t", tc.value, ok, tc.ok)
			}
			if tag != language.AmericanEnglish {
				t.Fatalf("ParseTag(%q) tag = %v, want %v", tc.value, tag, language.AmericanEnglish)
			}
		})
	}
}

func TestResolveTagPrefersQueryParam(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/?lang=en", nil)
	tag, persist := ResolveTag(req)
	if tag != language.AmericanEnglish {
		t.Fatalf("tag = %v, want %v", tag, language.AmericanEnglish)
	}
	if !persist {
		t.Fatal("expected query language to be persisted")
	}
}

func TestResolveTagFallsBackToAcceptLanguage(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "pt-BR,pt;q=0.9")
	tag, persist := ResolveTag(req)
	if tag != language.AmericanEnglish {
		t.Fatalf("tag = %v, want %v", tag, language.AmericanEnglish)
	}
	if persist {
		t.Fatal("header language should not be persisted")
	}
}

func TestResolveTagNilRequest(t *testing.T) {
	t.Parallel()

	tag, persist := ResolveTag(nil)
	if tag != DefaultTag() || persist {
		t.Fatalf("ResolveTag(nil) = (%v, %t), want (%v, false)", tag, persist, DefaultTag())
	}
}

func TestResolveLangSetsCookieForExplicitChoice(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/?lang=en-US", nil)
	rr := httptest.NewRecorder()
	if got := ResolveLang(rr, req); got != "en-US" {
		t.Fatalf("ResolveLang() = %q, want %q", got, "en-US")
	}
	if setCookie := rr.Header().Get("Set-Cookie"); !strings.Contains(setCookie, LangCookieName+"=en-US") {
		t.Fatalf("Set-Cookie = %q, want %s=en-US", setCookie, LangCookieName)
	}
}

func TestResolveLangWithoutChoiceLeavesCookiesAlone(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	if got := ResolveLang(rr, req); got != "en-US" {
		t.Fatalf("ResolveLang() = %q, want %q", got, "en-US")
	}
	if setCookie := rr.Header().Get("Set-Cookie"); setCookie != "" {
		t.Fatalf("Set-Cookie = %q, want empty", setCookie)
	}
}
