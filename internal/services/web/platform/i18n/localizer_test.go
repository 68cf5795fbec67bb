package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	webi18n "github.com/louisbranch/jobportal/internal/services/web/i18n"
)

func TestResolveLocalizerPersistsQuerySelection(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/?lang=pt-BR", nil)
	rr := httptest.NewRecorder()
	loc, lang := ResolveLocalizer(rr, req)
	if lang != "pt-BR" {
		t.Fatalf("lang = %q, want %q", lang, "pt-BR")
	}
	if got := loc.Sprintf("categories.empty"); got != "Nenhuma categoria encontrada" {
		t.Fatalf("localized empty = %q", got)
	}
	cookies := rr.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != webi18n.LangCookieName {
		t.Fatalf("cookies = %v, want language cookie", cookies)
	}
}

func TestResolveLocalizerDefaultsWithoutCookie(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	loc, lang := ResolveLocalizer(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if lang != "en-US" {
		t.Fatalf("lang = %q, want en-US", lang)
	}
	if got := loc.Sprintf("categories.empty"); got != "No categories found" {
		t.Fatalf("localized empty = %q", got)
	}
	if len(rr.Result().Cookies()) != 0 {
		t.Fatalf("unexpected cookies for default language")
	}
	if tag := ResolveTag(nil); tag.String() != "en-US" {
		t.Fatalf("ResolveTag(nil) = %s", tag)
	}
}
