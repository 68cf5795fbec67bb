package errors

import (
	"errors"
	"net/http"
	"strings"
	"testing"
)

func TestHTTPStatusMapsKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want int
	}{
		{err: nil, want: http.StatusOK},
		{err: E(KindInvalidInput, "bad"), want: http.StatusBadRequest},
		{err: E(KindUnauthorized, "who"), want: http.StatusUnauthorized},
		{err: E(KindForbidden, "no"), want: http.StatusForbidden},
		{err: E(KindUnavailable, "down"), want: http.StatusServiceUnavailable},
		{err: E(KindNotFound, "missing"), want: http.StatusNotFound},
		{err: E(KindConflict, "conflict"), want: http.StatusConflict},
		{err: E(KindUnknown, "unknown"), want: http.StatusInternalServerError},
		{err: errors.New("boom"), want: http.StatusInternalServerError},
	}
	for _, tc := range tests {
		if got := HTTPStatus(tc.err); got != tc.want {
			t.Fatalf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestErrorStringFallsBackToKindWhenMessageEmpty(t *testing.T) {
	t.Parallel()

	err := Error{Kind: KindForbidden}
	if got := err.Error(); got != string(KindForbidden) {
		t.Fatalf("Error() = %q, want %q", got, string(KindForbidden))
	}
	wrapped := Error{Kind: KindUnavailable, Err: errors.New("dial")}
	if got := wrapped.Error(); got != "unavailable: dial" {
		t.Fatalf("Error() = %q, want %q", got, "unavailable: dial")
	}
}

func TestWrapKeepsCauseAndStack(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := Wrap(KindUnavailable, "error.web.backend_unavailable", "backend unavailable", cause)
	if !errors.Is(err, cause) {
		t.Fatalf("errors.Is(err, cause) = false")
	}
	if got := KindOf(err); got != KindUnavailable {
		t.Fatalf("KindOf() = %q, want %q", got, KindUnavailable)
	}
	if got := LocalizationKey(err); got != "error.web.backend_unavailable" {
		t.Fatalf("LocalizationKey() = %q", got)
	}
	if !strings.Contains(string(Stack(err)), "errors_test.go") {
		t.Fatalf("expected stack to reference the caller, got %q", Stack(err))
	}
}

func TestLocalizationKeyAndKindForUntypedErrors(t *testing.T) {
	t.Parallel()

	if got := LocalizationKey(errors.New("plain")); got != "" {
		t.Fatalf("LocalizationKey() = %q, want empty", got)
	}
	if got := KindOf(errors.New("plain")); got != KindUnknown {
		t.Fatalf("KindOf() = %q, want %q", got, KindUnknown)
	}
	if Stack(errors.New("plain")) != nil {
		t.Fatal("Stack() should be nil for untyped errors")
	}
}
