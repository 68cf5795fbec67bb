package flash

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/louisbranch/jobportal/internal/services/web/platform/requestmeta"
)

func TestWriteAndReadAndClearRoundTrip(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/admin/jobs", nil)
	writeRR := httptest.NewRecorder()

	Write(writeRR, req, NoticeSuccessText("Job posted successfully."))
	setCookieHeader := writeRR.Header().Get("Set-Cookie")
	if setCookieHeader == "" {
		t.Fatalf("expected Set-Cookie header")
	}
	cookie, err := http.ParseSetCookie(setCookieHeader)
	if err != nil {
		t.Fatalf("ParseSetCookie() error = %v", err)
	}
	req.AddCookie(cookie)

	readRR := httptest.NewRecorder()
	notice, ok := ReadAndClear(readRR, req)
	if !ok {
		t.Fatalf("ReadAndClear() ok = false, want true")
	}
	if notice.Kind != KindSuccess {
		t.Fatalf("notice.Kind = %q, want %q", notice.Kind, KindSuccess)
	}
	if notice.Message != "Job posted successfully." {
		t.Fatalf("notice.Message = %q", notice.Message)
	}
	cleared := readRR.Header().Get("Set-Cookie")
	if !strings.Contains(cleared, "Max-Age=0") {
		t.Fatalf("expected clearing Set-Cookie header, got %q", cleared)
	}
}

func TestReadAndClearInvalidCookieValueStillClears(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/admin/jobs", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "not-base64"})
	rr := httptest.NewRecorder()

	_, ok := ReadAndClear(rr, req)
	if ok {
		t.Fatalf("ReadAndClear() ok = true, want false")
	}
	if rr.Header().Get("Set-Cookie") == "" {
		t.Fatalf("expected clear Set-Cookie header")
	}
}

func TestWriteIgnoresEmptyNotice(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	Write(rr, req, Notice{Kind: KindSuccess, Key: " ", Message: ""})
	if got := rr.Header().Get("Set-Cookie"); got != "" {
		t.Fatalf("Set-Cookie = %q, want empty", got)
	}
}

func TestWriteMarksCookieSecureBehindTrustedProxy(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	rr := httptest.NewRecorder()

	WriteWithPolicy(rr, req, NoticeErrorText("nope"), requestmeta.SchemePolicy{TrustForwardedProto: true})
	if got := rr.Header().Get("Set-Cookie"); !strings.Contains(got, "Secure") {
		t.Fatalf("Set-Cookie = %q, want Secure", got)
	}
}

func TestNormalizeRejectsUnknownKindAndTruncates(t *testing.T) {
	t.Parallel()

	if _, ok := Normalize(Notice{Kind: "shout", Message: "hi"}); ok {
		t.Fatal("Normalize() accepted unknown kind")
	}
	long := strings.Repeat("x", maxMessageLength+10)
	notice, ok := Normalize(Notice{Kind: " ERROR ", Message: long})
	if !ok {
		t.Fatal("Normalize() rejected valid notice")
	}
	if notice.Kind != KindError {
		t.Fatalf("Kind = %q, want %q", notice.Kind, KindError)
	}
	if len(notice.Message) != maxMessageLength {
		t.Fatalf("len(Message) = %d, want %d", len(notice.Message), maxMessageLength)
	}
}
