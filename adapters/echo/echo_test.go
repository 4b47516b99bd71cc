package hxalpineecho

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pthm/hxalpine"
	"github.com/pthm/hxalpine/lib/seal"
)

var testKey = []byte("test-key")

func newServer() *echo.Echo {
	e := echo.New()
	e.Use(Middleware(WithKey(testKey)))
	e.POST("/save", func(c echo.Context) error {
		AddFlash(c, hxalpine.FlashSuccess, "Saved!")
		return Redirect(c, http.StatusSeeOther, "/")
	})
	e.GET("/", func(c echo.Context) error {
		return Render(c, Toasts(c, 0))
	})
	return e
}

func TestRender(t *testing.T) {
	e := echo.New()
	e.GET("/", func(c echo.Context) error {
		return Render(c, hxalpine.Element("div", hxalpine.X.Show("open")))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}
	if rec.Body.String() != `<div x-show="open"></div>` {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestFlashSurvivesRedirect(t *testing.T) {
	e := newServer()

	req := httptest.NewRequest(http.MethodPost, "/save", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("POST status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != CookieName {
		t.Fatalf("cookies = %v, want %s", cookies, CookieName)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, ">Saved!</div>") {
		t.Errorf("body = %q, want flash message", body)
	}
	if !strings.Contains(body, `class="toast toast-success"`) {
		t.Errorf("body = %q, want success toast", body)
	}

	expired := rec.Result().Cookies()
	if len(expired) != 1 || expired[0].MaxAge >= 0 {
		t.Errorf("cookies = %v, want expired %s", expired, CookieName)
	}
}

func TestNoFlashWithoutCookie(t *testing.T) {
	e := newServer()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if strings.Contains(rec.Body.String(), "toast-success") {
		t.Errorf("body = %q, want no server toasts", rec.Body.String())
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Errorf("cookies = %v, want none", rec.Result().Cookies())
	}
}

func TestMalformedCookieIsDiscarded(t *testing.T) {
	e := newServer()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "!!not-base64"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if strings.Contains(rec.Body.String(), "toast-success") {
		t.Errorf("body = %q, want no server toasts", rec.Body.String())
	}
}

func TestForgedCookieIsDiscarded(t *testing.T) {
	e := newServer()

	other, _ := seal.New([]byte("attacker-key"))
	forged, err := encodeFlashes(other, []hxalpine.Flash{{Level: hxalpine.FlashSuccess, Message: "Click here"}})
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: forged})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if strings.Contains(rec.Body.String(), "Click here") {
		t.Errorf("body = %q, forged flash was rendered", rec.Body.String())
	}
}

func TestRedirectWithoutMiddleware(t *testing.T) {
	e := echo.New()
	e.POST("/save", func(c echo.Context) error {
		AddFlash(c, hxalpine.FlashInfo, "lost")
		return Redirect(c, http.StatusSeeOther, "/")
	})

	var got error
	e.HTTPErrorHandler = func(err error, c echo.Context) { got = err }

	req := httptest.NewRequest(http.MethodPost, "/save", nil)
	e.ServeHTTP(httptest.NewRecorder(), req)

	if !errors.Is(got, ErrNoMiddleware) {
		t.Errorf("error = %v, want ErrNoMiddleware", got)
	}
}

func TestFlashRoundTrip(t *testing.T) {
	codec, err := seal.New(testKey)
	if err != nil {
		t.Fatal(err)
	}
	flashes := []hxalpine.Flash{
		{Level: hxalpine.FlashError, Message: "Failed & retried"},
		{Level: hxalpine.FlashInfo, Message: "ünïcödé"},
	}

	value, err := encodeFlashes(codec, flashes)
	if err != nil {
		t.Fatalf("encodeFlashes() error = %v", err)
	}
	decoded, err := decodeFlashes(codec, value)
	if err != nil {
		t.Fatalf("decodeFlashes() error = %v", err)
	}
	if len(decoded) != 2 || decoded[0] != flashes[0] || decoded[1] != flashes[1] {
		t.Errorf("decodeFlashes() = %v, want %v", decoded, flashes)
	}
}
