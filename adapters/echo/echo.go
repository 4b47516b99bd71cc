// Package hxalpineecho provides Echo framework integration for hxalpine.
//
// Render writes components, and the flash helpers carry toast messages
// across a redirect:
//
//	e := echo.New()
//	e.Use(hxalpineecho.Middleware(hxalpineecho.WithKey(key)))
//
//	e.POST("/save", func(c echo.Context) error {
//	    hxalpineecho.AddFlash(c, hxalpine.FlashSuccess, "Saved!")
//	    return hxalpineecho.Redirect(c, http.StatusSeeOther, "/")
//	})
//	e.GET("/", func(c echo.Context) error {
//	    return hxalpineecho.Render(c, page(hxalpineecho.Toasts(c, 0)))
//	})
package hxalpineecho

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/pthm/hxalpine"
	"github.com/pthm/hxalpine/lib/seal"
)

// CookieName is the cookie that holds flashes between a redirect and the
// page it leads to.
const CookieName = "hxalpine_flash"

const (
	flashKey = "hxalpine.flashes"
	codecKey = "hxalpine.codec"
)

// ErrNoMiddleware is returned by Redirect when Middleware is not installed.
var ErrNoMiddleware = errors.New("hxalpineecho: flash middleware not installed")

// Option configures Middleware.
type Option func(*options)

type options struct {
	key []byte
}

// WithKey sets the key that signs flash cookies. If not provided, a random
// key is generated (suitable for development only).
func WithKey(key []byte) Option {
	return func(o *options) {
		o.key = key
	}
}

// Render writes a templ component to the Echo response.
//
//	func handler(c echo.Context) error {
//	    return hxalpineecho.Render(c, myTemplate())
//	}
func Render(c echo.Context, component templ.Component) error {
	c.Response().Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(c.Request().Context(), c.Response())
}

// Middleware loads flashes left by the previous response and expires the
// cookie, so each flash is shown once. Cookies that are malformed or fail
// signature verification are discarded.
func Middleware(opts ...Option) echo.MiddlewareFunc {
	codec := newCodec(opts)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(codecKey, codec)
			if ck, err := c.Cookie(CookieName); err == nil {
				if flashes, err := decodeFlashes(codec, ck.Value); err == nil {
					c.Set(flashKey, flashes)
				}
				c.SetCookie(&http.Cookie{Name: CookieName, Path: "/", MaxAge: -1})
			}
			return next(c)
		}
	}
}

// AddFlash queues a flash for this request.
func AddFlash(c echo.Context, level, message string) {
	c.Set(flashKey, append(Flashes(c), hxalpine.Flash{Level: level, Message: message}))
}

// Flashes returns the flashes queued for this request.
func Flashes(c echo.Context) []hxalpine.Flash {
	flashes, _ := c.Get(flashKey).([]hxalpine.Flash)
	return flashes
}

// Redirect stores queued flashes in a cookie and redirects, so they render
// on the next page.
func Redirect(c echo.Context, code int, url string) error {
	if flashes := Flashes(c); len(flashes) > 0 {
		codec, ok := c.Get(codecKey).(*seal.Codec)
		if !ok {
			return ErrNoMiddleware
		}
		value, err := encodeFlashes(codec, flashes)
		if err != nil {
			return err
		}
		c.SetCookie(&http.Cookie{
			Name:     CookieName,
			Value:    value,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return c.Redirect(code, url)
}

// Toasts renders the request's flashes with hxalpine.Toasts.
func Toasts(c echo.Context, dismiss time.Duration) templ.Component {
	return hxalpine.Toasts(Flashes(c), dismiss)
}

func newCodec(opts []Option) *seal.Codec {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	key := o.key
	if key == nil {
		var err error
		if key, err = seal.RandomKey(); err != nil {
			panic(fmt.Sprintf("hxalpineecho: failed to generate random key: %v", err))
		}
	}

	codec, err := seal.New(key)
	if err != nil {
		panic(fmt.Sprintf("hxalpineecho: %v", err))
	}
	return codec
}

func encodeFlashes(codec *seal.Codec, flashes []hxalpine.Flash) (string, error) {
	value, err := codec.Seal(flashes, seal.Signed)
	if err != nil {
		return "", fmt.Errorf("hxalpineecho: encode flashes: %w", err)
	}
	return value, nil
}

func decodeFlashes(codec *seal.Codec, value string) ([]hxalpine.Flash, error) {
	var flashes []hxalpine.Flash
	if err := codec.Open(value, seal.Signed, &flashes); err != nil {
		return nil, err
	}
	return flashes, nil
}
