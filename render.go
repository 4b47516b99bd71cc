package hxalpine

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
)

// Render writes a templ component to the HTTP response.
//
// Sets Content-Type to text/html and renders the component using the
// request's context:
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    hxalpine.Render(w, r, page())
//	}
func Render(w http.ResponseWriter, r *http.Request, component templ.Component) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(r.Context(), w)
}

// RenderAttrs writes attrs as HTML attributes, each preceded by a space.
//
// templ performs the HTML escaping of values, exactly once. Boolean true
// renders a bare attribute and false omits it. Keys are written in sorted
// order.
func RenderAttrs(ctx context.Context, w io.Writer, attrs templ.Attributes) error {
	return templ.RenderAttributes(ctx, w, attrs)
}

// voidElements cannot have children or a closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// Element returns a templ component rendering tag with attrs and children.
// It is meant for code that builds markup in Go rather than in .templ files:
//
//	hxalpine.Element("button", hxalpine.At.Click.Attrs("count++"),
//	    hxalpine.Text("Increment"),
//	)
//
// tag is written as is and must be a trusted element name. Children of void
// elements (input, img, ...) are ignored.
func Element(tag string, attrs templ.Attributes, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<"+tag); err != nil {
			return err
		}
		if err := RenderAttrs(ctx, w, attrs); err != nil {
			return err
		}
		if _, err := io.WriteString(w, ">"); err != nil {
			return err
		}
		if voidElements[tag] {
			return nil
		}
		for _, child := range children {
			if child == nil {
				continue
			}
			if err := child.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</"+tag+">")
		return err
	})
}

// Text returns a templ component that writes s as escaped HTML text.
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}

// Fragment renders components one after another without a wrapper.
func Fragment(children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, child := range children {
			if child == nil {
				continue
			}
			if err := child.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}
