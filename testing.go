package hxalpine

import (
	"bytes"
	"context"
	"errors"
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/net/html"
)

// ErrNoElement is returned when rendered output contains no element.
var ErrNoElement = errors.New("hxalpine: rendered output has no element")

// TestResult holds a rendered element as a browser would see it.
//
// Attrs maps each attribute name to its value after HTML entity decoding,
// which is the text Alpine evaluates. Use it to check that a value survives
// the single escaping pass of the renderer.
type TestResult struct {
	HTML  string
	Tag   string
	Attrs map[string]string
}

// TestRender renders attrs on a <div> and parses the result back.
//
//	result, err := hxalpine.TestRender(hxalpine.X.DataOf(state))
//	data := result.Get("x-data") // unescaped JavaScript
func TestRender(attrs templ.Attributes) (*TestResult, error) {
	return TestRenderComponent(Element("div", attrs))
}

// TestRenderComponent renders a component and parses its first element.
func TestRenderComponent(component templ.Component) (*TestResult, error) {
	return TestRenderWithContext(context.Background(), component)
}

// TestRenderWithContext renders a component with a custom context and
// parses its first element.
func TestRenderWithContext(ctx context.Context, component templ.Component) (*TestResult, error) {
	var buf bytes.Buffer
	if err := component.Render(ctx, &buf); err != nil {
		return nil, err
	}

	doc, err := html.Parse(strings.NewReader(buf.String()))
	if err != nil {
		return nil, err
	}
	el := firstElement(doc)
	if el == nil {
		return nil, ErrNoElement
	}

	result := &TestResult{
		HTML:  buf.String(),
		Tag:   el.Data,
		Attrs: make(map[string]string, len(el.Attr)),
	}
	for _, a := range el.Attr {
		result.Attrs[a.Key] = a.Val
	}
	return result, nil
}

// firstElement returns the first element inside <body>, skipping the
// html, head and body elements the parser adds.
func firstElement(n *html.Node) *html.Node {
	var body *html.Node
	var find func(*html.Node)
	find = func(n *html.Node) {
		if body != nil {
			return
		}
		if n.Type == html.ElementNode && n.Data == "body" {
			body = n
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			find(c)
		}
	}
	find(n)
	if body == nil {
		return nil
	}
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return c
		}
	}
	return nil
}

// Has reports whether the element carries the attribute.
func (r *TestResult) Has(key string) bool {
	_, ok := r.Attrs[key]
	return ok
}

// Get returns the decoded attribute value, or "" when absent.
func (r *TestResult) Get(key string) string {
	return r.Attrs[key]
}

// HTMLContains returns true if the raw HTML contains the substring.
func (r *TestResult) HTMLContains(substr string) bool {
	return strings.Contains(r.HTML, substr)
}
