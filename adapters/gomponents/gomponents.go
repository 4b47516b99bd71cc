// Package hxalpinegomponents lets hxalpine builders decorate gomponents
// element trees.
//
//	html.Button(
//	    hxalpinegomponents.Attrs(hxalpine.At.Click.Prevent().Attrs("count++")),
//	    g.Text("Increment"),
//	)
//
// gomponents escapes attribute values when the tree is rendered, so the
// dictionaries are passed on unchanged.
package hxalpinegomponents

import (
	"fmt"
	"sort"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// Attrs converts attrs into a group of attribute nodes in sorted key order.
// Boolean true becomes a valueless attribute and false is dropped.
func Attrs(attrs ...templ.Attributes) g.Node {
	merged := make(map[string]any)
	for _, a := range attrs {
		for k, v := range a {
			merged[k] = v
		}
	}

	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	nodes := make([]g.Node, 0, len(keys))
	for _, k := range keys {
		switch v := merged[k].(type) {
		case string:
			nodes = append(nodes, g.Attr(k, v))
		case bool:
			if v {
				nodes = append(nodes, g.Attr(k))
			}
		case nil:
		default:
			nodes = append(nodes, g.Attr(k, fmt.Sprint(v)))
		}
	}
	return g.Group(nodes)
}
