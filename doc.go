// Package hxalpine builds Alpine.js attributes for server-rendered HTML
// written with Go and Templ.
//
// Every builder returns a templ.Attributes dictionary, so the result can be
// spread onto any element and combined with Merge. The renderer escapes the
// values once; hxalpine never emits HTML entities itself.
//
// # Events
//
// At holds one builder per common DOM event. Modifiers chain and each call
// returns a new builder, so partial chains can be shared:
//
//	<form { hxalpine.At.Submit.Prevent().Attrs("save()")... }>
//	<input { hxalpine.At.Keydown.Ctrl().Enter().Attrs("send()")... }>
//	<input { hxalpine.At.Input.Debounce(300*time.Millisecond).Attrs("search()")... }>
//
// Events without a field are built with At.Named, which normalizes Go-style
// names (item_saved becomes item-saved), or At.Exact.
//
// # Directives
//
// X holds the x-* directives. X.Bind and X.Model are nested namespaces:
//
//	hxalpine.X.Show("open")
//	hxalpine.X.Bind.Class.Attrs("{ active: open }")
//	hxalpine.X.Model.Number.Attrs("quantity")
//	hxalpine.X.Cloak() // bare x-cloak attribute
//
// # Component State
//
// X.Data takes a hand-written JavaScript expression. X.DataOf takes a
// jsvalue.Value and serializes it, and X.DataFrom converts a Go value first:
//
//	hxalpine.X.DataOf(jsvalue.Obj(
//	    jsvalue.M("count", jsvalue.Int(0)),
//	    jsvalue.M("increment", jsvalue.Raw("function() { this.count++ }")),
//	))
//
// Strings are serialized as JavaScript string literals with quotes and
// markup characters escaped, so user data can go into x-data safely.
// jsvalue.Raw is inserted verbatim and must never hold untrusted input.
//
// # Patterns
//
// Toggle, Dropdown, Modal, Tabs and Clipboard return ready-made dictionaries
// for common widgets. Notification and Toasts render flash messages as
// self-dismissing toasts.
//
// # Testing
//
// TestRender renders a dictionary on a <div> and parses it back the way a
// browser would, which lets tests assert on the text Alpine evaluates:
//
//	result, _ := hxalpine.TestRender(hxalpine.X.DataOf(state))
//	result.Get("x-data")
package hxalpine
