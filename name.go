package hxalpine

import "strings"

// AttrName converts a Go-friendly identifier into an attribute name. One
// trailing underscore is dropped, which lets keywords be spelled as
// identifiers, and the remaining underscores become hyphens:
//
//	AttrName("class_")     // "class"
//	AttrName("aria_label") // "aria-label"
//	AttrName("my_event_")  // "my-event"
func AttrName(name string) string {
	name = strings.TrimSuffix(name, "_")
	return strings.ReplaceAll(name, "_", "-")
}
