package hxalpine

import "github.com/a-h/templ"

// Merge combines attribute dictionaries into a new one:
//
//	hxalpine.Merge(
//	    hxalpine.X.Data(`{ email: "" }`),
//	    hxalpine.At.Submit.Prevent().Attrs("send()"),
//	    hxalpine.At.Keydown.Escape().Attrs("cancel()"),
//	)
//
// Later dictionaries win on duplicate keys; the overwrite is silent. Nil
// dictionaries are skipped and the inputs are never modified.
func Merge(attrs ...templ.Attributes) templ.Attributes {
	n := 0
	for _, a := range attrs {
		n += len(a)
	}
	merged := make(templ.Attributes, n)
	for _, a := range attrs {
		for k, v := range a {
			merged[k] = v
		}
	}
	return merged
}
