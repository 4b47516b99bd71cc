package hxalpine

// Event binding prefix (shorthand for x-on:).
const eventPrefix = "@"

// At is the namespace for event listeners:
//
//	hxalpine.At.Click.Attrs("open = !open")               // @click
//	hxalpine.At.Submit.Prevent().Attrs("save()")          // @submit.prevent
//	hxalpine.At.Keydown.Ctrl().Enter().Attrs("save()")    // @keydown.ctrl.enter
//	hxalpine.At.Input.Debounce(300*time.Millisecond).Attrs("search()")
//
// Events without a field are built with Named or Exact.
var At = EventNamespace{
	Click:      event("click"),
	Dblclick:   event("dblclick"),
	Input:      event("input"),
	Change:     event("change"),
	Submit:     event("submit"),
	Keydown:    event("keydown"),
	Keyup:      event("keyup"),
	Keypress:   event("keypress"),
	Focus:      event("focus"),
	Blur:       event("blur"),
	Mouseenter: event("mouseenter"),
	Mouseleave: event("mouseleave"),
	Mouseover:  event("mouseover"),
	Mouseout:   event("mouseout"),
	Scroll:     event("scroll"),
	Resize:     event("resize"),
	Load:       event("load"),
}

// EventNamespace holds builders for common DOM events. Use the At variable.
type EventNamespace struct {
	Click      Attr
	Dblclick   Attr
	Input      Attr
	Change     Attr
	Submit     Attr
	Keydown    Attr
	Keyup      Attr
	Keypress   Attr
	Focus      Attr
	Blur       Attr
	Mouseenter Attr
	Mouseleave Attr
	Mouseover  Attr
	Mouseout   Attr
	Scroll     Attr
	Resize     Attr
	Load       Attr
}

// Named returns a listener for a custom event, normalized with AttrName:
//
//	hxalpine.At.Named("item_saved").Window() // @item-saved.window
func (EventNamespace) Named(name string) Attr {
	return event(AttrName(name))
}

// Exact returns a listener for the event name as given, for names with
// characters AttrName would alter or that are not identifiers at all:
//
//	hxalpine.At.Exact("update:value") // @update:value
func (EventNamespace) Exact(name string) Attr {
	return event(name)
}

func event(name string) Attr {
	return NewAttr(eventPrefix, name)
}
