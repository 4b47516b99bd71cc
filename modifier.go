package hxalpine

// Modifier is a dot-suffixed token that changes how Alpine handles a
// directive, as in @click.prevent or x-model.lazy.
//
// The Attr methods cover these names; Attr.Mod accepts any other modifier.
//
// See https://alpinejs.dev/directives/on#modifiers for the full list.
type Modifier string

// Event modifiers.
const (
	// ModPrevent calls preventDefault() on the event.
	ModPrevent Modifier = "prevent"

	// ModStop calls stopPropagation() on the event.
	ModStop Modifier = "stop"

	// ModOnce runs the handler only once.
	ModOnce Modifier = "once"

	// ModSelf only fires when event.target is the element itself.
	ModSelf Modifier = "self"

	// ModWindow attaches the listener to window.
	ModWindow Modifier = "window"

	// ModDocument attaches the listener to document.
	ModDocument Modifier = "document"

	// ModOutside fires when the event happens outside the element.
	ModOutside Modifier = "outside"

	// ModAway is the older spelling of ModOutside.
	ModAway Modifier = "away"

	// ModPassive registers a passive listener.
	ModPassive Modifier = "passive"

	// ModCapture listens during the capture phase.
	ModCapture Modifier = "capture"

	// ModDebounce and ModThrottle take a duration token such as "300ms".
	ModDebounce Modifier = "debounce"
	ModThrottle Modifier = "throttle"
)

// Key modifiers, used with keydown and keyup.
const (
	ModEnter  Modifier = "enter"
	ModEscape Modifier = "escape"
	ModSpace  Modifier = "space"
	ModTab    Modifier = "tab"
	ModUp     Modifier = "up"
	ModDown   Modifier = "down"
	ModLeft   Modifier = "left"
	ModRight  Modifier = "right"
	ModShift  Modifier = "shift"
	ModCtrl   Modifier = "ctrl"
	ModAlt    Modifier = "alt"
	ModMeta   Modifier = "meta"
	ModCmd    Modifier = "cmd"
)

// x-model modifiers.
const (
	// ModNumber casts the bound value to a number.
	ModNumber Modifier = "number"

	// ModLazy updates on change instead of input.
	ModLazy Modifier = "lazy"

	// ModTrim trims whitespace from the bound value.
	ModTrim Modifier = "trim"
)
