package hxalpine

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"
)

// Attr builds a single Alpine attribute: a prefix ("@", "x-", "x-bind:"), a
// base name and a chain of modifiers. Attr is immutable; every modifier
// method returns a new value, so partially built attributes can be shared:
//
//	submit := hxalpine.At.Submit.Prevent()
//	form := submit.Attrs("save()")        // @submit.prevent="save()"
//	once := submit.Once().Attrs("init()") // @submit.prevent.once="init()"
//
// Attrs terminates the chain and returns the attribute dictionary.
type Attr struct {
	prefix string
	base   string
	mods   []string
}

// NewAttr creates an attribute builder from a prefix and a base name. The
// namespaces (At, X, X.Bind, X.Model) cover the common cases; NewAttr is for
// plugins with their own prefix:
//
//	hxalpine.NewAttr("x-intersect", "").Once().Attrs("load()") // x-intersect.once
func NewAttr(prefix, base string) Attr {
	return Attr{prefix: prefix, base: base}
}

// Key returns the attribute name: prefix, base and dot-joined modifiers.
// With an empty base, a trailing ":" on the prefix is dropped so that
// modifiers attach directly (x-model.lazy).
func (a Attr) Key() string {
	var sb strings.Builder
	if a.base != "" {
		sb.WriteString(a.prefix)
		sb.WriteString(a.base)
	} else {
		sb.WriteString(strings.TrimSuffix(a.prefix, ":"))
	}
	for _, m := range a.mods {
		sb.WriteByte('.')
		sb.WriteString(m)
	}
	return sb.String()
}

// Attrs returns the attribute dictionary {Key(): value}.
//
// value is the attribute text as Alpine will read it, usually a JavaScript
// expression. It is not escaped here: templ escapes it once when the
// element is rendered.
func (a Attr) Attrs(value string) templ.Attributes {
	return templ.Attributes{a.Key(): value}
}

// Mod appends custom modifiers. Names are normalized with AttrName, so
// Go-friendly spellings like "prevent_default" become "prevent-default".
func (a Attr) Mod(mods ...string) Attr {
	next := make([]string, 0, len(a.mods)+len(mods))
	next = append(next, a.mods...)
	for _, m := range mods {
		next = append(next, AttrName(m))
	}
	a.mods = next
	return a
}

func (a Attr) with(mods ...Modifier) Attr {
	next := slices.Grow(slices.Clone(a.mods), len(mods))
	for _, m := range mods {
		next = append(next, string(m))
	}
	a.mods = next
	return a
}

// Mods returns a copy of the modifier chain.
func (a Attr) Mods() []string {
	return slices.Clone(a.mods)
}

// Debounce waits until d has passed without another event: .debounce.300ms.
// d is written in whole milliseconds; see Throttle for rounding.
func (a Attr) Debounce(d time.Duration) Attr {
	return a.with(ModDebounce, Modifier(durationToken(d)))
}

// Throttle runs the handler at most once every d: .throttle.500ms.
//
// d is truncated to whole milliseconds, the unit Alpine parses. Positive
// durations below a millisecond become 1ms and negative ones become 0ms, so
// the token is never negative and never drops a requested delay.
func (a Attr) Throttle(d time.Duration) Attr {
	return a.with(ModThrottle, Modifier(durationToken(d)))
}

func durationToken(d time.Duration) string {
	ms := d.Milliseconds()
	switch {
	case d < 0:
		ms = 0
	case d > 0 && ms == 0:
		ms = 1
	}
	return strconv.FormatInt(ms, 10) + "ms"
}

// Prevent adds .prevent (preventDefault).
func (a Attr) Prevent() Attr { return a.with(ModPrevent) }

// Stop adds .stop (stopPropagation).
func (a Attr) Stop() Attr { return a.with(ModStop) }

// Once adds .once.
func (a Attr) Once() Attr { return a.with(ModOnce) }

// Self adds .self.
func (a Attr) Self() Attr { return a.with(ModSelf) }

// Window adds .window.
func (a Attr) Window() Attr { return a.with(ModWindow) }

// Document adds .document.
func (a Attr) Document() Attr { return a.with(ModDocument) }

// Outside adds .outside.
func (a Attr) Outside() Attr { return a.with(ModOutside) }

// Away adds .away, an alias of .outside.
func (a Attr) Away() Attr { return a.with(ModAway) }

// Passive adds .passive.
func (a Attr) Passive() Attr { return a.with(ModPassive) }

// Capture adds .capture.
func (a Attr) Capture() Attr { return a.with(ModCapture) }

// Enter adds .enter.
func (a Attr) Enter() Attr { return a.with(ModEnter) }

// Escape adds .escape.
func (a Attr) Escape() Attr { return a.with(ModEscape) }

// Space adds .space.
func (a Attr) Space() Attr { return a.with(ModSpace) }

// Tab adds .tab.
func (a Attr) Tab() Attr { return a.with(ModTab) }

// Up adds .up (the up arrow key).
func (a Attr) Up() Attr { return a.with(ModUp) }

// Down adds .down (the down arrow key).
func (a Attr) Down() Attr { return a.with(ModDown) }

// Left adds .left (the left arrow key).
func (a Attr) Left() Attr { return a.with(ModLeft) }

// Right adds .right (the right arrow key).
func (a Attr) Right() Attr { return a.with(ModRight) }

// Shift adds .shift.
func (a Attr) Shift() Attr { return a.with(ModShift) }

// Ctrl adds .ctrl.
func (a Attr) Ctrl() Attr { return a.with(ModCtrl) }

// Alt adds .alt.
func (a Attr) Alt() Attr { return a.with(ModAlt) }

// Meta adds .meta (Command on macOS, Windows key elsewhere).
func (a Attr) Meta() Attr { return a.with(ModMeta) }

// Cmd adds .cmd, an alias of .meta.
func (a Attr) Cmd() Attr { return a.with(ModCmd) }
