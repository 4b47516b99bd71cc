package hxalpine

import (
	"strconv"
	"time"

	"github.com/a-h/templ"
	"github.com/pthm/hxalpine/lib/jsvalue"
)

// Flash levels for toast notifications.
const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashWarning = "warning"
	FlashInfo    = "info"
)

// DefaultDismiss is how long a toast stays visible.
const DefaultDismiss = 3 * time.Second

// Flash represents a one-time notification message.
//
// Flashes are rendered by Toasts as Alpine-driven toasts that hide
// themselves after a delay and can be dismissed on click:
//
//	hxalpine.Toasts([]hxalpine.Flash{{Level: hxalpine.FlashSuccess, Message: "Saved!"}}, 0)
type Flash struct {
	Level   string // success, error, warning, info
	Message string
}

// Notification returns the attributes of a self-dismissing toast: visible
// on load, hidden after dismiss (never when dismiss <= 0) and on click.
func Notification(level string, dismiss time.Duration) templ.Attributes {
	attrs := Merge(
		Toggle("show", true),
		X.Show("show"),
		X.Transition(),
		At.Click.Attrs("show = false"),
		templ.Attributes{
			"class": "toast toast-" + level,
			"role":  "status",
		},
	)
	if dismiss > 0 {
		attrs = Merge(attrs, X.Init("setTimeout(() => show = false, "+strconv.FormatInt(dismiss.Milliseconds(), 10)+")"))
	}
	return attrs
}

// Toasts renders flashes inside the #toasts container. A zero dismiss uses
// DefaultDismiss; a negative one keeps toasts until clicked.
//
// The container listens for a window-level "flash" event, so client code
// can add a toast with $dispatch('flash', { level: 'info', message: '...' }).
func Toasts(flashes []Flash, dismiss time.Duration) templ.Component {
	if dismiss == 0 {
		dismiss = DefaultDismiss
	}

	items := make([]templ.Component, 0, len(flashes)+1)
	for _, f := range flashes {
		items = append(items, Element("div", Notification(f.Level, dismiss), Text(f.Message)))
	}
	items = append(items, Element("template", X.For("item in items"),
		Element("div", Merge(
			Notification("", dismiss),
			X.Bind.Class.Attrs(`"toast toast-" + item.level`),
			X.Text("item.message"),
		)),
	))

	container := Merge(
		X.DataOf(jsvalue.Obj(jsvalue.M("items", jsvalue.Array{}))),
		At.Named("flash").Window().Attrs("items.push($event.detail)"),
		templ.Attributes{"id": "toasts", "class": "toast-container"},
	)
	return Element("div", container, items...)
}
