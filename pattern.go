package hxalpine

import (
	"github.com/a-h/templ"
	"github.com/pthm/hxalpine/lib/jsvalue"
)

// Pre-built attribute sets for common interactive widgets. Each pattern is
// a plain dictionary, so it composes with Merge:
//
//	hxalpine.Merge(hxalpine.Dropdown(), templ.Attributes{"class": "relative"})
//
// State names passed to patterns are JavaScript identifiers chosen by the
// developer and are written into expressions unquoted. Display strings (tab
// names, clipboard text) are encoded with jsvalue.

// Toggle declares a boolean state variable.
//
//	hxalpine.Toggle("expanded", false) // x-data="{ "expanded": false }"
func Toggle(name string, initial bool) templ.Attributes {
	return X.DataOf(jsvalue.Obj(jsvalue.M(name, jsvalue.Bool(initial))))
}

// ToggleButton flips name on click and mirrors it in aria-expanded.
func ToggleButton(name string) templ.Attributes {
	return Merge(
		At.Click.Attrs(name+" = !"+name),
		X.Bind.Named("aria_expanded").Attrs(name),
	)
}

// Dropdown is the container of a dropdown menu. It owns the open state and
// closes on outside clicks and on Escape.
//
//	<div { hxalpine.Dropdown()... }>
//	    <button { hxalpine.DropdownTrigger()... }>Menu</button>
//	    <ul { hxalpine.DropdownMenu()... }>...</ul>
//	</div>
func Dropdown() templ.Attributes {
	return Merge(
		Toggle("open", false),
		At.Click.Outside().Attrs("open = false"),
		At.Keydown.Escape().Window().Attrs("open = false"),
	)
}

// DropdownTrigger toggles the enclosing Dropdown.
func DropdownTrigger() templ.Attributes {
	return ToggleButton("open")
}

// DropdownMenu is shown while the enclosing Dropdown is open.
func DropdownMenu() templ.Attributes {
	return Merge(
		X.Show("open"),
		X.Transition(),
		X.Cloak(),
	)
}

// Modal declares a dialog's visibility state. Escape closes it.
func Modal(name string) templ.Attributes {
	return Merge(
		Toggle(name, false),
		At.Keydown.Escape().Window().Attrs(name+" = false"),
	)
}

// ModalOpen opens the modal on click.
func ModalOpen(name string) templ.Attributes {
	return At.Click.Attrs(name + " = true")
}

// ModalClose closes the modal on click.
func ModalClose(name string) templ.Attributes {
	return At.Click.Attrs(name + " = false")
}

// ModalPanel is the overlay shown while the modal is open. Clicking the
// overlay itself, not its content, closes it.
func ModalPanel(name string) templ.Attributes {
	return Merge(
		X.Show(name),
		X.Transition(),
		X.Cloak(),
		At.Click.Self().Attrs(name+" = false"),
		templ.Attributes{"role": "dialog", "aria-modal": "true"},
	)
}

// Tabs declares the selected tab, starting at initial.
func Tabs(initial string) templ.Attributes {
	return X.DataOf(jsvalue.Obj(jsvalue.M("tab", jsvalue.String(initial))))
}

// Tab selects name on click and marks itself active while selected.
func Tab(name string) templ.Attributes {
	selected := "tab === " + jsvalue.Encode(jsvalue.String(name))
	return Merge(
		At.Click.Attrs("tab = "+jsvalue.Encode(jsvalue.String(name))),
		X.Bind.Class.Attrs(`{ "active": `+selected+` }`),
		X.Bind.Named("aria_selected").Attrs(selected),
		templ.Attributes{"role": "tab"},
	)
}

// TabPanel is shown while name is the selected tab.
func TabPanel(name string) templ.Attributes {
	return Merge(
		X.Show("tab === "+jsvalue.Encode(jsvalue.String(name))),
		templ.Attributes{"role": "tabpanel"},
	)
}

// Clipboard copies text on click and sets copied for two seconds, which
// can drive a "Copied!" label with X.Show("copied").
func Clipboard(text string) templ.Attributes {
	return Merge(
		Toggle("copied", false),
		At.Click.Attrs("navigator.clipboard.writeText("+jsvalue.Encode(jsvalue.String(text))+
			"); copied = true; setTimeout(() => copied = false, 2000)"),
	)
}
