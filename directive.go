package hxalpine

import (
	"time"

	"github.com/a-h/templ"
	"github.com/pthm/hxalpine/lib/jsvalue"
)

const (
	directivePrefix = "x-"
	bindPrefix      = "x-bind:"
	modelPrefix     = "x-model"
)

// X is the namespace for x-* directives:
//
//	hxalpine.X.Data(`{ open: false }`)
//	hxalpine.X.DataOf(jsvalue.Obj(jsvalue.M("open", jsvalue.Bool(false))))
//	hxalpine.X.Show("open")
//	hxalpine.X.Bind.Class.Attrs("{ active: open }")
//	hxalpine.X.Model.Lazy.Attrs("email")
var X = DirectiveNamespace{
	Bind: BindNamespace{
		Class:    bind("class"),
		Style:    bind("style"),
		Href:     bind("href"),
		Src:      bind("src"),
		Value:    bind("value"),
		Disabled: bind("disabled"),
		Checked:  bind("checked"),
		Selected: bind("selected"),
		Readonly: bind("readonly"),
	},
	Model: ModelNamespace{
		Number: NewAttr(modelPrefix, "").with(ModNumber),
		Lazy:   NewAttr(modelPrefix, "").with(ModLazy),
		Trim:   NewAttr(modelPrefix, "").with(ModTrim),
	},
}

// DirectiveNamespace builds x-* directives. Use the X variable.
type DirectiveNamespace struct {
	// Bind builds x-bind:* attributes.
	Bind BindNamespace

	// Model builds x-model and its modifiers.
	Model ModelNamespace
}

func directive(name, expr string) templ.Attributes {
	return templ.Attributes{directivePrefix + name: expr}
}

// Text sets the element's text content: x-text.
func (DirectiveNamespace) Text(expr string) templ.Attributes { return directive("text", expr) }

// HTML sets the element's inner HTML: x-html. The expression result is not
// sanitized by Alpine.
func (DirectiveNamespace) HTML(expr string) templ.Attributes { return directive("html", expr) }

// Show toggles display with CSS: x-show.
func (DirectiveNamespace) Show(expr string) templ.Attributes { return directive("show", expr) }

// If adds or removes the element from the DOM: x-if. Use on <template>.
func (DirectiveNamespace) If(expr string) templ.Attributes { return directive("if", expr) }

// For repeats a <template> for each item: x-for="item in items".
func (DirectiveNamespace) For(expr string) templ.Attributes { return directive("for", expr) }

// Ref names the element for $refs: x-ref.
func (DirectiveNamespace) Ref(name string) templ.Attributes { return directive("ref", name) }

// Init runs an expression when the component initializes: x-init.
func (DirectiveNamespace) Init(expr string) templ.Attributes { return directive("init", expr) }

// Effect re-runs an expression when its dependencies change: x-effect.
func (DirectiveNamespace) Effect(expr string) templ.Attributes { return directive("effect", expr) }

// Teleport moves a <template> to the element matching selector: x-teleport.
func (DirectiveNamespace) Teleport(selector string) templ.Attributes {
	return directive("teleport", selector)
}

// Data declares component state from a JavaScript expression written by
// hand: x-data.
func (DirectiveNamespace) Data(expr string) templ.Attributes { return directive("data", expr) }

// DataOf declares component state from a Value, serialized with
// jsvalue.Encode:
//
//	hxalpine.X.DataOf(jsvalue.Obj(
//	    jsvalue.M("count", jsvalue.Int(0)),
//	    jsvalue.M("inc", jsvalue.Raw("function() { this.count++ }")),
//	))
//	// x-data="{ &#34;count&#34;: 0, &#34;inc&#34;: function() { this.count++ } }"
func (DirectiveNamespace) DataOf(v jsvalue.Value) templ.Attributes {
	return directive("data", jsvalue.Encode(v))
}

// DataFrom declares component state from a native Go value converted with
// jsvalue.From. Map keys are sorted; use a struct or jsvalue.Object when
// member order matters.
func (DirectiveNamespace) DataFrom(x any) templ.Attributes {
	return directive("data", jsvalue.Marshal(x))
}

// Cloak hides the element until Alpine has initialized: x-cloak. It renders
// as a bare attribute.
func (DirectiveNamespace) Cloak() templ.Attributes {
	return templ.Attributes{directivePrefix + "cloak": true}
}

// Ignore stops Alpine from initializing the element's subtree: x-ignore.
func (DirectiveNamespace) Ignore() templ.Attributes {
	return templ.Attributes{directivePrefix + "ignore": true}
}

// Transition applies Alpine's default enter/leave transition. An optional
// expression is used as the attribute value.
func (DirectiveNamespace) Transition(expr ...string) templ.Attributes {
	value := ""
	if len(expr) > 0 {
		value = expr[0]
	}
	return directive("transition", value)
}

// Custom builds a directive that has no method, such as a plugin's. The
// name is normalized with AttrName:
//
//	hxalpine.X.Custom("intersect", "load()") // x-intersect="load()"
func (DirectiveNamespace) Custom(name, expr string) templ.Attributes {
	return directive(AttrName(name), expr)
}

// Directive returns a modifiable builder for a custom directive:
//
//	hxalpine.X.Directive("intersect").Once().Attrs("load()") // x-intersect.once
func (DirectiveNamespace) Directive(name string) Attr {
	return NewAttr(directivePrefix, AttrName(name))
}

// BindNamespace builds x-bind:* attributes. Use X.Bind.
type BindNamespace struct {
	Class    Attr
	Style    Attr
	Href     Attr
	Src      Attr
	Value    Attr
	Disabled Attr
	Checked  Attr
	Selected Attr
	Readonly Attr
}

// Named binds any attribute, normalized with AttrName:
//
//	hxalpine.X.Bind.Named("aria_expanded").Attrs("open") // x-bind:aria-expanded
func (BindNamespace) Named(name string) Attr {
	return bind(AttrName(name))
}

// Exact binds the attribute name as given.
func (BindNamespace) Exact(name string) Attr {
	return bind(name)
}

func bind(name string) Attr {
	return NewAttr(bindPrefix, name)
}

// ModelNamespace builds x-model two-way bindings. Use X.Model.
type ModelNamespace struct {
	// Number casts the bound value: x-model.number.
	Number Attr

	// Lazy syncs on change instead of input: x-model.lazy.
	Lazy Attr

	// Trim trims the bound value: x-model.trim.
	Trim Attr
}

// Attrs returns a plain x-model binding.
func (ModelNamespace) Attrs(expr string) templ.Attributes {
	return templ.Attributes{modelPrefix: expr}
}

// Debounce delays updates until input pauses for d: x-model.debounce.300ms.
func (ModelNamespace) Debounce(d time.Duration) Attr {
	return NewAttr(modelPrefix, "").Debounce(d)
}

// Throttle limits updates to one every d: x-model.throttle.500ms.
func (ModelNamespace) Throttle(d time.Duration) Attr {
	return NewAttr(modelPrefix, "").Throttle(d)
}
