// Package jsvalue converts component state into JavaScript expressions.
//
// A Value is a closed set of variants (Null, Bool, Int, Float, String, Array,
// Object and Raw). Encode turns a Value into a JavaScript expression that can
// be placed inside a double-quoted HTML attribute: strings are escaped for
// JavaScript only, and the attribute renderer (templ, gomponents) is expected
// to apply exactly one layer of HTML escaping on top.
//
//	state := jsvalue.Obj(
//	    jsvalue.M("count", jsvalue.Int(0)),
//	    jsvalue.M("items", jsvalue.Array{}),
//	    jsvalue.M("inc", jsvalue.Raw("function() { this.count++ }")),
//	)
//	jsvalue.Encode(state) // { "count": 0, "items": [], "inc": function() { this.count++ } }
//
// Native Go values are converted with From; ordered documents can be read
// with FromJSON, FromYAML and FromMsgpack.
package jsvalue

// Kind identifies the variant of a Value.
type Kind string

const (
	NullKind   = Kind("null")
	BoolKind   = Kind("bool")
	NumberKind = Kind("number")
	StringKind = Kind("string")
	ArrayKind  = Kind("array")
	ObjectKind = Kind("object")
	RawKind    = Kind("raw")
)

// Value is a JavaScript value. The set of implementations is closed: only the
// types declared in this package satisfy it.
type Value interface {
	Kind() Kind
	jsValue()
}

// Null is the JavaScript null literal.
type Null struct{}

// Bool is a JavaScript boolean.
type Bool bool

// Int is an integral JavaScript number.
type Int int64

// Float is a JavaScript number with a fractional part.
type Float float64

// String is a JavaScript string. It is always emitted quoted and escaped.
type String string

// Array is an ordered sequence of values.
type Array []Value

// Raw is JavaScript source emitted verbatim, without quoting or escaping, at
// any depth. Use it for inline functions and expressions:
//
//	jsvalue.Raw("function() { this.open = !this.open }")
//
// Raw text is trusted code. Never build a Raw from user input: whatever it
// contains is executed by the browser.
type Raw string

func (Null) Kind() Kind   { return NullKind }
func (Bool) Kind() Kind   { return BoolKind }
func (Int) Kind() Kind    { return NumberKind }
func (Float) Kind() Kind  { return NumberKind }
func (String) Kind() Kind { return StringKind }
func (Array) Kind() Kind  { return ArrayKind }
func (Object) Kind() Kind { return ObjectKind }
func (Raw) Kind() Kind    { return RawKind }

func (Null) jsValue()   {}
func (Bool) jsValue()   {}
func (Int) jsValue()    {}
func (Float) jsValue()  {}
func (String) jsValue() {}
func (Array) jsValue()  {}
func (Object) jsValue() {}
func (Raw) jsValue()    {}

// Member is a single key/value entry of an Object.
type Member struct {
	Key   string
	Value Value
}

// M is shorthand for Member{Key: key, Value: value}.
func M(key string, value Value) Member {
	return Member{Key: key, Value: value}
}

// Object is a mapping from string keys to values. Members keep insertion
// order, which is the order they are encoded in.
type Object []Member

// Obj builds an Object from members. A repeated key keeps the position of
// its first occurrence and the value of its last.
func Obj(members ...Member) Object {
	o := make(Object, 0, len(members))
	for _, m := range members {
		o = o.Set(m.Key, m.Value)
	}
	return o
}

// Set returns the object with key set to value. An existing key is updated in
// place; a new key is appended.
func (o Object) Set(key string, value Value) Object {
	for i := range o {
		if o[i].Key == key {
			o[i].Value = value
			return o
		}
	}
	return append(o, Member{Key: key, Value: value})
}

// Get returns the value stored under key.
func (o Object) Get(key string) (Value, bool) {
	for _, m := range o {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// Keys returns the keys in insertion order.
func (o Object) Keys() []string {
	keys := make([]string, len(o))
	for i, m := range o {
		keys[i] = m.Key
	}
	return keys
}

// Len returns the number of members.
func (o Object) Len() int {
	return len(o)
}

// Marshaler is implemented by types that convert themselves into a Value.
// From calls JSValue instead of inspecting the type.
type Marshaler interface {
	JSValue() Value
}
