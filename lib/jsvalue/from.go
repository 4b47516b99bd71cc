package jsvalue

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"
)

// From converts a native Go value into a Value.
//
// Conversion rules:
//   - Value is returned as is; Marshaler is asked for its JSValue
//   - nil, nil pointers, nil maps and nil slices become Null
//   - bool, integers, floats and json.Number become Bool, Int and Float
//   - string, []byte (as UTF-8 text), error (its message) and time.Time
//     (RFC 3339) become String
//   - slices and arrays become Array
//   - maps become Object with keys sorted, since Go maps have no order
//   - structs become Object with exported fields in declaration order; the
//     json tag renames a field, "-" skips it and omitempty drops empty values.
//     Fields of untagged embedded structs are promoted into the parent, and
//     the parent's own fields win on a name clash. Unlike encoding/json, a
//     clash between two embedded structs keeps the first one instead of
//     dropping both, and unexported embedded structs are skipped.
//
// Pointers, structs, slices, arrays and maps implementing fmt.Stringer
// become String(x.String()), including String methods on the pointer
// receiver (*big.Int) or a named slice (net.IP). Named booleans, numbers and
// strings keep their value even when they implement fmt.Stringer. Any other
// kind becomes String(fmt.Sprint(x)). From never panics on a well-formed
// value.
func From(x any) Value {
	switch x := x.(type) {
	case nil:
		return Null{}
	case Value:
		return x
	case Marshaler:
		if v := x.JSValue(); v != nil {
			return v
		}
		return Null{}
	case bool:
		return Bool(x)
	case string:
		return String(x)
	case int:
		return Int(x)
	case int8:
		return Int(x)
	case int16:
		return Int(x)
	case int32:
		return Int(x)
	case int64:
		return Int(x)
	case uint8:
		return Int(x)
	case uint16:
		return Int(x)
	case uint32:
		return Int(x)
	case float32:
		return Float(x)
	case float64:
		return Float(x)
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return Int(i)
		}
		if f, err := x.Float64(); err == nil {
			return Float(f)
		}
		return String(x.String())
	case []byte:
		if x == nil {
			return Null{}
		}
		return String(x)
	case time.Time:
		return String(x.Format(time.RFC3339Nano))
	case error:
		return String(x.Error())
	case []any:
		if x == nil {
			return Null{}
		}
		a := make(Array, len(x))
		for i, e := range x {
			a[i] = From(e)
		}
		return a
	case map[string]any:
		if x == nil {
			return Null{}
		}
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		o := make(Object, len(keys))
		for i, k := range keys {
			o[i] = Member{Key: k, Value: From(x[k])}
		}
		return o
	}
	return fromReflect(reflect.ValueOf(x))
}

func fromReflect(rv reflect.Value) Value {
	switch rv.Kind() {
	case reflect.Invalid:
		return Null{}
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > 1<<63-1 {
			return Float(u)
		}
		return Int(u)
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float())
	case reflect.String:
		return String(rv.String())
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null{}
		}
		elem := rv.Elem().Interface()
		if _, ok := elem.(fmt.Stringer); !ok {
			// String declared on the pointer receiver, as on *big.Int.
			if s, ok := rv.Interface().(fmt.Stringer); ok {
				return String(s.String())
			}
		}
		return From(elem)
	case reflect.Slice:
		if rv.IsNil() {
			return Null{}
		}
		if s, ok := rv.Interface().(fmt.Stringer); ok {
			return String(s.String())
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return String(rv.Bytes())
		}
		fallthrough
	case reflect.Array:
		if s, ok := rv.Interface().(fmt.Stringer); ok {
			return String(s.String())
		}
		a := make(Array, rv.Len())
		for i := range a {
			a[i] = From(rv.Index(i).Interface())
		}
		return a
	case reflect.Map:
		if rv.IsNil() {
			return Null{}
		}
		if s, ok := rv.Interface().(fmt.Stringer); ok {
			return String(s.String())
		}
		o := make(Object, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			o = append(o, Member{Key: keyString(iter.Key()), Value: From(iter.Value().Interface())})
		}
		sort.Slice(o, func(i, j int) bool { return o[i].Key < o[j].Key })
		return o
	case reflect.Struct:
		if s, ok := rv.Interface().(fmt.Stringer); ok {
			return String(s.String())
		}
		return fromStruct(rv)
	}
	if s, ok := rv.Interface().(fmt.Stringer); ok {
		return String(s.String())
	}
	return String(fmt.Sprint(rv.Interface()))
}

func fromStruct(rv reflect.Value) Object {
	t := rv.Type()

	// Names of the struct's own fields, which win over promoted ones.
	own := make(map[string]bool, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if name, ok := fieldName(t.Field(i)); ok && !promoted(t.Field(i)) {
			own[name] = true
		}
	}

	o := make(Object, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		value := rv.Field(i)

		if promoted(field) {
			if value.Kind() == reflect.Pointer {
				if value.IsNil() {
					continue
				}
				value = value.Elem()
			}
			for _, m := range fromStruct(value) {
				if own[m.Key] {
					continue
				}
				if _, ok := o.Get(m.Key); ok {
					continue
				}
				o = append(o, m)
			}
			continue
		}

		name, ok := fieldName(field)
		if !ok {
			continue
		}
		if _, omitempty := parseTag(field.Tag.Get("json")); omitempty && isEmptyValue(value) {
			continue
		}
		o = o.Set(name, From(value.Interface()))
	}
	return o
}

// fieldName returns the member name of a struct field, or false when the
// field is unexported or tagged "-".
func fieldName(field reflect.StructField) (string, bool) {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return "", false
	}
	name, _ := parseTag(tag)
	if !field.IsExported() {
		return "", false
	}
	if name == "" {
		name = field.Name
	}
	return name, true
}

// promoted reports whether the fields of an embedded struct are lifted into
// the parent: the field is embedded, exported, untagged, a struct or struct
// pointer, and the struct does not convert itself. Unexported embedded
// structs are skipped because reflect cannot read through them.
func promoted(field reflect.StructField) bool {
	if !field.Anonymous || !field.IsExported() || field.Tag.Get("json") != "" {
		return false
	}
	t := field.Type
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return false
	}
	for _, iface := range []reflect.Type{marshalerType, stringerType} {
		if t.Implements(iface) || reflect.PointerTo(t).Implements(iface) {
			return false
		}
	}
	return t != timeType
}

var (
	marshalerType = reflect.TypeOf((*Marshaler)(nil)).Elem()
	stringerType  = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
	timeType      = reflect.TypeOf(time.Time{})
)

// isEmptyValue reports whether v is empty in the omitempty sense.
func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Pointer:
		return v.IsNil()
	}
	return false
}

// parseTag splits a json struct tag into its name and omitempty option.
func parseTag(tag string) (string, bool) {
	name, opts, _ := strings.Cut(tag, ",")
	for opts != "" {
		var opt string
		opt, opts, _ = strings.Cut(opts, ",")
		if opt == "omitempty" {
			return name, true
		}
	}
	return name, false
}

func keyString(k reflect.Value) string {
	if k.Kind() == reflect.String {
		return k.String()
	}
	if s, ok := k.Interface().(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprint(k.Interface())
}

// Marshal is shorthand for Encode(From(x)).
func Marshal(x any) string {
	return Encode(From(x))
}
