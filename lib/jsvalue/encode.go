package jsvalue

import (
	"math"
	"strconv"
	"unicode/utf8"
)

// Encode returns v as a JavaScript expression.
//
// Strings and object keys are emitted as double-quoted literals escaped for
// JavaScript. Quotes, backslashes, control characters, line separators and
// the HTML-significant characters & < > and ' are written as escape
// sequences, so the result never needs more than the single HTML escaping
// pass the attribute renderer performs. Encode never adds HTML entities.
//
// Objects are emitted in insertion order with every key quoted. Raw values
// are written verbatim wherever they appear. A nil Value encodes as null.
// There is no depth limit: cyclic values are the caller's problem.
func Encode(v Value) string {
	return string(AppendEncode(nil, v))
}

// AppendEncode appends the encoding of v to dst and returns the extended
// buffer.
func AppendEncode(dst []byte, v Value) []byte {
	// Raw is matched first so its text never reaches the string escaper.
	switch v := v.(type) {
	case Raw:
		return append(dst, v...)
	case nil, Null:
		return append(dst, "null"...)
	case Bool:
		if v {
			return append(dst, "true"...)
		}
		return append(dst, "false"...)
	case Int:
		return strconv.AppendInt(dst, int64(v), 10)
	case Float:
		return appendFloat(dst, float64(v))
	case String:
		return appendString(dst, string(v))
	case Array:
		if len(v) == 0 {
			return append(dst, "[]"...)
		}
		dst = append(dst, '[')
		for i, e := range v {
			if i > 0 {
				dst = append(dst, ", "...)
			}
			dst = AppendEncode(dst, e)
		}
		return append(dst, ']')
	case Object:
		if len(v) == 0 {
			return append(dst, "{}"...)
		}
		dst = append(dst, "{ "...)
		for i, m := range v {
			if i > 0 {
				dst = append(dst, ", "...)
			}
			dst = appendString(dst, m.Key)
			dst = append(dst, ": "...)
			dst = AppendEncode(dst, m.Value)
		}
		return append(dst, " }"...)
	}
	// Unreachable: Value is sealed.
	return append(dst, "null"...)
}

func appendFloat(dst []byte, f float64) []byte {
	switch {
	case math.IsNaN(f):
		return append(dst, "NaN"...)
	case math.IsInf(f, 1):
		return append(dst, "Infinity"...)
	case math.IsInf(f, -1):
		return append(dst, "-Infinity"...)
	}
	return strconv.AppendFloat(dst, f, 'g', -1, 64)
}

// appendString appends s as a double-quoted JavaScript string literal.
func appendString(dst []byte, s string) []byte {
	dst = append(dst, '"')
	last := 0
	for i, c := range s {
		var esc string
		switch {
		case int(c) < len(stringEscapes):
			esc = stringEscapes[c]
		case c == '\u2028':
			esc = `\u2028`
		case c == '\u2029':
			esc = `\u2029`
		case c == utf8.RuneError:
			// Invalid UTF-8 is replaced so the literal stays well formed.
			if _, size := utf8.DecodeRuneInString(s[i:]); size == 1 {
				dst = append(dst, s[last:i]...)
				dst = append(dst, `\ufffd`...)
				last = i + 1
			}
			continue
		}
		if esc == "" {
			continue
		}
		dst = append(dst, s[last:i]...)
		dst = append(dst, esc...)
		last = i + utf8.RuneLen(c)
	}
	dst = append(dst, s[last:]...)
	return append(dst, '"')
}

// stringEscapes contains the runes that must be escaped when placed within a
// JavaScript string, in addition to U+2028 and U+2029.
var stringEscapes = []string{
	0:    `\u0000`,
	1:    `\u0001`,
	2:    `\u0002`,
	3:    `\u0003`,
	4:    `\u0004`,
	5:    `\u0005`,
	6:    `\u0006`,
	7:    `\u0007`,
	'\b': `\b`,
	'\t': `\t`,
	'\n': `\n`,
	'\v': `\u000b`,
	'\f': `\f`,
	'\r': `\r`,
	14:   `\u000e`,
	15:   `\u000f`,
	16:   `\u0010`,
	17:   `\u0011`,
	18:   `\u0012`,
	19:   `\u0013`,
	20:   `\u0014`,
	21:   `\u0015`,
	22:   `\u0016`,
	23:   `\u0017`,
	24:   `\u0018`,
	25:   `\u0019`,
	26:   `\u001a`,
	27:   `\u001b`,
	28:   `\u001c`,
	29:   `\u001d`,
	30:   `\u001e`,
	31:   `\u001f`,
	'"':  `\"`,
	'&':  `\u0026`,
	'\'': `\u0027`,
	'<':  `\u003c`,
	'>':  `\u003e`,
	'\\': `\\`,
	127:  `\u007f`,
}
