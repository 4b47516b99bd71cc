package jsvalue

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vmihailenco/msgpack/v5"
)

func TestFromJSON(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{"object order", `{"zeta": 1, "alpha": [true, null], "mid": {"x": 1.5}}`, `{ "zeta": 1, "alpha": [true, null], "mid": { "x": 1.5 } }`},
		{"empty object", `{}`, `{}`},
		{"empty array", `[]`, `[]`},
		{"scalar", `"it's"`, Encode(String("it's"))},
		{"big number", `12345678901234567890`, `1.2345678901234567e+19`},
		{"duplicate key", `{"a": 1, "b": 2, "a": 3}`, `{ "a": 3, "b": 2 }`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := FromJSON([]byte(tt.input))
			if err != nil {
				t.Fatalf("FromJSON() error = %v", err)
			}
			if got := Encode(v); got != tt.expect {
				t.Errorf("Encode(FromJSON()) = %q, want %q", got, tt.expect)
			}
		})
	}
}

func TestFromJSONErrors(t *testing.T) {
	inputs := []string{
		``,
		`{"a": }`,
		`[1, 2`,
		`{"a": 1} {"b": 2}`,
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			_, err := FromJSON([]byte(in))
			if !errors.Is(err, ErrInvalidDocument) {
				t.Errorf("FromJSON(%q) error = %v, want ErrInvalidDocument", in, err)
			}
		})
	}
}

func TestFromYAML(t *testing.T) {
	input := `
open: false
title: "It's here"
count: 3
ratio: 0.5
tags:
  - one
  - two
defaults: &defaults
  size: small
copy: *defaults
toggle: !raw "function() { this.open = !this.open }"
nothing: ~
`
	v, err := FromYAML([]byte(input))
	if err != nil {
		t.Fatalf("FromYAML() error = %v", err)
	}

	expect := Obj(
		M("open", Bool(false)),
		M("title", String("It's here")),
		M("count", Int(3)),
		M("ratio", Float(0.5)),
		M("tags", Array{String("one"), String("two")}),
		M("defaults", Obj(M("size", String("small")))),
		M("copy", Obj(M("size", String("small")))),
		M("toggle", Raw("function() { this.open = !this.open }")),
		M("nothing", Null{}),
	)
	if diff := cmp.Diff(expect, v); diff != "" {
		t.Errorf("FromYAML() mismatch (-want +got):\n%s", diff)
	}
}

func TestFromYAMLMergeKeys(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			"single",
			"base: &b {a: 1}\nx:\n  <<: *b\n  c: 2\n",
			`{ "base": { "a": 1 }, "x": { "a": 1, "c": 2 } }`,
		},
		{
			"local wins",
			"base: &b {a: 1, c: 9}\nx:\n  <<: *b\n  c: 2\n",
			`{ "base": { "a": 1, "c": 9 }, "x": { "a": 1, "c": 2 } }`,
		},
		{
			"local before merge",
			"base: &b {a: 1, c: 9}\nx:\n  c: 2\n  <<: *b\n",
			`{ "base": { "a": 1, "c": 9 }, "x": { "c": 2, "a": 1 } }`,
		},
		{
			"sequence first wins",
			"p: &p {a: 1}\nq: &q {a: 2, b: 3}\nx:\n  <<: [*p, *q]\n",
			`{ "p": { "a": 1 }, "q": { "a": 2, "b": 3 }, "x": { "a": 1, "b": 3 } }`,
		},
		{
			"inline mapping",
			"x:\n  <<: {a: 1}\n  b: 2\n",
			`{ "x": { "a": 1, "b": 2 } }`,
		},
		{
			"quoted key is not a merge",
			"x:\n  \"<<\": 1\n",
			`{ "x": { "\u003c\u003c": 1 } }`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := FromYAML([]byte(tt.input))
			if err != nil {
				t.Fatalf("FromYAML() error = %v", err)
			}
			if got := Encode(v); got != tt.expect {
				t.Errorf("Encode(FromYAML()) = %q, want %q", got, tt.expect)
			}
		})
	}
}

func TestFromYAMLMergeErrors(t *testing.T) {
	_, err := FromYAML([]byte("x:\n  <<: 1\n"))
	if !errors.Is(err, ErrInvalidDocument) {
		t.Errorf("FromYAML() error = %v, want ErrInvalidDocument", err)
	}
}

func TestFromYAMLEmpty(t *testing.T) {
	v, err := FromYAML(nil)
	if err != nil {
		t.Fatalf("FromYAML() error = %v", err)
	}
	if v != (Null{}) {
		t.Errorf("FromYAML(nil) = %v, want Null", v)
	}
}

func TestFromYAMLErrors(t *testing.T) {
	inputs := []string{
		"a: [1, 2",
		"? [complex, key]\n: value\n",
	}

	for _, in := range inputs {
		_, err := FromYAML([]byte(in))
		if !errors.Is(err, ErrInvalidDocument) {
			t.Errorf("FromYAML(%q) error = %v, want ErrInvalidDocument", in, err)
		}
	}
}

func TestFromMsgpack(t *testing.T) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)

	// Keys are written out of alphabetical order to check they stay put.
	must(t, enc.EncodeMapLen(4))
	must(t, enc.EncodeString("zeta"))
	must(t, enc.EncodeInt(1))
	must(t, enc.EncodeString("alpha"))
	must(t, enc.EncodeArrayLen(2))
	must(t, enc.EncodeString("it's"))
	must(t, enc.EncodeBool(true))
	must(t, enc.EncodeString("nested"))
	must(t, enc.EncodeMapLen(2))
	must(t, enc.EncodeString("b"))
	must(t, enc.EncodeFloat64(2.5))
	must(t, enc.EncodeString("a"))
	must(t, enc.EncodeNil())
	must(t, enc.EncodeString("big"))
	must(t, enc.EncodeUint(1<<40))

	v, err := FromMsgpack(buf.Bytes())
	if err != nil {
		t.Fatalf("FromMsgpack() error = %v", err)
	}

	expect := Obj(
		M("zeta", Int(1)),
		M("alpha", Array{String("it's"), Bool(true)}),
		M("nested", Obj(M("b", Float(2.5)), M("a", Null{}))),
		M("big", Int(1<<40)),
	)
	if diff := cmp.Diff(expect, v); diff != "" {
		t.Errorf("FromMsgpack() mismatch (-want +got):\n%s", diff)
	}
}

func TestFromMsgpackMarshal(t *testing.T) {
	type props struct {
		ID   int64  `msgpack:"id"`
		Name string `msgpack:"name"`
	}
	data, err := msgpack.Marshal(props{ID: 9, Name: "file.txt"})
	if err != nil {
		t.Fatalf("msgpack.Marshal() error = %v", err)
	}

	v, err := FromMsgpack(data)
	if err != nil {
		t.Fatalf("FromMsgpack() error = %v", err)
	}
	if got := Encode(v); got != `{ "id": 9, "name": "file.txt" }` {
		t.Errorf("Encode(FromMsgpack()) = %q", got)
	}
}

func TestFromMsgpackErrors(t *testing.T) {
	valid, _ := msgpack.Marshal(1)

	inputs := map[string][]byte{
		"empty":     nil,
		"truncated": {0x82, 0xa1, 'a'},
		"trailing":  append(valid, valid...),
	}

	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			_, err := FromMsgpack(in)
			if !errors.Is(err, ErrInvalidDocument) {
				t.Errorf("FromMsgpack() error = %v, want ErrInvalidDocument", err)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input  string
		expect Format
	}{
		{"json", FormatJSON},
		{".json", FormatJSON},
		{"yaml", FormatYAML},
		{".yml", FormatYAML},
		{"msgpack", FormatMsgpack},
		{".mp", FormatMsgpack},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if err != nil || got != tt.expect {
			t.Errorf("ParseFormat(%q) = %q, %v, want %q", tt.input, got, err, tt.expect)
		}
	}

	if _, err := ParseFormat("toml"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("ParseFormat(toml) error = %v, want ErrUnknownFormat", err)
	}
}

func TestDecode(t *testing.T) {
	v, err := Decode(FormatYAML, []byte("a: 1\n"))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if Encode(v) != `{ "a": 1 }` {
		t.Errorf("Decode() = %q", Encode(v))
	}

	if _, err := Decode(Format("xml"), nil); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Decode(xml) error = %v, want ErrUnknownFormat", err)
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}
