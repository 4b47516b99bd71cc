package hxalpine

import (
	"testing"

	"github.com/a-h/templ"
	"github.com/google/go-cmp/cmp"
	"github.com/pthm/hxalpine/lib/jsvalue"
)

func TestMerge(t *testing.T) {
	a := templ.Attributes{"x-data": "{}", "class": "first"}
	b := templ.Attributes{"class": "second", "@click": "go()"}

	result := Merge(a, nil, b)
	expect := templ.Attributes{"x-data": "{}", "class": "second", "@click": "go()"}
	if diff := cmp.Diff(expect, result); diff != "" {
		t.Errorf("Merge() mismatch (-want +got):\n%s", diff)
	}

	if a["class"] != "first" || len(a) != 2 {
		t.Errorf("Merge() modified its input: %v", a)
	}
}

func TestMergeEmpty(t *testing.T) {
	result := Merge()
	if result == nil || len(result) != 0 {
		t.Errorf("Merge() = %v, want empty non-nil attributes", result)
	}
}

func TestMergeComposition(t *testing.T) {
	result := Merge(
		X.DataOf(jsvalue.Obj(jsvalue.M("email", jsvalue.String("")))),
		At.Submit.Prevent().Attrs("send()"),
		At.Keydown.Escape().Attrs("cancel()"),
	)

	expect := templ.Attributes{
		"x-data":          `{ "email": "" }`,
		"@submit.prevent": "send()",
		"@keydown.escape": "cancel()",
	}
	if diff := cmp.Diff(expect, result); diff != "" {
		t.Errorf("Merge() mismatch (-want +got):\n%s", diff)
	}
}
