package hxalpine

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func TestFlashLevelConstants(t *testing.T) {
	if FlashSuccess != "success" {
		t.Errorf("FlashSuccess = %q, want %q", FlashSuccess, "success")
	}
	if FlashError != "error" {
		t.Errorf("FlashError = %q, want %q", FlashError, "error")
	}
	if FlashWarning != "warning" {
		t.Errorf("FlashWarning = %q, want %q", FlashWarning, "warning")
	}
	if FlashInfo != "info" {
		t.Errorf("FlashInfo = %q, want %q", FlashInfo, "info")
	}
}

func TestNotification(t *testing.T) {
	attrs := Notification(FlashSuccess, 1500*time.Millisecond)

	checks := map[string]any{
		"x-data":       `{ "show": true }`,
		"x-show":       "show",
		"x-transition": "",
		"@click":       "show = false",
		"class":        "toast toast-success",
		"role":         "status",
		"x-init":       "setTimeout(() => show = false, 1500)",
	}
	for k, want := range checks {
		if attrs[k] != want {
			t.Errorf("%s = %v, want %v", k, attrs[k], want)
		}
	}
}

func TestNotificationWithoutDismiss(t *testing.T) {
	attrs := Notification(FlashError, -1)
	if _, ok := attrs["x-init"]; ok {
		t.Errorf("x-init = %v, want no auto-dismiss", attrs["x-init"])
	}
	if attrs["class"] != "toast toast-error" {
		t.Errorf("class = %v", attrs["class"])
	}
}

func renderToasts(t *testing.T, flashes []Flash, dismiss time.Duration) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Toasts(flashes, dismiss).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Toasts() render error = %v", err)
	}
	return buf.String()
}

func TestToastsEmpty(t *testing.T) {
	result := renderToasts(t, nil, 0)

	if !strings.Contains(result, `id="toasts"`) {
		t.Error("Missing id=\"toasts\"")
	}
	if !strings.Contains(result, `@flash.window="items.push($event.detail)"`) {
		t.Error("Missing window flash listener")
	}
	if !strings.Contains(result, `<template x-for="item in items">`) {
		t.Error("Missing client-side toast template")
	}
	if strings.Contains(result, `class="toast toast-success"`) {
		t.Error("Empty flashes rendered a server toast")
	}
}

func TestToastsMultiple(t *testing.T) {
	flashes := []Flash{
		{Level: FlashSuccess, Message: "Item saved"},
		{Level: FlashWarning, Message: "Low stock"},
	}

	result := renderToasts(t, flashes, 0)

	if !strings.Contains(result, `class="toast toast-success"`) {
		t.Error("Missing success toast")
	}
	if !strings.Contains(result, `class="toast toast-warning"`) {
		t.Error("Missing warning toast")
	}
	if !strings.Contains(result, ">Item saved</div>") || !strings.Contains(result, ">Low stock</div>") {
		t.Errorf("Missing messages: %s", result)
	}
	// Zero dismiss falls back to DefaultDismiss.
	if !strings.Contains(result, "setTimeout(() =&gt; show = false, 3000)") {
		t.Errorf("Missing default dismiss: %s", result)
	}
}

func TestToastsEscapesMessage(t *testing.T) {
	result := renderToasts(t, []Flash{{Level: FlashInfo, Message: "<script>alert('xss')</script>"}}, 0)

	if strings.Contains(result, "<script>") {
		t.Error("Message was not escaped")
	}
	if !strings.Contains(result, "&lt;script&gt;") {
		t.Errorf("Missing escaped message: %s", result)
	}
}
