package tui

import (
	"fmt"
	"strings"
)

// Tab is a named view bound to one backend path.
type Tab struct {
	Key   string
	Label string
	Path  string
}

// tabs is the fixed tab set, in display order.
//
//nolint:gochecknoglobals // Immutable for the process lifetime; exposed via Tabs().
var tabs = [...]Tab{
	{Key: "intro", Label: "Intro to Finances", Path: "/api/intro"},
	{Key: "market", Label: "Market Updates", Path: "/api/market"},
	{Key: "portfolio", Label: "Portfolio", Path: "/api/portfolio"},
	{Key: "planning", Label: "Planning", Path: "/api/planning"},
}

// Tabs returns a copy of the tab set in display order.
func Tabs() []Tab {
	out := make([]Tab, len(tabs))
	copy(out, tabs[:])
	return out
}

// TabIndex returns the position of the tab with the given key.
func TabIndex(key string) (int, bool) {
	for i, t := range tabs {
		if t.Key == key {
			return i, true
		}
	}
	return -1, false
}

// TabByKey returns the tab with the given key, or an error naming the valid keys.
func TabByKey(key string) (Tab, error) {
	if i, ok := TabIndex(key); ok {
		return tabs[i], nil
	}
	return Tab{}, fmt.Errorf("unknown tab %q (valid: %s)", key, strings.Join(TabKeys(), ", "))
}

// TabKeys returns the tab keys in display order.
func TabKeys() []string {
	keys := make([]string, len(tabs))
	for i, t := range tabs {
		keys[i] = t.Key
	}
	return keys
}
