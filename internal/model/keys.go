package model

import (
	"sort"
	"strconv"
	"strings"
)

// keyCodes maps key names to Android key codes.
var keyCodes = map[string]int{
	"home":        3,
	"back":        4,
	"volume_up":   24,
	"volume_down": 25,
	"power":       26,
	"enter":       66,
	"delete":      67,
	"menu":        82,
	"search":      84,
	"app_switch":  187,
}

// KeyCode resolves a key name (case-insensitive) or a decimal key code.
func KeyCode(key string) (int, bool) {
	k := strings.ToLower(strings.TrimSpace(key))
	if code, ok := keyCodes[k]; ok {
		return code, true
	}
	code, err := strconv.Atoi(k)
	if err != nil || code < 0 {
		return 0, false
	}
	return code, true
}

// KeyNames returns the known key names, sorted.
func KeyNames() []string {
	names := make([]string, 0, len(keyCodes))
	for name := range keyCodes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
