package domain

import "strings"

// ParseFlag interprets a value as an on/off switch.
// Booleans are taken as is. Strings such as "on", "off", "yes", "false"
// or "disabled" are accepted in any case; ok is false for anything else.
func ParseFlag(v any) (enabled, ok bool) {
	switch val := v.(type) {
	case bool:
		return val, true
	case string:
		switch strings.ToLower(strings.TrimSpace(val)) {
		case "on", "true", "yes", "enable", "enabled":
			return true, true
		case "off", "false", "no", "disable", "disabled":
			return false, true
		}
	}
	return false, false
}
