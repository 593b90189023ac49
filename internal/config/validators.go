package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Validator normalizes a raw value. An error makes Load fall back to the
// key's default and print a warning.
type Validator func(value string) (string, error)

// IntRange accepts integers in [min, max]. A max of 0 means unbounded.
func IntRange(min, max int) Validator {
	return func(value string) (string, error) {
		n, err := strconv.Atoi(strings.TrimSpace(value))
		switch {
		case err != nil:
			return "", fmt.Errorf("not an integer")
		case n < min:
			return "", fmt.Errorf("must be >= %d", min)
		case max > 0 && n > max:
			return "", fmt.Errorf("must be <= %d", max)
		}
		return strconv.Itoa(n), nil
	}
}

// OneOf accepts the listed values, case-insensitively.
func OneOf(allowed ...string) Validator {
	return func(value string) (string, error) {
		v := strings.ToLower(strings.TrimSpace(value))
		for _, a := range allowed {
			if v == a {
				return v, nil
			}
		}
		return "", fmt.Errorf("must be one of: %s", strings.Join(allowed, ", "))
	}
}

// Bool normalizes 1/yes/on and 0/no/off to "true" and "false".
func Bool() Validator {
	return func(value string) (string, error) {
		b, ok := parseBool(value)
		if !ok {
			return "", fmt.Errorf("must be a boolean (true, false, yes, no, on, off, 1, 0)")
		}
		return strconv.FormatBool(b), nil
	}
}

// AutoBool is Bool that also accepts "auto".
func AutoBool() Validator {
	boolean := Bool()
	return func(value string) (string, error) {
		if strings.EqualFold(strings.TrimSpace(value), "auto") {
			return "auto", nil
		}
		return boolean(value)
	}
}

func parseBool(value string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true, true
	case "0", "false", "no", "off":
		return false, true
	}
	return false, false
}
