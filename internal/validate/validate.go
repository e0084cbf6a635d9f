package validate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNotNumber is wrapped by Int and Float when the input cannot be coerced.
var ErrNotNumber = errors.New("not a number")

// Line strips the line terminator from a console read and nothing else.
func Line(s string) string {
	return strings.TrimRight(s, "\r\n")
}

func Int(s string) (int64, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotNumber, s)
	}
	return n, nil
}

func Float(s string) (float64, error) {
	s = strings.TrimSpace(s)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotNumber, s)
	}
	return f, nil
}

// Format reports the output formats accepted by the report command.
func Format(s string) (string, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "text", "json", "html":
		return s, true
	}
	return "", false
}
