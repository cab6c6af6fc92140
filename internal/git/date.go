package git

import (
	stderrors "errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the layout of `git log --date=default` dates,
// e.g. "Thu Apr 7 15:13:13 2005 -0700".
const DateLayout = "Mon Jan 2 15:04:05 2006 -0700"

// DateExample is a date in DateLayout, shown to users instead of the layout
const DateExample = "Thu Apr 7 15:13:13 2005 -0700"

// ErrDateFormat is returned when a date does not match DateLayout
var ErrDateFormat = stderrors.New("date does not match git log format")

// ParseDate converts a git log date into a Unix timestamp.
// The numeric offset is honored, so the same instant always yields the same value.
func ParseDate(value string) (int64, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrDateFormat, value)
	}
	return t.Unix(), nil
}

// FormatMismatch is the message shown when a date cannot be converted
func FormatMismatch(value string) string {
	return fmt.Sprintf("The timestamp '%s' does not match the expected format of '%s'", value, DateExample)
}
