package output

import (
	"strconv"
	"strings"
)

// Verbosity is a bitmask selecting which breakdowns are printed.
// A detail line is printed only when every bit it requires is set.
type Verbosity uint8

const (
	// ShowHourly prints each time-billed transition
	ShowHourly Verbosity = 1 << iota
	// ShowLines prints each line-billed transition
	ShowLines
	// ShowCommits adds the commit id pair to the selected breakdowns
	ShowCommits
	// ShowRaw logs raw git output and parsed commits at debug level
	ShowRaw
)

const allVerbosity = ShowHourly | ShowLines | ShowCommits | ShowRaw

// ParseVerbosity converts a -v value, ignoring bits that select nothing
func ParseVerbosity(mask int) Verbosity {
	return Verbosity(mask) & allVerbosity
}

// Has reports whether every bit of mask is set
func (v Verbosity) Has(mask Verbosity) bool {
	return mask != 0 && v&mask == mask
}

// String lists the enabled flags, e.g. "hourly|commits"
func (v Verbosity) String() string {
	if v == 0 {
		return "none"
	}

	names := []struct {
		bit  Verbosity
		name string
	}{
		{ShowHourly, "hourly"},
		{ShowLines, "lines"},
		{ShowCommits, "commits"},
		{ShowRaw, "raw"},
	}

	var parts []string
	for _, n := range names {
		if v&n.bit != 0 {
			parts = append(parts, n.name)
		}
	}
	if rest := v &^ allVerbosity; rest != 0 {
		parts = append(parts, strconv.Itoa(int(rest)))
	}
	return strings.Join(parts, "|")
}
