package stats

import (
	"fmt"
	"strings"
)

// Selection is a set of statistics to compute
type Selection uint8

const (
	Bytes Selection = 1 << iota
	Lines
	Words
	Chars

	All = Bytes | Lines | Words | Chars
)

// Has reports whether every statistic in other is part of s
func (s Selection) Has(other Selection) bool {
	return s&other == other
}

func (s Selection) String() string {
	if s == 0 {
		return "none"
	}

	var names []string
	for _, stat := range []struct {
		sel  Selection
		name string
	}{
		{Bytes, "bytes"},
		{Lines, "lines"},
		{Words, "words"},
		{Chars, "chars"},
	} {
		if s.Has(stat.sel) {
			names = append(names, stat.name)
		}
	}
	return strings.Join(names, ",")
}

// Mode decides how several requested statistics are combined
type Mode string

const (
	// ModePriority computes only the first requested statistic in the order
	// bytes, lines, chars, words
	ModePriority Mode = "priority"
	// ModeUnion computes every requested statistic
	ModeUnion Mode = "union"
)

// ParseMode parses a mode name; an empty name is ModePriority
func ParseMode(name string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(name))) {
	case "", ModePriority:
		return ModePriority, nil
	case ModeUnion:
		return ModeUnion, nil
	default:
		return "", fmt.Errorf("invalid selection mode '%s'. Valid options: priority, union", name)
	}
}

// Flags are the statistics requested on the command line
type Flags struct {
	Bytes bool
	Lines bool
	Words bool
	Chars bool
}

// Resolve turns the requested flags into the selection to compute.
// No flags selects everything regardless of mode.
func Resolve(flags Flags, mode Mode) Selection {
	if mode == ModeUnion {
		var sel Selection
		if flags.Bytes {
			sel |= Bytes
		}
		if flags.Lines {
			sel |= Lines
		}
		if flags.Words {
			sel |= Words
		}
		if flags.Chars {
			sel |= Chars
		}
		if sel == 0 {
			return All
		}
		return sel
	}

	switch {
	case flags.Bytes:
		return Bytes
	case flags.Lines:
		return Lines
	case flags.Chars:
		return Chars
	case flags.Words:
		return Words
	default:
		return All
	}
}
