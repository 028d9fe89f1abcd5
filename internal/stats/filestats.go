package stats

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// FileStats holds the content of a single file and the statistics computed for it.
// Each count stays zero until its Count method is called.
type FileStats struct {
	Path  string
	Bytes int
	Lines int
	Words int
	Chars int

	content string
}

// LineOptions controls how line terminators are turned into a line count
type LineOptions struct {
	// TrimFinalNewline drops one from the terminator count so the newline
	// before end-of-file does not count as a line of its own.
	TrimFinalNewline bool
	// Strict returns an UnderflowError instead of clamping to zero when
	// TrimFinalNewline is set and the content has no terminator.
	Strict bool
}

// DefaultLineOptions returns the reference line counting convention
func DefaultLineOptions() LineOptions {
	return LineOptions{TrimFinalNewline: true}
}

// UnderflowError is returned by CountLines in strict mode when there is no
// terminator to subtract the final-newline adjustment from.
type UnderflowError struct {
	Path string
}

func (e *UnderflowError) Error() string {
	return fmt.Sprintf("line count underflow: %s has no line terminator", e.Path)
}

// New creates a FileStats for content read from path
func New(path, content string) *FileStats {
	return &FileStats{
		Path:    path,
		content: content,
	}
}

// CountBytes sets Bytes to the UTF-8 encoded length of the content
func (s *FileStats) CountBytes() *FileStats {
	s.Bytes = len(s.content)
	return s
}

// CountLines sets Lines from the number of line-feed terminators
func (s *FileStats) CountLines(opts LineOptions) (*FileStats, error) {
	terminators := strings.Count(s.content, "\n")
	if !opts.TrimFinalNewline {
		s.Lines = terminators
		return s, nil
	}

	if terminators == 0 {
		if opts.Strict {
			return s, &UnderflowError{Path: s.Path}
		}
		s.Lines = 0
		return s, nil
	}

	s.Lines = terminators - 1
	return s, nil
}

// CountWords sets Words to the number of runs separated by ASCII whitespace
func (s *FileStats) CountWords() *FileStats {
	words := 0
	inWord := false
	for i := 0; i < len(s.content); i++ {
		if isASCIISpace(s.content[i]) {
			inWord = false
			continue
		}
		if !inWord {
			words++
			inWord = true
		}
	}
	s.Words = words
	return s
}

// CountChars sets Chars to the number of Unicode scalar values
func (s *FileStats) CountChars() *FileStats {
	s.Chars = utf8.RuneCountInString(s.content)
	return s
}

// Compute runs every count in sel. An empty selection computes all four.
func (s *FileStats) Compute(sel Selection, opts LineOptions) error {
	if sel == 0 {
		sel = All
	}

	if sel.Has(Bytes) {
		s.CountBytes()
	}
	if sel.Has(Lines) {
		if _, err := s.CountLines(opts); err != nil {
			return err
		}
	}
	if sel.Has(Words) {
		s.CountWords()
	}
	if sel.Has(Chars) {
		s.CountChars()
	}
	return nil
}

// Format renders lines, chars, bytes and words followed by the path.
// Zero values are left out together with their separating space.
func (s *FileStats) Format() string {
	var b strings.Builder
	for _, v := range []int{s.Lines, s.Chars, s.Bytes, s.Words} {
		if v > 0 {
			b.WriteString(strconv.Itoa(v))
			b.WriteByte(' ')
		}
	}
	b.WriteString(s.Path)
	return b.String()
}

// Display writes the formatted line to w
func (s *FileStats) Display(w io.Writer) error {
	_, err := fmt.Fprintln(w, s.Format())
	return err
}

// isASCIISpace matches the separators of a byte-oriented split: space, \t, \n, \v, \f, \r
func isASCIISpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
