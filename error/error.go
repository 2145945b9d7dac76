package error

import (
	"fmt"
	"sort"
	"strings"
)

// contextRadius is the number of source lines shown before and after the
// offending line in a diagnostic.
const contextRadius = 2

// SourceFile maps byte offsets in a source buffer to 1-based line/column
// positions and renders contextual windows for diagnostics. A nil or empty
// source yields position 1:1 and no context.
type SourceFile struct {
	src        string
	lineStarts []int
}

func NewSourceFile(src []byte) *SourceFile {
	f := &SourceFile{
		src:        string(src),
		lineStarts: []int{0},
	}
	for i, c := range f.src {
		if c == '\n' {
			f.lineStarts = append(f.lineStarts, i+1)
		}
	}
	return f
}

// Position converts a byte offset into a 1-based line and column. The line
// is the one whose start offset is the greatest line start not exceeding the
// given offset.
func (f *SourceFile) Position(offset int) (row, col int) {
	if offset < 0 {
		offset = 0
	}
	// The first line start greater than offset bounds the search; the line
	// before it owns the offset.
	i := sort.Search(len(f.lineStarts), func(i int) bool {
		return f.lineStarts[i] > offset
	})
	row = i
	col = offset - f.lineStarts[row-1] + 1
	return row, col
}

// LineCount reports the number of lines in the source.
func (f *SourceFile) LineCount() int {
	return len(f.lineStarts)
}

// Line returns the text of a 1-based line without its trailing newline.
func (f *SourceFile) Line(row int) string {
	if row < 1 || row > len(f.lineStarts) {
		return ""
	}
	start := f.lineStarts[row-1]
	end := len(f.src)
	if row < len(f.lineStarts) {
		end = f.lineStarts[row]
	}
	return strings.TrimSuffix(f.src[start:end], "\n")
}

// Context renders the lines surrounding an offset with a caret under the
// offending column. It returns the empty string when no source is attached.
func (f *SourceFile) Context(offset int) string {
	if f.src == "" {
		return ""
	}
	row, col := f.Position(offset)

	var b strings.Builder
	for r := row - contextRadius; r <= row+contextRadius; r++ {
		if r < 1 || r > f.LineCount() {
			continue
		}
		fmt.Fprintf(&b, "    %v\n", f.Line(r))
		if r == row {
			fmt.Fprintf(&b, "    %v^\n", strings.Repeat(" ", col-1))
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}
