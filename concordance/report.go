package concordance

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// ReportConfig controls the layout of Report.
type ReportConfig struct {
	Width   int            // maximum width of a line in display columns; 0 means 80
	Context *uax11.Context // for display widths; nil means uax11.LatinContext
	Header  func(w io.Writer, s string)
}

var setupGraphemes sync.Once

// Report writes entries as a table with columns word, count and lines.
// Word columns are aligned by display width, so wide characters do not
// break the layout. Line lists which do not fit are cut off with an
// ellipsis.
func Report(w io.Writer, entries []*Entry, conf ReportConfig) error {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	if conf.Width <= 0 {
		conf.Width = 80
	}
	if conf.Context == nil {
		conf.Context = uax11.LatinContext
	}
	wordCol, countCol := len("word"), len("count")
	widths := make([]int, len(entries))
	for i, e := range entries {
		widths[i] = displayWidth(e.Word, conf.Context)
		wordCol = max(wordCol, widths[i])
		countCol = max(countCol, len(strconv.Itoa(e.Count)))
	}
	header := fmt.Sprintf("%s%s  %*s  %s", "word", pad(wordCol-4), countCol, "count", "lines")
	if conf.Header != nil {
		conf.Header(w, header)
	} else if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	linesCol := max(conf.Width-wordCol-countCol-4, 8)
	for i, e := range entries {
		_, err := fmt.Fprintf(w, "%s%s  %*d  %s\n", e.Word, pad(wordCol-widths[i]), countCol,
			e.Count, lineList(e, linesCol))
		if err != nil {
			return err
		}
	}
	return nil
}

func displayWidth(s string, ctx *uax11.Context) int {
	return uax11.StringWidth(grapheme.StringFromString(s), ctx)
}

func pad(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

// lineList renders the line numbers of e, cut to width columns.
func lineList(e *Entry, width int) string {
	var b strings.Builder
	for l := range e.Lines.All() {
		s := strconv.Itoa(l)
		if b.Len() > 0 {
			s = ", " + s
		}
		if b.Len()+len(s) > width-2 {
			b.WriteString(" …")
			break
		}
		b.WriteString(s)
	}
	return b.String()
}

// WriteDot writes the word tree of x in Graphviz DOT format.
func (x *Index) WriteDot(w io.Writer) {
	x.words.ToDot(w)
}
