package concordance

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

// Read adds the words of a plain text to the index. Line numbers start at 1
// for every call.
func (x *Index) Read(r io.Reader) error {
	src := &stickyReader{r: r}
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	segmenter.Init(bufio.NewReader(src))
	tok := tokenizer{index: x, line: 1}
	for segmenter.Next() {
		if err := tok.feed(string(segmenter.Bytes())); err != nil {
			return err
		}
	}
	if err := tok.flush(); err != nil {
		return err
	}
	if src.err != nil {
		return errors.Wrap(src.err, "concordance: reading text")
	}
	tracer().Debugf("concordance: read up to line %d, index has %d words", tok.line, x.words.Len())
	return nil
}

// tokenizer cuts line-break segments into words. A segment may hold several
// words joined by punctuation, and ideographic words span several segments.
type tokenizer struct {
	index *Index
	word  strings.Builder
	line  int
}

func (tok *tokenizer) feed(seg string) error {
	for _, r := range seg {
		if isWordRune(r) {
			tok.word.WriteRune(r)
			continue
		}
		if err := tok.flush(); err != nil {
			return err
		}
		if r == '\n' {
			tok.line++
		}
	}
	return nil
}

func (tok *tokenizer) flush() error {
	if tok.word.Len() == 0 {
		return nil
	}
	w := tok.word.String()
	tok.word.Reset()
	return tok.index.Add(w, tok.line)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r)
}

func fold(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// stickyReader remembers the first error other than io.EOF, which the
// segmenter would not report.
type stickyReader struct {
	r   io.Reader
	err error
}

func (s *stickyReader) Read(p []byte) (int, error) {
	n, err := s.r.Read(p)
	if err != nil && err != io.EOF && s.err == nil {
		s.err = err
	}
	return n, err
}

// --- HTML ------------------------------------------------------------------

// ReadHTML adds the words of the text nodes of an HTML document to the
// index. Scripts and style sheets are skipped. Line numbers refer to the
// extracted text.
func (x *Index) ReadHTML(r io.Reader) error {
	doc, err := html.Parse(r)
	if err != nil {
		return errors.Wrap(err, "concordance: parsing HTML")
	}
	var b strings.Builder
	collectText(doc, &b)
	return x.Read(strings.NewReader(b.String()))
}

func collectText(n *html.Node, b *strings.Builder) {
	switch n.Type {
	case html.ElementNode:
		switch n.Data {
		case "script", "style", "noscript", "template":
			return
		}
	case html.TextNode:
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
	if n.Type == html.ElementNode && isBlock(n.Data) {
		b.WriteByte('\n')
	}
}

func isBlock(tag string) bool {
	switch tag {
	case "p", "div", "br", "li", "tr", "h1", "h2", "h3", "h4", "h5", "h6", "pre", "blockquote", "title":
		return true
	}
	return false
}
