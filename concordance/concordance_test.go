package concordance

import (
	"bytes"
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/npillmayer/ordmap"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uax/grapheme"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

const fox = `The quick brown fox
jumps over the lazy dog.
The dog sleeps; the fox runs.`

func newIndex(t *testing.T, text string, opts ...Option) *Index {
	t.Helper()
	grapheme.SetupGraphemeClasses()
	x, err := New(opts...)
	require.NoError(t, err)
	require.NoError(t, x.Read(strings.NewReader(text)))
	require.NoError(t, x.Check())
	return x
}

func lines(e *Entry) []int {
	return slices.Collect(e.Lines.All())
}

func TestReadCountsWordsAndLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordmap")
	defer teardown()
	//
	x := newIndex(t, fox)
	the, ok := x.Lookup("THE")
	require.True(t, ok)
	require.Equal(t, 4, the.Count)
	require.Equal(t, []int{1, 2, 3}, lines(the))
	dog, ok := x.Lookup("dog")
	require.True(t, ok)
	require.Equal(t, []int{2, 3}, lines(dog))
	require.Equal(t, 15, x.Tokens())
	require.Equal(t, []string{"brown", "dog", "fox", "jumps", "lazy", "over", "quick", "runs", "sleeps", "the"}, x.Words())
}

func TestFilters(t *testing.T) {
	x := newIndex(t, fox, WithMinLength(4), WithStopWords("Over"))
	require.Equal(t, []string{"brown", "jumps", "lazy", "quick", "runs", "sleeps"}, x.Words())
	_, ok := x.Lookup("the")
	require.False(t, ok)
}

func TestPrefixAndRemove(t *testing.T) {
	x := newIndex(t, "tree trees treetop trek tee tread tr")
	var got []string
	for e := range x.Prefix("tre") {
		got = append(got, e.Word)
	}
	require.Equal(t, []string{"tread", "tree", "trees", "treetop", "trek"}, got)
	require.True(t, x.Remove("trees"))
	require.False(t, x.Remove("trees"))
	require.Equal(t, 6, x.Len())
	require.Equal(t, 6, x.Tokens())
	require.NoError(t, x.Check())
}

func TestTop(t *testing.T) {
	x := newIndex(t, "b a c b c c d a b c")
	top, err := x.Top(3)
	require.NoError(t, err)
	var words []string
	for _, e := range top {
		words = append(words, e.Word)
	}
	require.Equal(t, []string{"c", "b", "a"}, words)
	all, err := x.Top(10)
	require.NoError(t, err)
	require.Len(t, all, 4)
	for _, n := range []int{math.MaxInt32, math.MaxInt} {
		all, err = x.Top(n)
		require.NoError(t, err, "Top(%d)", n)
		require.Len(t, all, 4)
		require.Equal(t, "c", all[0].Word)
	}
	none, err := x.Top(0)
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestCapacity(t *testing.T) {
	x, err := New(WithCapacity(2))
	require.NoError(t, err)
	err = x.Read(strings.NewReader("one two two three"))
	require.True(t, errors.Is(err, ordmap.ErrOutOfMemory), "got %v", err)
	require.Equal(t, 2, x.Len())
}

func TestCollation(t *testing.T) {
	x := newIndex(t, "Zug Äpfel apfel Birne", WithCollation(language.German))
	require.Equal(t, []string{"apfel", "äpfel", "birne", "zug"}, x.Words())
}

func TestReadHTML(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	grapheme.SetupGraphemeClasses()
	doc := `<html><head><title>Trees</title><style>p { color: red }</style></head>
<body><p>Red <b>black</b> trees</p><script>var trees = 1;</script><p>are trees</p></body></html>`
	x, err := New()
	require.NoError(t, err)
	require.NoError(t, x.ReadHTML(strings.NewReader(doc)))
	trees, ok := x.Lookup("trees")
	require.True(t, ok)
	require.Equal(t, 3, trees.Count)
	_, ok = x.Lookup("var")
	require.False(t, ok, "script content must be skipped")
	_, ok = x.Lookup("color")
	require.False(t, ok, "style content must be skipped")
}

func TestLoaderPublishesProgress(t *testing.T) {
	grapheme.SetupGraphemeClasses()
	x, err := New()
	require.NoError(t, err)
	dir := t.TempDir()
	page := filepath.Join(dir, "page.html")
	require.NoError(t, os.WriteFile(page, []byte("<p>hello world</p>"), 0o644))
	//
	l := NewLoader(x, false)
	defer l.Close()
	ch, ok := l.Subscribe(context.Background(), 4)
	require.True(t, ok)
	require.NoError(t, l.Load("memo.txt", strings.NewReader("hello again")))
	require.NoError(t, l.LoadFile(page))
	require.Error(t, l.LoadFiles(filepath.Join(dir, "missing.txt")))
	var got []Progress
	for len(got) < 3 {
		select {
		case m := <-ch:
			got = append(got, m.(Progress))
		case <-time.After(5 * time.Second):
			t.Fatalf("received %d of 3 progress messages", len(got))
		}
	}
	require.Equal(t, "memo.txt", got[0].Source)
	require.Equal(t, 2, got[0].Words)
	require.Equal(t, page, got[1].Source)
	require.Equal(t, 3, got[1].Words)
	require.Equal(t, 4, got[1].Tokens)
	require.Error(t, got[2].Err)
}

func TestReport(t *testing.T) {
	x := newIndex(t, "日本 go\ngo tree\ngo")
	var buf bytes.Buffer
	entries := slices.Collect(x.Entries())
	require.NoError(t, Report(&buf, entries, ReportConfig{Width: 40}))
	rows := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, rows, 4)
	require.True(t, strings.HasPrefix(rows[0], "word"))
	require.True(t, strings.HasPrefix(rows[1], "go  "), "row %q", rows[1])
	require.Contains(t, rows[1], "1, 2, 3")
	require.True(t, strings.HasPrefix(rows[3], "日本"), "row %q", rows[3])
}

func TestWriteDot(t *testing.T) {
	x := newIndex(t, "red black tree")
	var buf bytes.Buffer
	x.WriteDot(&buf)
	require.Contains(t, buf.String(), "digraph")
	require.Contains(t, buf.String(), "tree=1")
}
