package concordance

import (
	"fmt"
	"iter"
	"math"
	"slices"
	"strings"

	"github.com/npillmayer/ordmap"
	"github.com/npillmayer/ordmap/arena"
	"golang.org/x/text/language"
)

// Entry is the index record of a word.
type Entry struct {
	Word  string           // folded word
	Count int              // number of occurrences
	Lines *ordmap.Set[int] // lines the word occurs on, ascending
}

func (e *Entry) String() string {
	return fmt.Sprintf("%d", e.Count)
}

// Index is a concordance of one or more texts. It is not safe for concurrent
// use.
type Index struct {
	conf   config
	words  *ordmap.Map[string, *Entry]
	lines  ordmap.SetAllocator[int] // shared by all entries
	stop   *ordmap.Set[string]
	tokens int
}

type config struct {
	minLen    int
	collation *language.Tag
	capacity  int
	stopWords []string
}

// Option configures an index.
type Option func(*config)

// WithMinLength drops words shorter than n runes.
func WithMinLength(n int) Option {
	return func(c *config) {
		c.minLen = n
	}
}

// WithCollation orders the index by the collation rules of a language,
// instead of by byte order.
func WithCollation(tag language.Tag) Option {
	return func(c *config) {
		c.collation = &tag
	}
}

// WithStopWords excludes words from the index.
func WithStopWords(words ...string) Option {
	return func(c *config) {
		c.stopWords = append(c.stopWords, words...)
	}
}

// WithCapacity limits the number of distinct words. Adding a word beyond
// the limit fails with ordmap.ErrOutOfMemory.
func WithCapacity(n int) Option {
	return func(c *config) {
		c.capacity = n
	}
}

// New creates an empty index.
func New(opts ...Option) (*Index, error) {
	x := &Index{}
	for _, opt := range opts {
		opt(&x.conf)
	}
	cmp := ordmap.Compare[string](strings.Compare)
	if x.conf.collation != nil {
		cmp = ordmap.CollateCompare(*x.conf.collation)
	}
	var err error
	if x.words, err = ordmap.NewMap[string, *Entry](cmp, ordmap.WithCapacity(x.conf.capacity)); err != nil {
		return nil, err
	}
	if x.lines, err = ordmap.NewSetAllocator[int](); err != nil {
		return nil, err
	}
	if x.stop, err = ordmap.NewSet[string](cmp); err != nil {
		return nil, err
	}
	for _, w := range x.conf.stopWords {
		if err = x.stop.Add(fold(w)); err != nil {
			return nil, err
		}
	}
	return x, nil
}

// Add records an occurrence of word on line. Words which are too short or
// are stop words are silently skipped.
func (x *Index) Add(word string, line int) error {
	word = fold(word)
	if word == "" || len([]rune(word)) < x.conf.minLen || x.stop.Has(word) {
		return nil
	}
	p, err := x.words.Ref(word)
	if err != nil {
		tracer().Errorf("concordance: cannot add %q: %v", word, err)
		return err
	}
	if *p == nil {
		lines, err := ordmap.NewSetIn[int](ordmap.OrderedCompare[int], x.lines)
		if err != nil {
			return err
		}
		*p = &Entry{Word: word, Lines: lines}
	}
	e := *p
	e.Count++
	x.tokens++
	return e.Lines.Add(line)
}

// Lookup returns the entry for word.
func (x *Index) Lookup(word string) (*Entry, bool) {
	return x.words.Get(fold(word))
}

// Remove drops word from the index.
func (x *Index) Remove(word string) bool {
	e, ok := x.words.Pop(fold(word))
	if ok {
		x.tokens -= e.Count
		e.Lines.Clear()
	}
	return ok
}

// Len returns the number of distinct words.
func (x *Index) Len() int {
	return x.words.Len()
}

// Tokens returns the number of word occurrences recorded.
func (x *Index) Tokens() int {
	return x.tokens
}

// Words returns all words in index order.
func (x *Index) Words() []string {
	words := make([]string, 0, x.words.Len())
	for w := range x.words.Keys() {
		words = append(words, w)
	}
	return words
}

// Entries iterates over all entries in index order.
func (x *Index) Entries() iter.Seq[*Entry] {
	return x.words.Values()
}

// Prefix iterates over the entries of all words starting with prefix.
//
// The words are found by a range scan starting at prefix, which is exact for
// byte order. With a collation, words which the collation sorts away from
// prefix are not found.
func (x *Index) Prefix(prefix string) iter.Seq[*Entry] {
	prefix = fold(prefix)
	return func(yield func(*Entry) bool) {
		for it := x.words.LowerBound(prefix); it.Valid(); it = it.Next() {
			if !strings.HasPrefix(it.Key(), prefix) || !yield(it.Value()) {
				return
			}
		}
	}
}

// Top returns the n most frequent entries of x, ordered by descending count.
// Entries with equal counts are in index order.
func (x *Index) Top(n int) ([]*Entry, error) {
	return Top(x.Entries(), n)
}

// Top returns the n most frequent of entries, ordered by descending count.
// Entries with equal counts keep their order in the sequence.
func Top(entries iter.Seq[*Entry], n int) ([]*Entry, error) {
	if n <= 0 {
		return nil, nil
	}
	pos := make(map[*Entry]int)
	byRank := func(a, b *Entry) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return pos[a] - pos[b]
	}
	var bound []ordmap.Option // the ranking holds at most n+1 entries
	if n < math.MaxInt && uint64(n+1) < arena.MaxSlots {
		bound = append(bound, ordmap.WithCapacity(n+1))
	}
	top, err := ordmap.NewSet[*Entry](byRank, bound...)
	if err != nil {
		return nil, err
	}
	for e := range entries {
		pos[e] = len(pos)
		if err := top.Add(e); err != nil {
			return nil, err
		}
		if top.Len() > n {
			top.RemoveAt(top.Last())
		}
	}
	return slices.Collect(top.All()), nil
}

// Check verifies the trees of the index.
func (x *Index) Check() error {
	if err := x.words.Check(); err != nil {
		return err
	}
	for e := range x.words.Values() {
		if err := e.Lines.Check(); err != nil {
			return fmt.Errorf("lines of %q: %w", e.Word, err)
		}
	}
	return nil
}
