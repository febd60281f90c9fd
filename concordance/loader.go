package concordance

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/guiguan/caster"
	"github.com/pkg/errors"
)

// Progress is published by a Loader after every source.
type Progress struct {
	Source string // name of the source
	Words  int    // distinct words in the index after loading the source
	Tokens int    // occurrences in the index after loading the source
	Err    error  // non-nil if the source failed to load
}

// Loader feeds a sequence of sources into an index and broadcasts a Progress
// message after each of them.
type Loader struct {
	index *Index
	cast  *caster.Caster
	html  bool
}

// NewLoader creates a loader for x. If forceHTML is set, every source is
// parsed as HTML, otherwise only files ending in .html or .htm are.
func NewLoader(x *Index, forceHTML bool) *Loader {
	return &Loader{
		index: x,
		cast:  caster.New(nil),
		html:  forceHTML,
	}
}

// Subscribe returns a channel receiving Progress messages. The channel is
// closed by Close, or when ctx is done. It returns false if the loader has
// already been closed.
func (l *Loader) Subscribe(ctx context.Context, capacity uint) (<-chan interface{}, bool) {
	return l.cast.Sub(ctx, capacity)
}

// Load reads one source. name is used for Progress messages and to detect
// HTML input.
func (l *Loader) Load(name string, r io.Reader) error {
	var err error
	if l.html || isHTMLName(name) {
		err = l.index.ReadHTML(r)
	} else {
		err = l.index.Read(r)
	}
	if err != nil {
		err = errors.Wrapf(err, "concordance: loading %s", name)
		tracer().Errorf("%v", err)
	}
	l.cast.Pub(Progress{
		Source: name,
		Words:  l.index.Len(),
		Tokens: l.index.Tokens(),
		Err:    err,
	})
	return err
}

// LoadFile reads the file at path.
func (l *Loader) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		err = errors.Wrapf(err, "concordance: cannot open %s", path)
		l.cast.Pub(Progress{Source: path, Words: l.index.Len(), Tokens: l.index.Tokens(), Err: err})
		return err
	}
	defer f.Close()
	return l.Load(path, f)
}

// LoadFiles reads files in order, stopping at the first failure.
func (l *Loader) LoadFiles(paths ...string) error {
	for _, p := range paths {
		if err := l.LoadFile(p); err != nil {
			return err
		}
	}
	return nil
}

// Close ends broadcasting and closes all subscriber channels.
func (l *Loader) Close() {
	l.cast.Close()
}

func isHTMLName(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".html", ".htm", ".xhtml":
		return true
	}
	return false
}
