/*
Package concordance builds an alphabetical word index of texts: for every word
it records how often it occurs and on which lines.

The index is an ordmap.Map from folded words to entries, and every entry keeps
its line numbers in an ordmap.Set. All line sets of an index draw their nodes
from one shared arena.

	x, _ := concordance.New(concordance.WithMinLength(3))
	x.Read(strings.NewReader(text))
	for e := range x.Prefix("tree") {
	    fmt.Println(e.Word, e.Count)
	}

Texts are split into words with the UAX#14 line breaking algorithm of
package uax; HTML input is reduced to its text nodes first.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2020–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package concordance

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'ordmap'.
func tracer() tracing.Trace {
	return tracing.Select("ordmap")
}
