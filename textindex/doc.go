/*
Package textindex builds ordered word-frequency indexes over text.

An Index counts word occurrences into an ordered map, so walking an index
always yields words in alphabetical order. Text can be added directly, be
extracted from HTML fragments, or be loaded fragment-wise from (large) files
on a background goroutine, with progress broadcast to subscribers.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textindex

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'omap'
func tracer() tracing.Trace {
	return tracing.Select("omap")
}
