package textindex

import (
	"bufio"
	"iter"
	"strings"
	"unicode"

	"github.com/npillmayer/omap"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
)

// Index is a word-frequency index over text.
//
// Words are stored in an ordered map keyed by the normalized word, so
// iterating over an index yields words alphabetically. An index is a
// single-owner structure, just like the tree underneath it; see Loader for
// the background-loading discipline.
type Index struct {
	words *omap.Tree[string, uint64]
	total uint64
}

// New creates an empty index.
func New() *Index {
	return &Index{words: omap.New[string, uint64]()}
}

// Add segments text into words and counts them into the index.
//
// Segmentation uses UAX#14 line-wrap breakpoints, which for western scripts
// coincide with word boundaries. Fragments are normalized before counting;
// fragments without letters or digits (pure punctuation, whitespace) are
// dropped.
func (ix *Index) Add(text string) {
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	segmenter.Init(bufio.NewReader(strings.NewReader(text)))
	for segmenter.Next() {
		word := Normalize(string(segmenter.Bytes()))
		if word == "" {
			continue
		}
		ix.count(word)
	}
}

func (ix *Index) count(word string) {
	if at := ix.words.GetRef(word); at != nil {
		*at++
	} else {
		ix.words.Set(word, 1)
	}
	ix.total++
}

// Normalize trims a segmented fragment down to its word core: leading and
// trailing non-letter/non-digit runes are cut off and the rest is
// lower-cased. The empty string signals "no word here".
func Normalize(frag string) string {
	frag = strings.TrimFunc(frag, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.ToLower(frag)
}

// Count returns the number of occurrences recorded for word. The argument
// is normalized before lookup.
func (ix *Index) Count(word string) uint64 {
	if ix == nil {
		return 0
	}
	n, _ := ix.words.Get(Normalize(word))
	return n
}

// Distinct returns the number of distinct words in the index.
func (ix *Index) Distinct() int {
	if ix == nil {
		return 0
	}
	return ix.words.Len()
}

// Total returns the total number of word occurrences counted.
func (ix *Index) Total() uint64 {
	if ix == nil {
		return 0
	}
	return ix.total
}

// Words returns an iterator over all (word, count) pairs in alphabetical
// order.
func (ix *Index) Words() iter.Seq2[string, uint64] {
	return ix.words.Range()
}

// WordsFrom returns an iterator over (word, count) pairs starting at the
// alphabetically smallest word not less than prefix.
func (ix *Index) WordsFrom(prefix string) iter.Seq2[string, uint64] {
	return ix.words.RangeFrom(Normalize(prefix))
}
