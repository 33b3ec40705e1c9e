package textindex

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/guiguan/caster"
)

// Some constants for fragment size defaults
const (
	twoKb     = 2048
	tenKb     = 10240
	hundredKb = 1024000
	oneMb     = 1048576
)

// Progress describes the loading state after one fragment has been indexed.
type Progress struct {
	Pos   int64 // bytes indexed so far
	Size  int64 // total file size in bytes
	Words int   // distinct words seen so far
}

// Loader indexes a text file fragment-wise on a background goroutine.
//
// The goroutine is the single owner of the index while loading is in flight;
// clients get at the finished index through Wait. Fragment completions are
// broadcast as Progress messages to all subscribers.
type Loader struct {
	ix   *Index
	cast *caster.Caster // broadcaster for async loading progress
	err  error          // remember last I/O error
	done chan struct{}
}

// StartLoading opens a text file and starts indexing it in the background.
// fragSize is a recommended fragment length and may be 0, letting the loader
// choose a sensible default from the file size.
//
// Opening of the file is always done synchronously, so a non-existing file
// is reported right away.
func StartLoading(name string, fragSize int64) (*Loader, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("file is not a regular file")
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	if fragSize <= 0 || fragSize > tenKb {
		if fi.Size() < 1024 {
			fragSize = 64
		} else if fi.Size() < tenKb {
			fragSize = 256
		} else if fi.Size() < hundredKb {
			fragSize = 512
		} else if fi.Size() < oneMb {
			fragSize = twoKb
		} else {
			fragSize = tenKb
		}
	}
	ld := &Loader{
		ix:   New(),
		cast: caster.New(nil), // we will broadcast messages when fragments are indexed
		done: make(chan struct{}),
	}
	go ld.loadAllFragments(file, fi.Size(), fragSize)
	return ld, nil
}

// LoadFile indexes a text file synchronously.
func LoadFile(name string) (*Index, error) {
	ld, err := StartLoading(name, 0)
	if err != nil {
		return nil, err
	}
	return ld.Wait()
}

// Subscribe registers a listener for Progress messages. The channel is
// closed when loading finishes. The boolean result is false if loading has
// already completed.
func (ld *Loader) Subscribe(ctx context.Context) (chan interface{}, bool) {
	return ld.cast.Sub(ctx, 8)
}

// Wait blocks until loading has finished and returns the index, together
// with the first I/O error encountered, if any.
func (ld *Loader) Wait() (*Index, error) {
	<-ld.done
	if ld.err != nil {
		return nil, ld.err
	}
	return ld.ix, nil
}

// loadAllFragments reads the file fragment by fragment and feeds each
// fragment into the index. A fragment boundary may fall into the middle of a
// word, so the tail behind the last whitespace is held back and prepended to
// the next fragment.
func (ld *Loader) loadAllFragments(file *os.File, size int64, fragSize int64) {
	defer close(ld.done)
	defer ld.cast.Close()
	defer file.Close()
	var pos int64
	carry := "" // unsegmentable tail of the previous fragment
	buf := make([]byte, fragSize)
	for {
		cnt, err := file.Read(buf)
		if cnt > 0 {
			frag := carry + string(buf[:cnt])
			carry = ""
			if int64(cnt) == fragSize { // more to come: hold back the tail
				if cut := strings.LastIndexFunc(frag, unicode.IsSpace); cut >= 0 {
					carry = frag[cut:]
					frag = frag[:cut]
				} else {
					carry = frag
					frag = ""
				}
			}
			ld.ix.Add(frag)
			pos += int64(cnt)
			tracer().Debugf("indexed fragment up to byte %d of %d", pos, size)
			ld.cast.Pub(Progress{Pos: pos, Size: size, Words: ld.ix.Distinct()})
		}
		if err == io.EOF {
			if carry != "" {
				ld.ix.Add(carry)
			}
			return
		}
		if err != nil {
			ld.err = fmt.Errorf("error loading text fragment: %w", err)
			return
		}
	}
}
