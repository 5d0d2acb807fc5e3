package lattice

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrSnapshot indicates malformed snapshot text.
var ErrSnapshot = errors.New("lattice: malformed snapshot")

// WriteSnapshot emits the lattice as N lines of N space-separated 0/1
// tokens. Token x of line y is the value of Get(x, y).
func (l *Lattice) WriteSnapshot(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < l.n; y++ {
		for x := 0; x < l.n; x++ {
			if x > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return err
				}
			}
			if err := bw.WriteByte('0' + l.sites[y*l.n+x]); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadSnapshot parses text produced by WriteSnapshot. The first line fixes
// N; the input must then supply exactly N lines of N binary tokens.
func ReadSnapshot(r io.Reader) (*Lattice, error) {
	sc := bufio.NewScanner(r)

	var l *Lattice
	y := 0
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		tokens := strings.Fields(line)
		if l == nil {
			l = New(len(tokens))
		}
		if y >= l.n {
			return nil, fmt.Errorf("%w: more than %d rows", ErrSnapshot, l.n)
		}
		if len(tokens) != l.n {
			return nil, fmt.Errorf("%w: row %d has %d tokens, want %d", ErrSnapshot, y, len(tokens), l.n)
		}
		for x, tok := range tokens {
			switch tok {
			case "0":
				l.sites[y*l.n+x] = Empty
			case "1":
				l.sites[y*l.n+x] = Occupied
			default:
				return nil, fmt.Errorf("%w: row %d token %q", ErrSnapshot, y, tok)
			}
		}
		y++
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if l == nil {
		return nil, fmt.Errorf("%w: empty input", ErrSnapshot)
	}
	if y != l.n {
		return nil, fmt.Errorf("%w: %d rows, want %d", ErrSnapshot, y, l.n)
	}
	return l, nil
}
