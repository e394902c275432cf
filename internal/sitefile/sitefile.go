// Package sitefile reads percolation input streams: a grid size n followed
// by whitespace-separated "row col" pairs.
//
//	3
//	1 1
//	2 1
//	3 1
package sitefile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrMalformed indicates a stream that is not "n (row col)*".
var ErrMalformed = errors.New("sitefile: malformed input")

// Site is a 1-indexed grid coordinate.
type Site struct {
	Row, Col int
}

// Input is a parsed stream.
type Input struct {
	N     int
	Sites []Site
}

// Read parses r. Coordinates are not range-checked; the grid does that.
func Read(r io.Reader) (*Input, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var ints []int
	for sc.Scan() {
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("%w: token %d %q is not an integer", ErrMalformed, len(ints)+1, sc.Text())
		}
		ints = append(ints, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("sitefile: read: %w", err)
	}
	if len(ints) == 0 {
		return nil, fmt.Errorf("%w: missing grid size", ErrMalformed)
	}
	if len(ints)%2 == 0 {
		return nil, fmt.Errorf("%w: odd number of coordinates", ErrMalformed)
	}

	in := &Input{N: ints[0], Sites: make([]Site, 0, (len(ints)-1)/2)}
	for i := 1; i < len(ints); i += 2 {
		in.Sites = append(in.Sites, Site{Row: ints[i], Col: ints[i+1]})
	}
	return in, nil
}
