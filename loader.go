package wireframe

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// MaxEdges is the default edge-list capacity.
const MaxEdges = 5000

// fieldsPerEdge is the number of float fields in one edge record.
const fieldsPerEdge = 6

// ReadEdges parses a wireframe model from r. The input is a stream of
// whitespace-separated float sextuples, one edge per record:
//
//	x1 y1 z1 x2 y2 z2
//
// Reading stops at end of input, at the first record with fewer than six
// parseable numbers, or when the capacity limit is reached, whichever comes
// first. A malformed record ends the list silently; every prior well-formed
// edge is kept. Reaching capacity stops reading without consuming further
// records and marks the returned list as truncated.
//
// A non-nil error is returned only when the underlying reader fails; it
// wraps ErrUnreadableInput.
func ReadEdges(r io.Reader, opts ...LoadOption) (*EdgeList, error) {
	cfg := defaultLoadOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	list := &EdgeList{}
	for len(list.Edges) < cfg.maxEdges {
		rec, ok := scanRecord(sc)
		if !ok {
			break
		}
		list.Edges = append(list.Edges, NewEdge(
			Vec3{X: rec[0], Y: rec[1], Z: rec[2]},
			Vec3{X: rec[3], Y: rec[4], Z: rec[5]},
		))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableInput, err)
	}

	if len(list.Edges) == cfg.maxEdges {
		list.Truncated = true
		Logger().Warn("edge capacity reached, remaining input ignored",
			"max", cfg.maxEdges)
	}
	return list, nil
}

// scanRecord reads the next six float tokens. It reports false as soon as
// a token is missing or unparseable, mirroring fscanf-style truncation.
func scanRecord(sc *bufio.Scanner) ([fieldsPerEdge]float64, bool) {
	var rec [fieldsPerEdge]float64
	for i := range rec {
		if !sc.Scan() {
			return rec, false
		}
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return rec, false
		}
		rec[i] = v
	}
	return rec, true
}
