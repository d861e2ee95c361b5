package main

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"
)

const (
	defaultDialSize      = 100
	defaultStartPosition = 50
)

type direction byte

const (
	left  direction = 'L'
	right direction = 'R'
)

type rotation struct {
	Dir  direction
	Dist int64
}

func (r rotation) String() string {
	return fmt.Sprintf("%c%d", r.Dir, r.Dist)
}

func parseRotation(s string) (rotation, error) {
	var r rotation
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return r, fmt.Errorf("bad rotation %q", s)
	}
	switch d := direction(s[0]); d {
	case left, right:
		r.Dir = d
	default:
		return r, fmt.Errorf("bad direction in rotation %q", s)
	}
	for i := 1; i < len(s); i++ {
		if c := s[i]; c < '0' || c > '9' {
			return r, fmt.Errorf("bad distance in rotation %q", s)
		}
	}
	var err error
	r.Dist, err = strconv.ParseInt(s[1:], 10, 64)
	if err != nil {
		return r, fmt.Errorf("bad distance in rotation %q: %s", s, err)
	}
	return r, nil
}

// A dial is a circular counter with positions [0, size).
type dial struct {
	size    int64
	start   int64
	pos     int64
	landed  int64   // rotations that ended at 0
	crossed big.Int // clicks (over all rotations) that pointed at 0
}

func newDial(size, start int64) *dial {
	if size <= 0 {
		panic("dial size must be positive")
	}
	if start < 0 || start >= size {
		panic("start position out of range")
	}
	return &dial{size: size, start: start, pos: start}
}

func (d *dial) reset() {
	d.pos = d.start
	d.landed = 0
	d.crossed.SetInt64(0)
}

type step struct {
	Rotation  rotation
	From      int64
	To        int64
	Crossings int64
}

func (s step) String() string {
	return fmt.Sprintf("%s: %d -> %d (%d crossings)", s.Rotation, s.From, s.To, s.Crossings)
}

func (d *dial) rotate(r rotation) step {
	s := step{Rotation: r, From: d.pos}
	s.Crossings = zeroCrossings(d.pos, r.Dist, d.size, r.Dir)
	d.crossed.Add(&d.crossed, big.NewInt(s.Crossings))
	// Reduce first so that pos±dist cannot overflow.
	dist := r.Dist % d.size
	switch r.Dir {
	case left:
		d.pos = ((d.pos-dist)%d.size + d.size) % d.size
	case right:
		d.pos = (d.pos + dist) % d.size
	default:
		panic(fmt.Sprintf("bad direction %q", r.Dir))
	}
	if d.pos == 0 {
		d.landed++
	}
	s.To = d.pos
	return s
}

// zeroCrossings reports how many of the dist clicks starting at pos leave the
// dial pointing at 0.
func zeroCrossings(pos, dist, size int64, dir direction) int64 {
	// firstK is the click on which the dial first reads 0.
	firstK := size
	if pos != 0 {
		if dir == left {
			firstK = pos
		} else {
			firstK = size - pos
		}
	}
	if firstK > dist {
		return 0
	}
	return 1 + (dist-firstK)/size
}

type runStats struct {
	instructions int64
	bytes        int64
}

// maxLineSize bounds a single input line. Distances may carry long runs of
// leading zeros, so this is well above bufio's default.
const maxLineSize = 64 << 20

type countingReader struct {
	r io.Reader
	n int64
}

func (cr *countingReader) Read(b []byte) (int, error) {
	n, err := cr.r.Read(b)
	cr.n += int64(n)
	return n, err
}

// simulate applies every rotation in r to d, in order. If onStep is non-nil,
// it is called after each rotation.
func simulate(r io.Reader, d *dial, onStep func(step)) (runStats, error) {
	var stats runStats
	cr := &countingReader{r: r}
	scanner := bufio.NewScanner(cr)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	for lineNum := 1; scanner.Scan(); lineNum++ {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		rot, err := parseRotation(line)
		if err != nil {
			stats.bytes = cr.n
			return stats, fmt.Errorf("line %d: %s", lineNum, err)
		}
		s := d.rotate(rot)
		stats.instructions++
		if onStep != nil {
			onStep(s)
		}
	}
	stats.bytes = cr.n
	if err := scanner.Err(); err != nil {
		return stats, err
	}
	return stats, nil
}
