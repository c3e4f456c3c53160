package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/npillmayer/adsl"
)

// scanner reads whitespace separated integers. The first error sticks: later
// reads return 0 and Err reports the error.
type scanner struct {
	words *bufio.Scanner
	count int
	err   error
}

func newScanner(r io.Reader) *scanner {
	words := bufio.NewScanner(r)
	words.Buffer(make([]byte, 64*1024), 1<<20)
	words.Split(bufio.ScanWords)
	return &scanner{words: words}
}

// Err returns the first error encountered, wrapping adsl.ErrMalformedInput.
func (sc *scanner) Err() error {
	return sc.err
}

func (sc *scanner) fail(format string, args ...interface{}) {
	if sc.err == nil {
		sc.err = fmt.Errorf("%w: number %d: %s", adsl.ErrMalformedInput, sc.count, fmt.Sprintf(format, args...))
	}
}

func (sc *scanner) int64() int64 {
	if sc.err != nil {
		return 0
	}
	if !sc.words.Scan() {
		if err := sc.words.Err(); err != nil {
			sc.fail("%v", err)
		} else {
			sc.fail("unexpected end of input")
		}
		return 0
	}
	sc.count++
	v, err := strconv.ParseInt(sc.words.Text(), 10, 64)
	if err != nil {
		sc.fail("%q is not an integer", sc.words.Text())
		return 0
	}
	return v
}

// within reads an integer and checks that lo ≤ value ≤ hi.
func (sc *scanner) within(lo, hi int) int {
	v := int(sc.int64())
	if sc.err == nil && (v < lo || v > hi) {
		sc.fail("%d is not within [%d, %d]", v, lo, hi)
		return lo
	}
	return v
}

// int64s reads n integers.
func (sc *scanner) int64s(n int) []int64 {
	values := make([]int64, n)
	for i := range values {
		values[i] = sc.int64()
	}
	return values
}
