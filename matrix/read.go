package matrix

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrBadHeader indicates that the first token is missing or is not a
// valid city count.
var ErrBadHeader = errors.New("matrix: bad or missing city count")

// ErrBadEntry indicates a cost token that is not a valid integer.
var ErrBadEntry = errors.New("matrix: bad cost entry")

// ErrTruncated indicates that the input ended before n×n costs were read.
var ErrTruncated = errors.New("matrix: truncated input")

// Read parses the classic interchange format: the city count n followed
// by n×n whitespace-separated non-negative integers in row-major order.
//
// Unlike a bare fscanf loop, parsing is strict: a malformed token, a
// truncated stream, a negative cost, a non-zero diagonal entry, or a cost
// at or above Infinity is reported with the offending position wrapped
// around the package sentinel.
//
// Trailing tokens after the n×n block are ignored; this keeps the reader
// compatible with files that carry comments or extra whitespace at the end.
//
// Complexity: O(n²) time, O(n²) memory for the resulting Dense.
func Read(r io.Reader) (*Dense, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	// Stage 1: header (city count).
	n, err := nextInt(sc)
	if err != nil {
		return nil, ErrBadHeader
	}
	if n < 2 {
		return nil, ErrInvalidDimensions
	}

	m, err := NewDense(n)
	if err != nil {
		return nil, err
	}

	// Stage 2: n×n cost block, validated entry by entry.
	var (
		i, j int
		w    int64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			w, err = nextInt64(sc)
			if err != nil {
				return nil, fmt.Errorf("matrix: entry (%d,%d): %w", i, j, err)
			}
			if err = m.Set(i, j, Weight(w)); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// nextInt scans one token and parses it as a non-negative int.
func nextInt(sc *bufio.Scanner) (int, error) {
	w, err := nextInt64(sc)
	if err != nil {
		return 0, err
	}

	return int(w), nil
}

// nextInt64 scans one whitespace-separated token and parses it as int64.
// A missing token maps to ErrTruncated, a malformed one to ErrBadEntry.
func nextInt64(sc *bufio.Scanner) (int64, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, err
		}

		return 0, ErrTruncated
	}
	w, err := strconv.ParseInt(sc.Text(), 10, 64)
	if err != nil {
		return 0, ErrBadEntry
	}

	return w, nil
}
