// Command atsp solves an asymmetric TSP instance exactly.
//
// Usage:
//
//	atsp <thread_count> <matrix file>
//
// The matrix file holds the number of cities n followed by n×n
// non-negative integer costs in row-major order (zero diagonal, costs
// need not be symmetric). thread_count must be at least 1 and less than
// n. Any configuration error prints a usage message to stderr and exits
// before a single worker starts.
//
// On success the best tour is printed as n+1 city indices (starting and
// ending at city 0) followed by its total cost.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/dkoshelev/atsp/bnb"
	"github.com/dkoshelev/atsp/matrix"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s <thread_count> <matrix file>\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "thread_count must be greater than or equal to 1")
	fmt.Fprintln(os.Stderr, "and less than the number of cities")
	os.Exit(2)
}

func main() {
	if len(os.Args) != 3 {
		usage()
	}

	threads, err := strconv.Atoi(os.Args[1])
	if err != nil {
		usage()
	}

	f, err := os.Open(os.Args[2])
	if err != nil {
		fmt.Fprintf(os.Stderr, "can't open %s: %v\n", os.Args[2], err)
		usage()
	}
	m, err := matrix.Read(f)
	f.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "can't read %s: %v\n", os.Args[2], err)
		usage()
	}

	if threads < 1 || threads >= m.N() {
		usage()
	}

	res, err := bnb.Solve(m, bnb.Options{Workers: threads})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println("Best tour:")
	for i, city := range res.Tour {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Print(city)
	}
	fmt.Printf("\n\nCost = %d\n", res.Cost)
}
