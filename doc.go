// Package atsp solves the asymmetric Traveling Salesman Problem exactly,
// using a parallel depth-first branch-and-bound search with dynamic work
// redistribution.
//
// 🚀 What is atsp?
//
//	A small, focused library (plus a CLI) that brings together:
//		• matrix/ — a dense integer cost matrix + a strict text reader
//		• bnb/    — the parallel solver: per-worker explicit stacks,
//		            a shared incumbent bound, work stealing via
//		            interleaved stack splitting, and a distributed
//		            termination-detection protocol
//		• cmd/atsp — the command-line front end
//
// ✨ Design highlights:
//
//   - Deterministic answer – the optimal cost is independent of the
//     worker count and of goroutine scheduling
//   - Exhaustive search – every worker prunes with a locally cached copy
//     of the shared best bound; no heuristics, no approximation
//   - One suspension point – a worker blocks only inside the termination
//     coordinator, waiting for redistributed work or global shutdown
//   - Strict sentinels – library packages never log and never panic on
//     user input
//
// Quick start:
//
//	m, err := matrix.Read(file)          // n, then n×n costs
//	res, err := bnb.Solve(m, bnb.Options{Workers: 4})
//	fmt.Println(res.Tour, res.Cost)      // [0 ... 0] and the optimal cost
//
// See bnb/doc.go for the search and termination protocol in detail.
package atsp
