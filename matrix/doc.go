// Package matrix provides the dense integer cost matrix consumed by the
// branch-and-bound solver, together with a strict reader for the classic
// text interchange format (the city count n followed by n×n row-major
// costs).
//
// Contracts enforced here, once, before any concurrency is introduced:
//   - the matrix is square (n×n) with n ≥ 2,
//   - every cost is a non-negative integer strictly below Infinity,
//   - the diagonal is exactly zero (travelling nowhere costs nothing),
//   - costs need not be symmetric (directed edges).
//
// Design:
//   - No logging, no panics on user input — only sentinel errors.
//   - Row-major flat storage for cache friendliness; At/Set are
//     bounds-checked, and the solver uses the unchecked Cost fast path
//     only after validation has succeeded.
package matrix
