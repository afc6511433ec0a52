// Package etfcast estimates a security's historical risk/return profile and
// projects future portfolio value under a recurring contribution plan.
//
// The core is a straight pipeline:
//   - Extract derives a compact HistoricalMetrics summary (annualized growth
//     rate, annualized distribution yield) from the full price and
//     distribution history of a security.
//   - Simulate compounds contributions, price appreciation and distribution
//     reinvestment month by month into a ProjectionResult trajectory.
//   - Compare relates the final outcomes of two independently simulated
//     instruments.
//
// Every stage is a pure function over immutable value objects; acquisition
// of raw history is delegated to a HistoryProvider collaborator (see the
// yahoo subpackage), and rendering to the renderer subpackage. This package
// is the foundational logic for the `efc` command-line tool.
package etfcast
