// Package matapan turns a series of monthly personal-finance documents
// (holdings, cash flows, FX rates, inflation indices) into a time-ordered
// dashboard of net-worth snapshots. It is designed to be local-first and
// auditable: the pipeline is a pure computation over documents loaded up
// front, and every degraded input surfaces as a warning on the snapshot
// it affects.
//
// The core functionalities include:
//   - Snapshot Building: classifying raw entries into settings-driven
//     buckets, converting currencies against the month's FX table, and
//     deriving totals and a cash-flow summary.
//   - Performance Tracking: nominal and real returns plus a cumulative
//     time-weighted return carried across the chronological sequence.
//   - Adjustments: independent, composable inflation (HICP) and
//     cost-of-living (ECLI) normalizations, with an optional combined
//     purchasing-power view.
//   - Dashboard Assembly: chronological ordering, yearly rollups, and a
//     latest pointer, serialized to a stable JSON form.
//
// This package serves as the foundational logic for the `mat` command-line
// tool; serving layers consume the computed Dashboard as an opaque,
// already-computed artifact.
package matapan
