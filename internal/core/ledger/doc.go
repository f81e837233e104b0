// Package ledger is the statement and reconciliation engine shared by every
// financial report. It synthesizes recurring rent charges over a window, turns
// payment records from the bank feed, manual entry and lease deposits into a
// common event shape, matches unlabelled bank rows to tenants, and folds the
// merged events into a running balance.
//
// Everything here is pure and synchronous. Callers fetch request-scoped copies
// of the source data and hand them in; nothing is cached between calls.
package ledger
