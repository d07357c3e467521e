// Package stockbook implements the stock accounting core of a small
// business inventory tracker. It is designed to be local-first and
// auditable: every stock movement is an immutable transaction, and all
// derived figures (current stock, daily balances, valuations) are
// computed from the recorded facts.
//
// The core functionalities include:
//   - Record keeping: items, categories, vehicles and the stock
//     transactions posted against them, behind a swappable Store port.
//   - Transaction posting: atomically adjusting an item's current stock
//     while recording the movement, with an insufficient-stock guard.
//   - Cascading mutations: category renames rewrite the items that
//     carry the old name; deletions reassign orphans to the protected
//     "General Merchandise" category or remove dependent transactions.
//   - Reporting: daily opening/closing balances for any date, inventory
//     valuation, low-stock alerts and a dashboard summary.
//   - Data persistence: encoding and decoding the whole book to and
//     from a human-readable, version-controllable JSONL file.
//
// This package serves as the foundational logic for the `sbk`
// command-line tool, ensuring that all operations are consistent and
// based on a single source of truth.
package stockbook
