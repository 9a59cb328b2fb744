// Package workorder provides the aggregate root and state machine for the
// work order lifecycle.
//
// The package includes:
//   - WorkOrder: the aggregate managing identity, meter readings, estimates
//     and execution timestamps
//   - Status: a table-driven state machine over the seven lifecycle states
//   - Number: the human-facing WO<YY><MM>-<seq> number value object
//
// Key business rules:
//   - every status change is validated against a single static transition table
//   - actualStart is stamped once, on first entry to in_progress
//   - actualEnd is re-stamped on every entry to completed
//   - invoiced is terminal; cancelled can be reopened to open
//   - work orders are cancelled, never deleted
package workorder
