// Package order implements the Order aggregate of the fastfoodie backend:
// the order header, its immutable lines, its charges and its status lifecycle.
//
// The package includes:
//   - Order: the aggregate root, mutated only through its transition methods
//   - Status: the lifecycle state machine
//   - Timeline: one timestamp per transition the order went through
//   - Line and Charges: the priced content of the order
//   - Snapshot: an immutable copy handed to persistence, notifications and broadcasts
//
// Lifecycle:
//
//	new ──> accepted ──> preparing ──> ready ──┬──> picked_up ──> delivered
//	 │                                         │        ^
//	 └──> rejected                             └──> released
//
//	any non-terminal status ──> cancelled (system only)
//
// Terminal statuses are delivered, rejected and cancelled.
package order
