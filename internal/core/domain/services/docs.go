// Package services provides domain services of the order lifecycle that do not
// belong to a single aggregate.
//
// The package includes:
//   - ChargeCalculator: delivery fee, tax and total of a new order
//   - StatusMessages: the fixed status to notification text mapping
//   - Recipients: who is told about a status change
package services
