// Package kernel provides the shared value objects of the fastfoodie domain.
//
// The package includes:
//   - Money: a non-negative fixed-point amount with two fractional digits
//   - Role and Actor: who is acting on an order (owner, customer, delivery partner, system)
//   - UUID: identifiers for values the database does not number, such as live sessions
//
// Money never goes through float64. Amounts are parsed from strings or
// decimal.Decimal values and rendered with exactly two fractional digits.
package kernel
