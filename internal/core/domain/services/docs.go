// Package services holds domain logic that does not belong to a single aggregate.
//
// The package includes:
//   - OrderNumberGenerator: derives the next "YYMMDD-NNN" order number from
//     the order numbers already issued that day
//   - ContactUpserter: feeds a saved delivery's business details back into
//     the address book
//
// Both are pure: they take the state they need as arguments and leave
// loading, locking and persistence to the use cases.
package services
