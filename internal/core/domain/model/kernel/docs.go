// Package kernel provides the value objects shared by the delivery and contact
// aggregates.
//
// The package includes:
//   - UUID: identifier of contacts
//   - OrderNumber: the "YYMMDD-NNN" delivery identifier and its date prefix
//
// Both are immutable and their zero values are invalid, so a Validate call
// catches values that bypassed the constructors.
package kernel
