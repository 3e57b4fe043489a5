// Package contact provides the address book aggregate.
//
// Contacts are looked up by exact, case-sensitive business name. Saving a
// delivery feeds the business's phone, address and note back into its
// contact through Absorb; the phone list keeps the three most recent
// distinct numbers.
package contact
