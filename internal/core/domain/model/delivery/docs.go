// Package delivery provides the Delivery aggregate and its lifecycle.
//
// A delivery is identified by its kernel.OrderNumber, is paid through one
// Settlement method fixed at creation, and moves through the statuses
// Received, PickedUp, Delivering, PendingSettlement and Settled. The
// transition function Status.Next is pure: prepaid deliveries skip
// PendingSettlement, and Settled (or any unrecognized status) maps to
// itself, so advancing a finished delivery is harmless.
//
// The package also holds the read-side helpers used by the list views:
// filtering by status or tab, and summing today's fees.
package delivery
