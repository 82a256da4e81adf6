// Package order provides domain entities and business logic for the coffee
// ordering workflow. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, recipe, payment and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - Action: The set of lifecycle operations that move an order between statuses
//   - Size, Milk: Closed enumerations describing the recipe
//
// Key business rules:
//   - Orders must have a valid unique identifier and a non-empty drink name
//   - Order status follows a defined workflow:
//     Pending -> Paid -> Preparing -> Ready -> Delivered, with cancellation
//     allowed from Pending and Paid
//   - The recipe can only be changed while the order is Pending
//   - Cost is derived from size and shot count and recomputed on recipe changes
//   - Delivered and Cancelled are terminal states
//
// The transition table is represented as data and is the single source of
// truth for both transition validation and the set of actions advertised to
// API clients as hypermedia links.
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
