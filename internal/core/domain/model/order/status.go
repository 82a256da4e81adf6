package order

import (
	"fmt"
	"slices"

	"coffeeshop/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct workflow from placement to handover.
//
// State transitions:
//
//	pending ──pay──> paid ──prepare──> preparing ──mark_ready──> ready ──deliver──> delivered
//	    │             │
//	    └───cancel────┴──> cancelled
//
// Delivered and cancelled are terminal states with no further transitions.
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first placed.
	// Pending orders can be modified, paid, or cancelled.
	Pending

	// Paid indicates payment has been accepted for the order.
	// Paid orders wait for a barista to start preparation and can still be cancelled.
	Paid

	// Preparing indicates a barista has started making the order.
	// From this point the order can no longer be cancelled.
	Preparing

	// Ready indicates the order is made and waiting for pickup.
	Ready

	// Delivered indicates the order was handed to the customer.
	// This is a terminal state with no further transitions allowed.
	Delivered

	// Cancelled indicates the order was withdrawn before preparation started.
	// This is a terminal state with no further transitions allowed.
	Cancelled
)

// Action represents a lifecycle operation that moves an order between statuses.
type Action int

const (
	// ActionUnknown represents an invalid or undefined action.
	ActionUnknown Action = iota

	// ActionPay records payment for the order.
	ActionPay

	// ActionCancel withdraws the order.
	ActionCancel

	// ActionPrepare starts preparation of the order.
	ActionPrepare

	// ActionMarkReady marks the order as made and waiting for pickup.
	ActionMarkReady

	// ActionDeliver hands the order to the customer.
	ActionDeliver
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Paid:      "paid",
		Preparing: "preparing",
		Ready:     "ready",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Paid:      "paid",
		Preparing: "preparing",
		Ready:     "ready",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// getActionStrings returns a map of Action values to their string representations.
func getActionStrings() map[Action]string {
	return map[Action]string{
		ActionUnknown:   "unknown",
		ActionPay:       "pay",
		ActionCancel:    "cancel",
		ActionPrepare:   "prepare",
		ActionMarkReady: "mark_ready",
		ActionDeliver:   "deliver",
	}
}

// getTransitions returns the complete transition table of the order lifecycle.
// A status maps to the set of actions allowed from it and the status each
// action leads to. Statuses mapping to an empty set are terminal.
func getTransitions() map[Status]map[Action]Status {
	return map[Status]map[Action]Status{
		Pending: {
			ActionPay:    Paid,
			ActionCancel: Cancelled,
		},
		Paid: {
			ActionPrepare: Preparing,
			ActionCancel:  Cancelled,
		},
		Preparing: {
			ActionMarkReady: Ready,
		},
		Ready: {
			ActionDeliver: Delivered,
		},
		Delivered: {},
		Cancelled: {},
	}
}

// StatusFromString parses a status from its lowercase string representation.
//
// Returns:
//   - the matching Status for "pending", "paid", "preparing", "ready",
//     "delivered", or "cancelled"
//   - error if the string does not name a valid status
//
// This function is used to convert statuses from query parameters
// and persistence back into Status values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%s is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Paid, Preparing, Ready, Delivered, Cancelled.
// Unknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase name of the status.
//
// Returns:
//   - "pending", "paid", "preparing", "ready", "delivered", or "cancelled"
//     for valid statuses
//   - "unknown" for invalid status values
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Apply performs a lifecycle transition according to the transition table.
//
// Returns:
//   - (next status, nil) when the action is allowed from the current status
//   - (0, *errs.InvalidTransitionError) when it is not
//
// All per-action transition methods are built on Apply, so the transition
// table is the single source of truth for the lifecycle.
func (s Status) Apply(action Action) (Status, error) {
	next, ok := getTransitions()[s][action]
	if !ok {
		return 0, errs.NewInvalidTransitionError(action.String(), s.String())
	}
	return next, nil
}

// AvailableActions returns the lifecycle actions allowed from this status,
// sorted in a stable order. Terminal and invalid statuses return an empty slice.
//
// The HTTP layer uses this to build hypermedia links, so the result must be
// deterministic across calls.
func (s Status) AvailableActions() []Action {
	allowed := getTransitions()[s]
	actions := make([]Action, 0, len(allowed))
	for action := range allowed {
		actions = append(actions, action)
	}
	slices.Sort(actions)
	return actions
}

// IsTerminal reports whether no further transitions are possible from this status.
// Delivered and Cancelled are terminal. Invalid statuses are not considered
// terminal; they fail Validate instead.
func (s Status) IsTerminal() bool {
	allowed, ok := getTransitions()[s]
	return ok && len(allowed) == 0
}

// ValidateModify checks if the order's recipe may be changed in this status
// without performing any transition.
//
// Modification is only allowed while the order is Pending. Once payment is
// taken the recipe is locked.
//
// Returns:
//   - nil if modification is allowed
//   - *errs.InvalidTransitionError if it is not
func (s Status) ValidateModify() error {
	if s != Pending {
		return errs.NewInvalidTransitionError("modify", s.String())
	}
	return nil
}

// ValidatePaidFlag validates the consistency between order status and the
// payment record. Enforces business rules about which statuses require payment.
//
// Business Rules:
//   - Pending orders must not be paid (payment immediately moves them to Paid)
//   - Paid, Preparing, Ready and Delivered orders must be paid
//   - Cancelled orders may be either: the payment record survives cancellation
//
// Parameters:
//   - paid: whether payment was taken for the order
//
// Returns:
//   - error: validation error if status and payment record are inconsistent
func (s Status) ValidatePaidFlag(paid bool) error {
	if s == Cancelled {
		return nil
	}

	if paid && s == Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status for a paid order", s.String()),
		)
	}

	if !paid && s != Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status for an unpaid order", s.String()),
		)
	}

	return nil
}

// Pay transitions the status to Paid.
//
// Valid transitions:
//   - Pending -> Paid
//
// Paying an already paid order is rejected; payment is not idempotent
// at the lifecycle level.
func (s Status) Pay() (Status, error) {
	return s.Apply(ActionPay)
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//   - Paid -> Cancelled
//
// Once preparation has started the order can no longer be cancelled.
func (s Status) Cancel() (Status, error) {
	return s.Apply(ActionCancel)
}

// Prepare transitions the status to Preparing.
//
// Valid transitions:
//   - Paid -> Preparing
//
// Orders must be paid before a barista starts making them.
func (s Status) Prepare() (Status, error) {
	return s.Apply(ActionPrepare)
}

// MarkReady transitions the status to Ready.
//
// Valid transitions:
//   - Preparing -> Ready
func (s Status) MarkReady() (Status, error) {
	return s.Apply(ActionMarkReady)
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Ready -> Delivered
//
// Delivered is a terminal state with no further transitions possible.
func (s Status) Deliver() (Status, error) {
	return s.Apply(ActionDeliver)
}

// String returns the lowercase name of the action.
//
// Returns:
//   - "pay", "cancel", "prepare", "mark_ready", or "deliver" for valid actions
//   - "unknown" for invalid action values
func (a Action) String() string {
	if str, ok := getActionStrings()[a]; ok {
		return str
	}
	return "unknown"
}
