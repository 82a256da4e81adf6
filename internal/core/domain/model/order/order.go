package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrInsufficientAmount is the sentinel error for payments below the order cost.
	ErrInsufficientAmount = errors.New("insufficient amount")
)

// InsufficientAmountError indicates that a payment did not cover the order cost.
type InsufficientAmountError struct {
	NeedCents int
}

// NewInsufficientAmountError creates an InsufficientAmountError for the given order cost.
func NewInsufficientAmountError(needCents int) *InsufficientAmountError {
	return &InsufficientAmountError{NeedCents: needCents}
}

func (e *InsufficientAmountError) Error() string {
	return fmt.Sprintf("Insufficient amount. Need $%.2f", float64(e.NeedCents)/100)
}

func (e *InsufficientAmountError) Unwrap() error {
	return ErrInsufficientAmount
}

// minCardNumberLength is the smallest accepted card number length.
// Shorter values cannot produce a meaningful payment record.
const minCardNumberLength = 4

// Order represents a coffee order. It is the aggregate root that manages
// the order lifecycle from placement through payment and preparation to handover.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a non-empty drink name
//   - Size and milk are closed enumerations; shots stay within [MinShots, MaxShots]
//   - Cost is derived from size and shots and recomputed on every recipe change
//   - Status transitions follow the lifecycle transition table
//   - The recipe can only be changed while the order is Pending
//   - The paid flag survives cancellation; a cancelled order keeps its payment record
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// drink is the name of the ordered beverage
	drink string

	// size is the cup size
	size Size

	// milk is the milk choice
	milk Milk

	// shots is the number of espresso shots
	shots int

	// status represents the current state in the order lifecycle
	status Status

	// costCents is the price derived from size and shots
	costCents int

	// paid records whether payment was taken for the order
	paid bool

	// cardLastFour holds the last four characters of the card used to pay
	cardLastFour string

	// createdAt is the placement time in UTC
	createdAt time.Time

	// version is the optimistic concurrency version loaded from storage
	version int

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order instance with validation. This is the only way
// to place a valid order, ensuring all business invariants are maintained.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - drink: Name of the beverage (must not be empty)
//   - size: Cup size (Small, Medium, or Large)
//   - milk: Milk choice (Whole, Skim, Soy, Oat, or NoMilk)
//   - shots: Number of espresso shots (between MinShots and MaxShots)
//   - createdAt: Placement time (must not be zero)
//
// Returns:
//   - *Order: The placed order if all validations pass
//   - error: Validation error if any parameter is invalid
//
// Example:
//
//	orderID := kernel.NewUUID()
//	o, err := NewOrder(orderID, "latte", order.Medium, order.Whole, 2, clk.Now())
//	if err != nil {
//	    // Handle validation error
//	}
//
// The constructor validates all inputs and ensures the order starts in
// Pending status, unpaid, at version 1, with its cost computed from the recipe.
func NewOrder(
	id kernel.UUID,
	drink string,
	size Size,
	milk Milk,
	shots int,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setDrink(drink),
		order.setSize(size),
		order.setMilk(milk),
		order.setShots(shots),
		order.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	order.costCents = costCents(order.size, order.shots)
	return order, nil
}

// RestoreOrder reconstructs an Order from persisted state without running
// lifecycle rules. It is intended for repositories and caches rehydrating
// aggregates; all fields are still validated for structural integrity,
// including the consistency between status and the paid flag.
func RestoreOrder(
	id kernel.UUID,
	drink string,
	size Size,
	milk Milk,
	shots int,
	status Status,
	cost int,
	paid bool,
	cardLastFour string,
	createdAt time.Time,
	version int,
) (*Order, error) {
	order := &Order{
		paid:          paid,
		cardLastFour:  cardLastFour,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setDrink(drink),
		order.setSize(size),
		order.setMilk(milk),
		order.setShots(shots),
		order.setStatus(status),
		order.setCostCents(cost),
		order.setCreatedAt(createdAt),
		order.setVersion(version),
	); err != nil {
		return nil, err
	}

	if err := order.status.ValidatePaidFlag(order.paid); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder. This prevents bypassing validation by directly
// instantiating the struct.
//
// Returns:
//   - nil if the order is valid
//   - ErrOrderIsNotConstructed if the order was not created via a constructor
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
// Orders are considered equal if they have the same ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Drink returns the name of the ordered beverage.
func (o *Order) Drink() string {
	return o.drink
}

// Size returns the cup size.
func (o *Order) Size() Size {
	return o.size
}

// Milk returns the milk choice.
func (o *Order) Milk() Milk {
	return o.milk
}

// Shots returns the number of espresso shots.
func (o *Order) Shots() int {
	return o.shots
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CostCents returns the order price in cents, derived from size and shots.
func (o *Order) CostCents() int {
	return o.costCents
}

// Paid reports whether payment was taken for the order.
// The flag survives cancellation.
func (o *Order) Paid() bool {
	return o.paid
}

// CardLastFour returns the last four characters of the card used to pay.
// Returns an empty string for unpaid orders.
func (o *Order) CardLastFour() string {
	return o.cardLastFour
}

// CreatedAt returns the placement time of the order.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Version returns the optimistic concurrency version the aggregate was loaded with.
func (o *Order) Version() int {
	return o.version
}

// AvailableActions returns the lifecycle actions allowed from the order's
// current status, in a stable order.
func (o *Order) AvailableActions() []Action {
	return o.status.AvailableActions()
}

// ChangeRecipe updates the order's recipe. Nil parameters leave the
// corresponding field unchanged.
//
// This method enforces the following business rules:
//   - The order must be in Pending status; paid orders have a locked recipe
//   - Provided fields are validated with the same rules as NewOrder
//   - The cost is recomputed from the resulting size and shots
//
// The order is only mutated if every provided field passes validation.
//
// Returns:
//   - nil on successful update
//   - *errs.InvalidTransitionError if the order is not Pending
//   - validation error if any provided field is invalid
func (o *Order) ChangeRecipe(drink *string, size *Size, milk *Milk, shots *int) error {
	if err := o.status.ValidateModify(); err != nil {
		return err
	}

	updated := *o

	var validationErrs []error
	if drink != nil {
		validationErrs = append(validationErrs, updated.setDrink(*drink))
	}
	if size != nil {
		validationErrs = append(validationErrs, updated.setSize(*size))
	}
	if milk != nil {
		validationErrs = append(validationErrs, updated.setMilk(*milk))
	}
	if shots != nil {
		validationErrs = append(validationErrs, updated.setShots(*shots))
	}
	if err := errors.Join(validationErrs...); err != nil {
		return err
	}

	updated.costCents = costCents(updated.size, updated.shots)
	*o = updated
	return nil
}

// Pay records payment for the order and transitions it to Paid.
//
// This method enforces the following business rules:
//   - The order must be in Pending status; paying twice is rejected
//   - The card number must carry at least four digits
//   - The amount must cover the order cost
//
// Parameters:
//   - cardNumber: The card used to pay; only its last four characters are kept
//   - amountCents: The tendered amount in cents
//
// Returns:
//   - nil on successful payment
//   - *errs.InvalidTransitionError if the order is not Pending
//   - *errs.ValueIsRequiredError if the card number is empty
//   - *errs.ValueIsInvalidError if the card number is shorter than four digits
//   - *InsufficientAmountError if the amount is below the order cost
func (o *Order) Pay(cardNumber string, amountCents int) error {
	newStatus, err := o.status.Pay()
	if err != nil {
		return err
	}

	if cardNumber == "" {
		return errs.NewValueIsRequiredError("card_number is required")
	}

	if len(cardNumber) < minCardNumberLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"card_number is invalid",
			fmt.Errorf("card number must have at least %d digits", minCardNumberLength),
		)
	}

	if amountCents < o.costCents {
		return NewInsufficientAmountError(o.costCents)
	}

	o.status = newStatus
	o.paid = true
	o.cardLastFour = lastFour(cardNumber)
	return nil
}

// Cancel withdraws the order and transitions it to Cancelled.
//
// This method enforces the following business rules:
//   - The order must be in Pending or Paid status
//   - Once preparation has started the order can no longer be cancelled
//   - The paid flag and card record are preserved on the cancelled order
//
// Returns:
//   - nil on successful cancellation
//   - *errs.InvalidTransitionError if cancellation is not allowed from the current status
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// StartPreparation marks that a barista began making the order and
// transitions it to Preparing.
//
// Valid only from Paid status: orders must be paid before preparation starts.
func (o *Order) StartPreparation() error {
	newStatus, err := o.status.Prepare()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkReady marks the order as made and waiting for pickup.
//
// Valid only from Preparing status.
func (o *Order) MarkReady() error {
	newStatus, err := o.status.MarkReady()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Deliver records the handover of the order to the customer.
//
// Valid only from Ready status. Delivered is a terminal state.
func (o *Order) Deliver() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setDrink validates and sets the beverage name.
func (o *Order) setDrink(drink string) error {
	if strings.TrimSpace(drink) == "" {
		return errs.NewValueIsRequiredError("drink is required")
	}
	o.drink = drink
	return nil
}

// setSize validates and sets the cup size.
func (o *Order) setSize(size Size) error {
	if err := size.Validate(); err != nil {
		return err
	}
	o.size = size
	return nil
}

// setMilk validates and sets the milk choice.
func (o *Order) setMilk(milk Milk) error {
	if err := milk.Validate(); err != nil {
		return err
	}
	o.milk = milk
	return nil
}

// setShots validates and sets the espresso shot count.
// Shots must stay within [MinShots, MaxShots].
func (o *Order) setShots(shots int) error {
	if shots < MinShots || shots > MaxShots {
		return errs.NewValueIsOutOfRangeError("shots", shots, MinShots, MaxShots)
	}
	o.shots = shots
	return nil
}

// setStatus validates and sets the lifecycle status.
// This is only used during restoration from persistence.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setCostCents validates and sets the stored cost.
// This is only used during restoration from persistence.
func (o *Order) setCostCents(cost int) error {
	if cost <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("cost is invalid", fmt.Errorf("%d is not greater than 0", cost))
	}
	o.costCents = cost
	return nil
}

// setCreatedAt validates and sets the placement time.
func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt is required")
	}
	o.createdAt = createdAt
	return nil
}

// setVersion validates and sets the optimistic concurrency version.
// This is only used during restoration from persistence.
func (o *Order) setVersion(version int) error {
	if version < 1 {
		return errs.NewVersionIsInvalidErrorWithCause(
			"order",
			fmt.Errorf("%d is not greater than 0", version),
		)
	}
	o.version = version
	return nil
}

// lastFour returns the last four characters of a card number.
// Pay rejects shorter card numbers before this is reached.
func lastFour(cardNumber string) string {
	if len(cardNumber) <= minCardNumberLength {
		return cardNumber
	}
	return cardNumber[len(cardNumber)-minCardNumberLength:]
}
