package order_test

import (
	"testing"
	"time"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()
	createdAt := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

	t.Run("should place valid order with all valid parameters", func(t *testing.T) {
		o, err := order.NewOrder(validID, "latte", order.Medium, order.Whole, 2, createdAt)

		require.NoError(t, err)
		assert.NotNil(t, o)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.Equal(t, "latte", o.Drink())
		assert.Equal(t, order.Medium, o.Size())
		assert.Equal(t, order.Whole, o.Milk())
		assert.Equal(t, 2, o.Shots())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, 350, o.CostCents()) // 300 base + 50 extra shot
		assert.False(t, o.Paid())
		assert.Empty(t, o.CardLastFour())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Equal(t, 1, o.Version())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, "latte", order.Medium, order.Whole, 1, createdAt)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with empty drink", func(t *testing.T) {
		o, err := order.NewOrder(validID, "", order.Medium, order.Whole, 1, createdAt)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "drink is required")
	})

	t.Run("should fail with whitespace-only drink", func(t *testing.T) {
		o, err := order.NewOrder(validID, "   ", order.Medium, order.Whole, 1, createdAt)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "drink is required")
	})

	t.Run("should fail with invalid size", func(t *testing.T) {
		o, err := order.NewOrder(validID, "latte", order.SizeUnknown, order.Whole, 1, createdAt)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "size is invalid")
	})

	t.Run("should fail with invalid milk", func(t *testing.T) {
		o, err := order.NewOrder(validID, "latte", order.Medium, order.MilkUnknown, 1, createdAt)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "milk is invalid")
	})

	t.Run("should fail with too few shots", func(t *testing.T) {
		o, err := order.NewOrder(validID, "latte", order.Medium, order.Whole, 0, createdAt)

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "min value is 1, max value is 10")
	})

	t.Run("should fail with too many shots", func(t *testing.T) {
		o, err := order.NewOrder(validID, "latte", order.Medium, order.Whole, 11, createdAt)

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should fail with zero placement time", func(t *testing.T) {
		o, err := order.NewOrder(validID, "latte", order.Medium, order.Whole, 1, time.Time{})

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "createdAt is required")
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, "", order.SizeUnknown, order.MilkUnknown, -1, time.Time{})

		require.Error(t, err)
		assert.Nil(t, o)
		// Should contain all validation errors joined
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "drink is required")
		assert.Contains(t, err.Error(), "size is invalid")
		assert.Contains(t, err.Error(), "milk is invalid")
		assert.Contains(t, err.Error(), "createdAt is required")
	})

	t.Run("should accept boundary shot counts", func(t *testing.T) {
		o, err := order.NewOrder(validID, "espresso", order.Small, order.NoMilk, order.MinShots, createdAt)
		require.NoError(t, err)
		assert.Equal(t, order.MinShots, o.Shots())

		o, err = order.NewOrder(validID, "espresso", order.Small, order.NoMilk, order.MaxShots, createdAt)
		require.NoError(t, err)
		assert.Equal(t, order.MaxShots, o.Shots())
	})

	t.Run("should compute cost from size and shots", func(t *testing.T) {
		testCases := []struct {
			name     string
			size     order.Size
			shots    int
			expected int
		}{
			{"small single shot", order.Small, 1, 250},
			{"medium single shot", order.Medium, 1, 300},
			{"large single shot", order.Large, 1, 350},
			{"small double shot", order.Small, 2, 300},
			{"medium triple shot", order.Medium, 3, 400},
			{"large max shots", order.Large, 10, 800},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				o, err := order.NewOrder(validID, "flat white", tc.size, order.Whole, tc.shots, createdAt)

				require.NoError(t, err)
				assert.Equal(t, tc.expected, o.CostCents())
			})
		}
	})
}

func TestRestoreOrder(t *testing.T) {
	validID := kernel.NewUUID()
	createdAt := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

	t.Run("should restore paid order with all persisted fields", func(t *testing.T) {
		o, err := order.RestoreOrder(
			validID, "mocha", order.Large, order.Oat, 2,
			order.Preparing, 400, true, "4242", createdAt, 3,
		)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.Equal(t, "mocha", o.Drink())
		assert.Equal(t, order.Large, o.Size())
		assert.Equal(t, order.Oat, o.Milk())
		assert.Equal(t, 2, o.Shots())
		assert.Equal(t, order.Preparing, o.Status())
		assert.Equal(t, 400, o.CostCents())
		assert.True(t, o.Paid())
		assert.Equal(t, "4242", o.CardLastFour())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Equal(t, 3, o.Version())
	})

	t.Run("should restore unpaid pending order", func(t *testing.T) {
		o, err := order.RestoreOrder(
			validID, "latte", order.Medium, order.Whole, 1,
			order.Pending, 300, false, "", createdAt, 1,
		)

		require.NoError(t, err)
		assert.Equal(t, order.Pending, o.Status())
		assert.False(t, o.Paid())
	})

	t.Run("should reject paid pending order", func(t *testing.T) {
		o, err := order.RestoreOrder(
			validID, "latte", order.Medium, order.Whole, 1,
			order.Pending, 300, true, "4242", createdAt, 1,
		)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "pending is not a valid status for a paid order")
	})

	t.Run("should reject unpaid order past pending", func(t *testing.T) {
		for _, status := range []order.Status{order.Paid, order.Preparing, order.Ready, order.Delivered} {
			o, err := order.RestoreOrder(
				validID, "latte", order.Medium, order.Whole, 1,
				status, 300, false, "", createdAt, 2,
			)

			require.Error(t, err, "unpaid %s order should be rejected", status)
			assert.Nil(t, o)
			assert.Contains(t, err.Error(), "is not a valid status for an unpaid order")
		}
	})

	t.Run("should restore cancelled order with and without payment record", func(t *testing.T) {
		o, err := order.RestoreOrder(
			validID, "latte", order.Medium, order.Whole, 1,
			order.Cancelled, 300, false, "", createdAt, 2,
		)
		require.NoError(t, err)
		assert.False(t, o.Paid())

		o, err = order.RestoreOrder(
			validID, "latte", order.Medium, order.Whole, 1,
			order.Cancelled, 300, true, "4242", createdAt, 3,
		)
		require.NoError(t, err)
		assert.True(t, o.Paid())
		assert.Equal(t, "4242", o.CardLastFour())
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		o, err := order.RestoreOrder(
			validID, "latte", order.Medium, order.Whole, 1,
			order.Unknown, 300, false, "", createdAt, 1,
		)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "status is invalid")
	})

	t.Run("should reject non-positive cost", func(t *testing.T) {
		for _, cost := range []int{0, -300} {
			o, err := order.RestoreOrder(
				validID, "latte", order.Medium, order.Whole, 1,
				order.Pending, cost, false, "", createdAt, 1,
			)

			require.Error(t, err)
			assert.Nil(t, o)
			assert.Contains(t, err.Error(), "cost is invalid")
		}
	})

	t.Run("should reject version below 1", func(t *testing.T) {
		for _, version := range []int{0, -1} {
			o, err := order.RestoreOrder(
				validID, "latte", order.Medium, order.Whole, 1,
				order.Pending, 300, false, "", createdAt, version,
			)

			require.Error(t, err)
			assert.Nil(t, o)
			require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
		}
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should pass validation for properly constructed order", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), "latte", order.Medium, order.Whole, 1, time.Now().UTC())

		err := o.Validate()

		require.NoError(t, err)
	})

	t.Run("should fail validation for nil order", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("should fail validation for zero value order", func(t *testing.T) {
		var o order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}

func TestOrder_IsEqual(t *testing.T) {
	id1 := kernel.NewUUID()
	id2 := kernel.NewUUID()
	createdAt := time.Now().UTC()

	t.Run("should return true for orders with same ID", func(t *testing.T) {
		o1, _ := order.NewOrder(id1, "latte", order.Medium, order.Whole, 1, createdAt)
		o2, _ := order.NewOrder(id1, "mocha", order.Large, order.Oat, 3, createdAt) // Different recipe

		assert.True(t, o1.IsEqual(o2))
		assert.True(t, o2.IsEqual(o1))
	})

	t.Run("should return false for orders with different IDs", func(t *testing.T) {
		o1, _ := order.NewOrder(id1, "latte", order.Medium, order.Whole, 1, createdAt)
		o2, _ := order.NewOrder(id2, "latte", order.Medium, order.Whole, 1, createdAt)

		assert.False(t, o1.IsEqual(o2))
		assert.False(t, o2.IsEqual(o1))
	})

	t.Run("should return false when comparing with nil", func(t *testing.T) {
		o1, _ := order.NewOrder(id1, "latte", order.Medium, order.Whole, 1, createdAt)

		assert.False(t, o1.IsEqual(nil))
	})

	t.Run("should handle self comparison", func(t *testing.T) {
		o1, _ := order.NewOrder(id1, "latte", order.Medium, order.Whole, 1, createdAt)

		assert.True(t, o1.IsEqual(o1))
	})
}

func TestOrder_ChangeRecipe(t *testing.T) {
	createdAt := time.Now().UTC()

	newOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder(kernel.NewUUID(), "latte", order.Medium, order.Whole, 1, createdAt)
		require.NoError(t, err)
		return o
	}

	strPtr := func(s string) *string { return &s }
	sizePtr := func(s order.Size) *order.Size { return &s }
	milkPtr := func(m order.Milk) *order.Milk { return &m }
	intPtr := func(i int) *int { return &i }

	t.Run("should change drink only", func(t *testing.T) {
		o := newOrder(t)

		err := o.ChangeRecipe(strPtr("cappuccino"), nil, nil, nil)

		require.NoError(t, err)
		assert.Equal(t, "cappuccino", o.Drink())
		assert.Equal(t, order.Medium, o.Size())
		assert.Equal(t, order.Whole, o.Milk())
		assert.Equal(t, 1, o.Shots())
		assert.Equal(t, 300, o.CostCents())
	})

	t.Run("should recompute cost when size changes", func(t *testing.T) {
		o := newOrder(t)

		err := o.ChangeRecipe(nil, sizePtr(order.Large), nil, nil)

		require.NoError(t, err)
		assert.Equal(t, order.Large, o.Size())
		assert.Equal(t, 350, o.CostCents())
	})

	t.Run("should recompute cost when shots change", func(t *testing.T) {
		o := newOrder(t)

		err := o.ChangeRecipe(nil, nil, nil, intPtr(3))

		require.NoError(t, err)
		assert.Equal(t, 3, o.Shots())
		assert.Equal(t, 400, o.CostCents())
	})

	t.Run("should change several fields at once", func(t *testing.T) {
		o := newOrder(t)

		err := o.ChangeRecipe(strPtr("mocha"), sizePtr(order.Small), milkPtr(order.Oat), intPtr(2))

		require.NoError(t, err)
		assert.Equal(t, "mocha", o.Drink())
		assert.Equal(t, order.Small, o.Size())
		assert.Equal(t, order.Oat, o.Milk())
		assert.Equal(t, 2, o.Shots())
		assert.Equal(t, 300, o.CostCents()) // 250 base + 50 extra shot
	})

	t.Run("should leave order unchanged when all parameters are nil", func(t *testing.T) {
		o := newOrder(t)

		err := o.ChangeRecipe(nil, nil, nil, nil)

		require.NoError(t, err)
		assert.Equal(t, "latte", o.Drink())
		assert.Equal(t, order.Medium, o.Size())
		assert.Equal(t, order.Whole, o.Milk())
		assert.Equal(t, 1, o.Shots())
		assert.Equal(t, 300, o.CostCents())
	})

	t.Run("should not mutate order when a field is invalid", func(t *testing.T) {
		o := newOrder(t)

		err := o.ChangeRecipe(strPtr("mocha"), nil, nil, intPtr(99))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		// The valid drink change must not be applied either
		assert.Equal(t, "latte", o.Drink())
		assert.Equal(t, 1, o.Shots())
		assert.Equal(t, 300, o.CostCents())
	})

	t.Run("should reject empty drink", func(t *testing.T) {
		o := newOrder(t)

		err := o.ChangeRecipe(strPtr(""), nil, nil, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "drink is required")
		assert.Equal(t, "latte", o.Drink())
	})

	t.Run("should reject modification after payment", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Pay("4111111111111111", 300))

		err := o.ChangeRecipe(strPtr("mocha"), nil, nil, nil)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Contains(t, err.Error(), "cannot modify order in status paid")
		assert.Equal(t, "latte", o.Drink())
	})

	t.Run("should reject modification after cancellation", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Cancel())

		err := o.ChangeRecipe(nil, sizePtr(order.Large), nil, nil)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Medium, o.Size())
	})
}

func TestOrder_Pay(t *testing.T) {
	createdAt := time.Now().UTC()

	newOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder(kernel.NewUUID(), "latte", order.Medium, order.Whole, 1, createdAt)
		require.NoError(t, err)
		return o
	}

	t.Run("should pay pending order with exact amount", func(t *testing.T) {
		o := newOrder(t)

		err := o.Pay("4111111111111111", 300)

		require.NoError(t, err)
		assert.Equal(t, order.Paid, o.Status())
		assert.True(t, o.Paid())
		assert.Equal(t, "1111", o.CardLastFour())
	})

	t.Run("should accept overpayment", func(t *testing.T) {
		o := newOrder(t)

		err := o.Pay("4242424242424242", 500)

		require.NoError(t, err)
		assert.Equal(t, order.Paid, o.Status())
		assert.Equal(t, "4242", o.CardLastFour())
	})

	t.Run("should reject card number shorter than four digits", func(t *testing.T) {
		o := newOrder(t)

		err := o.Pay("999", 300)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.Pending, o.Status())
		assert.False(t, o.Paid())
		assert.Empty(t, o.CardLastFour())
	})

	t.Run("should reject payment without card number", func(t *testing.T) {
		o := newOrder(t)

		err := o.Pay("", 300)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "card_number is required")
		assert.Equal(t, order.Pending, o.Status()) // Status unchanged
		assert.False(t, o.Paid())
	})

	t.Run("should reject insufficient amount", func(t *testing.T) {
		o := newOrder(t)

		err := o.Pay("4111111111111111", 299)

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrInsufficientAmount)

		var insufficientErr *order.InsufficientAmountError
		require.ErrorAs(t, err, &insufficientErr)
		assert.Equal(t, 300, insufficientErr.NeedCents)
		assert.Equal(t, "Insufficient amount. Need $3.00", err.Error())

		assert.Equal(t, order.Pending, o.Status()) // Status unchanged
		assert.False(t, o.Paid())
		assert.Empty(t, o.CardLastFour())
	})

	t.Run("should reject paying twice", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Pay("4111111111111111", 300))

		err := o.Pay("4242424242424242", 300)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Contains(t, err.Error(), "cannot pay order in status paid")
		assert.Equal(t, "1111", o.CardLastFour()) // Original card preserved
	})

	t.Run("should reject paying a cancelled order", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Cancel())

		err := o.Pay("4111111111111111", 300)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Cancelled, o.Status())
		assert.False(t, o.Paid())
	})
}

func TestOrder_Cancel(t *testing.T) {
	createdAt := time.Now().UTC()

	newOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder(kernel.NewUUID(), "latte", order.Medium, order.Whole, 1, createdAt)
		require.NoError(t, err)
		return o
	}

	t.Run("should cancel pending order", func(t *testing.T) {
		o := newOrder(t)

		err := o.Cancel()

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, o.Status())
		assert.False(t, o.Paid())
	})

	t.Run("should cancel paid order and keep payment record", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Pay("4111111111111111", 300))

		err := o.Cancel()

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, o.Status())
		assert.True(t, o.Paid())                  // Payment record survives cancellation
		assert.Equal(t, "1111", o.CardLastFour()) // Card record survives too
	})

	t.Run("should reject cancelling once preparation started", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Pay("4111111111111111", 300))
		require.NoError(t, o.StartPreparation())

		err := o.Cancel()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Contains(t, err.Error(), "cannot cancel order in status preparing")
		assert.Equal(t, order.Preparing, o.Status()) // Status unchanged
	})

	t.Run("should reject cancelling a delivered order", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Pay("4111111111111111", 300))
		require.NoError(t, o.StartPreparation())
		require.NoError(t, o.MarkReady())
		require.NoError(t, o.Deliver())

		err := o.Cancel()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Delivered, o.Status())
	})
}

func TestOrder_StartPreparation(t *testing.T) {
	createdAt := time.Now().UTC()

	t.Run("should start preparing a paid order", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), "latte", order.Medium, order.Whole, 1, createdAt)
		require.NoError(t, o.Pay("4111111111111111", 300))

		err := o.StartPreparation()

		require.NoError(t, err)
		assert.Equal(t, order.Preparing, o.Status())
		assert.True(t, o.Paid()) // Payment record preserved
	})

	t.Run("should reject preparing an unpaid order", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), "latte", order.Medium, order.Whole, 1, createdAt)

		err := o.StartPreparation()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Contains(t, err.Error(), "cannot prepare order in status pending")
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should reject preparing a cancelled order", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), "latte", order.Medium, order.Whole, 1, createdAt)
		require.NoError(t, o.Cancel())

		err := o.StartPreparation()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestOrder_MarkReady(t *testing.T) {
	createdAt := time.Now().UTC()

	t.Run("should mark a preparing order ready", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), "latte", order.Medium, order.Whole, 1, createdAt)
		require.NoError(t, o.Pay("4111111111111111", 300))
		require.NoError(t, o.StartPreparation())

		err := o.MarkReady()

		require.NoError(t, err)
		assert.Equal(t, order.Ready, o.Status())
	})

	t.Run("should reject marking a paid order ready", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), "latte", order.Medium, order.Whole, 1, createdAt)
		require.NoError(t, o.Pay("4111111111111111", 300))

		err := o.MarkReady()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Paid, o.Status())
	})
}

func TestOrder_Deliver(t *testing.T) {
	createdAt := time.Now().UTC()

	t.Run("should deliver a ready order", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), "latte", order.Medium, order.Whole, 1, createdAt)
		require.NoError(t, o.Pay("4111111111111111", 300))
		require.NoError(t, o.StartPreparation())
		require.NoError(t, o.MarkReady())

		err := o.Deliver()

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("should reject delivering before ready", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), "latte", order.Medium, order.Whole, 1, createdAt)
		require.NoError(t, o.Pay("4111111111111111", 300))
		require.NoError(t, o.StartPreparation())

		err := o.Deliver()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Preparing, o.Status())
	})
}

func TestOrder_AvailableActions(t *testing.T) {
	createdAt := time.Now().UTC()

	t.Run("should advertise actions matching the lifecycle", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), "latte", order.Medium, order.Whole, 1, createdAt)
		assert.Equal(t, []order.Action{order.ActionPay, order.ActionCancel}, o.AvailableActions())

		require.NoError(t, o.Pay("4111111111111111", 300))
		assert.Equal(t, []order.Action{order.ActionCancel, order.ActionPrepare}, o.AvailableActions())

		require.NoError(t, o.StartPreparation())
		assert.Equal(t, []order.Action{order.ActionMarkReady}, o.AvailableActions())

		require.NoError(t, o.MarkReady())
		assert.Equal(t, []order.Action{order.ActionDeliver}, o.AvailableActions())

		require.NoError(t, o.Deliver())
		assert.Empty(t, o.AvailableActions())
	})

	t.Run("should advertise nothing after cancellation", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), "latte", order.Medium, order.Whole, 1, createdAt)
		require.NoError(t, o.Cancel())

		assert.Empty(t, o.AvailableActions())
	})
}

func TestOrder_FullWorkflow(t *testing.T) {
	t.Run("should follow complete order lifecycle", func(t *testing.T) {
		// Setup
		orderID := kernel.NewUUID()
		createdAt := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

		// Place order
		o, err := order.NewOrder(orderID, "latte", order.Large, order.Oat, 2, createdAt)
		require.NoError(t, err)
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, 400, o.CostCents()) // 350 base + 50 extra shot
		assert.False(t, o.Paid())

		// Pay
		err = o.Pay("4111111111111111", 400)
		require.NoError(t, err)
		assert.Equal(t, order.Paid, o.Status())
		assert.True(t, o.Paid())
		assert.Equal(t, "1111", o.CardLastFour())

		// Prepare
		err = o.StartPreparation()
		require.NoError(t, err)
		assert.Equal(t, order.Preparing, o.Status())

		// Ready
		err = o.MarkReady()
		require.NoError(t, err)
		assert.Equal(t, order.Ready, o.Status())

		// Deliver
		err = o.Deliver()
		require.NoError(t, err)
		assert.Equal(t, order.Delivered, o.Status())

		// Verify final state
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(orderID))
		assert.Equal(t, "latte", o.Drink())
		assert.Equal(t, 400, o.CostCents())
		assert.True(t, o.Paid())
	})

	t.Run("should handle modify-then-pay workflow", func(t *testing.T) {
		orderID := kernel.NewUUID()
		createdAt := time.Now().UTC()
		size := order.Large
		shots := 2

		// Place a medium latte, then upgrade it while still pending
		o, _ := order.NewOrder(orderID, "latte", order.Medium, order.Whole, 1, createdAt)
		err := o.ChangeRecipe(nil, &size, nil, &shots)
		require.NoError(t, err)
		assert.Equal(t, 400, o.CostCents())

		// The old amount no longer covers the upgraded order
		err = o.Pay("4111111111111111", 300)
		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrInsufficientAmount)

		// Paying the new cost succeeds and locks the recipe
		err = o.Pay("4111111111111111", 400)
		require.NoError(t, err)
		err = o.ChangeRecipe(nil, nil, nil, &shots)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("should handle cancel-after-payment workflow", func(t *testing.T) {
		orderID := kernel.NewUUID()
		createdAt := time.Now().UTC()

		o, _ := order.NewOrder(orderID, "mocha", order.Medium, order.Whole, 1, createdAt)
		require.NoError(t, o.Pay("4242424242424242", 300))
		require.NoError(t, o.Cancel())

		// The cancelled order keeps its payment record for the refund trail
		assert.Equal(t, order.Cancelled, o.Status())
		assert.True(t, o.Paid())
		assert.Equal(t, "4242", o.CardLastFour())

		// And refuses any further lifecycle action
		require.Error(t, o.Pay("4242424242424242", 300))
		require.Error(t, o.StartPreparation())
		require.Error(t, o.Cancel())
	})
}

func TestOrder_ConcurrentSafety(t *testing.T) {
	t.Run("should be safe for concurrent read operations", func(t *testing.T) {
		orderID := kernel.NewUUID()
		createdAt := time.Now().UTC()

		o, _ := order.NewOrder(orderID, "latte", order.Medium, order.Whole, 2, createdAt)
		_ = o.Pay("4111111111111111", 350)

		// Simulate concurrent reads
		done := make(chan bool, 10)
		for range 10 {
			go func() {
				defer func() { done <- true }()

				// Multiple read operations
				_ = o.ID()
				_ = o.Drink()
				_ = o.Size()
				_ = o.Milk()
				_ = o.Shots()
				_ = o.Status()
				_ = o.CostCents()
				_ = o.Paid()
				_ = o.AvailableActions()
				_ = o.Validate()
			}()
		}

		// Wait for all goroutines to complete
		for range 10 {
			<-done
		}

		// Verify state is still consistent
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Paid, o.Status())
		assert.True(t, o.Paid())
	})
}

func TestOrder_ErrorMessages(t *testing.T) {
	t.Run("should provide clear error messages for insufficient payments", func(t *testing.T) {
		testCases := []struct {
			name     string
			size     order.Size
			shots    int
			expected string
		}{
			{"small single shot", order.Small, 1, "Insufficient amount. Need $2.50"},
			{"medium single shot", order.Medium, 1, "Insufficient amount. Need $3.00"},
			{"large triple shot", order.Large, 3, "Insufficient amount. Need $4.50"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				o, err := order.NewOrder(kernel.NewUUID(), "latte", tc.size, order.Whole, tc.shots, time.Now().UTC())
				require.NoError(t, err)

				err = o.Pay("4111111111111111", 1)

				require.Error(t, err)
				assert.Equal(t, tc.expected, err.Error())
			})
		}
	})
}
