package queries_test

import (
	"testing"

	"coffeeshop/internal/core/application/usecases/queries"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetAllOrdersQuery_NoFilters(t *testing.T) {
	query, err := queries.NewGetAllOrdersQuery(nil, nil)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Nil(t, query.Status())
	assert.Nil(t, query.Paid())
}

func TestNewGetAllOrdersQuery_WithFilters(t *testing.T) {
	status := order.Preparing
	paid := true

	query, err := queries.NewGetAllOrdersQuery(&status, &paid)

	require.NoError(t, err)
	require.NotNil(t, query.Status())
	require.NotNil(t, query.Paid())
	assert.Equal(t, order.Preparing, *query.Status())
	assert.True(t, *query.Paid())
}

func TestNewGetAllOrdersQuery_CopiesFilterValues(t *testing.T) {
	status := order.Paid
	paid := false

	query, err := queries.NewGetAllOrdersQuery(&status, &paid)
	require.NoError(t, err)

	// Mutating the caller's variables must not affect the query
	status = order.Cancelled
	paid = true

	assert.Equal(t, order.Paid, *query.Status())
	assert.False(t, *query.Paid())
}

func TestNewGetAllOrdersQuery_InvalidStatusFilter(t *testing.T) {
	testCases := []struct {
		name   string
		status order.Status
	}{
		{"unknown status", order.Unknown},
		{"out of range status", order.Status(42)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			query, err := queries.NewGetAllOrdersQuery(&tc.status, nil)

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Error(t, query.Validate())
		})
	}
}

func TestGetAllOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAllOrdersQuery{}

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAllOrdersQueryIsNotConstructed)
}
