package order

import (
	"fmt"

	"coffeeshop/internal/pkg/errs"
)

// Size represents the cup size of an order.
// It is a closed enumeration; unknown sizes are rejected at the boundary.
type Size int

const (
	// SizeUnknown represents an invalid or undefined size.
	SizeUnknown Size = iota

	// Small is the smallest cup.
	Small

	// Medium is the default cup size.
	Medium

	// Large is the biggest cup.
	Large
)

// Milk represents the milk choice of an order.
// It is a closed enumeration; unknown milks are rejected at the boundary.
type Milk int

const (
	// MilkUnknown represents an invalid or undefined milk choice.
	MilkUnknown Milk = iota

	// Whole is the default milk choice.
	Whole

	// Skim is fat free milk.
	Skim

	// Soy is a plant based alternative.
	Soy

	// Oat is a plant based alternative.
	Oat

	// NoMilk means the drink is served black.
	NoMilk
)

const (
	// DefaultSize is applied when an order is placed without a size.
	DefaultSize = Medium

	// DefaultMilk is applied when an order is placed without a milk choice.
	DefaultMilk = Whole

	// DefaultShots is applied when an order is placed without a shot count.
	DefaultShots = 1

	// MinShots is the smallest allowed number of espresso shots.
	MinShots = 1

	// MaxShots is the largest allowed number of espresso shots.
	MaxShots = 10

	// extraShotCostCents is charged for every shot beyond the first.
	extraShotCostCents = 50
)

// getSizeStrings returns a map of Size values to their string representations.
func getSizeStrings() map[Size]string {
	return map[Size]string{
		SizeUnknown: "unknown",
		Small:       "small",
		Medium:      "medium",
		Large:       "large",
	}
}

// getValidSizeStrings returns a map of only valid Size values.
func getValidSizeStrings() map[Size]string {
	//nolint:exhaustive // SizeUnknown is intentionally excluded as it's invalid
	return map[Size]string{
		Small:  "small",
		Medium: "medium",
		Large:  "large",
	}
}

// getMilkStrings returns a map of Milk values to their string representations.
func getMilkStrings() map[Milk]string {
	return map[Milk]string{
		MilkUnknown: "unknown",
		Whole:       "whole",
		Skim:        "skim",
		Soy:         "soy",
		Oat:         "oat",
		NoMilk:      "none",
	}
}

// getValidMilkStrings returns a map of only valid Milk values.
func getValidMilkStrings() map[Milk]string {
	//nolint:exhaustive // MilkUnknown is intentionally excluded as it's invalid
	return map[Milk]string{
		Whole:  "whole",
		Skim:   "skim",
		Soy:    "soy",
		Oat:    "oat",
		NoMilk: "none",
	}
}

// getBaseCostCents returns the base price per cup size in cents.
func getBaseCostCents() map[Size]int {
	return map[Size]int{
		Small:  250,
		Medium: 300,
		Large:  350,
	}
}

// costCents computes the price of an order in cents from its size and
// shot count: the base price of the size plus a surcharge for every
// shot beyond the first.
func costCents(size Size, shots int) int {
	return getBaseCostCents()[size] + (shots-1)*extraShotCostCents
}

// SizeFromString parses a size from its lowercase string representation.
// Returns an error if the string does not name a valid size.
func SizeFromString(s string) (Size, error) {
	for size, str := range getValidSizeStrings() {
		if str == s {
			return size, nil
		}
	}
	return SizeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"size is invalid",
		fmt.Errorf("%s is not a valid size", s),
	)
}

// Validate checks if the Size value is valid.
// Valid sizes are: Small, Medium, Large.
func (s Size) Validate() error {
	if _, ok := getValidSizeStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("size is invalid", fmt.Errorf("%d is not a valid size", s))
	}
	return nil
}

// String returns the lowercase name of the size, or "unknown" for invalid values.
func (s Size) String() string {
	if str, ok := getSizeStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// MilkFromString parses a milk choice from its lowercase string representation.
// Returns an error if the string does not name a valid milk choice.
func MilkFromString(s string) (Milk, error) {
	for milk, str := range getValidMilkStrings() {
		if str == s {
			return milk, nil
		}
	}
	return MilkUnknown, errs.NewValueIsInvalidErrorWithCause(
		"milk is invalid",
		fmt.Errorf("%s is not a valid milk", s),
	)
}

// Validate checks if the Milk value is valid.
// Valid milk choices are: Whole, Skim, Soy, Oat, NoMilk.
func (m Milk) Validate() error {
	if _, ok := getValidMilkStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("milk is invalid", fmt.Errorf("%d is not a valid milk", m))
	}
	return nil
}

// String returns the lowercase name of the milk choice, or "unknown" for invalid values.
func (m Milk) String() string {
	if str, ok := getMilkStrings()[m]; ok {
		return str
	}
	return "unknown"
}
