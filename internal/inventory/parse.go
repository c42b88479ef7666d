package inventory

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidNumber marks caller text that is not a number of the expected kind.
var ErrInvalidNumber = errors.New("invalid number")

// ParsePrice coerces s to a float. Negative prices are accepted; NaN and
// infinities are not, since the snapshot cannot encode them.
func ParsePrice(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("price %q: %w", s, ErrInvalidNumber)
	}
	return v, nil
}

// ParseQuantity coerces s to an integer quantity.
func ParseQuantity(s string) (int, error) {
	return parseInt("quantity", s)
}

// ParseDelta coerces s to a signed quantity change; "+5" and "-3" are valid.
func ParseDelta(s string) (int, error) {
	return parseInt("quantity change", s)
}

func parseInt(what, s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", what, s, ErrInvalidNumber)
	}
	return v, nil
}
