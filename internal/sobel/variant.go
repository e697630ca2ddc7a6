package sobel

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownVariant is returned by ParseVariant for unrecognised names.
var ErrUnknownVariant = errors.New("sobel: unknown variant")

// Variant selects the exact kernel or one of its approximations.
type Variant int

const (
	VariantExact Variant = iota
	VariantSW1
	VariantSW2
	VariantSW3
	VariantSW4
)

var variantNames = [...]string{"exact", "sw1", "sw2", "sw3", "sw4"}

// Variants lists every kernel in order of decreasing input count.
func Variants() []Variant {
	return []Variant{VariantExact, VariantSW1, VariantSW2, VariantSW3, VariantSW4}
}

// Valid reports whether v names one of the five kernels.
func (v Variant) Valid() bool {
	return v >= VariantExact && v <= VariantSW4
}

func (v Variant) String() string {
	if !v.Valid() {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return variantNames[v]
}

// ParseVariant maps a name such as "exact" or "SW3" to its Variant.
func ParseVariant(s string) (Variant, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range variantNames {
		if n == name {
			return Variant(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// Reads is the number of distinct neighbourhood samples the variant uses,
// or 0 for an invalid variant.
func (v Variant) Reads() int {
	if !v.Valid() {
		return 0
	}
	return 8 - int(v)
}

// Apply evaluates the variant on a neighbourhood. Positions the variant
// aliases are never read. Apply panics on an invalid variant.
func (v Variant) Apply(n Neighborhood) int {
	switch v {
	case VariantExact:
		return Exact(n.A, n.B, n.C, n.D, n.F, n.G, n.H, n.I)
	case VariantSW1:
		return SW1(n.A, n.B, n.C, n.F, n.G, n.H, n.I)
	case VariantSW2:
		return SW2(n.A, n.C, n.F, n.G, n.H, n.I)
	case VariantSW3:
		return SW3(n.A, n.C, n.G, n.H, n.I)
	case VariantSW4:
		return SW4(n.A, n.C, n.G, n.I)
	default:
		panic(fmt.Errorf("%w: %d", ErrUnknownVariant, int(v)))
	}
}
