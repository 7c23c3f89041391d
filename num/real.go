// Package num abstracts the scalar type used by the robust geometric
// predicates, so the same hull code can run on float64 or on exact rationals.
package num

import (
	"fmt"
	"math"
	"math/big"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Real is the set of operations the exact predicates need. Implementations are
// values: no method may modify its receiver or argument.
type Real[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Quo(T) T
	Neg() T
	// Cmp returns -1, 0 or +1.
	Cmp(T) int
	Sign() int
	// Sqrt may round. Nothing that needs exactness calls it.
	Sqrt() T
	// FromFloat64 is called on the zero value to build new scalars.
	FromFloat64(float64) T
	Float64() float64
}

// Arithmetic selects which Real implementation an algorithm runs on.
type Arithmetic int

const (
	// Exact uses arbitrary precision rationals. Every float64 input converts
	// without loss, so sign decisions are always correct.
	Exact Arithmetic = iota
	// Floating uses float64 directly. Faster, but near-degenerate input can be
	// misclassified.
	Floating
)

func (a Arithmetic) String() string {
	switch a {
	case Exact:
		return "exact"
	case Floating:
		return "floating"
	}
	return fmt.Sprintf("Arithmetic(%d)", int(a))
}

// Of converts any float into T.
func Of[T Real[T], F constraints.Float](f F) T {
	var zero T
	return zero.FromFloat64(float64(f))
}

// Float is float64 dressed up as a Real.
type Float float64

func (a Float) Add(b Float) Float { return a + b }
func (a Float) Sub(b Float) Float { return a - b }
func (a Float) Mul(b Float) Float { return a * b }
func (a Float) Quo(b Float) Float { return a / b }
func (a Float) Neg() Float { return -a }

func (a Float) Cmp(b Float) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (a Float) Sign() int { return a.Cmp(0) }
func (a Float) Sqrt() Float { return Float(math.Sqrt(float64(a))) }
func (Float) FromFloat64(f float64) Float { return Float(f) }
func (a Float) Float64() float64 { return float64(a) }

// Rat is an exact rational. The zero value is 0.
type Rat struct {
	r *big.Rat
}

// NewRat converts f exactly. It panics if f is NaN or infinite, since those
// have no rational value; callers validate input before getting here.
func NewRat(f float64) Rat {
	r := new(big.Rat).SetFloat64(f)
	if r == nil {
		panic(errors.Errorf("num: %v has no rational value", f))
	}
	return Rat{r}
}

func (a Rat) rat() *big.Rat {
	if a.r == nil {
		return new(big.Rat)
	}
	return a.r
}

func (a Rat) Add(b Rat) Rat { return Rat{new(big.Rat).Add(a.rat(), b.rat())} }
func (a Rat) Sub(b Rat) Rat { return Rat{new(big.Rat).Sub(a.rat(), b.rat())} }
func (a Rat) Mul(b Rat) Rat { return Rat{new(big.Rat).Mul(a.rat(), b.rat())} }

// Quo panics when b is zero, like big.Rat.Quo.
func (a Rat) Quo(b Rat) Rat { return Rat{new(big.Rat).Quo(a.rat(), b.rat())} }
func (a Rat) Neg() Rat { return Rat{new(big.Rat).Neg(a.rat())} }
func (a Rat) Cmp(b Rat) int { return a.rat().Cmp(b.rat()) }
func (a Rat) Sign() int { return a.rat().Sign() }

// Sqrt goes through float64, so the result is only as good as a float.
func (a Rat) Sqrt() Rat {
	return NewRat(math.Sqrt(a.Float64()))
}

func (Rat) FromFloat64(f float64) Rat { return NewRat(f) }

func (a Rat) Float64() float64 {
	f, _ := a.rat().Float64()
	return f
}

func (a Rat) String() string {
	return a.rat().RatString()
}
