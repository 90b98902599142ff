package money

import (
	"fmt"
	"math/big"
	"strings"
)

// RoundingMode determines how digits are discarded when a value is reduced
// to a smaller scale.
// The zero value is [RoundUnnecessary], which only permits exact results.
type RoundingMode int

const (
	// RoundUnnecessary asserts that no rounding is needed.
	// Operations fail with [ErrRoundingRequired] if a non-zero digit would be discarded.
	RoundUnnecessary RoundingMode = iota
	// RoundUp rounds away from zero.
	RoundUp
	// RoundDown rounds toward zero (truncation).
	RoundDown
	// RoundCeiling rounds toward positive infinity.
	RoundCeiling
	// RoundFloor rounds toward negative infinity.
	RoundFloor
	// RoundHalfUp rounds toward the nearest neighbour, ties away from zero.
	RoundHalfUp
	// RoundHalfDown rounds toward the nearest neighbour, ties toward zero.
	RoundHalfDown
	// RoundHalfEven rounds toward the nearest neighbour, ties to the even
	// neighbour (banker's rounding).
	RoundHalfEven
)

var modeNames = [...]string{
	RoundUnnecessary: "unnecessary",
	RoundUp:          "up",
	RoundDown:        "down",
	RoundCeiling:     "ceiling",
	RoundFloor:       "floor",
	RoundHalfUp:      "half-up",
	RoundHalfDown:    "half-down",
	RoundHalfEven:    "half-even",
}

// ParseRoundingMode converts a name such as "half-even" to a rounding mode.
// Names are case-insensitive and "truncate" is accepted as an alias of "down".
func ParseRoundingMode(s string) (RoundingMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "truncate" {
		return RoundDown, nil
	}
	for m, name := range modeNames {
		if s == name {
			return RoundingMode(m), nil
		}
	}
	return RoundUnnecessary, fmt.Errorf("unknown rounding mode %q", s)
}

// String implements the [fmt.Stringer] interface.
func (m RoundingMode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("RoundingMode(%d)", int(m))
	}
	return modeNames[m]
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (m *RoundingMode) UnmarshalText(text []byte) error {
	var err error
	*m, err = ParseRoundingMode(string(text))
	return err
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (m RoundingMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

var bigOne = big.NewInt(1)

// quoRound returns num / den rounded according to the mode.
func quoRound(num, den *big.Int, mode RoundingMode) (*big.Int, error) {
	if den.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	if den.Sign() < 0 {
		num = new(big.Int).Neg(num)
		den = new(big.Int).Neg(den)
	}
	q, r := new(big.Int).QuoRem(num, den, new(big.Int))
	if r.Sign() == 0 {
		return q, nil
	}

	neg := num.Sign() < 0
	var away bool
	switch mode {
	case RoundUnnecessary:
		return nil, ErrRoundingRequired
	case RoundUp:
		away = true
	case RoundDown:
		away = false
	case RoundCeiling:
		away = !neg
	case RoundFloor:
		away = neg
	case RoundHalfUp, RoundHalfDown, RoundHalfEven:
		twice := new(big.Int).Abs(r)
		twice.Lsh(twice, 1)
		switch c := twice.Cmp(den); {
		case c > 0:
			away = true
		case c < 0:
			away = false
		case mode == RoundHalfUp:
			away = true
		case mode == RoundHalfDown:
			away = false
		default:
			// tie, keep the quotient even
			away = new(big.Int).Abs(q).Bit(0) == 1
		}
	default:
		return nil, fmt.Errorf("unsupported rounding mode %v", mode)
	}

	if away {
		if neg {
			q.Sub(q, bigOne)
		} else {
			q.Add(q, bigOne)
		}
	}
	return q, nil
}

// pow10 returns 10^n for n >= 0.
func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}
