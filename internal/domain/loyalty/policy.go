package loyalty

import "errors"

var ErrInvalidMode = errors.New("invalid loyalty mode")

// Mode selects the authoritative representation of loyalty points.
//
// ModeDerived keeps the stored balance as a base and derives the bonus
// from reservation history at read time. ModeStored writes the bonus
// through the directory when a reservation is created and reads the
// balance back verbatim. The two are never combined, which is what rules
// out double counting.
type Mode string

const (
	ModeDerived Mode = "derived"
	ModeStored  Mode = "stored"
)

func (m Mode) String() string {
	return string(m)
}

func (m Mode) IsValid() bool {
	switch m {
	case ModeDerived, ModeStored:
		return true
	default:
		return false
	}
}

func NewMode(s string) (Mode, error) {
	mode := Mode(s)
	if !mode.IsValid() {
		return "", ErrInvalidMode
	}
	return mode, nil
}

type Policy struct {
	mode             Mode
	signupGrant      int
	reservationBonus int
}

func NewPolicy(mode Mode, signupGrant, reservationBonus int) Policy {
	return Policy{
		mode:             mode,
		signupGrant:      signupGrant,
		reservationBonus: reservationBonus,
	}
}

func (p Policy) Mode() Mode {
	return p.mode
}

// SignupGrant is the balance a freshly registered user starts with.
func (p Policy) SignupGrant() int {
	return p.signupGrant
}

// AccrualOnCreate is the amount written through the directory when a
// reservation is created. Zero in derived mode: the bonus is computed at
// read time instead.
func (p Policy) AccrualOnCreate() int {
	if p.mode == ModeStored {
		return p.reservationBonus
	}
	return 0
}

// EffectivePoints is the balance shown to a cashier for a customer with
// the given stored base and reservation count.
func (p Policy) EffectivePoints(base, reservationCount int) int {
	if p.mode == ModeStored {
		return base
	}
	return base + p.reservationBonus*reservationCount
}
