package pattern

import (
	"errors"
	"fmt"
	"math/rand"
)

// Type selects a generation style.
type Type string

const (
	// TypeCircuit is the lattice random-walk style.
	TypeCircuit Type = "circuit"
	// TypeBottomUp is the vertical branching style.
	TypeBottomUp Type = "bottom-up"
)

// ErrUnknownType is returned by Generate for an unrecognized pattern
// type selector, so callers can match it without parsing the message.
var ErrUnknownType = errors.New("pattern: unknown pattern type")

// Types lists the supported selectors in display order.
func Types() []Type {
	return []Type{TypeCircuit, TypeBottomUp}
}

// ParseType resolves a selector string to a Type.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeCircuit:
		return TypeCircuit, nil
	case TypeBottomUp:
		return TypeBottomUp, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownType, s)
	}
}

// Generate normalizes cfg, seeds a random source from cfg.Seed, and
// runs the selected generator. Placement failures inside a generator
// never surface here; a sparser pattern is the degraded outcome. The
// only error is an unrecognized type selector.
func Generate(typ Type, cfg Config) (*Drawing, error) {
	cfg = cfg.Normalize()
	rng := rand.New(rand.NewSource(cfg.Seed))

	switch typ {
	case TypeCircuit:
		return GenerateCircuit(cfg, rng), nil
	case TypeBottomUp:
		return GenerateBottomUp(cfg, rng), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownType, typ)
	}
}
