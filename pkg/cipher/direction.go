package cipher

import (
	"strings"

	"github.com/pkg/errors"
)

// Direction tells a cipher whether to apply the forward or the inverse shift.
type Direction int

const (
	Encode Direction = iota
	Decode
)

func (d Direction) String() string {
	switch d {
	case Encode:
		return "encode"
	case Decode:
		return "decode"
	default:
		return "unknown"
	}
}

// ParseDirection converts "encode" or "decode" (any case) into a Direction.
// An empty string means Encode.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "encode":
		return Encode, nil
	case "decode":
		return Decode, nil
	default:
		return Encode, errors.Wrapf(ErrInvalidDirection, "got %q", s)
	}
}

// sign returns 1 for Encode and -1 for Decode.
func (d Direction) sign() int {
	if d == Decode {
		return -1
	}

	return 1
}
