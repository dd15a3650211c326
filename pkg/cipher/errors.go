package cipher

import "github.com/pkg/errors"

var (
	ErrInvalidKeyword   = errors.New("keyword must only contain letters A-Z")
	ErrInvalidDirection = errors.New("direction must be encode or decode")
)
