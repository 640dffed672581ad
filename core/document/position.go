package document

import (
	"errors"
	"fmt"
	"strings"
)

// Position is a placement relative to a target element.
type Position string

const (
	BeforeBegin Position = "beforebegin"
	AfterBegin  Position = "afterbegin"
	BeforeEnd   Position = "beforeend"
	AfterEnd    Position = "afterend"
)

// ErrInvalidPosition is returned for anything other than the four known positions.
var ErrInvalidPosition = errors.New("invalid insertion position")

// ParsePosition converts a declared position into a Position.
// An empty value yields BeforeEnd.
func ParsePosition(s string) (Position, error) {
	p := Position(strings.ToLower(strings.TrimSpace(s)))
	if p == "" {
		return BeforeEnd, nil
	}
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPosition, s)
	}
	return p, nil
}

// Valid reports whether p is one of the four insertion positions.
func (p Position) Valid() bool {
	switch p {
	case BeforeBegin, AfterBegin, BeforeEnd, AfterEnd:
		return true
	default:
		return false
	}
}

func (p Position) String() string {
	return string(p)
}
