package game

import (
	"errors"
	"fmt"
)

// ErrUnknownCardKind is returned by the factory when a card's kind is not
// one of the recognized variants. Construction never defaults to a generic
// entity.
var ErrUnknownCardKind = errors.New("unknown card kind")

// ErrUnknownCard is returned when the card source cannot resolve an id the
// factory needs, e.g. a choose-one alternative.
var ErrUnknownCard = errors.New("unknown card")

// IDCollisionError reports an attempt to register a second entity under an
// already-taken id, which would break id uniqueness within the game.
type IDCollisionError struct {
	ID int
}

func (e *IDCollisionError) Error() string {
	return fmt.Sprintf("entity id %d already registered", e.ID)
}
