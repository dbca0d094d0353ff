package game

import (
	"errors"

	"github.com/samdwyer/otyugh/internal/world"
)

// Errors returned by engine actions. A failed action leaves the game
// unchanged.
var (
	ErrInvalidMove    = errors.New("invalid move")
	ErrItemNotPresent = errors.New("item not present")
	ErrArrowsDepleted = errors.New("arrows depleted")
	ErrGameOver       = errors.New("game is over")

	ErrConfiguration   = world.ErrConfiguration
	ErrInvalidArgument = world.ErrInvalidArgument
)
