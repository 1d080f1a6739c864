package core

import "errors"

var (
	ErrOffBoard            = errors.New("coordinate is off the board")
	ErrNoUnit              = errors.New("no unit at source cell")
	ErrNotOwned            = errors.New("unit not owned by acting player")
	ErrDestinationOccupied = errors.New("destination cell is occupied")
	ErrNotAdjacent         = errors.New("cells are not adjacent")
	ErrEngaged             = errors.New("unit is engaged and cannot move")
	ErrRestrictedDirection = errors.New("unit cannot move in that direction")
	ErrNoTarget            = errors.New("no unit at target cell")
	ErrTargetIsFriendly    = errors.New("cannot attack a friendly unit")
	ErrTargetIsEnemy       = errors.New("cannot repair an enemy unit")
	ErrCannotRepair        = errors.New("unit type cannot repair that target type")
	ErrTargetFullHealth    = errors.New("target is already at full health")
	ErrWrongTurn           = errors.New("action submitted out of turn")
	ErrGameOver            = errors.New("game is over")
	ErrNoLegalActions      = errors.New("player has no legal actions")
)
