package services

import (
	"context"
	"time"
)

// IntervalsOverlap indica si [aStart, aEnd) y [bStart, bEnd) comparten algún instante
func IntervalsOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// OverlapFinder consulta solapes de reservas en una sala
type OverlapFinder interface {
	Overlaps(ctx context.Context, roomID uint, start, end time.Time, excludeID uint) (bool, error)
}

// ConflictChecker responde si una sala está libre en un intervalo
type ConflictChecker struct {
	finder OverlapFinder
}

func NewConflictChecker(finder OverlapFinder) *ConflictChecker {
	return &ConflictChecker{finder: finder}
}

// Available es true si ninguna reserva de la sala, salvo excludeID, pisa [start, end)
func (c *ConflictChecker) Available(ctx context.Context, roomID uint, start, end time.Time, excludeID uint) (bool, error) {
	busy, err := c.finder.Overlaps(ctx, roomID, start, end, excludeID)
	if err != nil {
		return false, err
	}
	return !busy, nil
}
