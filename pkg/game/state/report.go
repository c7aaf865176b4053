package state

import (
	"errors"
	"log"

	"blackout/pkg/game/access"
)

// ReportMissing logs a missing-reference error the first time it is seen.
// Callers skip the operation and retry on the next tick.
func (g *Game) ReportMissing(err error) {
	if err == nil || !errors.Is(err, access.ErrMissingReference) {
		return
	}
	key := err.Error()
	if g.reported.Has(key) {
		return
	}
	g.reported.Put(key)
	log.Printf("skipping interaction: %v", err)
}

// Reported returns how many distinct missing references have been logged
func (g *Game) Reported() int {
	return g.reported.Size()
}
