// services/spin_engine.go
package services

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"sync"
	"time"

	"social-connect-platform/models"
)

// SpinState is the wheel's lifecycle: Idle → Spinning → Settled, where
// Settled re-enters Idle semantics on the next spin.
type SpinState string

const (
	SpinStateIdle     SpinState = "idle"
	SpinStateSpinning SpinState = "spinning"
	SpinStateSettled  SpinState = "settled"
)

// ErrAlreadySpinning rejects a spin issued while one is in flight.
var ErrAlreadySpinning = errors.New("spin already in progress")

// settleDelay models the wheel's physical animation time.
const settleDelay = 4 * time.Second

// ProfileUpdater is the slice of the gateway the engine needs to persist
// card wins.
type ProfileUpdater interface {
	UpdateUserProfile(ctx context.Context, userID string, updates models.UserUpdate) error
}

// SpinEngine resolves random wheel rotations into prizes. Card-type prizes
// are appended to the current user's card list and persisted through the
// gateway; every other prize type is purely presentational.
type SpinEngine struct {
	mu       sync.Mutex
	state    SpinState
	rotation int // cumulative degrees across all spins
	result   *models.SpinResult

	gateway ProfileUpdater
	session *SessionManager

	// injectable for deterministic tests
	randInt func(n int) int
	settle  time.Duration
}

func NewSpinEngine(gateway ProfileUpdater, session *SessionManager) *SpinEngine {
	return &SpinEngine{
		state:   SpinStateIdle,
		gateway: gateway,
		session: session,
		randInt: rand.Intn,
		settle:  settleDelay,
	}
}

// Spin draws five full turns plus a random offset, adds them to the
// cumulative rotation, and schedules settlement after the settle delay.
// It returns the new cumulative rotation immediately; the resolved prize
// becomes visible through Status once settled. There is no cancellation
// path: a scheduled settlement always fires.
func (e *SpinEngine) Spin() (int, error) {
	e.mu.Lock()
	if e.state == SpinStateSpinning {
		e.mu.Unlock()
		return 0, ErrAlreadySpinning
	}

	extra := e.randInt(360) + 1800
	e.rotation += extra
	total := e.rotation
	e.state = SpinStateSpinning
	e.result = nil
	e.mu.Unlock()

	time.AfterFunc(e.settle, func() { e.settleSpin(total) })
	return total, nil
}

// Status returns the current state, cumulative rotation, and the resolved
// prize (nil unless settled).
func (e *SpinEngine) Status() (SpinState, int, *models.SpinResult) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state, e.rotation, e.result
}

// settleSpin resolves the winning slot for the given cumulative rotation
// and applies the card side effect against whatever session exists now.
func (e *SpinEngine) settleSpin(total int) {
	prize := ResolveSlot(total)

	e.mu.Lock()
	e.state = SpinStateSettled
	e.result = &prize
	e.mu.Unlock()

	if prize.Type != models.PrizeTypeCard {
		return
	}

	user := e.session.Current()
	if user == nil {
		// Logged out between spin and settle; nothing to award.
		return
	}

	newCards := append(append([]string{}, user.Cards...), prize.Label)
	if err := e.gateway.UpdateUserProfile(context.Background(), user.ID, models.UserUpdate{Cards: &newCards}); err != nil {
		log.Printf("❌ failed to persist card win %q for user %s: %v", prize.Label, user.ID, err)
		return
	}
	e.session.UpdateCurrentUser(models.UserUpdate{Cards: &newCards})
	log.Printf("🎉 user %s won %q", user.ID, prize.Label)
}

// ResolveSlot maps a cumulative rotation to its winning wheel slot. The
// wheel turns clockwise under a fixed top pointer, so the winner is measured
// backward from zero:
//
//	index = floor((360 − rotation mod 360) / (360/8)) mod 8
func ResolveSlot(totalRotation int) models.SpinResult {
	offset := totalRotation % 360
	segment := 360 / len(models.WheelSlots)
	index := ((360 - offset) / segment) % len(models.WheelSlots)
	return models.WheelSlots[index]
}
