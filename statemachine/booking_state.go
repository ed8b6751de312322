package statemachine

import (
	"fmt"

	"wedding-marketplace-api/models"
)

// Actor identifies who is requesting a transition.
const (
	ActorClient = "client"
	ActorVendor = "vendor"
)

// Transition defines a valid status change and who can perform it.
type Transition struct {
	From  models.BookingStatus
	To    models.BookingStatus
	Actor string
}

// validTransitions is the authoritative state machine definition.
// completed and cancelled are terminal: nothing leaves them.
var validTransitions = []Transition{
	// Vendor accepts or rejects a pending booking
	{From: models.StatusPending, To: models.StatusConfirmed, Actor: ActorVendor},
	{From: models.StatusPending, To: models.StatusCancelled, Actor: ActorVendor},
	// Client may back out while the booking is still pending
	{From: models.StatusPending, To: models.StatusCancelled, Actor: ActorClient},
	// Vendor closes out a confirmed booking
	{From: models.StatusConfirmed, To: models.StatusCompleted, Actor: ActorVendor},
	{From: models.StatusConfirmed, To: models.StatusCancelled, Actor: ActorVendor},
}

type transitionKey struct {
	From  models.BookingStatus
	To    models.BookingStatus
	Actor string
}

var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To, t.Actor}] = true
	}
	return m
}()

// CanTransition checks whether the given actor may move a booking from one
// status to another. It returns nil when the transition is allowed.
func CanTransition(from, to models.BookingStatus, actor string) error {
	if transitionMap[transitionKey{From: from, To: to, Actor: actor}] {
		return nil
	}
	return fmt.Errorf("cannot change status from %s to %s", from, to)
}

// ValidTransitionsFrom returns all statuses reachable from the given status,
// regardless of actor.
func ValidTransitionsFrom(status models.BookingStatus) []models.BookingStatus {
	var nexts []models.BookingStatus
	seen := map[models.BookingStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// IsTerminal reports whether no transition leaves the given status.
func IsTerminal(status models.BookingStatus) bool {
	return len(ValidTransitionsFrom(status)) == 0
}
