package domain

import (
	"errors"
	"fmt"

	"github.com/diegoclair/slack-doughnut-bot/internal/domain/entity"
)

var (
	// ErrInsufficientParticipants is returned when a roster cannot form a single pair.
	ErrInsufficientParticipants = errors.New("at least two participants are required to make a match")
	ErrDuplicateParticipant     = errors.New("participant appears more than once in the roster")
	ErrInvalidParticipant       = errors.New("participant has no id")

	// ErrMalformedHistoryEntry marks a stored pairing that cannot be used. Such entries are skipped.
	ErrMalformedHistoryEntry = errors.New("malformed history entry")

	ErrChannelNotConfigured = errors.New("channel is not part of the doughnut rotation")
)

// DeliveryError is a notification failure for one pairing.
type DeliveryError struct {
	Pair entity.PairKey
	Step string
	Err  error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("failed to deliver %s for %s: %v", e.Step, e.Pair, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}
