// Package prompting selects past pairings that have reached the halfway point of
// their cycle and are due a check-in message.
package prompting

import (
	"time"

	"github.com/diegoclair/slack-doughnut-bot/internal/domain"
	"github.com/diegoclair/slack-doughnut-bot/internal/domain/entity"
)

// SelectForPrompt returns, in history order, every unprompted pairing matched at
// least thresholdDays ago (or ahead, for clock skew) and flips its Prompted flag.
// Calling it again with the same arguments returns nothing.
func SelectForPrompt(history *entity.PairingHistory, today time.Time, thresholdDays int) []*entity.PastPairing {
	if history.Len() == 0 {
		return nil
	}

	var selected []*entity.PastPairing
	for _, p := range history.Pairings {
		if p == nil || p.Prompted {
			continue
		}
		if domain.DaysBetween(today, p.MatchedOn) >= thresholdDays {
			p.Prompted = true
			selected = append(selected, p)
		}
	}
	return selected
}
