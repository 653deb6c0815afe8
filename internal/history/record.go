// Package history persists channel pairing histories: as CSV files (optionally
// mirrored to S3) or in the sqlite database.
package history

import (
	"fmt"
	"strings"

	"github.com/diegoclair/slack-doughnut-bot/internal/domain"
	"github.com/diegoclair/slack-doughnut-bot/internal/domain/entity"
	"github.com/diegoclair/slack-doughnut-bot/internal/platform/logger"
)

func ToRecord(p *entity.PastPairing) entity.HistoryRecord {
	return entity.HistoryRecord{
		Name1:     p.NameA,
		ID1:       p.ParticipantA,
		Name2:     p.NameB,
		ID2:       p.ParticipantB,
		MatchDate: domain.FormatDate(p.MatchedOn),
		Prompted:  p.Prompted,
	}
}

// FromRecord validates a stored record. Records from files written before ids
// were stored fall back to the name as identity.
func FromRecord(r entity.HistoryRecord) (*entity.PastPairing, error) {
	id1 := firstNonEmpty(r.ID1, r.Name1)
	id2 := firstNonEmpty(r.ID2, r.Name2)
	if id1 == "" || id2 == "" {
		return nil, fmt.Errorf("%w: missing participant", domain.ErrMalformedHistoryEntry)
	}
	if id1 == id2 {
		return nil, fmt.Errorf("%w: %s is paired with themselves", domain.ErrMalformedHistoryEntry, id1)
	}

	matchedOn, err := domain.ParseDate(strings.TrimSpace(r.MatchDate))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid match date %q", domain.ErrMalformedHistoryEntry, r.MatchDate)
	}

	return &entity.PastPairing{
		ParticipantA: id1,
		NameA:        r.Name1,
		ParticipantB: id2,
		NameB:        r.Name2,
		MatchedOn:    matchedOn,
		Prompted:     r.Prompted,
	}, nil
}

func encode(history *entity.PairingHistory) []entity.HistoryRecord {
	if history.Len() == 0 {
		return nil
	}
	records := make([]entity.HistoryRecord, 0, history.Len())
	for _, p := range history.Pairings {
		records = append(records, ToRecord(p))
	}
	return records
}

// decode keeps every usable record and logs the rest. History is advisory, so a
// bad row never fails the load.
func decode(records []entity.HistoryRecord, log *logger.Logger) *entity.PairingHistory {
	history := entity.NewPairingHistory()
	for i, r := range records {
		p, err := FromRecord(r)
		if err != nil {
			log.Warn("skipping malformed history entry", "row", i+1, "error", err)
			continue
		}
		history.Append(p)
	}
	return history
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
