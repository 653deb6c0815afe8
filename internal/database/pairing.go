package database

import (
	"fmt"

	"github.com/diegoclair/slack-doughnut-bot/internal/domain/contract"
	"github.com/diegoclair/slack-doughnut-bot/internal/domain/entity"
)

type pairingRepo struct {
	db dbConn
}

func newPairingRepo(db dbConn) contract.PairingRepo {
	return &pairingRepo{db: db}
}

func (r *pairingRepo) Create(channelID int64, record entity.HistoryRecord) error {
	query := `
		INSERT INTO pairings (channel_id, name1, id1, name2, id2, match_date, prompted)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		channelID,
		record.Name1,
		record.ID1,
		record.Name2,
		record.ID2,
		record.MatchDate,
		record.Prompted,
	)
	if err != nil {
		return fmt.Errorf("failed to create pairing: %w", err)
	}

	return nil
}

// GetByChannel returns the channel's pairings in insertion order, which is chronological.
func (r *pairingRepo) GetByChannel(channelID int64) ([]entity.HistoryRecord, error) {
	query := `
		SELECT name1, id1, name2, id2, match_date, prompted
		FROM pairings
		WHERE channel_id = ?
		ORDER BY id ASC
	`

	rows, err := r.db.Query(query, channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to get pairings: %w", err)
	}
	defer rows.Close()

	var records []entity.HistoryRecord
	for rows.Next() {
		var record entity.HistoryRecord
		err := rows.Scan(
			&record.Name1,
			&record.ID1,
			&record.Name2,
			&record.ID2,
			&record.MatchDate,
			&record.Prompted,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pairing: %w", err)
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

func (r *pairingRepo) DeleteByChannel(channelID int64) error {
	query := `DELETE FROM pairings WHERE channel_id = ?`

	_, err := r.db.Exec(query, channelID)
	if err != nil {
		return fmt.Errorf("failed to delete pairings: %w", err)
	}

	return nil
}
