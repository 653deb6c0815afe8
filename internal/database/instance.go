package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/slack-doughnut-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db          *DB
	channelRepo contract.ChannelRepo
	pairingRepo contract.PairingRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := &instance{
		db: db,
	}
	instance.repoInstances()
	return instance
}

// repoInstances initializes all repositories
func (i *instance) repoInstances() {
	i.channelRepo = newChannelRepo(i.db.conn)
	i.pairingRepo = newPairingRepo(i.db.conn)
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		channelRepo: newChannelRepo(db),
		pairingRepo: newPairingRepo(db),
	}
}

func (i *instance) Channel() contract.ChannelRepo {
	return i.channelRepo
}

func (i *instance) Pairing() contract.PairingRepo {
	return i.pairingRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	if i.db == nil {
		return fmt.Errorf("nested transactions are not supported")
	}

	tx, err := i.db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
