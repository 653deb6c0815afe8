package service

import (
	"github.com/diegoclair/slack-doughnut-bot/internal/domain/contract"
	"github.com/diegoclair/slack-doughnut-bot/internal/domain/entity"
	"github.com/diegoclair/slack-doughnut-bot/internal/matching"
	"github.com/diegoclair/slack-doughnut-bot/internal/platform/logger"
)

// Dependencies are the collaborators a doughnut run talks to.
type Dependencies struct {
	Roster   contract.RosterProvider
	History  contract.HistoryStore
	Notifier contract.Notifier
	Engine   *matching.Engine
}

type Instance struct {
	Doughnut  *doughnutService
	Scheduler *scheduler
}

func NewInstance(deps Dependencies, settings Settings, channels []entity.Channel, runTime string, log *logger.Logger) (*Instance, error) {
	doughnutService := newDoughnut(deps, settings, log)

	scheduler, err := newScheduler(doughnutService, channels, runTime, log)
	if err != nil {
		return nil, err
	}

	return &Instance{
		Doughnut:  doughnutService,
		Scheduler: scheduler,
	}, nil
}
