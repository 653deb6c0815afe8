package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/diegoclair/slack-doughnut-bot/internal/domain"
	"github.com/diegoclair/slack-doughnut-bot/internal/domain/contract"
	"github.com/diegoclair/slack-doughnut-bot/internal/domain/entity"
	"github.com/diegoclair/slack-doughnut-bot/internal/platform/logger"
)

type scheduler struct {
	doughnut contract.DoughnutService
	channels []entity.Channel
	hour     int
	minute   int
	log      *logger.Logger
	stopChan chan struct{}
	running  bool
}

func newScheduler(doughnut contract.DoughnutService, channels []entity.Channel, runTime string, log *logger.Logger) (*scheduler, error) {
	hour, minute, err := domain.ParseClock(runTime)
	if err != nil {
		return nil, err
	}

	return &scheduler{
		doughnut: doughnut,
		channels: channels,
		hour:     hour,
		minute:   minute,
		log:      log,
		stopChan: make(chan struct{}),
		running:  false,
	}, nil
}

func (s *scheduler) Start() {
	if s.running {
		return
	}
	s.running = true
	s.stopChan = make(chan struct{})
	s.log.Info("scheduler starting", "channels", len(s.channels), "run_time", fmt.Sprintf("%02d:%02d UTC", s.hour, s.minute))
	go s.mainLoop(s.stopChan)
}

func (s *scheduler) Stop() {
	if !s.running {
		return
	}
	s.log.Info("scheduler stopping")
	close(s.stopChan)
	s.running = false
}

func (s *scheduler) mainLoop(stop <-chan struct{}) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	for {
		now := time.Now().UTC()
		next := nextRunTime(now, s.hour, s.minute)
		s.log.Info("next run scheduled", "at", next.Format("2006-01-02 15:04:05 UTC"))

		timer := time.NewTimer(next.Sub(now))
		select {
		case <-timer.C:
			if err := s.RunAll(ctx); err != nil {
				s.log.Error("scheduled run finished with errors", "error", err)
			}
		case <-stop:
			timer.Stop()
			return
		}
	}
}

// nextRunTime is the first hour:minute UTC strictly after now.
func nextRunTime(now time.Time, hour, minute int) time.Time {
	now = now.UTC()
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, time.UTC)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// RunAll runs every channel in turn. A failing channel does not stop the others;
// all failures are returned joined.
func (s *scheduler) RunAll(ctx context.Context) error {
	var errs []error
	for _, channel := range s.channels {
		report, err := s.doughnut.RunChannel(ctx, channel)
		if err != nil {
			s.log.Error("channel run failed", "channel", channel.Name, "channel_id", channel.SlackChannelID, "error", err)
			errs = append(errs, fmt.Errorf("channel %s: %w", channel.Name, err))
			continue
		}
		s.log.Info("channel run finished", "channel", channel.Name, "mode", report.Mode,
			"failed_deliveries", report.FailedDeliveries())
	}
	return errors.Join(errs...)
}
