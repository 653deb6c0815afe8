package contract

import (
	"context"

	"github.com/diegoclair/slack-doughnut-bot/internal/domain/entity"
)

//go:generate mockgen -source=service.go -destination=../../../mocks/service.go -package=mocks

type DoughnutService interface {
	RunChannel(ctx context.Context, channel entity.Channel) (*entity.RunReport, error)
	Status(ctx context.Context, channel entity.Channel) (*entity.ChannelStatus, error)
	History(ctx context.Context, channel entity.Channel, limit int) ([]*entity.PastPairing, error)
}
