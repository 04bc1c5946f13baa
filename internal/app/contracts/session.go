package contracts

import (
	"context"
	"secondheart-dashboard/internal/pkg/dto/responses"
)

type SessionClient interface {
	CurrentUser(ctx context.Context) (*responses.CurrentUser, error)
}

type SessionUsecase interface {
	Bootstrap(ctx context.Context) (*responses.CurrentUser, error)
}
