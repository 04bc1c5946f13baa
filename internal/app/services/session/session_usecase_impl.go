package session

import (
	"context"
	"secondheart-dashboard/internal/app/contracts"
	"secondheart-dashboard/internal/pkg/constvars"
	"secondheart-dashboard/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

type sessionUsecase struct {
	SessionClient contracts.SessionClient
	Log           *zap.Logger
}

func NewSessionUsecase(sessionClient contracts.SessionClient, logger *zap.Logger) contracts.SessionUsecase {
	return &sessionUsecase{
		SessionClient: sessionClient,
		Log:           logger,
	}
}

func (uc *sessionUsecase) Bootstrap(ctx context.Context) (*responses.CurrentUser, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	uc.Log.Info("sessionUsecase.Bootstrap called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.SessionClient.CurrentUser(ctx)
	if err != nil {
		uc.Log.Error("sessionUsecase.Bootstrap error fetching current user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("sessionUsecase.Bootstrap succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientIDKey, user.ProfileID),
	)
	return user, nil
}
