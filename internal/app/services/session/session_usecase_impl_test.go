package session

import (
	"context"
	"secondheart-dashboard/internal/pkg/constvars"
	"secondheart-dashboard/internal/pkg/dto/responses"
	"secondheart-dashboard/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeSessionClient struct {
	user *responses.CurrentUser
	err  error
}

func (f *fakeSessionClient) CurrentUser(ctx context.Context) (*responses.CurrentUser, error) {
	return f.user, f.err
}

func TestBootstrap(t *testing.T) {
	logger := zap.NewNop()

	t.Run("Returns the identified patient", func(t *testing.T) {
		client := &fakeSessionClient{user: &responses.CurrentUser{
			ID:        3,
			Username:  "a.petrov",
			Role:      constvars.RolePatient,
			ProfileID: 7,
		}}
		usecase := NewSessionUsecase(client, logger)

		user, err := usecase.Bootstrap(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 7, user.ProfileID)
		assert.Equal(t, constvars.RolePatient, user.Role)
	})

	t.Run("Propagates an unauthenticated session", func(t *testing.T) {
		client := &fakeSessionClient{
			err: exceptions.ErrUnexpectedStatus(constvars.StatusForbidden, constvars.ResourceCurrentUser),
		}
		usecase := NewSessionUsecase(client, logger)

		user, err := usecase.Bootstrap(context.Background())

		assert.Error(t, err)
		assert.Nil(t, user)
	})
}
