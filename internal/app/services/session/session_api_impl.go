package session

import (
	"context"
	"secondheart-dashboard/internal/app/contracts"
	"secondheart-dashboard/internal/app/drivers/restclient"
	"secondheart-dashboard/internal/pkg/constvars"
	"secondheart-dashboard/internal/pkg/dto/responses"
)

type sessionApiClient struct {
	rest *restclient.Client
}

func NewSessionApiClient(rest *restclient.Client) contracts.SessionClient {
	return &sessionApiClient{rest: rest}
}

func (c *sessionApiClient) CurrentUser(ctx context.Context) (*responses.CurrentUser, error) {
	user := new(responses.CurrentUser)
	err := c.rest.Get(ctx, constvars.EndpointMe, nil, constvars.ResourceCurrentUser, user)
	if err != nil {
		return nil, err
	}
	return user, nil
}
