package directory

import (
	"context"
	"secondheart-dashboard/internal/app/contracts"
	"secondheart-dashboard/internal/app/drivers/restclient"
	"secondheart-dashboard/internal/pkg/constvars"
	"secondheart-dashboard/internal/pkg/dto/responses"
)

type directoryApiClient struct {
	rest *restclient.Client
}

func NewDirectoryApiClient(rest *restclient.Client) contracts.DirectoryClient {
	return &directoryApiClient{rest: rest}
}

func (c *directoryApiClient) FindSpecialties(ctx context.Context) ([]responses.Specialty, error) {
	var specialties []responses.Specialty
	err := c.rest.Get(ctx, constvars.EndpointSpecialties, nil, constvars.ResourceSpecialty, &specialties)
	if err != nil {
		return nil, err
	}
	return specialties, nil
}

func (c *directoryApiClient) FindDoctors(ctx context.Context) ([]responses.Doctor, error) {
	var doctors []responses.Doctor
	err := c.rest.Get(ctx, constvars.EndpointDoctors, nil, constvars.ResourceDoctor, &doctors)
	if err != nil {
		return nil, err
	}
	return doctors, nil
}
