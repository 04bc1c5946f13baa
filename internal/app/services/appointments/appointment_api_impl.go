package appointments

import (
	"context"
	"fmt"
	"secondheart-dashboard/internal/app/contracts"
	"secondheart-dashboard/internal/app/drivers/restclient"
	"secondheart-dashboard/internal/pkg/constvars"
	"secondheart-dashboard/internal/pkg/dto/requests"
	"secondheart-dashboard/internal/pkg/dto/responses"
)

type appointmentApiClient struct {
	rest *restclient.Client
}

func NewAppointmentApiClient(rest *restclient.Client) contracts.AppointmentClient {
	return &appointmentApiClient{rest: rest}
}

func (c *appointmentApiClient) FindAll(ctx context.Context) ([]responses.Appointment, error) {
	var appointments []responses.Appointment
	err := c.rest.Get(ctx, constvars.EndpointAppointments, nil, constvars.ResourceAppointment, &appointments)
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (c *appointmentApiClient) Create(ctx context.Context, request *requests.CreateAppointmentRequest) (*responses.Appointment, error) {
	appointment := new(responses.Appointment)
	err := c.rest.Post(ctx, constvars.EndpointAppointments, constvars.ResourceAppointment, request, appointment)
	if err != nil {
		return nil, err
	}
	return appointment, nil
}

func (c *appointmentApiClient) Delete(ctx context.Context, appointmentID int) error {
	path := fmt.Sprintf(constvars.EndpointAppointmentByID, appointmentID)
	return c.rest.Delete(ctx, path, constvars.ResourceAppointment)
}
