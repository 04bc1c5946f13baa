package contracts

import (
	"context"
	"secondheart-dashboard/internal/pkg/dto/requests"
	"secondheart-dashboard/internal/pkg/dto/responses"
	"secondheart-dashboard/internal/pkg/dto/viewmodels"
)

type AppointmentClient interface {
	FindAll(ctx context.Context) ([]responses.Appointment, error)
	Create(ctx context.Context, request *requests.CreateAppointmentRequest) (*responses.Appointment, error)
	Delete(ctx context.Context, appointmentID int) error
}

type AppointmentUsecase interface {
	// ListMine returns only the rows belonging to patientID.
	ListMine(ctx context.Context, patientID int) ([]viewmodels.AppointmentRow, error)
	Cancel(ctx context.Context, appointmentID int) error
}
