package appointments

import (
	"context"
	"errors"
	"secondheart-dashboard/internal/pkg/constvars"
	"secondheart-dashboard/internal/pkg/dto/requests"
	"secondheart-dashboard/internal/pkg/dto/responses"
	"secondheart-dashboard/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeAppointmentClient struct {
	appointments []responses.Appointment
	findAllErr   error
	deleteErr    error
	deletedIDs   []int
}

func (f *fakeAppointmentClient) FindAll(ctx context.Context) ([]responses.Appointment, error) {
	if f.findAllErr != nil {
		return nil, f.findAllErr
	}
	return f.appointments, nil
}

func (f *fakeAppointmentClient) Create(ctx context.Context, request *requests.CreateAppointmentRequest) (*responses.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentClient) Delete(ctx context.Context, appointmentID int) error {
	f.deletedIDs = append(f.deletedIDs, appointmentID)
	return f.deleteErr
}

func sampleAppointment(id, patient int, status string) responses.Appointment {
	return responses.Appointment{
		ID:      id,
		Patient: patient,
		Slot:    100 + id,
		Status:  status,
		SlotDetails: responses.Slot{
			ID:              100 + id,
			Date:            "2026-09-07",
			StartTime:       "09:00:00",
			EndTime:         "09:30:00",
			DoctorName:      "Elena Smirnova",
			DoctorSpecialty: "Cardiology",
		},
	}
}

func TestListMine(t *testing.T) {
	logger := zap.NewNop()

	t.Run("Keeps only the current patient's appointments", func(t *testing.T) {
		client := &fakeAppointmentClient{appointments: []responses.Appointment{
			sampleAppointment(1, 7, constvars.AppointmentStatusScheduled),
			sampleAppointment(2, 9, constvars.AppointmentStatusScheduled),
			sampleAppointment(3, 7, constvars.AppointmentStatusCompleted),
		}}
		usecase := NewAppointmentUsecase(client, logger)

		rows, err := usecase.ListMine(context.Background(), 7)

		assert.NoError(t, err)
		assert.Len(t, rows, 2, "appointments of other patients must be dropped")
		assert.Equal(t, 1, rows[0].ID)
		assert.Equal(t, 3, rows[1].ID)
	})

	t.Run("Builds the display row from the nested slot", func(t *testing.T) {
		client := &fakeAppointmentClient{appointments: []responses.Appointment{
			sampleAppointment(1, 7, constvars.AppointmentStatusScheduled),
		}}
		usecase := NewAppointmentUsecase(client, logger)

		rows, err := usecase.ListMine(context.Background(), 7)

		assert.NoError(t, err)
		assert.Equal(t, "2026-09-07", rows[0].Date)
		assert.Equal(t, "09:00 - 09:30", rows[0].TimeRange)
		assert.Equal(t, "Elena Smirnova", rows[0].DoctorName)
		assert.Equal(t, "Cardiology", rows[0].DoctorSpecialty)
	})

	t.Run("Only scheduled appointments can be cancelled", func(t *testing.T) {
		client := &fakeAppointmentClient{appointments: []responses.Appointment{
			sampleAppointment(1, 7, constvars.AppointmentStatusScheduled),
			sampleAppointment(2, 7, constvars.AppointmentStatusCompleted),
			sampleAppointment(3, 7, constvars.AppointmentStatusCancelled),
		}}
		usecase := NewAppointmentUsecase(client, logger)

		rows, err := usecase.ListMine(context.Background(), 7)

		assert.NoError(t, err)
		assert.True(t, rows[0].CanCancel)
		assert.False(t, rows[1].CanCancel)
		assert.False(t, rows[2].CanCancel)
	})

	t.Run("Unknown status gets the fallback label", func(t *testing.T) {
		client := &fakeAppointmentClient{appointments: []responses.Appointment{
			sampleAppointment(1, 7, "rescheduled"),
		}}
		usecase := NewAppointmentUsecase(client, logger)

		rows, err := usecase.ListMine(context.Background(), 7)

		assert.NoError(t, err)
		assert.Equal(t, constvars.StatusLabelUnknown, rows[0].StatusLabel)
		assert.False(t, rows[0].CanCancel)
	})

	t.Run("Client error propagates", func(t *testing.T) {
		client := &fakeAppointmentClient{findAllErr: exceptions.ErrSendHTTPRequest(errors.New("dial tcp"))}
		usecase := NewAppointmentUsecase(client, logger)

		rows, err := usecase.ListMine(context.Background(), 7)

		assert.Error(t, err)
		assert.Nil(t, rows)
	})
}

func TestCancel(t *testing.T) {
	logger := zap.NewNop()

	t.Run("Deletes the appointment", func(t *testing.T) {
		client := &fakeAppointmentClient{}
		usecase := NewAppointmentUsecase(client, logger)

		err := usecase.Cancel(context.Background(), 42)

		assert.NoError(t, err)
		assert.Equal(t, []int{42}, client.deletedIDs)
	})

	t.Run("Wraps a rejected delete with the cancel message", func(t *testing.T) {
		client := &fakeAppointmentClient{
			deleteErr: exceptions.ErrUnexpectedStatus(constvars.StatusNotFound, constvars.ResourceAppointment),
		}
		usecase := NewAppointmentUsecase(client, logger)

		err := usecase.Cancel(context.Background(), 42)

		assert.Error(t, err)
		var customErr *exceptions.CustomError
		assert.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientCancelFailed, customErr.ClientMessage)
	})
}
