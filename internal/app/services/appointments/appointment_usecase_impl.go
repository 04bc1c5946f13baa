package appointments

import (
	"context"
	"errors"
	"secondheart-dashboard/internal/app/contracts"
	"secondheart-dashboard/internal/pkg/constvars"
	"secondheart-dashboard/internal/pkg/dto/responses"
	"secondheart-dashboard/internal/pkg/dto/viewmodels"
	"secondheart-dashboard/internal/pkg/exceptions"
	"secondheart-dashboard/internal/pkg/utils"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentClient contracts.AppointmentClient
	Log               *zap.Logger
}

func NewAppointmentUsecase(appointmentClient contracts.AppointmentClient, logger *zap.Logger) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentClient: appointmentClient,
		Log:               logger,
	}
}

func (uc *appointmentUsecase) ListMine(ctx context.Context, patientID int) ([]viewmodels.AppointmentRow, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	uc.Log.Info("appointmentUsecase.ListMine called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientIDKey, patientID),
	)

	appointments, err := uc.AppointmentClient.FindAll(ctx)
	if err != nil {
		uc.Log.Error("appointmentUsecase.ListMine error fetching appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	// The collection endpoint returns every visible appointment; only the
	// current patient's rows may be shown.
	rows := make([]viewmodels.AppointmentRow, 0, len(appointments))
	for _, appointment := range appointments {
		if appointment.Patient != patientID {
			continue
		}
		rows = append(rows, buildAppointmentRow(appointment))
	}

	uc.Log.Info("appointmentUsecase.ListMine succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(rows)),
	)
	return rows, nil
}

func (uc *appointmentUsecase) Cancel(ctx context.Context, appointmentID int) error {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	uc.Log.Info("appointmentUsecase.Cancel called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	err := uc.AppointmentClient.Delete(ctx, appointmentID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.Cancel error deleting appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		var customErr *exceptions.CustomError
		if errors.As(err, &customErr) {
			return exceptions.ErrCancelAppointment(customErr.StatusCode)
		}
		return err
	}

	uc.Log.Info("appointmentUsecase.Cancel succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return nil
}

func buildAppointmentRow(appointment responses.Appointment) viewmodels.AppointmentRow {
	return viewmodels.AppointmentRow{
		ID:              appointment.ID,
		Date:            appointment.SlotDetails.Date,
		TimeRange:       utils.TimeRange(appointment.SlotDetails.StartTime, appointment.SlotDetails.EndTime),
		DoctorName:      appointment.SlotDetails.DoctorName,
		DoctorSpecialty: appointment.SlotDetails.DoctorSpecialty,
		StatusLabel:     statusLabel(appointment.Status),
		CanCancel:       appointment.Status == constvars.AppointmentStatusScheduled,
	}
}

// statusLabel is total: anything outside the known lifecycle maps to Unknown.
func statusLabel(status string) string {
	switch status {
	case constvars.AppointmentStatusScheduled:
		return constvars.StatusLabelScheduled
	case constvars.AppointmentStatusCompleted:
		return constvars.StatusLabelCompleted
	case constvars.AppointmentStatusCancelled:
		return constvars.StatusLabelCancelled
	default:
		return constvars.StatusLabelUnknown
	}
}
