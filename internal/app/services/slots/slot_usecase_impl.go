package slots

import (
	"context"
	"errors"
	"secondheart-dashboard/internal/app/contracts"
	"secondheart-dashboard/internal/pkg/constvars"
	"secondheart-dashboard/internal/pkg/dto/requests"
	"secondheart-dashboard/internal/pkg/dto/responses"
	"secondheart-dashboard/internal/pkg/dto/viewmodels"
	"secondheart-dashboard/internal/pkg/exceptions"
	"secondheart-dashboard/internal/pkg/utils"
	"sort"
	"sync/atomic"

	"go.uber.org/zap"
)

type slotUsecase struct {
	SlotClient        contracts.SlotClient
	AppointmentClient contracts.AppointmentClient
	Log               *zap.Logger

	// generation rises on every LoadSlots call; a response whose captured
	// generation no longer matches is stale and gets discarded, so rapid
	// doctor switching cannot render out of click order.
	generation atomic.Uint64
}

func NewSlotUsecase(slotClient contracts.SlotClient, appointmentClient contracts.AppointmentClient, logger *zap.Logger) contracts.SlotUsecase {
	return &slotUsecase{
		SlotClient:        slotClient,
		AppointmentClient: appointmentClient,
		Log:               logger,
	}
}

func (uc *slotUsecase) LoadSlots(ctx context.Context, doctorID int, doctorName string) (*viewmodels.SlotPanel, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	generation := uc.generation.Add(1)
	uc.Log.Info("slotUsecase.LoadSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingDoctorIDKey, doctorID),
		zap.Uint64(constvars.LoggingGenerationKey, generation),
	)

	slots, err := uc.SlotClient.FindFreeSlotsByDoctor(ctx, doctorID)
	if err != nil {
		uc.Log.Error("slotUsecase.LoadSlots error fetching free slots",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
		return nil, err
	}

	if generation != uc.generation.Load() {
		uc.Log.Warn("slotUsecase.LoadSlots discarding stale response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingDoctorIDKey, doctorID),
			zap.Uint64(constvars.LoggingGenerationKey, generation),
		)
		return nil, nil
	}

	panel := &viewmodels.SlotPanel{
		DoctorID:   doctorID,
		DoctorName: doctorName,
		Groups:     groupSlotsByDate(slots),
	}

	uc.Log.Info("slotUsecase.LoadSlots succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingDoctorIDKey, doctorID),
		zap.Int(constvars.LoggingResponseCountKey, len(slots)),
	)
	return panel, nil
}

func (uc *slotUsecase) Book(ctx context.Context, patientID, slotID int) error {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	uc.Log.Info("slotUsecase.Book called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientIDKey, patientID),
		zap.Int(constvars.LoggingSlotIDKey, slotID),
	)

	request := &requests.CreateAppointmentRequest{
		Patient: patientID,
		Slot:    slotID,
	}
	if err := utils.ValidateStruct(request); err != nil {
		uc.Log.Error("slotUsecase.Book validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrInputValidation(err)
	}

	_, err := uc.AppointmentClient.Create(ctx, request)
	if err != nil {
		uc.Log.Error("slotUsecase.Book error creating appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingSlotIDKey, slotID),
			zap.Error(err),
		)
		var customErr *exceptions.CustomError
		if errors.As(err, &customErr) {
			return exceptions.ErrBookSlot(customErr.StatusCode)
		}
		return err
	}

	uc.Log.Info("slotUsecase.Book succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSlotIDKey, slotID),
	)
	return nil
}

// groupSlotsByDate keeps the server's first-seen date order and sorts each
// group by start time. The lexical comparison is valid because the times
// are fixed-width HH:MM:SS strings.
func groupSlotsByDate(slots []responses.Slot) []viewmodels.SlotGroup {
	dates := make([]string, 0)
	slotsByDate := make(map[string][]responses.Slot)

	for _, slot := range slots {
		if _, seen := slotsByDate[slot.Date]; !seen {
			dates = append(dates, slot.Date)
		}
		slotsByDate[slot.Date] = append(slotsByDate[slot.Date], slot)
	}

	groups := make([]viewmodels.SlotGroup, 0, len(dates))
	for _, date := range dates {
		daySlots := slotsByDate[date]
		sort.SliceStable(daySlots, func(a, b int) bool {
			return daySlots[a].StartTime < daySlots[b].StartTime
		})

		group := viewmodels.SlotGroup{
			Date:    date,
			Heading: utils.FormatDateHeading(date),
			Slots:   make([]viewmodels.SlotButton, 0, len(daySlots)),
		}
		for _, slot := range daySlots {
			group.Slots = append(group.Slots, viewmodels.SlotButton{
				SlotID:    slot.ID,
				Date:      slot.Date,
				TimeLabel: utils.ShortTime(slot.StartTime),
			})
		}
		groups = append(groups, group)
	}
	return groups
}
