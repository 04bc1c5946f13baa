package contracts

import (
	"context"
	"secondheart-dashboard/internal/pkg/dto/responses"
	"secondheart-dashboard/internal/pkg/dto/viewmodels"
)

type SlotClient interface {
	FindFreeSlotsByDoctor(ctx context.Context, doctorID int) ([]responses.Slot, error)
}

type SlotUsecase interface {
	// LoadSlots returns nil without error when a newer load superseded
	// this one while its response was in flight.
	LoadSlots(ctx context.Context, doctorID int, doctorName string) (*viewmodels.SlotPanel, error)
	Book(ctx context.Context, patientID, slotID int) error
}
