package slots

import (
	"context"
	"net/url"
	"secondheart-dashboard/internal/app/contracts"
	"secondheart-dashboard/internal/app/drivers/restclient"
	"secondheart-dashboard/internal/pkg/constvars"
	"secondheart-dashboard/internal/pkg/dto/responses"
	"strconv"
)

type slotApiClient struct {
	rest *restclient.Client
}

func NewSlotApiClient(rest *restclient.Client) contracts.SlotClient {
	return &slotApiClient{rest: rest}
}

// FindFreeSlotsByDoctor relies on the server-side status filter, so only
// free slots ever reach the panel.
func (c *slotApiClient) FindFreeSlotsByDoctor(ctx context.Context, doctorID int) ([]responses.Slot, error) {
	params := url.Values{}
	params.Set(constvars.QueryParamDoctor, strconv.Itoa(doctorID))
	params.Set(constvars.QueryParamStatus, constvars.SlotStatusFree)

	var slots []responses.Slot
	err := c.rest.Get(ctx, constvars.EndpointSlots, params, constvars.ResourceSlot, &slots)
	if err != nil {
		return nil, err
	}
	return slots, nil
}
