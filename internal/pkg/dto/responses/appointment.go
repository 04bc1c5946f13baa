package responses

type Appointment struct {
	ID          int    `json:"id"`
	Patient     int    `json:"patient"`
	Slot        int    `json:"slot"`
	Status      string `json:"status"`
	SlotDetails Slot   `json:"slot_details"`
	CreatedAt   string `json:"created_at,omitempty"`
}
