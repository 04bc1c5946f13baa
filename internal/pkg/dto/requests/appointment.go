package requests

// CreateAppointmentRequest is the booking payload posted to /api/appointments/.
type CreateAppointmentRequest struct {
	Patient int `json:"patient" validate:"required,gt=0"`
	Slot    int `json:"slot" validate:"required,gt=0"`
}
