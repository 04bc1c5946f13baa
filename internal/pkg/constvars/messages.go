package constvars

// Client-facing messages shown by the dashboard.
const (
	ErrClientCannotReachClinic     = "The clinic service is not responding, please try again later"
	ErrClientCannotProcessRequest  = "Cannot process the request"
	ErrClientSomethingWrongWithApp = "Something went wrong, please try again later"
	ErrClientCancelFailed          = "Could not cancel the appointment"
	ErrClientBookingFailed         = "Booking failed, the slot may already be taken"
	ErrClientNotAuthenticated      = "You are not logged in"
)

// Developer messages attached to structured errors.
const (
	ErrDevCreateHTTPRequest  = "Failed to create HTTP request"
	ErrDevSendHTTPRequest    = "Failed to send HTTP request"
	ErrDevDecodeResponse     = "Failed to decode %s response"
	ErrDevUnexpectedStatus   = "Unexpected status code %d from %s endpoint"
	ErrDevCannotMarshalJSON  = "Failed to marshal JSON body"
	ErrDevValidationFailed   = "Request validation failed"
	ErrDevCSRFTokenMissing   = "No csrftoken cookie present for mutating request"
	ErrDevSlotNotFree        = "Slot is not free"
	ErrDevAppointmentMissing = "Appointment does not exist"
)

const (
	ConfirmCancelAppointment = "Are you sure you want to cancel this appointment?"
	ConfirmBookSlotFormat    = "Book an appointment on %s at %s?"

	NoticeBookingConfirmed  = "Success! You are booked."
	NoticeAppointmentGone   = "The appointment was cancelled."
	NoticeNoAppointments    = "You have no appointments yet."
	NoticeNoDoctorsFound    = "No doctors found."
	NoticeNoFreeSlotsFormat = "Doctor %s has no free slots."
	NoticeSelectDoctor      = "Booking created. Select a doctor to book another appointment."
)
