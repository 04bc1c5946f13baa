package responses

// Slot is a bookable interval as served by /api/slots/. Dates are
// YYYY-MM-DD and times are fixed-width HH:MM:SS strings.
type Slot struct {
	ID              int    `json:"id"`
	Doctor          int    `json:"doctor"`
	Date            string `json:"date"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	Status          string `json:"status"`
	DoctorName      string `json:"doctor_name,omitempty"`
	DoctorSpecialty string `json:"doctor_specialty,omitempty"`
}
