package responses

type Doctor struct {
	ID                  int       `json:"id"`
	User                User      `json:"user"`
	SpecialtyDetails    Specialty `json:"specialty_details"`
	AppointmentDuration int       `json:"appointment_duration"`
	IsActive            bool      `json:"is_active"`
}
