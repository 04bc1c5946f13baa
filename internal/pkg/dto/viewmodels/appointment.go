// Package viewmodels holds the typed records the panels hand to the
// terminal renderer, so data shaping stays testable without any output
// device attached.
package viewmodels

type AppointmentRow struct {
	ID              int
	Date            string
	TimeRange       string
	DoctorName      string
	DoctorSpecialty string
	StatusLabel     string
	CanCancel       bool
}
