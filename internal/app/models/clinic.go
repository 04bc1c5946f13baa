// Package models holds the clinic entities the stub API server keeps in
// memory. The wire shapes derive from these in the clinicstore service.
package models

type User struct {
	ID        int
	Username  string
	FirstName string
	LastName  string
}

type Specialty struct {
	ID   int
	Name string
}

type Doctor struct {
	ID                  int
	User                User
	SpecialtyID         int
	AppointmentDuration int
	IsActive            bool
}

type Patient struct {
	ID   int
	User User
}

// WorkingHours is one contiguous working interval on a weekday,
// 1=Monday through 7=Sunday. Times are HH:MM:SS strings.
type WorkingHours struct {
	DoctorID  int
	DayOfWeek int
	StartTime string
	EndTime   string
}

type ScheduleSlot struct {
	ID        int
	DoctorID  int
	Date      string
	StartTime string
	EndTime   string
	Status    string
}

type Appointment struct {
	ID        int
	PatientID int
	SlotID    int
	Status    string
	CreatedAt string
}
