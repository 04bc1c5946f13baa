package clinicstore

import (
	"secondheart-dashboard/internal/app/models"
	"time"
)

// Seed loads the development fixtures and generates free slots for the
// coming daysAhead days. The data is small on purpose: one logged-in
// patient, three specialties and four doctors with weekday schedules.
func (s *Store) Seed(daysAhead int) {
	s.mu.Lock()

	s.currentUser = models.User{ID: 3, Username: "a.petrov", FirstName: "Alexey", LastName: "Petrov"}
	s.patient = models.Patient{ID: 7, User: s.currentUser}

	s.specialties = []models.Specialty{
		{ID: 1, Name: "Cardiology"},
		{ID: 2, Name: "Neurology"},
		{ID: 3, Name: "Pediatrics"},
	}

	s.doctors = []models.Doctor{
		{
			ID:                  1,
			User:                models.User{ID: 10, Username: "e.smirnova", FirstName: "Elena", LastName: "Smirnova"},
			SpecialtyID:         1,
			AppointmentDuration: 30,
			IsActive:            true,
		},
		{
			ID:                  2,
			User:                models.User{ID: 11, Username: "i.volkov", FirstName: "Igor", LastName: "Volkov"},
			SpecialtyID:         1,
			AppointmentDuration: 60,
			IsActive:            true,
		},
		{
			ID:                  3,
			User:                models.User{ID: 12, Username: "m.orlova", FirstName: "Maria", LastName: "Orlova"},
			SpecialtyID:         2,
			AppointmentDuration: 45,
			IsActive:            true,
		},
		{
			ID:                  4,
			User:                models.User{ID: 13, Username: "d.kozlov", FirstName: "Dmitry", LastName: "Kozlov"},
			SpecialtyID:         3,
			AppointmentDuration: 30,
			IsActive:            false,
		},
	}

	s.workingHours = []models.WorkingHours{
		{DoctorID: 1, DayOfWeek: 1, StartTime: "09:00:00", EndTime: "13:00:00"},
		{DoctorID: 1, DayOfWeek: 3, StartTime: "14:00:00", EndTime: "18:00:00"},
		{DoctorID: 1, DayOfWeek: 5, StartTime: "09:00:00", EndTime: "12:00:00"},
		{DoctorID: 2, DayOfWeek: 2, StartTime: "10:00:00", EndTime: "16:00:00"},
		{DoctorID: 2, DayOfWeek: 4, StartTime: "10:00:00", EndTime: "14:00:00"},
		{DoctorID: 3, DayOfWeek: 1, StartTime: "11:00:00", EndTime: "17:00:00"},
		{DoctorID: 3, DayOfWeek: 5, StartTime: "11:00:00", EndTime: "15:00:00"},
		{DoctorID: 4, DayOfWeek: 2, StartTime: "09:00:00", EndTime: "12:00:00"},
	}

	s.mu.Unlock()

	s.GenerateSchedule(time.Now(), daysAhead)
}
