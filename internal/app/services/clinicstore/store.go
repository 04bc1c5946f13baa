// Package clinicstore is the in-memory backend behind cmd/mockapi. It
// mirrors the clinic REST contract closely enough for the dashboard to
// run against it during development: booking marks a slot busy, a second
// booking of the same slot fails, and cancelling frees the slot again.
package clinicstore

import (
	"fmt"
	"secondheart-dashboard/internal/app/models"
	"secondheart-dashboard/internal/pkg/constvars"
	"secondheart-dashboard/internal/pkg/dto/responses"
	"secondheart-dashboard/internal/pkg/exceptions"
	"sort"
	"sync"
	"time"
)

type Store struct {
	mu sync.Mutex

	currentUser  models.User
	patient      models.Patient
	specialties  []models.Specialty
	doctors      []models.Doctor
	workingHours []models.WorkingHours
	slots        map[int]*models.ScheduleSlot
	appointments map[int]*models.Appointment

	nextSlotID        int
	nextAppointmentID int
}

func NewStore() *Store {
	return &Store{
		slots:             make(map[int]*models.ScheduleSlot),
		appointments:      make(map[int]*models.Appointment),
		nextSlotID:        1,
		nextAppointmentID: 1,
	}
}

func (s *Store) CurrentUser() responses.CurrentUser {
	s.mu.Lock()
	defer s.mu.Unlock()
	return responses.CurrentUser{
		ID:        s.currentUser.ID,
		Username:  s.currentUser.Username,
		Role:      constvars.RolePatient,
		ProfileID: s.patient.ID,
	}
}

func (s *Store) Specialties() []responses.Specialty {
	s.mu.Lock()
	defer s.mu.Unlock()

	specialties := make([]responses.Specialty, 0, len(s.specialties))
	for _, specialty := range s.specialties {
		specialties = append(specialties, responses.Specialty{ID: specialty.ID, Name: specialty.Name})
	}
	return specialties
}

func (s *Store) Doctors() []responses.Doctor {
	s.mu.Lock()
	defer s.mu.Unlock()

	doctors := make([]responses.Doctor, 0, len(s.doctors))
	for _, doctor := range s.doctors {
		doctors = append(doctors, s.buildDoctorResponse(doctor))
	}
	return doctors
}

// Slots filters by doctor, status and date; empty filter values match
// everything, like the query-parameter filtering of the real API.
func (s *Store) Slots(doctorID int, status, date string) []responses.Slot {
	s.mu.Lock()
	defer s.mu.Unlock()

	slots := make([]responses.Slot, 0)
	for _, slot := range s.slots {
		if doctorID != 0 && slot.DoctorID != doctorID {
			continue
		}
		if status != "" && slot.Status != status {
			continue
		}
		if date != "" && slot.Date != date {
			continue
		}
		slots = append(slots, s.buildSlotResponse(*slot))
	}
	sort.Slice(slots, func(a, b int) bool {
		if slots[a].Date != slots[b].Date {
			return slots[a].Date < slots[b].Date
		}
		return slots[a].StartTime < slots[b].StartTime
	})
	return slots
}

func (s *Store) Appointments() []responses.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()

	appointments := make([]responses.Appointment, 0, len(s.appointments))
	for _, appointment := range s.appointments {
		appointments = append(appointments, s.buildAppointmentResponse(*appointment))
	}
	sort.Slice(appointments, func(a, b int) bool { return appointments[a].ID < appointments[b].ID })
	return appointments
}

// CreateAppointment books a free slot; a slot that is no longer free is
// the booking race the dashboard surfaces as a generic failure.
func (s *Store) CreateAppointment(patientID, slotID int) (*responses.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	slot, ok := s.slots[slotID]
	if !ok || slot.Status != constvars.SlotStatusFree {
		return nil, exceptions.ErrSlotNotFree(fmt.Errorf("slot %d", slotID))
	}
	slot.Status = constvars.SlotStatusBooked

	appointment := &models.Appointment{
		ID:        s.nextAppointmentID,
		PatientID: patientID,
		SlotID:    slotID,
		Status:    constvars.AppointmentStatusScheduled,
		CreatedAt: time.Now().Format(time.RFC3339),
	}
	s.nextAppointmentID++
	s.appointments[appointment.ID] = appointment

	response := s.buildAppointmentResponse(*appointment)
	return &response, nil
}

// DeleteAppointment frees the underlying slot and removes the record.
func (s *Store) DeleteAppointment(appointmentID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	appointment, ok := s.appointments[appointmentID]
	if !ok {
		return exceptions.ErrAppointmentNotFound(fmt.Errorf("appointment %d", appointmentID))
	}
	if slot, ok := s.slots[appointment.SlotID]; ok {
		slot.Status = constvars.SlotStatusFree
	}
	delete(s.appointments, appointmentID)
	return nil
}

func (s *Store) buildDoctorResponse(doctor models.Doctor) responses.Doctor {
	return responses.Doctor{
		ID: doctor.ID,
		User: responses.User{
			ID:        doctor.User.ID,
			Username:  doctor.User.Username,
			FirstName: doctor.User.FirstName,
			LastName:  doctor.User.LastName,
		},
		SpecialtyDetails:    s.specialtyResponse(doctor.SpecialtyID),
		AppointmentDuration: doctor.AppointmentDuration,
		IsActive:            doctor.IsActive,
	}
}

func (s *Store) buildSlotResponse(slot models.ScheduleSlot) responses.Slot {
	response := responses.Slot{
		ID:        slot.ID,
		Doctor:    slot.DoctorID,
		Date:      slot.Date,
		StartTime: slot.StartTime,
		EndTime:   slot.EndTime,
		Status:    slot.Status,
	}
	for _, doctor := range s.doctors {
		if doctor.ID == slot.DoctorID {
			response.DoctorName = fmt.Sprintf("%s %s", doctor.User.FirstName, doctor.User.LastName)
			response.DoctorSpecialty = s.specialtyResponse(doctor.SpecialtyID).Name
			break
		}
	}
	return response
}

func (s *Store) buildAppointmentResponse(appointment models.Appointment) responses.Appointment {
	response := responses.Appointment{
		ID:        appointment.ID,
		Patient:   appointment.PatientID,
		Slot:      appointment.SlotID,
		Status:    appointment.Status,
		CreatedAt: appointment.CreatedAt,
	}
	if slot, ok := s.slots[appointment.SlotID]; ok {
		response.SlotDetails = s.buildSlotResponse(*slot)
	}
	return response
}

func (s *Store) specialtyResponse(specialtyID int) responses.Specialty {
	for _, specialty := range s.specialties {
		if specialty.ID == specialtyID {
			return responses.Specialty{ID: specialty.ID, Name: specialty.Name}
		}
	}
	return responses.Specialty{}
}
