package clinicstore

import (
	"secondheart-dashboard/internal/app/models"
	"secondheart-dashboard/internal/pkg/constvars"
	"time"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

// GenerateSchedule regenerates free slots for every doctor over the next
// daysAhead days from their working hours. Free slots in the window are
// replaced; booked slots survive so existing appointments stay intact,
// and no new slot is created where a surviving slot already sits.
func (s *Store) GenerateSchedule(from time.Time, daysAhead int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := from.Format(dateLayout)
	end := from.AddDate(0, 0, daysAhead).Format(dateLayout)
	for id, slot := range s.slots {
		if slot.Status == constvars.SlotStatusFree && slot.Date >= start && slot.Date <= end {
			delete(s.slots, id)
		}
	}

	created := 0
	for day := 0; day <= daysAhead; day++ {
		currentDate := from.AddDate(0, 0, day)
		weekday := isoWeekday(currentDate)

		for _, hours := range s.workingHours {
			if hours.DayOfWeek != weekday {
				continue
			}
			doctor := s.doctorByID(hours.DoctorID)
			if doctor == nil || !doctor.IsActive {
				continue
			}
			created += s.fillInterval(doctor, currentDate.Format(dateLayout), hours)
		}
	}
	return created
}

func (s *Store) fillInterval(doctor *models.Doctor, date string, hours models.WorkingHours) int {
	intervalStart, err := time.Parse(timeLayout, hours.StartTime)
	if err != nil {
		return 0
	}
	intervalEnd, err := time.Parse(timeLayout, hours.EndTime)
	if err != nil {
		return 0
	}

	duration := time.Duration(doctor.AppointmentDuration) * time.Minute
	created := 0
	for slotStart := intervalStart; !slotStart.Add(duration).After(intervalEnd); slotStart = slotStart.Add(duration) {
		startTime := slotStart.Format(timeLayout)
		if s.slotExists(doctor.ID, date, startTime) {
			continue
		}
		slot := &models.ScheduleSlot{
			ID:        s.nextSlotID,
			DoctorID:  doctor.ID,
			Date:      date,
			StartTime: startTime,
			EndTime:   slotStart.Add(duration).Format(timeLayout),
			Status:    constvars.SlotStatusFree,
		}
		s.nextSlotID++
		s.slots[slot.ID] = slot
		created++
	}
	return created
}

func (s *Store) slotExists(doctorID int, date, startTime string) bool {
	for _, slot := range s.slots {
		if slot.DoctorID == doctorID && slot.Date == date && slot.StartTime == startTime {
			return true
		}
	}
	return false
}

func (s *Store) doctorByID(doctorID int) *models.Doctor {
	for i := range s.doctors {
		if s.doctors[i].ID == doctorID {
			return &s.doctors[i]
		}
	}
	return nil
}

// isoWeekday maps to 1=Monday .. 7=Sunday.
func isoWeekday(t time.Time) int {
	weekday := int(t.Weekday())
	if weekday == 0 {
		return 7
	}
	return weekday
}
