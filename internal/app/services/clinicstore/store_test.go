package clinicstore

import (
	"secondheart-dashboard/internal/app/models"
	"secondheart-dashboard/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testStore() *Store {
	store := NewStore()
	store.currentUser = models.User{ID: 3, Username: "a.petrov"}
	store.patient = models.Patient{ID: 7, User: store.currentUser}
	store.specialties = []models.Specialty{
		{ID: 1, Name: "Cardiology"},
		{ID: 2, Name: "Neurology"},
	}
	store.doctors = []models.Doctor{
		{ID: 1, User: models.User{ID: 10, FirstName: "Elena", LastName: "Smirnova"}, SpecialtyID: 1, AppointmentDuration: 30, IsActive: true},
		{ID: 2, User: models.User{ID: 11, FirstName: "Maria", LastName: "Orlova"}, SpecialtyID: 2, AppointmentDuration: 45, IsActive: true},
	}
	store.slots = map[int]*models.ScheduleSlot{
		1: {ID: 1, DoctorID: 1, Date: "2026-09-07", StartTime: "09:00:00", EndTime: "09:30:00", Status: constvars.SlotStatusFree},
		2: {ID: 2, DoctorID: 1, Date: "2026-09-07", StartTime: "10:00:00", EndTime: "10:30:00", Status: constvars.SlotStatusBooked},
		3: {ID: 3, DoctorID: 2, Date: "2026-09-08", StartTime: "11:00:00", EndTime: "11:45:00", Status: constvars.SlotStatusFree},
	}
	store.nextSlotID = 4
	return store
}

func TestCurrentUser(t *testing.T) {
	store := testStore()

	user := store.CurrentUser()

	assert.Equal(t, 3, user.ID)
	assert.Equal(t, constvars.RolePatient, user.Role)
	assert.Equal(t, 7, user.ProfileID, "profile id must be the patient record, not the user record")
}

func TestSlots(t *testing.T) {
	store := testStore()

	t.Run("No filters returns everything sorted", func(t *testing.T) {
		slots := store.Slots(0, "", "")

		assert.Len(t, slots, 3)
		assert.Equal(t, 1, slots[0].ID)
		assert.Equal(t, 2, slots[1].ID)
		assert.Equal(t, 3, slots[2].ID)
	})

	t.Run("Filters by doctor and status", func(t *testing.T) {
		slots := store.Slots(1, constvars.SlotStatusFree, "")

		assert.Len(t, slots, 1)
		assert.Equal(t, 1, slots[0].ID)
	})

	t.Run("Filters by date", func(t *testing.T) {
		slots := store.Slots(0, "", "2026-09-08")

		assert.Len(t, slots, 1)
		assert.Equal(t, 3, slots[0].ID)
	})

	t.Run("Denormalizes the doctor onto the slot", func(t *testing.T) {
		slots := store.Slots(2, "", "")

		assert.Equal(t, "Maria Orlova", slots[0].DoctorName)
		assert.Equal(t, "Neurology", slots[0].DoctorSpecialty)
	})
}

func TestCreateAppointment(t *testing.T) {
	t.Run("Books a free slot", func(t *testing.T) {
		store := testStore()

		appointment, err := store.CreateAppointment(7, 1)

		assert.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusScheduled, appointment.Status)
		assert.Equal(t, 7, appointment.Patient)
		assert.Equal(t, "09:00:00", appointment.SlotDetails.StartTime)

		slots := store.Slots(1, constvars.SlotStatusFree, "")
		assert.Empty(t, slots, "the booked slot must leave the free list")
	})

	t.Run("Rejects a slot that is already booked", func(t *testing.T) {
		store := testStore()

		_, err := store.CreateAppointment(7, 1)
		assert.NoError(t, err)

		_, err = store.CreateAppointment(9, 1)
		assert.Error(t, err, "double booking the same slot must fail")
	})

	t.Run("Rejects an unknown slot", func(t *testing.T) {
		store := testStore()

		_, err := store.CreateAppointment(7, 999)

		assert.Error(t, err)
	})
}

func TestDeleteAppointment(t *testing.T) {
	t.Run("Frees the slot again", func(t *testing.T) {
		store := testStore()

		appointment, err := store.CreateAppointment(7, 1)
		assert.NoError(t, err)

		err = store.DeleteAppointment(appointment.ID)
		assert.NoError(t, err)

		assert.Empty(t, store.Appointments())
		slots := store.Slots(1, constvars.SlotStatusFree, "2026-09-07")
		assert.Len(t, slots, 1, "cancelling must return the slot to the free list")
	})

	t.Run("Unknown appointment fails", func(t *testing.T) {
		store := testStore()

		err := store.DeleteAppointment(123)

		assert.Error(t, err)
	})
}
