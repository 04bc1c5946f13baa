package constvars

const (
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

const (
	SlotStatusFree      = "free"
	SlotStatusBooked    = "booked"
	SlotStatusCompleted = "completed"
)

const (
	StatusLabelScheduled = "Scheduled"
	StatusLabelCompleted = "Completed"
	StatusLabelCancelled = "Cancelled"
	StatusLabelUnknown   = "Unknown"
)

const (
	RoleDoctor  = "doctor"
	RolePatient = "patient"
)

// SpecialtyFilterAll is the filter value that disables specialty filtering.
const SpecialtyFilterAll = "all"
