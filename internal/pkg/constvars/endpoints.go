package constvars

// Endpoints of the clinic REST API consumed by the dashboard.
const (
	EndpointMe              = "/api/me/"
	EndpointAppointments    = "/api/appointments/"
	EndpointAppointmentByID = "/api/appointments/%d/"
	EndpointSpecialties     = "/api/specialties/"
	EndpointDoctors         = "/api/doctors/"
	EndpointSlots           = "/api/slots/"
)

const (
	QueryParamDoctor = "doctor"
	QueryParamStatus = "status"
	QueryParamDate   = "date"
)

const (
	ResourceCurrentUser = "CurrentUser"
	ResourceAppointment = "Appointment"
	ResourceSpecialty   = "Specialty"
	ResourceDoctor      = "Doctor"
	ResourceSlot        = "Slot"
)
