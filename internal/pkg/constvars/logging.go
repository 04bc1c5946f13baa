package constvars

const (
	LoggingRequestIDKey     = "request_id"
	LoggingPatientIDKey     = "patient_id"
	LoggingDoctorIDKey      = "doctor_id"
	LoggingSlotIDKey        = "slot_id"
	LoggingAppointmentIDKey = "appointment_id"
	LoggingSpecialtyIDKey   = "specialty_id"
	LoggingResponseCountKey = "response_count"
	LoggingGenerationKey    = "generation"
	LoggingMethodKey        = "method"
	LoggingEndpointKey      = "endpoint"
	LoggingStatusCodeKey    = "status_code"
	LoggingDurationKey      = "duration"
	LoggingRemoteAddrKey    = "remote_addr"
)

type contextKey string

// ContextRequestIDKey carries the per-interaction request id through contexts.
const ContextRequestIDKey contextKey = "request_id"
