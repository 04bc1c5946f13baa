package exceptions

import (
	"fmt"
	"secondheart-dashboard/internal/pkg/constvars"
)

var (
	// HTTP
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientCannotReachClinic, constvars.ErrDevSendHTTPRequest)
	}
	ErrDecodeResponse = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApp, fmt.Sprintf(constvars.ErrDevDecodeResponse, resource))
	}
	ErrUnexpectedStatus = func(statusCode int, resource string) *CustomError {
		return BuildNewCustomError(nil, statusCode, constvars.ErrClientSomethingWrongWithApp, fmt.Sprintf(constvars.ErrDevUnexpectedStatus, statusCode, resource))
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApp, constvars.ErrDevCannotMarshalJSON)
	}
	ErrCSRFTokenMissing = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusForbidden, constvars.ErrClientNotAuthenticated, constvars.ErrDevCSRFTokenMissing)
	}

	// Validation
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevValidationFailed)
	}

	// Booking flows
	ErrCancelAppointment = func(statusCode int) *CustomError {
		return BuildNewCustomError(nil, statusCode, constvars.ErrClientCancelFailed, fmt.Sprintf(constvars.ErrDevUnexpectedStatus, statusCode, constvars.ResourceAppointment))
	}
	ErrBookSlot = func(statusCode int) *CustomError {
		return BuildNewCustomError(nil, statusCode, constvars.ErrClientBookingFailed, fmt.Sprintf(constvars.ErrDevUnexpectedStatus, statusCode, constvars.ResourceAppointment))
	}

	// Stub API store
	ErrSlotNotFree = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientBookingFailed, constvars.ErrDevSlotNotFree)
	}
	ErrAppointmentNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientCannotProcessRequest, constvars.ErrDevAppointmentMissing)
	}
)
