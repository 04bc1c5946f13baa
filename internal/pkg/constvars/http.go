package constvars

import "net/http"

const (
	MethodGet    = http.MethodGet
	MethodPost   = http.MethodPost
	MethodDelete = http.MethodDelete

	StatusOK                  = http.StatusOK
	StatusCreated             = http.StatusCreated
	StatusNoContent           = http.StatusNoContent
	StatusBadRequest          = http.StatusBadRequest
	StatusUnauthorized        = http.StatusUnauthorized
	StatusForbidden           = http.StatusForbidden
	StatusNotFound            = http.StatusNotFound
	StatusConflict            = http.StatusConflict
	StatusInternalServerError = http.StatusInternalServerError
	StatusGatewayTimeout      = http.StatusGatewayTimeout
)

const (
	HeaderContentType = "Content-Type"
	HeaderCSRFToken   = "X-CSRFToken"
	HeaderXRequestID  = "X-Request-ID"

	MIMEApplicationJSON = "application/json"
)

const (
	CookieCSRFToken = "csrftoken"
	CookieSessionID = "sessionid"
)
