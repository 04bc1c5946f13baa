package utils

import (
	"errors"
	"net/http"
	"secondheart-dashboard/internal/pkg/constvars"
	"secondheart-dashboard/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
)

// detailResponse mirrors the error body shape of the real clinic API.
type detailResponse struct {
	Detail string `json:"detail"`
}

func WriteJSON(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func WriteError(log *logrus.Logger, w http.ResponseWriter, err error) {
	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApp

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		clientMessage = customErr.ClientMessage
		log.WithFields(logrus.Fields{
			"file":          customErr.Location.File,
			"line":          customErr.Location.Line,
			"function_name": customErr.Location.FunctionName,
		}).Error(customErr.DevMessage)
	} else {
		log.Error(err.Error())
	}

	WriteJSON(w, code, detailResponse{Detail: clientMessage})
}
