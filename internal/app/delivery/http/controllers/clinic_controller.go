package controllers

import (
	"fmt"
	"net/http"
	"secondheart-dashboard/internal/app/services/clinicstore"
	"secondheart-dashboard/internal/pkg/constvars"
	"secondheart-dashboard/internal/pkg/dto/requests"
	"secondheart-dashboard/internal/pkg/exceptions"
	"secondheart-dashboard/internal/pkg/utils"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
)

// ClinicController serves the clinic REST contract from the in-memory
// store. Mutating endpoints enforce the cookie-to-header CSRF exchange
// the dashboard client performs.
type ClinicController struct {
	Store     *clinicstore.Store
	Log       *logrus.Logger
	csrfToken string
}

func NewClinicController(store *clinicstore.Store, log *logrus.Logger) *ClinicController {
	return &ClinicController{
		Store:     store,
		Log:       log,
		csrfToken: utils.GenerateRequestID(),
	}
}

// Me identifies the session and hands out the csrftoken cookie that
// later mutations must echo in the X-CSRFToken header.
func (c *ClinicController) Me(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:  constvars.CookieCSRFToken,
		Value: c.csrfToken,
		Path:  "/",
	})
	utils.WriteJSON(w, constvars.StatusOK, c.Store.CurrentUser())
}

func (c *ClinicController) ListSpecialties(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, constvars.StatusOK, c.Store.Specialties())
}

func (c *ClinicController) ListDoctors(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, constvars.StatusOK, c.Store.Doctors())
}

func (c *ClinicController) ListSlots(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	doctorID, _ := strconv.Atoi(query.Get(constvars.QueryParamDoctor))
	status := query.Get(constvars.QueryParamStatus)
	date := query.Get(constvars.QueryParamDate)

	utils.WriteJSON(w, constvars.StatusOK, c.Store.Slots(doctorID, status, date))
}

func (c *ClinicController) ListAppointments(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, constvars.StatusOK, c.Store.Appointments())
}

func (c *ClinicController) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	if err := c.checkCSRF(r); err != nil {
		utils.WriteError(c.Log, w, err)
		return
	}

	var request requests.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.WriteError(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.WriteError(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	appointment, err := c.Store.CreateAppointment(request.Patient, request.Slot)
	if err != nil {
		utils.WriteError(c.Log, w, err)
		return
	}
	utils.WriteJSON(w, constvars.StatusCreated, appointment)
}

func (c *ClinicController) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	if err := c.checkCSRF(r); err != nil {
		utils.WriteError(c.Log, w, err)
		return
	}

	appointmentID, err := strconv.Atoi(chi.URLParam(r, "appointmentID"))
	if err != nil {
		utils.WriteError(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	if err := c.Store.DeleteAppointment(appointmentID); err != nil {
		utils.WriteError(c.Log, w, err)
		return
	}
	utils.WriteJSON(w, constvars.StatusNoContent, nil)
}

func (c *ClinicController) checkCSRF(r *http.Request) error {
	cookie, err := r.Cookie(constvars.CookieCSRFToken)
	if err != nil {
		return exceptions.ErrCSRFTokenMissing(err)
	}
	header := r.Header.Get(constvars.HeaderCSRFToken)
	if header == "" || header != cookie.Value {
		return exceptions.ErrCSRFTokenMissing(fmt.Errorf("header does not match cookie"))
	}
	return nil
}
