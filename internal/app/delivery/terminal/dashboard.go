package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"secondheart-dashboard/internal/app/contracts"
	"secondheart-dashboard/internal/pkg/constvars"
	"secondheart-dashboard/internal/pkg/dto/viewmodels"
	"secondheart-dashboard/internal/pkg/exceptions"
	"secondheart-dashboard/internal/pkg/utils"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

const (
	TabAppointments = "appointments"
	TabBooking      = "booking"
)

// State is the dashboard's only mutable context: who the patient is,
// which tab is active and which doctor is selected. Panels receive it
// explicitly instead of reading ambient globals.
type State struct {
	PatientID      int
	ActiveTab      string
	SelectedDoctor *viewmodels.DoctorEntry
}

type Dashboard struct {
	Session      contracts.SessionUsecase
	Appointments contracts.AppointmentUsecase
	Directory    contracts.DirectoryUsecase
	Slots        contracts.SlotUsecase
	Renderer     *Renderer
	Prompter     contracts.Prompter
	Log          *zap.Logger

	state       State
	doctorsView []viewmodels.DoctorEntry
	slotButtons []viewmodels.SlotButton
}

func NewDashboard(
	sessionUsecase contracts.SessionUsecase,
	appointmentUsecase contracts.AppointmentUsecase,
	directoryUsecase contracts.DirectoryUsecase,
	slotUsecase contracts.SlotUsecase,
	renderer *Renderer,
	prompter contracts.Prompter,
	logger *zap.Logger,
) *Dashboard {
	return &Dashboard{
		Session:      sessionUsecase,
		Appointments: appointmentUsecase,
		Directory:    directoryUsecase,
		Slots:        slotUsecase,
		Renderer:     renderer,
		Prompter:     prompter,
		Log:          logger,
	}
}

func (d *Dashboard) State() State {
	return d.state
}

// Run bootstraps the session, loads every panel once and then serves
// commands until the input closes or the context is done.
func (d *Dashboard) Run(ctx context.Context, in *bufio.Reader) error {
	if err := d.Bootstrap(ctx); err != nil {
		return err
	}

	d.Renderer.Help()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		fmt.Fprint(d.Renderer.out, "> ")
		line, err := in.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		d.Dispatch(ctx, line)
		if d.quitRequested(line) {
			return nil
		}
	}
}

func (d *Dashboard) Bootstrap(ctx context.Context) error {
	ictx := d.interactionContext(ctx)
	user, err := d.Session.Bootstrap(ictx)
	if err != nil {
		d.Renderer.Error(clientMessage(err))
		return err
	}
	d.state.PatientID = user.ProfileID
	d.state.ActiveTab = TabAppointments

	d.refreshAppointments(ctx)
	d.loadDirectory(ctx)
	return nil
}

func (d *Dashboard) Dispatch(ctx context.Context, line string) {
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) == 0 {
		return
	}
	command, arg := fields[0], ""
	if len(fields) > 1 {
		arg = fields[1]
	}

	switch command {
	case "appointments":
		d.state.ActiveTab = TabAppointments
		d.refreshAppointments(ctx)
	case "doctors", "booking":
		d.state.ActiveTab = TabBooking
		d.Renderer.DoctorList(d.doctorsView, d.activeDoctorID())
	case "filter":
		d.filterDoctors(arg)
	case "select":
		d.selectDoctor(ctx, arg)
	case "book":
		d.bookSlot(ctx, arg)
	case "cancel":
		d.cancelAppointment(ctx, arg)
	case "help":
		d.Renderer.Help()
	case "quit", "exit":
	default:
		d.Renderer.Notice(fmt.Sprintf("Unknown command %q", command))
		d.Renderer.Help()
	}
}

func (d *Dashboard) refreshAppointments(ctx context.Context) {
	ictx := d.interactionContext(ctx)
	rows, err := d.Appointments.ListMine(ictx, d.state.PatientID)
	if err != nil {
		d.Renderer.Error(clientMessage(err))
		d.Renderer.EmptyAppointments()
		return
	}
	if len(rows) == 0 {
		d.Renderer.EmptyAppointments()
		return
	}
	d.Renderer.AppointmentsTable(rows)
}

func (d *Dashboard) loadDirectory(ctx context.Context) {
	ictx := d.interactionContext(ctx)

	specialties, err := d.Directory.LoadSpecialties(ictx)
	if err != nil {
		d.Renderer.Error(clientMessage(err))
	} else {
		d.Renderer.SpecialtyOptions(specialties)
	}

	doctors, err := d.Directory.LoadDoctors(ictx)
	if err != nil {
		d.Renderer.Error(clientMessage(err))
		d.doctorsView = nil
		d.Renderer.DoctorList(nil, 0)
		return
	}
	d.doctorsView = doctors
	d.Renderer.DoctorList(d.doctorsView, d.activeDoctorID())
}

// filterDoctors rerenders from the cache; like a fresh list render it
// drops the selection highlight.
func (d *Dashboard) filterDoctors(value string) {
	if value == "" {
		value = constvars.SpecialtyFilterAll
	}
	d.doctorsView = d.Directory.FilterDoctors(value)
	d.state.SelectedDoctor = nil
	d.Renderer.DoctorList(d.doctorsView, 0)
}

func (d *Dashboard) selectDoctor(ctx context.Context, arg string) {
	index, err := strconv.Atoi(arg)
	if err != nil || index < 1 || index > len(d.doctorsView) {
		d.Renderer.Notice(fmt.Sprintf("Pick a doctor between 1 and %d", len(d.doctorsView)))
		return
	}
	doctor := d.doctorsView[index-1]
	d.state.SelectedDoctor = &doctor
	d.state.ActiveTab = TabBooking
	d.Renderer.DoctorList(d.doctorsView, doctor.ID)
	d.loadSlots(ctx, doctor)
}

func (d *Dashboard) loadSlots(ctx context.Context, doctor viewmodels.DoctorEntry) {
	ictx := d.interactionContext(ctx)
	panel, err := d.Slots.LoadSlots(ictx, doctor.ID, doctor.FullName)
	if err != nil {
		d.Renderer.Error(clientMessage(err))
		d.slotButtons = nil
		return
	}
	if panel == nil {
		// Superseded by a newer load; nothing to render.
		return
	}
	d.slotButtons = flattenSlotButtons(panel)
	d.Renderer.SlotPanel(panel)
}

func (d *Dashboard) bookSlot(ctx context.Context, arg string) {
	index, err := strconv.Atoi(arg)
	if err != nil || index < 1 || index > len(d.slotButtons) {
		d.Renderer.Notice(fmt.Sprintf("Pick a slot between 1 and %d", len(d.slotButtons)))
		return
	}
	button := d.slotButtons[index-1]

	if !d.Prompter.Confirm(fmt.Sprintf(constvars.ConfirmBookSlotFormat, button.Date, button.TimeLabel)) {
		return
	}

	ictx := d.interactionContext(ctx)
	if err := d.Slots.Book(ictx, d.state.PatientID, button.SlotID); err != nil {
		d.Renderer.Error(clientMessage(err))
		// The slot may have been taken meanwhile; show fresh availability.
		if d.state.SelectedDoctor != nil {
			d.loadSlots(ctx, *d.state.SelectedDoctor)
		}
		return
	}

	d.Renderer.Success(constvars.NoticeBookingConfirmed)
	d.state.ActiveTab = TabAppointments
	d.refreshAppointments(ctx)
	d.slotButtons = nil
	d.state.SelectedDoctor = nil
	d.Renderer.SlotPromptState()
	d.Renderer.DoctorList(d.doctorsView, 0)
}

func (d *Dashboard) cancelAppointment(ctx context.Context, arg string) {
	appointmentID, err := strconv.Atoi(arg)
	if err != nil {
		d.Renderer.Notice("Usage: cancel <appointment id>")
		return
	}

	if !d.Prompter.Confirm(constvars.ConfirmCancelAppointment) {
		return
	}

	ictx := d.interactionContext(ctx)
	if err := d.Appointments.Cancel(ictx, appointmentID); err != nil {
		d.Renderer.Error(clientMessage(err))
		return
	}

	d.Renderer.Success(constvars.NoticeAppointmentGone)
	d.refreshAppointments(ctx)
	// A freed slot should reappear for the doctor being browsed.
	if d.state.SelectedDoctor != nil {
		d.loadSlots(ctx, *d.state.SelectedDoctor)
	}
}

func (d *Dashboard) interactionContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, constvars.ContextRequestIDKey, utils.GenerateRequestID())
}

func (d *Dashboard) activeDoctorID() int {
	if d.state.SelectedDoctor == nil {
		return 0
	}
	return d.state.SelectedDoctor.ID
}

func (d *Dashboard) quitRequested(line string) bool {
	command := strings.ToLower(strings.TrimSpace(line))
	return command == "quit" || command == "exit"
}

func flattenSlotButtons(panel *viewmodels.SlotPanel) []viewmodels.SlotButton {
	buttons := make([]viewmodels.SlotButton, 0)
	for _, group := range panel.Groups {
		buttons = append(buttons, group.Slots...)
	}
	return buttons
}

func clientMessage(err error) string {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		return customErr.ClientMessage
	}
	return constvars.ErrClientSomethingWrongWithApp
}
