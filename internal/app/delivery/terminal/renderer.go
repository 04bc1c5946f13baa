package terminal

import (
	"fmt"
	"io"
	"secondheart-dashboard/internal/pkg/constvars"
	"secondheart-dashboard/internal/pkg/dto/responses"
	"secondheart-dashboard/internal/pkg/dto/viewmodels"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

// Renderer turns view models into terminal output. It holds no panel
// state of its own; the dashboard decides what to show and when.
type Renderer struct {
	out io.Writer

	heading *color.Color
	success *color.Color
	failure *color.Color
	active  *color.Color
	muted   *color.Color
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{
		out:     out,
		heading: color.New(color.FgCyan, color.Bold),
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
		active:  color.New(color.FgYellow, color.Bold),
		muted:   color.New(color.Faint),
	}
}

func (r *Renderer) Notice(message string) {
	fmt.Fprintln(r.out, message)
}

func (r *Renderer) Success(message string) {
	fmt.Fprintln(r.out, r.success.Sprint(message))
}

func (r *Renderer) Error(message string) {
	fmt.Fprintln(r.out, r.failure.Sprint(message))
}

func (r *Renderer) AppointmentsTable(rows []viewmodels.AppointmentRow) {
	fmt.Fprintln(r.out, r.heading.Sprint("My appointments"))

	table := tablewriter.NewWriter(r.out)
	table.SetHeader([]string{"ID", "Date", "Time", "Doctor", "Specialty", "Status", "Action"})
	for _, row := range rows {
		action := ""
		if row.CanCancel {
			action = fmt.Sprintf("cancel %d", row.ID)
		}
		table.Append([]string{
			fmt.Sprintf("%d", row.ID),
			row.Date,
			row.TimeRange,
			row.DoctorName,
			row.DoctorSpecialty,
			r.statusBadge(row.StatusLabel),
			action,
		})
	}
	table.Render()
}

func (r *Renderer) EmptyAppointments() {
	fmt.Fprintln(r.out, r.heading.Sprint("My appointments"))
	fmt.Fprintln(r.out, r.muted.Sprint(constvars.NoticeNoAppointments))
}

func (r *Renderer) SpecialtyOptions(specialties []responses.Specialty) {
	fmt.Fprintln(r.out, r.heading.Sprint("Specialties"))
	fmt.Fprintf(r.out, "  [%s] All specialties\n", constvars.SpecialtyFilterAll)
	for _, specialty := range specialties {
		fmt.Fprintf(r.out, "  [%d] %s\n", specialty.ID, specialty.Name)
	}
}

func (r *Renderer) DoctorList(doctors []viewmodels.DoctorEntry, activeDoctorID int) {
	fmt.Fprintln(r.out, r.heading.Sprint("Doctors"))
	if len(doctors) == 0 {
		fmt.Fprintln(r.out, r.muted.Sprint(constvars.NoticeNoDoctorsFound))
		return
	}
	for i, doctor := range doctors {
		line := fmt.Sprintf("  %d. %s - %s", i+1, doctor.FullName, doctor.SpecialtyName)
		if doctor.ID == activeDoctorID {
			line = r.active.Sprint(line + "  (selected)")
		}
		fmt.Fprintln(r.out, line)
	}
}

// SlotPanel prints the grouped free slots with running button numbers
// matching the flat button list the dashboard keeps for `book <n>`.
func (r *Renderer) SlotPanel(panel *viewmodels.SlotPanel) {
	if len(panel.Groups) == 0 {
		r.Notice(fmt.Sprintf(constvars.NoticeNoFreeSlotsFormat, panel.DoctorName))
		return
	}
	fmt.Fprintln(r.out, r.heading.Sprintf("Free slots for %s", panel.DoctorName))
	number := 0
	for _, group := range panel.Groups {
		fmt.Fprintln(r.out, r.heading.Sprint(group.Heading))
		for _, slot := range group.Slots {
			number++
			fmt.Fprintf(r.out, "  [%d] %s\n", number, slot.TimeLabel)
		}
	}
}

func (r *Renderer) SlotPromptState() {
	fmt.Fprintln(r.out, r.success.Sprint(constvars.NoticeSelectDoctor))
}

func (r *Renderer) Help() {
	fmt.Fprintln(r.out, r.muted.Sprint("commands: appointments | doctors | filter <id|all> | select <n> | book <n> | cancel <id> | help | quit"))
}

func (r *Renderer) statusBadge(label string) string {
	switch label {
	case constvars.StatusLabelScheduled:
		return r.heading.Sprint(label)
	case constvars.StatusLabelCompleted:
		return r.success.Sprint(label)
	case constvars.StatusLabelCancelled:
		return r.failure.Sprint(label)
	default:
		return r.muted.Sprint(label)
	}
}
