package viewmodels

// SlotButton labels a bookable slot with its HH:MM start time.
type SlotButton struct {
	SlotID    int
	Date      string
	TimeLabel string
}

// SlotGroup is one date section; groups keep the server's first-seen
// date order and slots inside a group are sorted by start time.
type SlotGroup struct {
	Date    string
	Heading string
	Slots   []SlotButton
}

type SlotPanel struct {
	DoctorID   int
	DoctorName string
	Groups     []SlotGroup
}
