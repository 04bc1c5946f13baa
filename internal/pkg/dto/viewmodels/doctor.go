package viewmodels

type DoctorEntry struct {
	ID            int
	FullName      string
	SpecialtyID   int
	SpecialtyName string
}
