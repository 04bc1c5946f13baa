package contracts

import (
	"context"
	"secondheart-dashboard/internal/pkg/dto/responses"
	"secondheart-dashboard/internal/pkg/dto/viewmodels"
)

type DirectoryClient interface {
	FindSpecialties(ctx context.Context) ([]responses.Specialty, error)
	FindDoctors(ctx context.Context) ([]responses.Doctor, error)
}

type DirectoryUsecase interface {
	LoadSpecialties(ctx context.Context) ([]responses.Specialty, error)
	// LoadDoctors fetches the doctor list and replaces the in-memory cache.
	LoadDoctors(ctx context.Context) ([]viewmodels.DoctorEntry, error)
	// FilterDoctors works purely on the cache; "all" returns everything.
	FilterDoctors(specialtyID string) []viewmodels.DoctorEntry
}
