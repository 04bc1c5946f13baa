package directory

import (
	"context"
	"fmt"
	"secondheart-dashboard/internal/app/contracts"
	"secondheart-dashboard/internal/pkg/constvars"
	"secondheart-dashboard/internal/pkg/dto/responses"
	"secondheart-dashboard/internal/pkg/dto/viewmodels"
	"strconv"
	"sync"

	"go.uber.org/zap"
)

type directoryUsecase struct {
	DirectoryClient contracts.DirectoryClient
	Log             *zap.Logger

	mu      sync.RWMutex
	doctors []viewmodels.DoctorEntry
}

func NewDirectoryUsecase(directoryClient contracts.DirectoryClient, logger *zap.Logger) contracts.DirectoryUsecase {
	return &directoryUsecase{
		DirectoryClient: directoryClient,
		Log:             logger,
	}
}

func (uc *directoryUsecase) LoadSpecialties(ctx context.Context) ([]responses.Specialty, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	uc.Log.Info("directoryUsecase.LoadSpecialties called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	specialties, err := uc.DirectoryClient.FindSpecialties(ctx)
	if err != nil {
		uc.Log.Error("directoryUsecase.LoadSpecialties error fetching specialties",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("directoryUsecase.LoadSpecialties succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(specialties)),
	)
	return specialties, nil
}

func (uc *directoryUsecase) LoadDoctors(ctx context.Context) ([]viewmodels.DoctorEntry, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	uc.Log.Info("directoryUsecase.LoadDoctors called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	doctors, err := uc.DirectoryClient.FindDoctors(ctx)
	if err != nil {
		uc.Log.Error("directoryUsecase.LoadDoctors error fetching doctors",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	entries := make([]viewmodels.DoctorEntry, 0, len(doctors))
	for _, doctor := range doctors {
		entries = append(entries, viewmodels.DoctorEntry{
			ID:            doctor.ID,
			FullName:      fmt.Sprintf("%s %s", doctor.User.FirstName, doctor.User.LastName),
			SpecialtyID:   doctor.SpecialtyDetails.ID,
			SpecialtyName: doctor.SpecialtyDetails.Name,
		})
	}

	uc.mu.Lock()
	uc.doctors = entries
	uc.mu.Unlock()

	uc.Log.Info("directoryUsecase.LoadDoctors succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(entries)),
	)
	return uc.FilterDoctors(constvars.SpecialtyFilterAll), nil
}

// FilterDoctors never refetches: filter changes work against the cached
// list. Specialty ids arrive from the filter control as strings, so the
// comparison tolerates string and numeric forms of the same id.
func (uc *directoryUsecase) FilterDoctors(specialtyID string) []viewmodels.DoctorEntry {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	if specialtyID == constvars.SpecialtyFilterAll {
		filtered := make([]viewmodels.DoctorEntry, len(uc.doctors))
		copy(filtered, uc.doctors)
		return filtered
	}

	filtered := make([]viewmodels.DoctorEntry, 0, len(uc.doctors))
	for _, doctor := range uc.doctors {
		if strconv.Itoa(doctor.SpecialtyID) == specialtyID {
			filtered = append(filtered, doctor)
		}
	}
	return filtered
}
