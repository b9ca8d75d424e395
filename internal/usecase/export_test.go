package usecase

import (
	"time"

	"prolinked-backend/internal/domain"
)

// SetCVClock pins the clock used for generated CV filenames.
func SetCVClock(uc domain.CVUsecase, now func() time.Time) {
	uc.(*cvUsecase).now = now
}

// SetAdminClock pins the clock used for export filenames.
func SetAdminClock(uc domain.AdminUsecase, now func() time.Time) {
	uc.(*adminUsecase).now = now
}

// SetCVIDs replaces the generator behind generated CV storage keys.
func SetCVIDs(uc domain.CVUsecase, newID func() string) {
	uc.(*cvUsecase).newID = newID
}
