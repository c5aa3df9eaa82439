package result

import (
	"github.com/google/uuid"
	"github.com/saulo-duarte/testseries-lambda/internal/series"
)

// CanAccess reports whether caller may read or delete r. sr is the referenced
// series, nil when it no longer exists.
func CanAccess(caller uuid.UUID, r *Result, sr *series.Series) bool {
	if r == nil || caller == uuid.Nil {
		return false
	}
	if r.UserID == caller {
		return true
	}
	return sr != nil && sr.ID == r.SeriesID && sr.IsCreator(caller)
}
