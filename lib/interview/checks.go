package interview

import (
	"time"

	"ats-backend/lib/utils/apperrors"
)

// CheckRoundNumber enforces the per-position round cap and the
// sequential numbering contract: the next round is always maxRound+1.
func CheckRoundNumber(requested, maxRound, numberOfInterviews int) error {
	if numberOfInterviews > 0 && requested > numberOfInterviews {
		return apperrors.Conflict("interview round limit reached: position allows %d rounds", numberOfInterviews)
	}
	if requested != maxRound+1 {
		return apperrors.InvalidArgument("expected round number %d, got %d", maxRound+1, requested)
	}
	return nil
}

// CheckInterviewers rejects duplicate employee ids within one round.
func CheckInterviewers(employeeIDs []string) error {
	seen := make(map[string]struct{}, len(employeeIDs))
	for _, employeeID := range employeeIDs {
		if employeeID == "" {
			return apperrors.InvalidArgument("interviewer id is required")
		}
		if _, ok := seen[employeeID]; ok {
			return apperrors.Conflict("interviewer %s is already assigned to the round", employeeID)
		}
		seen[employeeID] = struct{}{}
	}
	return nil
}

// CheckScheduleTime requires a strictly future slot.
func CheckScheduleTime(scheduledAt, now time.Time) error {
	if scheduledAt.IsZero() {
		return apperrors.InvalidArgument("scheduled time is required")
	}
	if !scheduledAt.After(now) {
		return apperrors.InvalidArgument("scheduled time must be in the future")
	}
	return nil
}
