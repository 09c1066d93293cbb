package interviewapimodels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	dbmodels "ats-backend/models/db"
)

func TestInterviewCreateRequestValidate(t *testing.T) {
	valid := InterviewCreateRequest{
		ApplicationID:  "app-1",
		RoundNumber:    1,
		InterviewerIDs: []string{"e1"},
	}
	require.Nil(t, valid.Validate())

	noApp := valid
	noApp.ApplicationID = ""
	require.NotNil(t, noApp.Validate())

	badRound := valid
	badRound.RoundNumber = 0
	require.NotNil(t, badRound.Validate())

	noInterviewers := valid
	noInterviewers.InterviewerIDs = nil
	require.NotNil(t, noInterviewers.Validate())
}

func TestFeedbackRequestValidate(t *testing.T) {
	for _, rating := range []int{1, 3, 5} {
		req := FeedbackRequest{SkillID: "s1", Rating: rating}
		require.Nil(t, req.Validate())
	}
	for _, rating := range []int{0, 6, -1} {
		req := FeedbackRequest{SkillID: "s1", Rating: rating}
		require.NotNil(t, req.Validate())
	}
	require.NotNil(t, FeedbackRequest{Rating: 3}.Validate())
}

func TestInterviewConvert(t *testing.T) {
	const cancelledID = "status-cancelled"
	base := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	first := dbmodels.InterviewSchedule{ScheduledAt: base, StatusID: cancelledID}
	first.ID = "sch-1"
	second := dbmodels.InterviewSchedule{ScheduledAt: base.AddDate(0, 0, 1), StatusID: "status-scheduled"}
	second.ID = "sch-2"
	third := dbmodels.InterviewSchedule{ScheduledAt: base.AddDate(0, 0, 2), StatusID: cancelledID}
	third.ID = "sch-3"

	rec := dbmodels.Interview{
		ApplicationID: "app-1",
		RoundNumber:   2,
		Interviewers: []dbmodels.Interviewer{
			{EmployeeID: "e1"},
			{EmployeeID: "e2"},
		},
		Schedules: []dbmodels.InterviewSchedule{first, second, third},
		Feedback: []dbmodels.InterviewFeedback{
			{SkillID: "s1", RaterID: "e1", Rating: 4},
		},
	}
	view := InterviewConvert(rec, cancelledID)

	require.Equal(t, 2, view.RoundNumber)
	require.Equal(t, []string{"e1", "e2"}, view.Interviewers)
	require.Len(t, view.Schedules, 3)
	require.Len(t, view.Feedback, 1)

	// latest non-cancelled row wins
	require.NotNil(t, view.CurrentSchedule)
	require.Equal(t, "sch-2", view.CurrentSchedule.ID)
}

func TestInterviewConvertAllCancelled(t *testing.T) {
	const cancelledID = "status-cancelled"
	only := dbmodels.InterviewSchedule{StatusID: cancelledID}
	only.ID = "sch-1"
	rec := dbmodels.Interview{
		Schedules: []dbmodels.InterviewSchedule{only},
	}
	view := InterviewConvert(rec, cancelledID)
	require.Nil(t, view.CurrentSchedule)
}
