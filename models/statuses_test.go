package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplicationStatusIsTerminal(t *testing.T) {
	require.True(t, ApplicationStatusSelected.IsTerminal())
	require.True(t, ApplicationStatusRejected.IsTerminal())
	require.False(t, ApplicationStatusApplied.IsTerminal())
	require.False(t, ApplicationStatusOnHold.IsTerminal())
	require.False(t, ApplicationStatusInterview.IsTerminal())
}

func TestInterviewStatusGraph(t *testing.T) {
	t.Run(`planned`, func(t *testing.T) {
		require.True(t, InterviewStatusPlanned.IsAllowStatusChange(InterviewStatusInProgress))
		require.True(t, InterviewStatusPlanned.IsAllowStatusChange(InterviewStatusCancelled))
		require.False(t, InterviewStatusPlanned.IsAllowStatusChange(InterviewStatusCompleted))
	})

	t.Run(`in progress`, func(t *testing.T) {
		require.True(t, InterviewStatusInProgress.IsAllowStatusChange(InterviewStatusCompleted))
		require.True(t, InterviewStatusInProgress.IsAllowStatusChange(InterviewStatusCancelled))
		require.False(t, InterviewStatusInProgress.IsAllowStatusChange(InterviewStatusPlanned))
	})

	t.Run(`terminal states allow nothing`, func(t *testing.T) {
		for _, target := range InterviewStatuses {
			require.False(t, InterviewStatusCompleted.IsAllowStatusChange(target))
			require.False(t, InterviewStatusCancelled.IsAllowStatusChange(target))
		}
	})
}
