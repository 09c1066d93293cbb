package interview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ats-backend/lib/utils/apperrors"
)

func TestCheckRoundNumber(t *testing.T) {
	t.Run(`first round`, func(t *testing.T) {
		require.Nil(t, CheckRoundNumber(1, 0, 3))
	})

	t.Run(`next sequential round`, func(t *testing.T) {
		require.Nil(t, CheckRoundNumber(3, 2, 3))
	})

	t.Run(`round above the position cap`, func(t *testing.T) {
		err := CheckRoundNumber(4, 3, 3)
		require.NotNil(t, err)
		require.True(t, apperrors.IsKind(err, apperrors.KindConflict))
	})

	t.Run(`round skipping the sequence`, func(t *testing.T) {
		err := CheckRoundNumber(3, 1, 5)
		require.NotNil(t, err)
		require.True(t, apperrors.IsKind(err, apperrors.KindInvalidArgument))
	})

	t.Run(`no cap configured`, func(t *testing.T) {
		require.Nil(t, CheckRoundNumber(7, 6, 0))
	})
}

func TestCheckInterviewers(t *testing.T) {
	t.Run(`distinct interviewers`, func(t *testing.T) {
		require.Nil(t, CheckInterviewers([]string{"e1", "e2", "e3"}))
	})

	t.Run(`duplicate interviewer`, func(t *testing.T) {
		err := CheckInterviewers([]string{"e1", "e2", "e1"})
		require.NotNil(t, err)
		require.True(t, apperrors.IsKind(err, apperrors.KindConflict))
	})

	t.Run(`empty interviewer id`, func(t *testing.T) {
		err := CheckInterviewers([]string{"e1", ""})
		require.NotNil(t, err)
		require.True(t, apperrors.IsKind(err, apperrors.KindInvalidArgument))
	})
}

func TestCheckScheduleTime(t *testing.T) {
	now := time.Now()

	t.Run(`future slot`, func(t *testing.T) {
		require.Nil(t, CheckScheduleTime(now.Add(time.Hour), now))
	})

	t.Run(`past slot`, func(t *testing.T) {
		err := CheckScheduleTime(now.Add(-time.Minute), now)
		require.NotNil(t, err)
		require.True(t, apperrors.IsKind(err, apperrors.KindInvalidArgument))
	})

	t.Run(`exact now is rejected`, func(t *testing.T) {
		err := CheckScheduleTime(now, now)
		require.NotNil(t, err)
	})

	t.Run(`zero time`, func(t *testing.T) {
		err := CheckScheduleTime(time.Time{}, now)
		require.NotNil(t, err)
	})
}
