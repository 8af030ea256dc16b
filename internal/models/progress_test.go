package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)

func TestMarkAsStarted(t *testing.T) {
	t.Run("first view promotes to in-progress", func(t *testing.T) {
		p := &Progress{Status: ProgressNotStarted}
		p.MarkAsStarted(testNow)

		assert.Equal(t, ProgressInProgress, p.Status)
		assert.Equal(t, testNow, *p.StartedAt)
		assert.Equal(t, 1, p.ViewCount)
	})

	t.Run("startedAt is set only once", func(t *testing.T) {
		p := &Progress{Status: ProgressNotStarted}
		p.MarkAsStarted(testNow)
		later := testNow.Add(time.Hour)
		p.MarkAsStarted(later)

		assert.Equal(t, testNow, *p.StartedAt)
		assert.Equal(t, 2, p.ViewCount)
		assert.Equal(t, later, p.LastAccessedAt)
	})

	t.Run("completed records never regress", func(t *testing.T) {
		p := &Progress{Status: ProgressCompleted}
		p.MarkAsStarted(testNow)

		assert.Equal(t, ProgressCompleted, p.Status)
	})
}

func TestMarkAsCompleted(t *testing.T) {
	p := &Progress{Status: ProgressInProgress, CompletionPercentage: 40}
	p.MarkAsCompleted(testNow)

	assert.Equal(t, ProgressCompleted, p.Status)
	assert.Equal(t, float64(100), p.CompletionPercentage)
	assert.Equal(t, testNow, *p.CompletedAt)
}

func TestAddQuizAttempt(t *testing.T) {
	t.Run("passing score auto-completes", func(t *testing.T) {
		p := &Progress{Status: ProgressInProgress}
		p.AddQuizAttempt(QuizAttempt{Score: 85}, testNow)

		assert.Equal(t, ProgressCompleted, p.Status)
		assert.Equal(t, float64(85), p.BestScore)
		assert.Len(t, p.QuizAttempts, 1)
	})

	t.Run("threshold score of exactly 80 completes", func(t *testing.T) {
		p := &Progress{Status: ProgressInProgress}
		p.AddQuizAttempt(QuizAttempt{Score: QuizCompletionScore}, testNow)

		assert.Equal(t, ProgressCompleted, p.Status)
	})

	t.Run("failing score leaves status alone", func(t *testing.T) {
		p := &Progress{Status: ProgressInProgress}
		p.AddQuizAttempt(QuizAttempt{Score: 79.9}, testNow)

		assert.Equal(t, ProgressInProgress, p.Status)
		assert.Equal(t, 79.9, p.BestScore)
	})

	t.Run("best score only moves up", func(t *testing.T) {
		p := &Progress{Status: ProgressInProgress}
		p.AddQuizAttempt(QuizAttempt{Score: 70}, testNow)
		p.AddQuizAttempt(QuizAttempt{Score: 40}, testNow)

		assert.Equal(t, float64(70), p.BestScore)
		assert.Len(t, p.QuizAttempts, 2)
	})
}

func TestToggleBookmark(t *testing.T) {
	p := &Progress{}

	p.ToggleBookmark(testNow)
	assert.True(t, p.IsBookmarked)
	assert.Equal(t, testNow, *p.BookmarkedAt)

	p.ToggleBookmark(testNow.Add(time.Minute))
	assert.False(t, p.IsBookmarked)
	assert.Nil(t, p.BookmarkedAt)
}

func TestAddTimeSpent(t *testing.T) {
	p := &Progress{TimeSpent: 100}
	p.AddTimeSpent(50, testNow)

	assert.Equal(t, int64(150), p.TimeSpent)
	assert.Equal(t, testNow, p.LastAccessedAt)
}
