package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAddExperience(t *testing.T) {
	tests := []struct {
		name          string
		startXP       int
		startLevel    int
		points        int
		wantXP        int
		wantLevel     int
		wantLeveledUp bool
	}{
		{
			name:      "small award stays on level one",
			startXP:   0,
			startLevel: 1,
			points:    10,
			wantXP:    10,
			wantLevel: 1,
		},
		{
			name:          "crossing 100 reaches level two",
			startXP:       95,
			startLevel:    1,
			points:        10,
			wantXP:        105,
			wantLevel:     2,
			wantLeveledUp: true,
		},
		{
			name:          "large award can skip levels",
			startXP:       0,
			startLevel:    1,
			points:        250,
			wantXP:        250,
			wantLevel:     3,
			wantLeveledUp: true,
		},
		{
			name:       "zero points is ignored",
			startXP:    50,
			startLevel: 1,
			points:     0,
			wantXP:     50,
			wantLevel:  1,
		},
		{
			name:       "negative points are ignored",
			startXP:    50,
			startLevel: 1,
			points:     -20,
			wantXP:     50,
			wantLevel:  1,
		},
		{
			name:      "exactly at boundary",
			startXP:   90,
			startLevel: 1,
			points:    10,
			wantXP:    100,
			wantLevel: 2,
			wantLeveledUp: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := &User{ExperiencePoints: tt.startXP, Level: tt.startLevel}

			leveledUp, newLevel := user.AddExperience(tt.points)

			assert.Equal(t, tt.wantXP, user.ExperiencePoints)
			assert.Equal(t, tt.wantLevel, user.Level)
			assert.Equal(t, tt.wantLevel, newLevel)
			assert.Equal(t, tt.wantLeveledUp, leveledUp)
		})
	}
}

func TestAddExperience_LevelMatchesFormula(t *testing.T) {
	user := &User{Level: 1}
	for i := 0; i < 50; i++ {
		user.AddExperience(7)
		assert.Equal(t, user.ExperiencePoints/XPPerLevel+1, user.Level)
	}
}

func TestUpdateStreak(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 8, d, 12, 0, 0, 0, time.UTC)
	}

	t.Run("first activity starts streak at one", func(t *testing.T) {
		user := &User{}
		user.UpdateStreak(day(1))

		assert.Equal(t, 1, user.CurrentStreak)
		assert.Equal(t, 1, user.LongestStreak)
		assert.NotNil(t, user.LastActiveDate)
	})

	t.Run("same day activity does not change streak", func(t *testing.T) {
		user := &User{}
		user.UpdateStreak(day(1))
		user.UpdateStreak(day(1).Add(5 * time.Hour))

		assert.Equal(t, 1, user.CurrentStreak)
	})

	t.Run("consecutive days extend streak", func(t *testing.T) {
		user := &User{}
		user.UpdateStreak(day(1))
		user.UpdateStreak(day(2))
		user.UpdateStreak(day(3))

		assert.Equal(t, 3, user.CurrentStreak)
		assert.Equal(t, 3, user.LongestStreak)
	})

	t.Run("a gap resets to one but keeps longest", func(t *testing.T) {
		user := &User{}
		user.UpdateStreak(day(1))
		user.UpdateStreak(day(2))
		user.UpdateStreak(day(3))
		user.UpdateStreak(day(10))

		assert.Equal(t, 1, user.CurrentStreak)
		assert.Equal(t, 3, user.LongestStreak)
	})

	t.Run("crossing midnight counts as next day", func(t *testing.T) {
		user := &User{}
		user.UpdateStreak(time.Date(2026, 8, 1, 23, 50, 0, 0, time.UTC))
		user.UpdateStreak(time.Date(2026, 8, 2, 0, 10, 0, 0, time.UTC))

		assert.Equal(t, 2, user.CurrentStreak)
	})
}
