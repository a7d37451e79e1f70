// Copyright (c) 2026 taigamcp Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssue_Validate(t *testing.T) {
	t.Run("requires project id", func(t *testing.T) {
		i := Issue{Subject: "crash"}
		assert.True(t, IsValidation(i.Validate()))
	})
	t.Run("zero foreign keys fail", func(t *testing.T) {
		i := Issue{Subject: "crash", ProjectID: Int(1), Status: Int(0)}
		assert.True(t, IsValidation(i.Validate()))
	})
	t.Run("valid", func(t *testing.T) {
		i := Issue{Subject: "crash", ProjectID: Int(1), Severity: Int(3)}
		require.NoError(t, i.Validate())
	})
}

func TestIssue_Lifecycle(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	i := Issue{Subject: "crash", ProjectID: Int(1)}

	i.Block("waiting on upstream fix")
	assert.True(t, i.IsBlocked)
	assert.Equal(t, "waiting on upstream fix", i.BlockedNote)

	i.Unblock()
	assert.False(t, i.IsBlocked)
	assert.Empty(t, i.BlockedNote)

	i.Close(now)
	assert.True(t, i.IsClosed)
	require.NotNil(t, i.FinishedDate)
	assert.Equal(t, now, *i.FinishedDate)

	i.Reopen()
	assert.False(t, i.IsClosed)
	assert.Nil(t, i.FinishedDate)
}

func TestTask_Lifecycle(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	tk := Task{Subject: "write docs", ProjectID: Int(1), UserStoryID: Int(9)}
	require.NoError(t, tk.Validate())

	tk.MarkAsIocaine()
	assert.True(t, tk.IsIocaine)
	tk.UnmarkAsIocaine()
	assert.False(t, tk.IsIocaine)

	tk.Block("blocked by review")
	assert.True(t, tk.IsBlocked)
	tk.Unblock()
	assert.False(t, tk.IsBlocked)

	tk.Finish(now)
	assert.True(t, tk.IsClosed)
	require.NotNil(t, tk.FinishedDate)
	assert.Equal(t, now, *tk.FinishedDate)
	tk.Reopen()
	assert.False(t, tk.IsClosed)
	assert.Nil(t, tk.FinishedDate)
}

func TestUserStory_Assignment(t *testing.T) {
	u := UserStory{Subject: "checkout flow", ProjectID: Int(1)}
	require.NoError(t, u.Validate())

	assert.True(t, IsValidation(u.AssignTo(0)))
	assert.True(t, IsValidation(u.AssignTo(-3)))
	assert.Nil(t, u.AssignedToID)

	require.NoError(t, u.AssignTo(7))
	require.NotNil(t, u.AssignedToID)
	assert.Equal(t, 7, *u.AssignedToID)

	u.Unassign()
	assert.Nil(t, u.AssignedToID)
}

func TestUserStory_PointsKeptVerbatim(t *testing.T) {
	u := UserStory{
		Subject:   "story",
		ProjectID: Int(1),
		Points:    map[string]float64{"UX": 3, "Back": 5.5},
	}
	require.NoError(t, u.Validate())
	assert.Equal(t, map[string]float64{"UX": 3, "Back": 5.5}, u.Points)
}
