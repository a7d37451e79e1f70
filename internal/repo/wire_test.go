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

package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taigamcp/internal/domain"
)

func TestRenamesApply(t *testing.T) {
	ren := renames{"project": "project_id"}
	t.Run("renames when target absent", func(t *testing.T) {
		got := ren.apply(domain.Record{"project": 5, "subject": "x"})
		assert.Equal(t, domain.Record{"project_id": 5, "subject": "x"}, got)
	})
	t.Run("keeps target when both present", func(t *testing.T) {
		got := ren.apply(domain.Record{"project": 5, "project_id": 9})
		assert.Equal(t, domain.Record{"project": 5, "project_id": 9}, got)
	})
	t.Run("already-internal record passes through", func(t *testing.T) {
		got := ren.apply(domain.Record{"project_id": 5})
		assert.Equal(t, domain.Record{"project_id": 5}, got)
	})
	t.Run("input is not mutated", func(t *testing.T) {
		in := domain.Record{"project": 5}
		_ = ren.apply(in)
		assert.Equal(t, domain.Record{"project": 5}, in)
	})
}

func TestRenamesInverse(t *testing.T) {
	ren := renames{"project": "project_id", "user": "user_id"}
	assert.Equal(t, renames{"project_id": "project", "user_id": "user"}, ren.inverse())
}

func TestIssueMappingRoundTrip(t *testing.T) {
	wire := domain.Record{
		"id":          float64(42),
		"version":     float64(3),
		"subject":     "crash on startup",
		"project":     float64(5),
		"assigned_to": float64(7),
		"milestone":   float64(3),
	}
	e, err := issueToEntity(wire)
	require.NoError(t, err)
	require.NotNil(t, e.ProjectID)
	assert.Equal(t, 5, *e.ProjectID)
	require.NotNil(t, e.AssignedToID)
	assert.Equal(t, 7, *e.AssignedToID)
	require.NotNil(t, e.MilestoneID)
	assert.Equal(t, 3, *e.MilestoneID)

	back, err := issueToWire(e, true)
	require.NoError(t, err)
	assert.Equal(t, wire["project"], back["project"])
	assert.Equal(t, wire["assigned_to"], back["assigned_to"])
	assert.Equal(t, wire["milestone"], back["milestone"])
	assert.NotContains(t, back, "project_id")
	assert.NotContains(t, back, "assigned_to_id")
	assert.NotContains(t, back, "milestone_id")

	again, err := issueToEntity(back)
	require.NoError(t, err)
	assert.Equal(t, e, again)
}

func TestIssueMappingExcludeUnset(t *testing.T) {
	e := &domain.Issue{Subject: "crash", ProjectID: domain.Int(5)}
	rec, err := issueToWire(e, true)
	require.NoError(t, err)
	assert.NotContains(t, rec, "milestone")
	assert.NotContains(t, rec, "assigned_to")

	rec, err = issueToWire(e, false)
	require.NoError(t, err)
	require.Contains(t, rec, "milestone")
	assert.Nil(t, rec["milestone"])
	require.Contains(t, rec, "assigned_to")
	assert.Nil(t, rec["assigned_to"])
}

func TestTaskMapping(t *testing.T) {
	e, err := taskToEntity(domain.Record{
		"subject":    "write docs",
		"project":    float64(5),
		"user_story": float64(11),
	})
	require.NoError(t, err)
	require.NotNil(t, e.UserStoryID)
	assert.Equal(t, 11, *e.UserStoryID)

	back, err := taskToWire(e, true)
	require.NoError(t, err)
	assert.Equal(t, float64(11), back["user_story"])
	assert.NotContains(t, back, "user_story_id")
}

func TestMemberMapping(t *testing.T) {
	base := domain.Record{
		"project":  float64(5),
		"user":     float64(7),
		"role":     float64(2),
		"username": "alice",
	}
	withEmail := func(v any) domain.Record {
		rec := make(domain.Record, len(base)+1)
		for k, val := range base {
			rec[k] = val
		}
		rec["email"] = v
		return rec
	}
	t.Run("string email", func(t *testing.T) {
		m, err := memberToEntity(withEmail("USER@Example.com"))
		require.NoError(t, err)
		require.NotNil(t, m.Email)
		assert.Equal(t, domain.Email("user@example.com"), *m.Email)
	})
	t.Run("null email", func(t *testing.T) {
		m, err := memberToEntity(withEmail(nil))
		require.NoError(t, err)
		assert.Nil(t, m.Email)
	})
	t.Run("non-string email is dropped", func(t *testing.T) {
		m, err := memberToEntity(withEmail(42))
		require.NoError(t, err)
		assert.Nil(t, m.Email)
	})
	t.Run("malformed email fails", func(t *testing.T) {
		_, err := memberToEntity(withEmail("not-an-address"))
		assert.True(t, domain.IsValidation(err))
	})
	t.Run("outbound flattens to plain string", func(t *testing.T) {
		m, err := memberToEntity(withEmail("user@example.com"))
		require.NoError(t, err)
		rec, err := memberToWire(m, true)
		require.NoError(t, err)
		assert.Equal(t, "user@example.com", rec["email"])
		assert.Equal(t, float64(5), rec["project"])
		assert.Equal(t, float64(7), rec["user"])
		assert.Equal(t, float64(2), rec["role"])
	})
}

func TestMilestoneMappingDates(t *testing.T) {
	e, err := milestoneToEntity(domain.Record{
		"name":             "sprint 1",
		"project":          float64(5),
		"estimated_start":  "2025-01-01",
		"estimated_finish": "2025-01-15",
	})
	require.NoError(t, err)
	rec, err := milestoneToWire(e, true)
	require.NoError(t, err)
	assert.Equal(t, "2025-01-01", rec["estimated_start"])
	assert.Equal(t, "2025-01-15", rec["estimated_finish"])
	assert.Equal(t, float64(5), rec["project"])
}

func TestWikiPageMapping(t *testing.T) {
	e, err := wikiPageToEntity(domain.Record{
		"slug":    "Home",
		"project": float64(5),
		"owner":   float64(7),
		"content": "welcome",
	})
	require.NoError(t, err)
	assert.Equal(t, "home", e.Slug)
	require.NotNil(t, e.OwnerID)
	assert.Equal(t, 7, *e.OwnerID)

	back, err := wikiPageToWire(e, true)
	require.NoError(t, err)
	assert.Equal(t, float64(7), back["owner"])
	assert.NotContains(t, back, "owner_id")
}
