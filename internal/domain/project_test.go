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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject_Validate(t *testing.T) {
	t.Run("trims and normalises", func(t *testing.T) {
		p := Project{
			Name: "  Website Redesign  ",
			Tags: []string{"Web", " web ", "DESIGN", ""},
		}
		require.NoError(t, p.Validate())
		assert.Equal(t, "Website Redesign", p.Name)
		assert.Equal(t, []string{"design", "web"}, p.Tags)
	})
	t.Run("blank name fails", func(t *testing.T) {
		p := Project{Name: "   "}
		assert.True(t, IsValidation(p.Validate()))
	})
	t.Run("overlong name fails", func(t *testing.T) {
		p := Project{Name: strings.Repeat("x", 256)}
		assert.True(t, IsValidation(p.Validate()))
	})
	t.Run("bad slug fails", func(t *testing.T) {
		bad := ProjectSlug("Has_Upper")
		p := Project{Name: "ok", Slug: &bad}
		assert.True(t, IsValidation(p.Validate()))
	})
	t.Run("negative stats fail", func(t *testing.T) {
		p := Project{Name: "ok", TotalMilestones: Int(-1)}
		assert.True(t, IsValidation(p.Validate()))
		p = Project{Name: "ok", TotalStoryPoints: Float64(-0.5)}
		assert.True(t, IsValidation(p.Validate()))
	})
}

func TestProject_Modules(t *testing.T) {
	var p Project
	for _, m := range []string{ModuleBacklog, ModuleKanban, ModuleWiki, ModuleIssues} {
		require.NoError(t, p.ActivateModule(m), m)
	}
	assert.True(t, p.IsBacklogActivated)
	assert.True(t, p.IsKanbanActivated)
	assert.True(t, p.IsWikiActivated)
	assert.True(t, p.IsIssuesActivated)

	require.NoError(t, p.DeactivateModule(ModuleKanban))
	assert.False(t, p.IsKanbanActivated)

	err := p.ActivateModule("timeline")
	assert.True(t, IsValidation(err))
}
