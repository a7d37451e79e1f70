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

func TestWikiPage_Validate(t *testing.T) {
	t.Run("slug is trimmed and lower-cased", func(t *testing.T) {
		w := WikiPage{Slug: "  Home-Page  ", ProjectID: Int(1)}
		require.NoError(t, w.Validate())
		assert.Equal(t, "home-page", w.Slug)
	})
	t.Run("whitespace-only slug fails", func(t *testing.T) {
		w := WikiPage{Slug: "   ", ProjectID: Int(1)}
		assert.True(t, IsValidation(w.Validate()))
	})
}

func TestWikiPage_UpdateContent(t *testing.T) {
	now := time.Date(2026, 5, 2, 9, 30, 0, 0, time.UTC)
	w := WikiPage{Slug: "home", ProjectID: Int(1), Content: "old"}
	w.UpdateContent("# New", now)
	assert.Equal(t, "# New", w.Content)
	require.NotNil(t, w.ModifiedDate)
	assert.Equal(t, now, *w.ModifiedDate)
}

func TestWikiPage_SoftDelete(t *testing.T) {
	var w WikiPage
	w.Delete()
	assert.True(t, w.IsDeleted)
	w.Restore()
	assert.False(t, w.IsDeleted)
}
