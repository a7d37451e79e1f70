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
	"time"
)

// WikiPage is a markdown page attached to a project.  Deletion is a soft
// flag; the record stays addressable by slug.
type WikiPage struct {
	Entity

	// Slug is stored trimmed and lower-cased.
	Slug    string `json:"slug" validate:"required,max=255"`
	Content string `json:"content,omitempty"`

	ProjectID *int `json:"project_id" validate:"required,gt=0"`
	OwnerID   *int `json:"owner_id,omitempty" validate:"omitnil,gt=0"`

	IsDeleted bool `json:"is_deleted"`

	CreatedDate  *time.Time `json:"created_date,omitempty"`
	ModifiedDate *time.Time `json:"modified_date,omitempty"`
}

func (w *WikiPage) Validate() error {
	trimStrings(w)
	w.Slug = strings.ToLower(w.Slug)
	return checkStruct(w)
}

// UpdateContent replaces the page body and stamps the modification time.
func (w *WikiPage) UpdateContent(text string, at time.Time) {
	w.Content = text
	w.ModifiedDate = &at
}

// Delete marks the page deleted.
func (w *WikiPage) Delete() { w.IsDeleted = true }

// Restore clears the deleted flag.
func (w *WikiPage) Restore() { w.IsDeleted = false }
