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

import "time"

// Epic groups user stories under a single long-running theme.
type Epic struct {
	Entity

	Subject     string `json:"subject" validate:"required,max=500"`
	Description string `json:"description,omitempty"`

	ProjectID    *int `json:"project_id" validate:"required,gt=0"`
	Status       *int `json:"status,omitempty" validate:"omitnil,gt=0"`
	AssignedToID *int `json:"assigned_to_id,omitempty" validate:"omitnil,gt=0"`

	Ref *int `json:"ref,omitempty"`

	// Color is the display colour in #rrggbb form; the remote API does not
	// require it.
	Color string `json:"color,omitempty" validate:"omitempty,hexcolor"`

	IsClosed    bool   `json:"is_closed"`
	IsBlocked   bool   `json:"is_blocked"`
	BlockedNote string `json:"blocked_note"`

	ClientRequirement bool `json:"client_requirement"`
	TeamRequirement   bool `json:"team_requirement"`

	Tags []string `json:"tags,omitempty"`

	CreatedDate  *time.Time `json:"created_date,omitempty"`
	ModifiedDate *time.Time `json:"modified_date,omitempty"`
}

func (e *Epic) Validate() error {
	trimStrings(e)
	e.Tags = NormalizeTags(e.Tags)
	return checkStruct(e)
}

// Block marks the epic blocked with the given reason.
func (e *Epic) Block(reason string) {
	e.IsBlocked = true
	e.BlockedNote = reason
}

// Unblock clears the blocked flag and note.
func (e *Epic) Unblock() {
	e.IsBlocked = false
	e.BlockedNote = ""
}
