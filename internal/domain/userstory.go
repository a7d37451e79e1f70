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

// UserStory is a backlog story.  Points maps a role name to its estimate;
// the mapping is carried as-is, no normalisation.
type UserStory struct {
	Entity

	Subject     string `json:"subject" validate:"required,max=500"`
	Description string `json:"description,omitempty"`

	ProjectID    *int `json:"project_id" validate:"required,gt=0"`
	Status       *int `json:"status,omitempty" validate:"omitnil,gt=0"`
	MilestoneID  *int `json:"milestone_id,omitempty" validate:"omitnil,gt=0"`
	AssignedToID *int `json:"assigned_to_id,omitempty" validate:"omitnil,gt=0"`

	Ref *int `json:"ref,omitempty"`

	IsClosed    bool   `json:"is_closed"`
	IsBlocked   bool   `json:"is_blocked"`
	BlockedNote string `json:"blocked_note"`

	ClientRequirement bool `json:"client_requirement"`
	TeamRequirement   bool `json:"team_requirement"`

	Points map[string]float64 `json:"points,omitempty"`

	Tags []string `json:"tags,omitempty"`

	CreatedDate  *time.Time `json:"created_date,omitempty"`
	ModifiedDate *time.Time `json:"modified_date,omitempty"`
	FinishedDate *time.Time `json:"finished_date,omitempty"`
}

func (u *UserStory) Validate() error {
	trimStrings(u)
	u.Tags = NormalizeTags(u.Tags)
	return checkStruct(u)
}

// Block marks the story blocked with the given reason.
func (u *UserStory) Block(reason string) {
	u.IsBlocked = true
	u.BlockedNote = reason
}

// Unblock clears the blocked flag and note.
func (u *UserStory) Unblock() {
	u.IsBlocked = false
	u.BlockedNote = ""
}

// AssignTo sets the assignee.  The id must be positive.
func (u *UserStory) AssignTo(userID int) error {
	if userID <= 0 {
		return invalid("assigned_to_id", "must be a positive id")
	}
	u.AssignedToID = &userID
	return nil
}

// Unassign clears the assignee.
func (u *UserStory) Unassign() { u.AssignedToID = nil }
