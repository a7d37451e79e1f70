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

// Issue is a Taiga issue: a bug or request tracked against a project, with
// status, type, severity and priority pointing at project-configured values.
type Issue struct {
	Entity

	Subject     string `json:"subject" validate:"required,max=500"`
	Description string `json:"description,omitempty"`

	ProjectID    *int `json:"project_id" validate:"required,gt=0"`
	Status       *int `json:"status,omitempty" validate:"omitnil,gt=0"`
	Type         *int `json:"type,omitempty" validate:"omitnil,gt=0"`
	Severity     *int `json:"severity,omitempty" validate:"omitnil,gt=0"`
	Priority     *int `json:"priority,omitempty" validate:"omitnil,gt=0"`
	MilestoneID  *int `json:"milestone_id,omitempty" validate:"omitnil,gt=0"`
	AssignedToID *int `json:"assigned_to_id,omitempty" validate:"omitnil,gt=0"`

	// Ref is the per-project sequential reference number, assigned remotely.
	Ref *int `json:"ref,omitempty"`

	IsClosed    bool   `json:"is_closed"`
	IsBlocked   bool   `json:"is_blocked"`
	BlockedNote string `json:"blocked_note"`

	Tags []string `json:"tags,omitempty"`

	CreatedDate  *time.Time `json:"created_date,omitempty"`
	ModifiedDate *time.Time `json:"modified_date,omitempty"`
	FinishedDate *time.Time `json:"finished_date,omitempty"`
}

func (i *Issue) Validate() error {
	trimStrings(i)
	i.Tags = NormalizeTags(i.Tags)
	return checkStruct(i)
}

// Block marks the issue blocked with the given reason.
func (i *Issue) Block(reason string) {
	i.IsBlocked = true
	i.BlockedNote = reason
}

// Unblock clears the blocked flag and note.
func (i *Issue) Unblock() {
	i.IsBlocked = false
	i.BlockedNote = ""
}

// Close marks the issue closed and stamps the finish time.
func (i *Issue) Close(at time.Time) {
	i.IsClosed = true
	i.FinishedDate = &at
}

// Reopen clears the closed state and the finish time.
func (i *Issue) Reopen() {
	i.IsClosed = false
	i.FinishedDate = nil
}
