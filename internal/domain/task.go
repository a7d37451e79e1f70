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

// Task is a unit of work, optionally attached to a user story.  IsIocaine
// is Taiga's high-risk marker.
type Task struct {
	Entity

	Subject     string `json:"subject" validate:"required,max=500"`
	Description string `json:"description,omitempty"`

	ProjectID    *int `json:"project_id" validate:"required,gt=0"`
	Status       *int `json:"status,omitempty" validate:"omitnil,gt=0"`
	MilestoneID  *int `json:"milestone_id,omitempty" validate:"omitnil,gt=0"`
	AssignedToID *int `json:"assigned_to_id,omitempty" validate:"omitnil,gt=0"`
	UserStoryID  *int `json:"user_story_id,omitempty" validate:"omitnil,gt=0"`

	Ref *int `json:"ref,omitempty"`

	IsClosed    bool   `json:"is_closed"`
	IsBlocked   bool   `json:"is_blocked"`
	BlockedNote string `json:"blocked_note"`
	IsIocaine   bool   `json:"is_iocaine"`

	Tags []string `json:"tags,omitempty"`

	CreatedDate  *time.Time `json:"created_date,omitempty"`
	ModifiedDate *time.Time `json:"modified_date,omitempty"`
	FinishedDate *time.Time `json:"finished_date,omitempty"`
}

func (t *Task) Validate() error {
	trimStrings(t)
	t.Tags = NormalizeTags(t.Tags)
	return checkStruct(t)
}

// Block marks the task blocked with the given reason.
func (t *Task) Block(reason string) {
	t.IsBlocked = true
	t.BlockedNote = reason
}

// Unblock clears the blocked flag and note.
func (t *Task) Unblock() {
	t.IsBlocked = false
	t.BlockedNote = ""
}

// MarkAsIocaine flags the task as high risk.
func (t *Task) MarkAsIocaine() { t.IsIocaine = true }

// UnmarkAsIocaine clears the high-risk flag.
func (t *Task) UnmarkAsIocaine() { t.IsIocaine = false }

// Finish marks the task closed and stamps the finish time.
func (t *Task) Finish(at time.Time) {
	t.IsClosed = true
	t.FinishedDate = &at
}

// Reopen clears the closed state and the finish time.
func (t *Task) Reopen() {
	t.IsClosed = false
	t.FinishedDate = nil
}
