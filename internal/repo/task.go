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
	"context"
	"strings"

	"taigamcp/internal/domain"
)

var taskRenames = renames{
	"project":     "project_id",
	"assigned_to": "assigned_to_id",
	"milestone":   "milestone_id",
	"user_story":  "user_story_id",
}

var (
	taskToEntity = mkToEntity[domain.Task, *domain.Task](taskRenames)
	taskToWire   = mkToWire[domain.Task, *domain.Task](taskRenames)
)

// Tasks accesses the tasks resource.
type Tasks struct {
	rest[domain.Task]
}

func newTasks(cl Doer) *Tasks {
	return &Tasks{rest: rest[domain.Task]{
		cl:       cl,
		path:     "tasks",
		toEntity: taskToEntity,
		toWire:   taskToWire,
	}}
}

// GetByRef fetches a task by its per-project reference number.
func (t *Tasks) GetByRef(ctx context.Context, projectID, ref int) (*domain.Task, error) {
	return t.getOne(ctx, "tasks/by_ref", refParams(projectID, ref))
}

// BulkCreate creates one task per subject in a single batched call.  A
// positive userStoryID attaches the new tasks to that story.
func (t *Tasks) BulkCreate(ctx context.Context, projectID, userStoryID int, subjects []string) ([]*domain.Task, error) {
	data := domain.Record{
		"project_id": projectID,
		"bulk_tasks": strings.Join(subjects, "\n"),
	}
	if userStoryID > 0 {
		data["us_id"] = userStoryID
	}
	resp, err := t.cl.Post(ctx, "tasks/bulk_create", data)
	if err != nil {
		return nil, err
	}
	return t.decodeList(resp)
}

// MoveToMilestone reassigns the task to a milestone.  A zero milestoneID
// detaches it.
func (t *Tasks) MoveToMilestone(ctx context.Context, id, milestoneID int) (*domain.Task, error) {
	return t.patchMilestone(ctx, id, milestoneID)
}

// patchMilestone patches just the milestone link field.
func (r *rest[T]) patchMilestone(ctx context.Context, id, milestoneID int) (*T, error) {
	var v any
	if milestoneID > 0 {
		v = milestoneID
	}
	resp, err := r.cl.Patch(ctx, r.idPath(id), domain.Record{"milestone": v})
	if err != nil {
		return nil, classify(err)
	}
	return r.decodeOne(resp)
}
