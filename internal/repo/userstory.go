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

var userStoryRenames = renames{
	"project":     "project_id",
	"assigned_to": "assigned_to_id",
	"milestone":   "milestone_id",
}

var (
	userStoryToEntity = mkToEntity[domain.UserStory, *domain.UserStory](userStoryRenames)
	userStoryToWire   = mkToWire[domain.UserStory, *domain.UserStory](userStoryRenames)
)

// UserStories accesses the userstories resource.
type UserStories struct {
	rest[domain.UserStory]
}

func newUserStories(cl Doer) *UserStories {
	return &UserStories{rest: rest[domain.UserStory]{
		cl:       cl,
		path:     "userstories",
		toEntity: userStoryToEntity,
		toWire:   userStoryToWire,
	}}
}

// GetByRef fetches a story by its per-project reference number.
func (u *UserStories) GetByRef(ctx context.Context, projectID, ref int) (*domain.UserStory, error) {
	return u.getOne(ctx, "userstories/by_ref", refParams(projectID, ref))
}

// BulkCreate creates one story per subject in a single batched call.
func (u *UserStories) BulkCreate(ctx context.Context, projectID int, subjects []string) ([]*domain.UserStory, error) {
	resp, err := u.cl.Post(ctx, "userstories/bulk_create", domain.Record{
		"project_id":   projectID,
		"bulk_stories": strings.Join(subjects, "\n"),
	})
	if err != nil {
		return nil, err
	}
	return u.decodeList(resp)
}

// MoveToMilestone reassigns the story to a milestone.  A zero milestoneID
// detaches it from any sprint.
func (u *UserStories) MoveToMilestone(ctx context.Context, id, milestoneID int) (*domain.UserStory, error) {
	return u.patchMilestone(ctx, id, milestoneID)
}
