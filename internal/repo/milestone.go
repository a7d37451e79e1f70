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

	"taigamcp/internal/domain"
)

var milestoneRenames = renames{
	"project": "project_id",
}

var (
	milestoneToEntity = mkToEntity[domain.Milestone, *domain.Milestone](milestoneRenames)
	milestoneToWire   = mkToWire[domain.Milestone, *domain.Milestone](milestoneRenames)
)

// Milestones accesses the milestones (sprints) resource.
type Milestones struct {
	rest[domain.Milestone]
}

func newMilestones(cl Doer) *Milestones {
	return &Milestones{rest: rest[domain.Milestone]{
		cl:       cl,
		path:     "milestones",
		toEntity: milestoneToEntity,
		toWire:   milestoneToWire,
	}}
}

// Current returns the project's active sprint: the open milestone with the
// earliest estimated start.  Nil when the project has no open milestones.
func (m *Milestones) Current(ctx context.Context, projectID int) (*domain.Milestone, error) {
	ms, err := m.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return domain.CurrentMilestone(ms), nil
}
