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

var epicRenames = renames{
	"project":     "project_id",
	"assigned_to": "assigned_to_id",
}

var (
	epicToEntity = mkToEntity[domain.Epic, *domain.Epic](epicRenames)
	epicToWire   = mkToWire[domain.Epic, *domain.Epic](epicRenames)
)

// Epics accesses the epics resource.
type Epics struct {
	rest[domain.Epic]
}

func newEpics(cl Doer) *Epics {
	return &Epics{rest: rest[domain.Epic]{
		cl:       cl,
		path:     "epics",
		toEntity: epicToEntity,
		toWire:   epicToWire,
	}}
}

// GetByRef fetches an epic by its per-project reference number.
func (e *Epics) GetByRef(ctx context.Context, projectID, ref int) (*domain.Epic, error) {
	return e.getOne(ctx, "epics/by_ref", refParams(projectID, ref))
}
