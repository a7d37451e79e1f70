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
	"net/url"

	"taigamcp/internal/domain"
)

// Project field names match the wire format as-is.
var projectRenames = renames{}

var (
	projectToEntity = mkToEntity[domain.Project, *domain.Project](projectRenames)
	projectToWire   = mkToWire[domain.Project, *domain.Project](projectRenames)
)

// Projects accesses the projects resource.
type Projects struct {
	rest[domain.Project]
}

func newProjects(cl Doer) *Projects {
	return &Projects{rest: rest[domain.Project]{
		cl:       cl,
		path:     "projects",
		toEntity: projectToEntity,
		toWire:   projectToWire,
	}}
}

// GetBySlug fetches a project by its URL slug.
func (p *Projects) GetBySlug(ctx context.Context, slug domain.ProjectSlug) (*domain.Project, error) {
	return p.getOne(ctx, "projects/by_slug", url.Values{"slug": {slug.String()}})
}
