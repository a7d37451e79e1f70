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
	"errors"
	"net/url"
	"strconv"

	"taigamcp/internal/domain"
)

var wikiPageRenames = renames{
	"project": "project_id",
	"owner":   "owner_id",
}

var (
	wikiPageToEntity = mkToEntity[domain.WikiPage, *domain.WikiPage](wikiPageRenames)
	wikiPageToWire   = mkToWire[domain.WikiPage, *domain.WikiPage](wikiPageRenames)
)

// WikiPages accesses the wiki resource.
type WikiPages struct {
	rest[domain.WikiPage]
}

func newWikiPages(cl Doer) *WikiPages {
	return &WikiPages{rest: rest[domain.WikiPage]{
		cl:       cl,
		path:     "wiki",
		toEntity: wikiPageToEntity,
		toWire:   wikiPageToWire,
	}}
}

// GetBySlug fetches a wiki page by project and slug.
func (w *WikiPages) GetBySlug(ctx context.Context, projectID int, slug string) (*domain.WikiPage, error) {
	return w.getOne(ctx, "wiki/by_slug", url.Values{
		"project": {strconv.Itoa(projectID)},
		"slug":    {slug},
	})
}

// GetOrCreate fetches the page with the given slug, creating it with
// content when it does not exist yet.
func (w *WikiPages) GetOrCreate(ctx context.Context, projectID int, slug, content string) (*domain.WikiPage, error) {
	pg, err := w.GetBySlug(ctx, projectID, slug)
	if err == nil {
		return pg, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	return w.Create(ctx, &domain.WikiPage{
		ProjectID: domain.Int(projectID),
		Slug:      slug,
		Content:   content,
	})
}
