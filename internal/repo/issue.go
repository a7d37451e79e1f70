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
	"strconv"
	"strings"

	"taigamcp/internal/domain"
)

var issueRenames = renames{
	"project":     "project_id",
	"assigned_to": "assigned_to_id",
	"milestone":   "milestone_id",
}

var (
	issueToEntity = mkToEntity[domain.Issue, *domain.Issue](issueRenames)
	issueToWire   = mkToWire[domain.Issue, *domain.Issue](issueRenames)
)

// Issues accesses the issues resource.
type Issues struct {
	rest[domain.Issue]
}

func newIssues(cl Doer) *Issues {
	return &Issues{rest: rest[domain.Issue]{
		cl:       cl,
		path:     "issues",
		toEntity: issueToEntity,
		toWire:   issueToWire,
	}}
}

// GetByRef fetches an issue by its per-project reference number.
func (i *Issues) GetByRef(ctx context.Context, projectID, ref int) (*domain.Issue, error) {
	return i.getOne(ctx, "issues/by_ref", refParams(projectID, ref))
}

// BulkCreate creates one issue per subject in a single batched call.  The
// batch is not transactional: partial failures are whatever the server
// returns.
func (i *Issues) BulkCreate(ctx context.Context, projectID int, subjects []string) ([]*domain.Issue, error) {
	resp, err := i.cl.Post(ctx, "issues/bulk_create", domain.Record{
		"project_id":  projectID,
		"bulk_issues": strings.Join(subjects, "\n"),
	})
	if err != nil {
		return nil, err
	}
	return i.decodeList(resp)
}

// GetFilters fetches the server-side filter data (statuses, types,
// severities, priorities, assignable users) for a project's issues.
func (i *Issues) GetFilters(ctx context.Context, projectID int) (domain.Record, error) {
	resp, err := i.cl.Get(ctx, "issues/filters_data", url.Values{"project": {strconv.Itoa(projectID)}})
	if err != nil {
		return nil, err
	}
	rec, ok := resp.(map[string]any)
	if !ok {
		return nil, nil
	}
	return rec, nil
}

// refParams builds the query for a by_ref lookup.
func refParams(projectID, ref int) url.Values {
	return url.Values{
		"project": {strconv.Itoa(projectID)},
		"ref":     {strconv.Itoa(ref)},
	}
}
