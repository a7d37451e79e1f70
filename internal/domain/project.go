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

import (
	"fmt"
	"time"
)

// Module names accepted by ActivateModule and DeactivateModule.
const (
	ModuleBacklog = "backlog"
	ModuleKanban  = "kanban"
	ModuleWiki    = "wiki"
	ModuleIssues  = "issues"
)

// Project is a Taiga project with its module-activation flags and aggregate
// stats.
type Project struct {
	Entity

	Name        string       `json:"name" validate:"required,max=255"`
	Slug        *ProjectSlug `json:"slug,omitempty"`
	Description string       `json:"description,omitempty"`

	IsPrivate          bool `json:"is_private"`
	IsBacklogActivated bool `json:"is_backlog_activated"`
	IsKanbanActivated  bool `json:"is_kanban_activated"`
	IsWikiActivated    bool `json:"is_wiki_activated"`
	IsIssuesActivated  bool `json:"is_issues_activated"`

	Owner *int `json:"owner,omitempty" validate:"omitnil,gt=0"`

	TotalStoryPoints *float64 `json:"total_story_points,omitempty" validate:"omitnil,gte=0"`
	TotalMilestones  *int     `json:"total_milestones,omitempty" validate:"omitnil,gte=0"`

	Tags []string `json:"tags,omitempty"`

	CreatedDate  *time.Time `json:"created_date,omitempty"`
	ModifiedDate *time.Time `json:"modified_date,omitempty"`
}

// Validate trims string fields, normalises the tag set and slug, and checks
// the field constraints.
func (p *Project) Validate() error {
	trimStrings(p)
	p.Tags = NormalizeTags(p.Tags)
	if p.Slug != nil {
		s, err := NewProjectSlug(string(*p.Slug))
		if err != nil {
			return err
		}
		*p.Slug = s
	}
	return checkStruct(p)
}

// ActivateModule switches one of the backlog, kanban, wiki or issues
// modules on.
func (p *Project) ActivateModule(name string) error { return p.setModule(name, true) }

// DeactivateModule switches one of the backlog, kanban, wiki or issues
// modules off.
func (p *Project) DeactivateModule(name string) error { return p.setModule(name, false) }

func (p *Project) setModule(name string, on bool) error {
	switch name {
	case ModuleBacklog:
		p.IsBacklogActivated = on
	case ModuleKanban:
		p.IsKanbanActivated = on
	case ModuleWiki:
		p.IsWikiActivated = on
	case ModuleIssues:
		p.IsIssuesActivated = on
	default:
		return invalid("module", fmt.Sprintf("unknown module %q", name))
	}
	return nil
}
