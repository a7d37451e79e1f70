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

package mcp

// In this file: project tools.

import (
	"context"
	"errors"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"

	"taigamcp/internal/domain"
)

func (s *Server) projectTools() []mcpsrv.ServerTool {
	tools := crudTools[domain.Project, *domain.Project](s, s.repos.Projects, entitySpec{
		singular: "project",
		plural:   "projects",
		dataDesc: "Project fields: name (required), description, slug, is_private, " +
			"is_backlog_activated, is_kanban_activated, is_wiki_activated, is_issues_activated, tags.",
	})
	return append(tools,
		s.toolGetProjectBySlug(),
		s.toolSetProjectModule(),
	)
}

func (s *Server) toolGetProjectBySlug() mcpsrv.ServerTool {
	tool := mcplib.NewTool("get_project_by_slug",
		mcplib.WithDescription("Get a project by its URL slug (the lowercase hyphenated name from the project URL, e.g. \"sprint-2024\")."),
		mcplib.WithString("slug",
			mcplib.Description("The project slug"),
			mcplib.Required(),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleGetProjectBySlug}
}

func (s *Server) handleGetProjectBySlug(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	raw, ok := stringArg(req, "slug")
	if !ok || raw == "" {
		return resultErr(errors.New("get_project_by_slug: slug is required")), nil
	}
	slug, err := domain.NewProjectSlug(raw)
	if err != nil {
		return resultErr(fmt.Errorf("get_project_by_slug: %w", err)), nil
	}
	p, err := s.repos.Projects.GetBySlug(ctx, slug)
	return s.refResult(ctx, "get_project_by_slug", p, err)
}

func (s *Server) toolSetProjectModule() mcpsrv.ServerTool {
	tool := mcplib.NewTool("set_project_module",
		mcplib.WithDescription(`Activate or deactivate one of a project's modules.

Known modules: backlog, kanban, wiki, issues.`),
		mcplib.WithNumber("id",
			mcplib.Description("The project id"),
			mcplib.Required(),
		),
		mcplib.WithString("module",
			mcplib.Description("The module name: backlog, kanban, wiki or issues"),
			mcplib.Required(),
		),
		mcplib.WithBoolean("active",
			mcplib.Description("true to activate the module, false to deactivate (default true)"),
		),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleSetProjectModule}
}

func (s *Server) handleSetProjectModule(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	const name = "set_project_module"
	module, ok := stringArg(req, "module")
	if !ok || module == "" {
		return resultErr(errors.New(name + ": module is required")), nil
	}
	active := boolArg(req, "active", true)
	return mutateResult(ctx, name, s.repos.Projects, intArg(req, "id", 0), func(p *domain.Project) error {
		if active {
			return p.ActivateModule(module)
		}
		return p.DeactivateModule(module)
	})
}
