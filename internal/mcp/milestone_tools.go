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

// In this file: milestone (sprint) tools.

import (
	"context"
	"errors"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"

	"taigamcp/internal/domain"
)

func (s *Server) milestoneTools() []mcpsrv.ServerTool {
	tools := crudTools[domain.Milestone, *domain.Milestone](s, s.repos.Milestones, entitySpec{
		singular:      "milestone",
		plural:        "milestones",
		projectFilter: true,
		dataDesc: "Milestone fields: name (required), project_id (required), " +
			"estimated_start and estimated_finish (YYYY-MM-DD, finish must not precede start), " +
			"disponibility (team availability, 0-1), order.",
	})
	return append(tools,
		s.toolGetCurrentMilestone(),
		s.toolCloseMilestone(),
		s.toolReopenMilestone(),
		s.toolSetMilestoneDates(),
	)
}

func (s *Server) toolReopenMilestone() mcpsrv.ServerTool {
	tool := mcplib.NewTool("reopen_milestone",
		mcplib.WithDescription("Reopen a closed milestone."),
		mcplib.WithNumber("id",
			mcplib.Description("The milestone id"),
			mcplib.Required(),
		),
	)
	h := func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return mutateResult(ctx, "reopen_milestone", s.repos.Milestones, intArg(req, "id", 0), func(m *domain.Milestone) error {
			m.Reopen()
			return nil
		})
	}
	return mcpsrv.ServerTool{Tool: tool, Handler: h}
}

func (s *Server) toolGetCurrentMilestone() mcpsrv.ServerTool {
	tool := mcplib.NewTool("get_current_milestone",
		mcplib.WithDescription("Get a project's active sprint: the open milestone with the earliest estimated start date."),
		mcplib.WithNumber("project_id",
			mcplib.Description("The project id"),
			mcplib.Required(),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	h := func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		const name = "get_current_milestone"
		pid := intArg(req, "project_id", 0)
		if pid <= 0 {
			return resultErr(errors.New(name + ": project_id is required")), nil
		}
		m, err := s.repos.Milestones.Current(ctx, pid)
		if err != nil {
			s.logger.WarnContext(ctx, "mcp: lookup degraded to not found", "tool", name, "error", err)
			return resultText("No current milestone."), nil
		}
		if m == nil {
			return resultText(fmt.Sprintf("Project %d has no open milestones.", pid)), nil
		}
		result, err := resultJSON(m)
		if err != nil {
			return resultErr(fmt.Errorf("%s: serialise: %w", name, err)), nil
		}
		return result, nil
	}
	return mcpsrv.ServerTool{Tool: tool, Handler: h}
}

func (s *Server) toolCloseMilestone() mcpsrv.ServerTool {
	tool := mcplib.NewTool("close_milestone",
		mcplib.WithDescription("Close a milestone (end the sprint)."),
		mcplib.WithNumber("id",
			mcplib.Description("The milestone id"),
			mcplib.Required(),
		),
	)
	h := func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return mutateResult(ctx, "close_milestone", s.repos.Milestones, intArg(req, "id", 0), func(m *domain.Milestone) error {
			m.Close()
			return nil
		})
	}
	return mcpsrv.ServerTool{Tool: tool, Handler: h}
}

func (s *Server) toolSetMilestoneDates() mcpsrv.ServerTool {
	tool := mcplib.NewTool("set_milestone_dates",
		mcplib.WithDescription("Set a milestone's estimated start and finish dates. The finish date must not precede the start date."),
		mcplib.WithNumber("id",
			mcplib.Description("The milestone id"),
			mcplib.Required(),
		),
		mcplib.WithString("start",
			mcplib.Description("Estimated start date, YYYY-MM-DD"),
			mcplib.Required(),
		),
		mcplib.WithString("finish",
			mcplib.Description("Estimated finish date, YYYY-MM-DD"),
			mcplib.Required(),
		),
	)
	h := func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		const name = "set_milestone_dates"
		rawStart, _ := stringArg(req, "start")
		rawFinish, _ := stringArg(req, "finish")
		start, err := domain.ParseDate(rawStart)
		if err != nil {
			return resultErr(fmt.Errorf("%s: start: %w", name, err)), nil
		}
		finish, err := domain.ParseDate(rawFinish)
		if err != nil {
			return resultErr(fmt.Errorf("%s: finish: %w", name, err)), nil
		}
		return mutateResult(ctx, name, s.repos.Milestones, intArg(req, "id", 0), func(m *domain.Milestone) error {
			return m.SetDates(start, finish)
		})
	}
	return mcpsrv.ServerTool{Tool: tool, Handler: h}
}
