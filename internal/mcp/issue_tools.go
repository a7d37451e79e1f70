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

// In this file: issue tools.

import (
	"context"
	"errors"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"

	"taigamcp/internal/domain"
)

func (s *Server) issueTools() []mcpsrv.ServerTool {
	tools := crudTools[domain.Issue, *domain.Issue](s, s.repos.Issues, entitySpec{
		singular:      "issue",
		plural:        "issues",
		projectFilter: true,
		dataDesc: "Issue fields: subject (required), project_id (required), description, " +
			"status, type, severity, priority, milestone_id, assigned_to_id, tags.",
	})
	return append(tools,
		s.toolGetIssueByRef(),
		s.toolBulkCreateIssues(),
		s.toolCloseIssue(),
		s.toolReopenIssue(),
		s.toolBlockIssue(),
		s.toolUnblockIssue(),
		s.toolGetIssueFilters(),
	)
}

func (s *Server) toolGetIssueByRef() mcpsrv.ServerTool {
	tool := mcplib.NewTool("get_issue_by_ref",
		mcplib.WithDescription("Get an issue by its per-project reference number (the #NN from the Taiga UI)."),
		mcplib.WithNumber("project_id",
			mcplib.Description("The project id"),
			mcplib.Required(),
		),
		mcplib.WithNumber("ref",
			mcplib.Description("The issue reference number"),
			mcplib.Required(),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	h := func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		pid, ref := intArg(req, "project_id", 0), intArg(req, "ref", 0)
		if pid <= 0 || ref <= 0 {
			return resultErr(errors.New("get_issue_by_ref: project_id and ref are required")), nil
		}
		e, err := s.repos.Issues.GetByRef(ctx, pid, ref)
		return s.refResult(ctx, "get_issue_by_ref", e, err)
	}
	return mcpsrv.ServerTool{Tool: tool, Handler: h}
}

func (s *Server) toolBulkCreateIssues() mcpsrv.ServerTool {
	tool := mcplib.NewTool("bulk_create_issues",
		mcplib.WithDescription(`Create several issues at once from a list of subjects.

The batch is sent as a single call but is not transactional: on partial
failure the server keeps whatever it managed to create.`),
		mcplib.WithNumber("project_id",
			mcplib.Description("The project to create the issues in"),
			mcplib.Required(),
		),
		mcplib.WithArray("subjects",
			mcplib.Description("One subject line per issue to create"),
			mcplib.Required(),
			mcplib.WithStringItems(),
		),
	)
	h := func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		const name = "bulk_create_issues"
		pid := intArg(req, "project_id", 0)
		subjects, ok := stringsArg(req, "subjects")
		if pid <= 0 || !ok || len(subjects) == 0 {
			return resultErr(errors.New(name + ": project_id and a non-empty subjects list are required")), nil
		}
		created, err := s.repos.Issues.BulkCreate(ctx, pid, subjects)
		if err != nil {
			return resultErr(fmt.Errorf("%s: %w", name, err)), nil
		}
		s.logger.InfoContext(ctx, "mcp: bulk created issues", "project_id", pid, "count", len(created))
		result, err := resultJSON(created)
		if err != nil {
			return resultErr(fmt.Errorf("%s: serialise: %w", name, err)), nil
		}
		return result, nil
	}
	return mcpsrv.ServerTool{Tool: tool, Handler: h}
}

func (s *Server) toolCloseIssue() mcpsrv.ServerTool {
	tool := mcplib.NewTool("close_issue",
		mcplib.WithDescription("Close an issue, stamping the finish time."),
		mcplib.WithNumber("id",
			mcplib.Description("The issue id"),
			mcplib.Required(),
		),
	)
	h := func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return mutateResult(ctx, "close_issue", s.repos.Issues, intArg(req, "id", 0), func(e *domain.Issue) error {
			e.Close(s.now())
			return nil
		})
	}
	return mcpsrv.ServerTool{Tool: tool, Handler: h}
}

func (s *Server) toolReopenIssue() mcpsrv.ServerTool {
	tool := mcplib.NewTool("reopen_issue",
		mcplib.WithDescription("Reopen a closed issue."),
		mcplib.WithNumber("id",
			mcplib.Description("The issue id"),
			mcplib.Required(),
		),
	)
	h := func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return mutateResult(ctx, "reopen_issue", s.repos.Issues, intArg(req, "id", 0), func(e *domain.Issue) error {
			e.Reopen()
			return nil
		})
	}
	return mcpsrv.ServerTool{Tool: tool, Handler: h}
}

func (s *Server) toolBlockIssue() mcpsrv.ServerTool {
	tool := mcplib.NewTool("block_issue",
		mcplib.WithDescription("Mark an issue as blocked, with a note explaining why."),
		mcplib.WithNumber("id",
			mcplib.Description("The issue id"),
			mcplib.Required(),
		),
		mcplib.WithString("reason",
			mcplib.Description("Why the issue is blocked"),
		),
	)
	h := func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		reason, _ := stringArg(req, "reason")
		return mutateResult(ctx, "block_issue", s.repos.Issues, intArg(req, "id", 0), func(e *domain.Issue) error {
			e.Block(reason)
			return nil
		})
	}
	return mcpsrv.ServerTool{Tool: tool, Handler: h}
}

func (s *Server) toolUnblockIssue() mcpsrv.ServerTool {
	tool := mcplib.NewTool("unblock_issue",
		mcplib.WithDescription("Clear an issue's blocked state and note."),
		mcplib.WithNumber("id",
			mcplib.Description("The issue id"),
			mcplib.Required(),
		),
	)
	h := func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return mutateResult(ctx, "unblock_issue", s.repos.Issues, intArg(req, "id", 0), func(e *domain.Issue) error {
			e.Unblock()
			return nil
		})
	}
	return mcpsrv.ServerTool{Tool: tool, Handler: h}
}

func (s *Server) toolGetIssueFilters() mcpsrv.ServerTool {
	tool := mcplib.NewTool("get_issue_filters",
		mcplib.WithDescription("Get the valid filter values (statuses, types, severities, priorities, assignable users) for a project's issues. Use the returned ids when creating or updating issues."),
		mcplib.WithNumber("project_id",
			mcplib.Description("The project id"),
			mcplib.Required(),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	h := func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		const name = "get_issue_filters"
		pid := intArg(req, "project_id", 0)
		if pid <= 0 {
			return resultErr(errors.New(name + ": project_id is required")), nil
		}
		filters, err := s.repos.Issues.GetFilters(ctx, pid)
		if err != nil {
			return s.degradeList(ctx, name, err)
		}
		result, err := resultJSON(filters)
		if err != nil {
			return resultErr(fmt.Errorf("%s: serialise: %w", name, err)), nil
		}
		return result, nil
	}
	return mcpsrv.ServerTool{Tool: tool, Handler: h}
}
