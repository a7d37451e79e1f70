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

// In this file: epic tools.

import (
	"context"
	"errors"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"

	"taigamcp/internal/domain"
)

func (s *Server) epicTools() []mcpsrv.ServerTool {
	tools := crudTools[domain.Epic, *domain.Epic](s, s.repos.Epics, entitySpec{
		singular:      "epic",
		plural:        "epics",
		projectFilter: true,
		dataDesc: "Epic fields: subject (required), project_id (required), description, " +
			"status, assigned_to_id, color (hex, e.g. #ff5733), tags.",
	})
	return append(tools,
		s.toolGetEpicByRef(),
		s.toolBlockEpic(),
		s.toolUnblockEpic(),
	)
}

func (s *Server) toolGetEpicByRef() mcpsrv.ServerTool {
	tool := mcplib.NewTool("get_epic_by_ref",
		mcplib.WithDescription("Get an epic by its per-project reference number (the #NN from the Taiga UI)."),
		mcplib.WithNumber("project_id",
			mcplib.Description("The project id"),
			mcplib.Required(),
		),
		mcplib.WithNumber("ref",
			mcplib.Description("The epic reference number"),
			mcplib.Required(),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	h := func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		pid, ref := intArg(req, "project_id", 0), intArg(req, "ref", 0)
		if pid <= 0 || ref <= 0 {
			return resultErr(errors.New("get_epic_by_ref: project_id and ref are required")), nil
		}
		e, err := s.repos.Epics.GetByRef(ctx, pid, ref)
		return s.refResult(ctx, "get_epic_by_ref", e, err)
	}
	return mcpsrv.ServerTool{Tool: tool, Handler: h}
}

func (s *Server) toolBlockEpic() mcpsrv.ServerTool {
	tool := mcplib.NewTool("block_epic",
		mcplib.WithDescription("Mark an epic as blocked, with a note explaining why."),
		mcplib.WithNumber("id",
			mcplib.Description("The epic id"),
			mcplib.Required(),
		),
		mcplib.WithString("reason",
			mcplib.Description("Why the epic is blocked"),
		),
	)
	h := func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		reason, _ := stringArg(req, "reason")
		return mutateResult(ctx, "block_epic", s.repos.Epics, intArg(req, "id", 0), func(e *domain.Epic) error {
			e.Block(reason)
			return nil
		})
	}
	return mcpsrv.ServerTool{Tool: tool, Handler: h}
}

func (s *Server) toolUnblockEpic() mcpsrv.ServerTool {
	tool := mcplib.NewTool("unblock_epic",
		mcplib.WithDescription("Clear an epic's blocked state and note."),
		mcplib.WithNumber("id",
			mcplib.Description("The epic id"),
			mcplib.Required(),
		),
	)
	h := func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return mutateResult(ctx, "unblock_epic", s.repos.Epics, intArg(req, "id", 0), func(e *domain.Epic) error {
			e.Unblock()
			return nil
		})
	}
	return mcpsrv.ServerTool{Tool: tool, Handler: h}
}
