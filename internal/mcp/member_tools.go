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

// In this file: project membership tools.

import (
	"context"
	"errors"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"

	"taigamcp/internal/domain"
)

func (s *Server) memberTools() []mcpsrv.ServerTool {
	tools := crudTools[domain.Member, *domain.Member](s, s.repos.Members, entitySpec{
		singular:      "member",
		plural:        "members",
		projectFilter: true,
		dataDesc: "Membership fields: project_id (required), user_id (required), " +
			"role_id, username (required), full_name, email, is_admin.",
	})
	return append(tools,
		s.toolChangeMemberRole(),
		s.toolSetMemberAdmin(),
	)
}

func (s *Server) toolChangeMemberRole() mcpsrv.ServerTool {
	tool := mcplib.NewTool("change_member_role",
		mcplib.WithDescription("Change a project member's role."),
		mcplib.WithNumber("id",
			mcplib.Description("The membership id"),
			mcplib.Required(),
		),
		mcplib.WithNumber("role_id",
			mcplib.Description("The new role id"),
			mcplib.Required(),
		),
	)
	h := func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		const name = "change_member_role"
		roleID := intArg(req, "role_id", 0)
		if roleID <= 0 {
			return resultErr(errors.New(name + ": role_id is required")), nil
		}
		return mutateResult(ctx, name, s.repos.Members, intArg(req, "id", 0), func(m *domain.Member) error {
			return m.ChangeRole(roleID)
		})
	}
	return mcpsrv.ServerTool{Tool: tool, Handler: h}
}

func (s *Server) toolSetMemberAdmin() mcpsrv.ServerTool {
	tool := mcplib.NewTool("set_member_admin",
		mcplib.WithDescription("Grant or revoke a member's project admin flag."),
		mcplib.WithNumber("id",
			mcplib.Description("The membership id"),
			mcplib.Required(),
		),
		mcplib.WithBoolean("admin",
			mcplib.Description("true to grant admin, false to revoke (default true)"),
		),
	)
	h := func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		admin := boolArg(req, "admin", true)
		return mutateResult(ctx, "set_member_admin", s.repos.Members, intArg(req, "id", 0), func(m *domain.Member) error {
			if admin {
				m.MakeAdmin()
			} else {
				m.RemoveAdmin()
			}
			return nil
		})
	}
	return mcpsrv.ServerTool{Tool: tool, Handler: h}
}
