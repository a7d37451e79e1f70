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

// In this file: user story tools.

import (
	"context"
	"errors"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"

	"taigamcp/internal/domain"
)

func (s *Server) userStoryTools() []mcpsrv.ServerTool {
	tools := crudTools[domain.UserStory, *domain.UserStory](s, s.repos.UserStories, entitySpec{
		singular:      "user_story",
		plural:        "user_stories",
		projectFilter: true,
		dataDesc: "User story fields: subject (required), project_id (required), description, " +
			"status, milestone_id, assigned_to_id, client_requirement, team_requirement, " +
			"points (role name to estimate mapping), tags.",
	})
	return append(tools,
		s.toolGetUserStoryByRef(),
		s.toolBulkCreateUserStories(),
		s.toolMoveUserStoryToMilestone(),
		s.toolAssignUserStory(),
		s.toolBlockUserStory(),
		s.toolUnblockUserStory(),
	)
}

func (s *Server) toolBlockUserStory() mcpsrv.ServerTool {
	tool := mcplib.NewTool("block_user_story",
		mcplib.WithDescription("Block a user story, recording the reason."),
		mcplib.WithNumber("id",
			mcplib.Description("The user story id"),
			mcplib.Required(),
		),
		mcplib.WithString("reason",
			mcplib.Description("Why the story is blocked"),
		),
	)
	h := func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		reason, _ := stringArg(req, "reason")
		return mutateResult(ctx, "block_user_story", s.repos.UserStories, intArg(req, "id", 0), func(u *domain.UserStory) error {
			u.Block(reason)
			return nil
		})
	}
	return mcpsrv.ServerTool{Tool: tool, Handler: h}
}

func (s *Server) toolUnblockUserStory() mcpsrv.ServerTool {
	tool := mcplib.NewTool("unblock_user_story",
		mcplib.WithDescription("Unblock a user story, clearing the blocked note."),
		mcplib.WithNumber("id",
			mcplib.Description("The user story id"),
			mcplib.Required(),
		),
	)
	h := func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return mutateResult(ctx, "unblock_user_story", s.repos.UserStories, intArg(req, "id", 0), func(u *domain.UserStory) error {
			u.Unblock()
			return nil
		})
	}
	return mcpsrv.ServerTool{Tool: tool, Handler: h}
}

func (s *Server) toolGetUserStoryByRef() mcpsrv.ServerTool {
	tool := mcplib.NewTool("get_user_story_by_ref",
		mcplib.WithDescription("Get a user story by its per-project reference number (the #NN from the Taiga UI)."),
		mcplib.WithNumber("project_id",
			mcplib.Description("The project id"),
			mcplib.Required(),
		),
		mcplib.WithNumber("ref",
			mcplib.Description("The story reference number"),
			mcplib.Required(),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	h := func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		pid, ref := intArg(req, "project_id", 0), intArg(req, "ref", 0)
		if pid <= 0 || ref <= 0 {
			return resultErr(errors.New("get_user_story_by_ref: project_id and ref are required")), nil
		}
		e, err := s.repos.UserStories.GetByRef(ctx, pid, ref)
		return s.refResult(ctx, "get_user_story_by_ref", e, err)
	}
	return mcpsrv.ServerTool{Tool: tool, Handler: h}
}

func (s *Server) toolBulkCreateUserStories() mcpsrv.ServerTool {
	tool := mcplib.NewTool("bulk_create_user_stories",
		mcplib.WithDescription(`Create several user stories at once from a list of subjects.

The batch is sent as a single call but is not transactional: on partial
failure the server keeps whatever it managed to create.`),
		mcplib.WithNumber("project_id",
			mcplib.Description("The project to create the stories in"),
			mcplib.Required(),
		),
		mcplib.WithArray("subjects",
			mcplib.Description("One subject line per story to create"),
			mcplib.Required(),
			mcplib.WithStringItems(),
		),
	)
	h := func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		const name = "bulk_create_user_stories"
		pid := intArg(req, "project_id", 0)
		subjects, ok := stringsArg(req, "subjects")
		if pid <= 0 || !ok || len(subjects) == 0 {
			return resultErr(errors.New(name + ": project_id and a non-empty subjects list are required")), nil
		}
		created, err := s.repos.UserStories.BulkCreate(ctx, pid, subjects)
		if err != nil {
			return resultErr(fmt.Errorf("%s: %w", name, err)), nil
		}
		s.logger.InfoContext(ctx, "mcp: bulk created user stories", "project_id", pid, "count", len(created))
		result, err := resultJSON(created)
		if err != nil {
			return resultErr(fmt.Errorf("%s: serialise: %w", name, err)), nil
		}
		return result, nil
	}
	return mcpsrv.ServerTool{Tool: tool, Handler: h}
}

func (s *Server) toolMoveUserStoryToMilestone() mcpsrv.ServerTool {
	tool := mcplib.NewTool("move_user_story_to_milestone",
		mcplib.WithDescription("Move a user story into a milestone (sprint). Omit milestone_id or pass 0 to send the story back to the backlog."),
		mcplib.WithNumber("id",
			mcplib.Description("The story id"),
			mcplib.Required(),
		),
		mcplib.WithNumber("milestone_id",
			mcplib.Description("The target milestone id, or 0 for the backlog"),
		),
	)
	h := func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		const name = "move_user_story_to_milestone"
		id := intArg(req, "id", 0)
		if id <= 0 {
			return resultErr(errors.New(name + ": id is required")), nil
		}
		e, err := s.repos.UserStories.MoveToMilestone(ctx, id, intArg(req, "milestone_id", 0))
		if err != nil {
			return resultErr(fmt.Errorf("%s: %w", name, err)), nil
		}
		result, err := resultJSON(e)
		if err != nil {
			return resultErr(fmt.Errorf("%s: serialise: %w", name, err)), nil
		}
		return result, nil
	}
	return mcpsrv.ServerTool{Tool: tool, Handler: h}
}

func (s *Server) toolAssignUserStory() mcpsrv.ServerTool {
	tool := mcplib.NewTool("assign_user_story",
		mcplib.WithDescription("Assign a user story to a user, or unassign it when user_id is omitted or 0."),
		mcplib.WithNumber("id",
			mcplib.Description("The story id"),
			mcplib.Required(),
		),
		mcplib.WithNumber("user_id",
			mcplib.Description("The user to assign to, or 0 to unassign"),
		),
	)
	h := func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		uid := intArg(req, "user_id", 0)
		return mutateResult(ctx, "assign_user_story", s.repos.UserStories, intArg(req, "id", 0), func(e *domain.UserStory) error {
			if uid <= 0 {
				e.Unassign()
				return nil
			}
			return e.AssignTo(uid)
		})
	}
	return mcpsrv.ServerTool{Tool: tool, Handler: h}
}
