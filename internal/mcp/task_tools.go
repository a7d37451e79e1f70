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

// In this file: task tools.

import (
	"context"
	"errors"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"

	"taigamcp/internal/domain"
)

func (s *Server) taskTools() []mcpsrv.ServerTool {
	tools := crudTools[domain.Task, *domain.Task](s, s.repos.Tasks, entitySpec{
		singular:      "task",
		plural:        "tasks",
		projectFilter: true,
		dataDesc: "Task fields: subject (required), project_id (required), description, " +
			"status, user_story_id, milestone_id, assigned_to_id, is_iocaine, tags.",
	})
	return append(tools,
		s.toolGetTaskByRef(),
		s.toolBulkCreateTasks(),
		s.toolFinishTask(),
		s.toolReopenTask(),
		s.toolMoveTaskToMilestone(),
		s.toolMarkTaskIocaine(),
		s.toolBlockTask(),
		s.toolUnblockTask(),
	)
}

func (s *Server) toolBlockTask() mcpsrv.ServerTool {
	tool := mcplib.NewTool("block_task",
		mcplib.WithDescription("Block a task, recording the reason."),
		mcplib.WithNumber("id",
			mcplib.Description("The task id"),
			mcplib.Required(),
		),
		mcplib.WithString("reason",
			mcplib.Description("Why the task is blocked"),
		),
	)
	h := func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		reason, _ := stringArg(req, "reason")
		return mutateResult(ctx, "block_task", s.repos.Tasks, intArg(req, "id", 0), func(t *domain.Task) error {
			t.Block(reason)
			return nil
		})
	}
	return mcpsrv.ServerTool{Tool: tool, Handler: h}
}

func (s *Server) toolUnblockTask() mcpsrv.ServerTool {
	tool := mcplib.NewTool("unblock_task",
		mcplib.WithDescription("Unblock a task, clearing the blocked note."),
		mcplib.WithNumber("id",
			mcplib.Description("The task id"),
			mcplib.Required(),
		),
	)
	h := func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return mutateResult(ctx, "unblock_task", s.repos.Tasks, intArg(req, "id", 0), func(t *domain.Task) error {
			t.Unblock()
			return nil
		})
	}
	return mcpsrv.ServerTool{Tool: tool, Handler: h}
}

func (s *Server) toolReopenTask() mcpsrv.ServerTool {
	tool := mcplib.NewTool("reopen_task",
		mcplib.WithDescription("Reopen a finished task, clearing its finished date."),
		mcplib.WithNumber("id",
			mcplib.Description("The task id"),
			mcplib.Required(),
		),
	)
	h := func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return mutateResult(ctx, "reopen_task", s.repos.Tasks, intArg(req, "id", 0), func(t *domain.Task) error {
			t.Reopen()
			return nil
		})
	}
	return mcpsrv.ServerTool{Tool: tool, Handler: h}
}

func (s *Server) toolMarkTaskIocaine() mcpsrv.ServerTool {
	tool := mcplib.NewTool("mark_task_iocaine",
		mcplib.WithDescription("Set or clear a task's iocaine flag (Taiga's marker for a task that turned out to be deceptively hard)."),
		mcplib.WithNumber("id",
			mcplib.Description("The task id"),
			mcplib.Required(),
		),
		mcplib.WithBoolean("iocaine",
			mcplib.Description("true to set the flag, false to clear it (default true)"),
		),
	)
	h := func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		iocaine := boolArg(req, "iocaine", true)
		return mutateResult(ctx, "mark_task_iocaine", s.repos.Tasks, intArg(req, "id", 0), func(e *domain.Task) error {
			if iocaine {
				e.MarkAsIocaine()
			} else {
				e.UnmarkAsIocaine()
			}
			return nil
		})
	}
	return mcpsrv.ServerTool{Tool: tool, Handler: h}
}

func (s *Server) toolGetTaskByRef() mcpsrv.ServerTool {
	tool := mcplib.NewTool("get_task_by_ref",
		mcplib.WithDescription("Get a task by its per-project reference number (the #NN from the Taiga UI)."),
		mcplib.WithNumber("project_id",
			mcplib.Description("The project id"),
			mcplib.Required(),
		),
		mcplib.WithNumber("ref",
			mcplib.Description("The task reference number"),
			mcplib.Required(),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	h := func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		pid, ref := intArg(req, "project_id", 0), intArg(req, "ref", 0)
		if pid <= 0 || ref <= 0 {
			return resultErr(errors.New("get_task_by_ref: project_id and ref are required")), nil
		}
		e, err := s.repos.Tasks.GetByRef(ctx, pid, ref)
		return s.refResult(ctx, "get_task_by_ref", e, err)
	}
	return mcpsrv.ServerTool{Tool: tool, Handler: h}
}

func (s *Server) toolBulkCreateTasks() mcpsrv.ServerTool {
	tool := mcplib.NewTool("bulk_create_tasks",
		mcplib.WithDescription(`Create several tasks at once from a list of subjects.

The batch is sent as a single call but is not transactional: on partial
failure the server keeps whatever it managed to create.`),
		mcplib.WithNumber("project_id",
			mcplib.Description("The project to create the tasks in"),
			mcplib.Required(),
		),
		mcplib.WithNumber("user_story_id",
			mcplib.Description("Attach the new tasks to this user story"),
		),
		mcplib.WithArray("subjects",
			mcplib.Description("One subject line per task to create"),
			mcplib.Required(),
			mcplib.WithStringItems(),
		),
	)
	h := func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		const name = "bulk_create_tasks"
		pid := intArg(req, "project_id", 0)
		subjects, ok := stringsArg(req, "subjects")
		if pid <= 0 || !ok || len(subjects) == 0 {
			return resultErr(errors.New(name + ": project_id and a non-empty subjects list are required")), nil
		}
		created, err := s.repos.Tasks.BulkCreate(ctx, pid, intArg(req, "user_story_id", 0), subjects)
		if err != nil {
			return resultErr(fmt.Errorf("%s: %w", name, err)), nil
		}
		s.logger.InfoContext(ctx, "mcp: bulk created tasks", "project_id", pid, "count", len(created))
		result, err := resultJSON(created)
		if err != nil {
			return resultErr(fmt.Errorf("%s: serialise: %w", name, err)), nil
		}
		return result, nil
	}
	return mcpsrv.ServerTool{Tool: tool, Handler: h}
}

func (s *Server) toolFinishTask() mcpsrv.ServerTool {
	tool := mcplib.NewTool("finish_task",
		mcplib.WithDescription("Mark a task as finished, stamping the finish time."),
		mcplib.WithNumber("id",
			mcplib.Description("The task id"),
			mcplib.Required(),
		),
	)
	h := func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return mutateResult(ctx, "finish_task", s.repos.Tasks, intArg(req, "id", 0), func(e *domain.Task) error {
			e.Finish(s.now())
			return nil
		})
	}
	return mcpsrv.ServerTool{Tool: tool, Handler: h}
}

func (s *Server) toolMoveTaskToMilestone() mcpsrv.ServerTool {
	tool := mcplib.NewTool("move_task_to_milestone",
		mcplib.WithDescription("Move a task into a milestone (sprint). Omit milestone_id or pass 0 to detach the task from its sprint."),
		mcplib.WithNumber("id",
			mcplib.Description("The task id"),
			mcplib.Required(),
		),
		mcplib.WithNumber("milestone_id",
			mcplib.Description("The target milestone id, or 0 to detach"),
		),
	)
	h := func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		const name = "move_task_to_milestone"
		id := intArg(req, "id", 0)
		if id <= 0 {
			return resultErr(errors.New(name + ": id is required")), nil
		}
		e, err := s.repos.Tasks.MoveToMilestone(ctx, id, intArg(req, "milestone_id", 0))
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
