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

// In this file: the standard list/get/create/update/delete toolset shared
// by every resource.

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"

	"taigamcp/internal/domain"
	"taigamcp/internal/repo"
)

const (
	defLimit = 100
	minLimit = 1
	maxLimit = 1000
)

// crud is the repository surface the standard toolset needs.  Every
// repository in the repo package satisfies it.
type crud[T any] interface {
	GetByID(ctx context.Context, id int) (*T, error)
	List(ctx context.Context, filters url.Values, limit, offset int) ([]*T, error)
	Create(ctx context.Context, e *T) (*T, error)
	Update(ctx context.Context, e *T) (*T, error)
	Delete(ctx context.Context, id int) (bool, error)
}

// entitySpec carries the naming and descriptions that differ between
// resources.
type entitySpec struct {
	singular string // tool name part, e.g. "issue"
	plural   string // tool name part, e.g. "issues"
	// dataDesc documents the accepted fields of the data argument.
	dataDesc string
	// projectFilter adds an optional project_id filter to the list tool.
	projectFilter bool
}

// crudTools builds the five standard tools for one resource.
func crudTools[T any, PT interface {
	*T
	domain.Validator
}](s *Server, c crud[T], spec entitySpec) []mcpsrv.ServerTool {
	return []mcpsrv.ServerTool{
		toolList(s, c, spec),
		toolGet(s, c, spec),
		toolCreate[T, PT](s, c, spec),
		toolUpdate[T, PT](s, c, spec),
		toolDelete(s, c, spec),
	}
}

func toolList[T any](s *Server, c crud[T], spec entitySpec) mcpsrv.ServerTool {
	name := "list_" + spec.plural
	opts := []mcplib.ToolOption{
		mcplib.WithDescription(fmt.Sprintf("List %s. Returns full JSON records, paginated.", spec.plural)),
		mcplib.WithNumber("limit",
			mcplib.Description(fmt.Sprintf("Maximum number of %s to return (1-%d, default %d)", spec.plural, maxLimit, defLimit)),
		),
		mcplib.WithNumber("offset",
			mcplib.Description("Number of records to skip, for pagination"),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	}
	if spec.projectFilter {
		opts = append(opts, mcplib.WithNumber("project_id",
			mcplib.Description(fmt.Sprintf("Only return %s belonging to this project", spec.plural)),
		))
	}
	tool := mcplib.NewTool(name, opts...)
	h := func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		limit := intArg(req, "limit", defLimit)
		limit = max(min(limit, maxLimit), minLimit)
		offset := intArg(req, "offset", 0)

		filters := url.Values{}
		if spec.projectFilter {
			if pid := intArg(req, "project_id", 0); pid > 0 {
				filters.Set("project", strconv.Itoa(pid))
			}
		}
		items, err := c.List(ctx, filters, limit, offset)
		if err != nil {
			return s.degradeList(ctx, name, err)
		}
		result, err := resultJSON(items)
		if err != nil {
			return resultErr(fmt.Errorf("%s: serialise: %w", name, err)), nil
		}
		return result, nil
	}
	return mcpsrv.ServerTool{Tool: tool, Handler: h}
}

func toolGet[T any](s *Server, c crud[T], spec entitySpec) mcpsrv.ServerTool {
	name := "get_" + spec.singular
	tool := mcplib.NewTool(name,
		mcplib.WithDescription(fmt.Sprintf("Get a single %s by its id.", spec.singular)),
		mcplib.WithNumber("id",
			mcplib.Description(fmt.Sprintf("The %s id", spec.singular)),
			mcplib.Required(),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	h := func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		id := intArg(req, "id", 0)
		if id <= 0 {
			return resultErr(fmt.Errorf("%s: id is required", name)), nil
		}
		e, err := c.GetByID(ctx, id)
		if err != nil {
			if !errors.Is(err, repo.ErrNotFound) {
				s.logger.WarnContext(ctx, "mcp: lookup degraded to not found", "tool", name, "error", err)
			}
			return resultText(fmt.Sprintf("No %s with id %d.", spec.singular, id)), nil
		}
		result, err := resultJSON(e)
		if err != nil {
			return resultErr(fmt.Errorf("%s: serialise: %w", name, err)), nil
		}
		return result, nil
	}
	return mcpsrv.ServerTool{Tool: tool, Handler: h}
}

func toolCreate[T any, PT interface {
	*T
	domain.Validator
}](s *Server, c crud[T], spec entitySpec) mcpsrv.ServerTool {
	name := "create_" + spec.singular
	tool := mcplib.NewTool(name,
		mcplib.WithDescription(fmt.Sprintf("Create a new %s. The server assigns id and version.", spec.singular)),
		mcplib.WithObject("data",
			mcplib.Description(spec.dataDesc),
			mcplib.Required(),
		),
	)
	h := func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		data, ok := objectArg(req, "data")
		if !ok {
			return resultErr(fmt.Errorf("%s: data object is required", name)), nil
		}
		e := PT(new(T))
		if err := domain.FromRecord(data, e); err != nil {
			return resultErr(fmt.Errorf("%s: %w", name, err)), nil
		}
		created, err := c.Create(ctx, (*T)(e))
		if err != nil {
			return resultErr(fmt.Errorf("%s: %w", name, err)), nil
		}
		s.logger.InfoContext(ctx, "mcp: created", "tool", name)
		result, err := resultJSON(created)
		if err != nil {
			return resultErr(fmt.Errorf("%s: serialise: %w", name, err)), nil
		}
		return result, nil
	}
	return mcpsrv.ServerTool{Tool: tool, Handler: h}
}

func toolUpdate[T any, PT interface {
	*T
	domain.Validator
}](s *Server, c crud[T], spec entitySpec) mcpsrv.ServerTool {
	name := "update_" + spec.singular
	tool := mcplib.NewTool(name,
		mcplib.WithDescription(fmt.Sprintf(`Update an existing %s.

Fetches the current copy, applies the fields given in data, and saves it
back.  Updates use optimistic concurrency: a "version conflict" error means
the %s changed remotely in the meantime; retry the whole update.`, spec.singular, spec.singular)),
		mcplib.WithNumber("id",
			mcplib.Description(fmt.Sprintf("The %s id", spec.singular)),
			mcplib.Required(),
		),
		mcplib.WithObject("data",
			mcplib.Description("Fields to change. "+spec.dataDesc),
			mcplib.Required(),
		),
	)
	h := func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		id := intArg(req, "id", 0)
		if id <= 0 {
			return resultErr(fmt.Errorf("%s: id is required", name)), nil
		}
		data, ok := objectArg(req, "data")
		if !ok {
			return resultErr(fmt.Errorf("%s: data object is required", name)), nil
		}
		e, err := c.GetByID(ctx, id)
		if err != nil {
			return resultErr(fmt.Errorf("%s: %w", name, err)), nil
		}
		if err := domain.UpdateRecord(data, PT(e)); err != nil {
			return resultErr(fmt.Errorf("%s: %w", name, err)), nil
		}
		updated, err := c.Update(ctx, e)
		if err != nil {
			return resultErr(fmt.Errorf("%s: %w", name, err)), nil
		}
		result, err := resultJSON(updated)
		if err != nil {
			return resultErr(fmt.Errorf("%s: serialise: %w", name, err)), nil
		}
		return result, nil
	}
	return mcpsrv.ServerTool{Tool: tool, Handler: h}
}

func toolDelete[T any](s *Server, c crud[T], spec entitySpec) mcpsrv.ServerTool {
	name := "delete_" + spec.singular
	tool := mcplib.NewTool(name,
		mcplib.WithDescription(fmt.Sprintf("Delete a %s by id. Deleting a %s that is already gone is not an error.", spec.singular, spec.singular)),
		mcplib.WithNumber("id",
			mcplib.Description(fmt.Sprintf("The %s id", spec.singular)),
			mcplib.Required(),
		),
		mcplib.WithDestructiveHintAnnotation(true),
	)
	h := func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		id := intArg(req, "id", 0)
		if id <= 0 {
			return resultErr(fmt.Errorf("%s: id is required", name)), nil
		}
		deleted, err := c.Delete(ctx, id)
		if err != nil {
			return resultErr(fmt.Errorf("%s: %w", name, err)), nil
		}
		if !deleted {
			return resultText(fmt.Sprintf("The %s with id %d was already absent.", spec.singular, id)), nil
		}
		s.logger.InfoContext(ctx, "mcp: deleted", "tool", name, "id", id)
		return resultText(fmt.Sprintf("Deleted %s %d.", spec.singular, id)), nil
	}
	return mcpsrv.ServerTool{Tool: tool, Handler: h}
}

// mutate fetches an entity, applies fn to it and saves the result.  It is
// the backbone of the behaviour tools (close, block, finish, ...).
func mutate[T any](ctx context.Context, c crud[T], id int, fn func(*T) error) (*T, error) {
	e, err := c.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(e); err != nil {
		return nil, err
	}
	return c.Update(ctx, e)
}

// mutateResult runs mutate and packages the outcome for a tool response.
func mutateResult[T any](ctx context.Context, name string, c crud[T], id int, fn func(*T) error) (*mcplib.CallToolResult, error) {
	if id <= 0 {
		return resultErr(fmt.Errorf("%s: id is required", name)), nil
	}
	e, err := mutate(ctx, c, id, fn)
	if err != nil {
		return resultErr(fmt.Errorf("%s: %w", name, err)), nil
	}
	result, err := resultJSON(e)
	if err != nil {
		return resultErr(fmt.Errorf("%s: serialise: %w", name, err)), nil
	}
	return result, nil
}

// refResult packages a by-ref lookup outcome for a tool response.
func (s *Server) refResult(ctx context.Context, name string, e any, err error) (*mcplib.CallToolResult, error) {
	if err != nil {
		if !errors.Is(err, repo.ErrNotFound) {
			s.logger.WarnContext(ctx, "mcp: lookup degraded to not found", "tool", name, "error", err)
		}
		return resultText("No match."), nil
	}
	result, err := resultJSON(e)
	if err != nil {
		return resultErr(fmt.Errorf("%s: serialise: %w", name, err)), nil
	}
	return result, nil
}
