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

// In this file: wiki page tools.

import (
	"context"
	"errors"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"

	"taigamcp/internal/domain"
)

func (s *Server) wikiTools() []mcpsrv.ServerTool {
	tools := crudTools[domain.WikiPage, *domain.WikiPage](s, s.repos.WikiPages, entitySpec{
		singular:      "wiki_page",
		plural:        "wiki_pages",
		projectFilter: true,
		dataDesc:      "Wiki page fields: slug (required), project_id (required), content.",
	})
	return append(tools,
		s.toolGetWikiPageBySlug(),
		s.toolGetOrCreateWikiPage(),
		s.toolUpdateWikiPageContent(),
		s.toolSetWikiPageDeleted(),
	)
}

func (s *Server) toolGetWikiPageBySlug() mcpsrv.ServerTool {
	tool := mcplib.NewTool("get_wiki_page_by_slug",
		mcplib.WithDescription("Get a project's wiki page by its slug."),
		mcplib.WithNumber("project_id",
			mcplib.Description("The project id"),
			mcplib.Required(),
		),
		mcplib.WithString("slug",
			mcplib.Description("The wiki page slug, e.g. \"home\""),
			mcplib.Required(),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	h := func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		const name = "get_wiki_page_by_slug"
		pid := intArg(req, "project_id", 0)
		slug, ok := stringArg(req, "slug")
		if pid <= 0 || !ok || slug == "" {
			return resultErr(errors.New(name + ": project_id and slug are required")), nil
		}
		pg, err := s.repos.WikiPages.GetBySlug(ctx, pid, slug)
		return s.refResult(ctx, name, pg, err)
	}
	return mcpsrv.ServerTool{Tool: tool, Handler: h}
}

func (s *Server) toolGetOrCreateWikiPage() mcpsrv.ServerTool {
	tool := mcplib.NewTool("get_or_create_wiki_page",
		mcplib.WithDescription("Get a project's wiki page by slug, creating it with the given content when it does not exist yet. An existing page is returned unchanged."),
		mcplib.WithNumber("project_id",
			mcplib.Description("The project id"),
			mcplib.Required(),
		),
		mcplib.WithString("slug",
			mcplib.Description("The wiki page slug"),
			mcplib.Required(),
		),
		mcplib.WithString("content",
			mcplib.Description("Initial page content, used only when the page is created"),
		),
	)
	h := func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		const name = "get_or_create_wiki_page"
		pid := intArg(req, "project_id", 0)
		slug, ok := stringArg(req, "slug")
		if pid <= 0 || !ok || slug == "" {
			return resultErr(errors.New(name + ": project_id and slug are required")), nil
		}
		content, _ := stringArg(req, "content")
		pg, err := s.repos.WikiPages.GetOrCreate(ctx, pid, slug, content)
		if err != nil {
			return resultErr(fmt.Errorf("%s: %w", name, err)), nil
		}
		result, err := resultJSON(pg)
		if err != nil {
			return resultErr(fmt.Errorf("%s: serialise: %w", name, err)), nil
		}
		return result, nil
	}
	return mcpsrv.ServerTool{Tool: tool, Handler: h}
}

func (s *Server) toolUpdateWikiPageContent() mcpsrv.ServerTool {
	tool := mcplib.NewTool("update_wiki_page_content",
		mcplib.WithDescription("Replace a wiki page's content, stamping the modification time."),
		mcplib.WithNumber("id",
			mcplib.Description("The wiki page id"),
			mcplib.Required(),
		),
		mcplib.WithString("content",
			mcplib.Description("The new page content"),
			mcplib.Required(),
		),
	)
	h := func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		const name = "update_wiki_page_content"
		content, ok := stringArg(req, "content")
		if !ok {
			return resultErr(errors.New(name + ": content is required")), nil
		}
		return mutateResult(ctx, name, s.repos.WikiPages, intArg(req, "id", 0), func(w *domain.WikiPage) error {
			w.UpdateContent(content, s.now())
			return nil
		})
	}
	return mcpsrv.ServerTool{Tool: tool, Handler: h}
}

func (s *Server) toolSetWikiPageDeleted() mcpsrv.ServerTool {
	tool := mcplib.NewTool("set_wiki_page_deleted",
		mcplib.WithDescription("Soft-delete or restore a wiki page by toggling its is_deleted flag. The page record itself is kept."),
		mcplib.WithNumber("id",
			mcplib.Description("The wiki page id"),
			mcplib.Required(),
		),
		mcplib.WithBoolean("deleted",
			mcplib.Description("true marks the page deleted, false restores it (default true)"),
		),
	)
	h := func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		const name = "set_wiki_page_deleted"
		deleted := boolArg(req, "deleted", true)
		return mutateResult(ctx, name, s.repos.WikiPages, intArg(req, "id", 0), func(w *domain.WikiPage) error {
			if deleted {
				w.Delete()
			} else {
				w.Restore()
			}
			return nil
		})
	}
	return mcpsrv.ServerTool{Tool: tool, Handler: h}
}
