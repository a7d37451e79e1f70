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

import (
	"context"
	"net/url"
	"testing"
	"time"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taigamcp/internal/repo"
)

// fakeDoer implements repo.Doer with per-method callbacks so that handler
// tests can script the remote API's behaviour.
type fakeDoer struct {
	t        *testing.T
	onGet    func(path string, params url.Values) (any, error)
	onPost   func(path string, data any) (any, error)
	onPatch  func(path string, data any) (any, error)
	onDelete func(path string) error
}

func (f *fakeDoer) Get(_ context.Context, path string, params url.Values) (any, error) {
	if f.onGet == nil {
		f.t.Fatalf("unexpected GET %s", path)
	}
	return f.onGet(path, params)
}

func (f *fakeDoer) Post(_ context.Context, path string, data any) (any, error) {
	if f.onPost == nil {
		f.t.Fatalf("unexpected POST %s", path)
	}
	return f.onPost(path, data)
}

func (f *fakeDoer) Patch(_ context.Context, path string, data any) (any, error) {
	if f.onPatch == nil {
		f.t.Fatalf("unexpected PATCH %s", path)
	}
	return f.onPatch(path, data)
}

func (f *fakeDoer) Delete(_ context.Context, path string) error {
	if f.onDelete == nil {
		f.t.Fatalf("unexpected DELETE %s", path)
	}
	return f.onDelete(path)
}

// testClock is the frozen time used by behaviour tools under test.
var testClock = time.Date(2025, time.March, 14, 15, 9, 26, 0, time.UTC)

// newTestServer builds a Server on a scripted fake API.
func newTestServer(fake *fakeDoer) *Server {
	return New(repo.New(fake), WithClock(func() time.Time { return testClock }))
}

// handlerFor finds a registered tool's handler by name.
func handlerFor(t *testing.T, s *Server, name string) mcpsrv.ToolHandlerFunc {
	t.Helper()
	for _, st := range s.tools() {
		if st.Tool.Name == name {
			return st.Handler
		}
	}
	t.Fatalf("no tool named %q", name)
	return nil
}

// callReq builds a CallToolRequest with the given arguments.
func callReq(args map[string]any) mcplib.CallToolRequest {
	var req mcplib.CallToolRequest
	req.Params.Arguments = args
	return req
}

// isErrorResult returns true when the result carries IsError=true.
func isErrorResult(r *mcplib.CallToolResult) bool {
	return r != nil && r.IsError
}

// firstText returns the text of the first TextContent in the result.
func firstText(t *testing.T, r *mcplib.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, r.Content, "result has no content")
	txt, ok := r.Content[0].(mcplib.TextContent)
	require.True(t, ok, "first content item is not TextContent")
	return txt.Text
}

func TestNewRegistersTools(t *testing.T) {
	s := newTestServer(&fakeDoer{t: t})
	seen := make(map[string]bool)
	for _, st := range s.tools() {
		assert.False(t, seen[st.Tool.Name], "duplicate tool name %q", st.Tool.Name)
		seen[st.Tool.Name] = true
	}
	// one standard toolset per resource plus the per-resource specials
	assert.GreaterOrEqual(t, len(seen), 8*5)
	for _, name := range []string{
		"list_projects", "get_project_by_slug", "set_project_module",
		"get_epic_by_ref", "block_epic",
		"create_issue", "bulk_create_issues", "close_issue", "get_issue_filters",
		"bulk_create_tasks", "finish_task", "reopen_task", "block_task", "move_task_to_milestone", "mark_task_iocaine",
		"bulk_create_user_stories", "move_user_story_to_milestone", "assign_user_story", "block_user_story",
		"get_current_milestone", "close_milestone", "reopen_milestone", "set_milestone_dates",
		"change_member_role", "set_member_admin",
		"get_wiki_page_by_slug", "get_or_create_wiki_page", "update_wiki_page_content", "set_wiki_page_deleted",
	} {
		assert.True(t, seen[name], "missing tool %q", name)
	}
}

func TestInstructions(t *testing.T) {
	text := instructions()
	assert.Contains(t, text, "Taiga")
	assert.Contains(t, text, "version")
	assert.Contains(t, text, "YYYY-MM-DD")
}

func TestArgHelpers(t *testing.T) {
	req := callReq(map[string]any{
		"s":    "text",
		"n":    float64(42),
		"b":    true,
		"obj":  map[string]any{"k": "v"},
		"list": []any{"a", "b"},
		"bad":  []any{"a", 1},
	})
	t.Run("stringArg", func(t *testing.T) {
		s, ok := stringArg(req, "s")
		assert.True(t, ok)
		assert.Equal(t, "text", s)
		_, ok = stringArg(req, "n")
		assert.False(t, ok)
		_, ok = stringArg(req, "missing")
		assert.False(t, ok)
	})
	t.Run("intArg", func(t *testing.T) {
		assert.Equal(t, 42, intArg(req, "n", 0))
		assert.Equal(t, 7, intArg(req, "missing", 7))
		assert.Equal(t, 7, intArg(req, "s", 7))
	})
	t.Run("boolArg", func(t *testing.T) {
		assert.True(t, boolArg(req, "b", false))
		assert.True(t, boolArg(req, "missing", true))
		assert.False(t, boolArg(req, "s", false))
	})
	t.Run("objectArg", func(t *testing.T) {
		rec, ok := objectArg(req, "obj")
		assert.True(t, ok)
		assert.Equal(t, "v", rec["k"])
		_, ok = objectArg(req, "s")
		assert.False(t, ok)
	})
	t.Run("stringsArg", func(t *testing.T) {
		got, ok := stringsArg(req, "list")
		assert.True(t, ok)
		assert.Equal(t, []string{"a", "b"}, got)
		_, ok = stringsArg(req, "bad")
		assert.False(t, ok)
	})
	t.Run("nil arguments", func(t *testing.T) {
		empty := mcplib.CallToolRequest{}
		_, ok := stringArg(empty, "s")
		assert.False(t, ok)
		assert.Equal(t, 7, intArg(empty, "n", 7))
	})
}
