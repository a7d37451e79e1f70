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

package repo

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taigamcp/internal/client"
	"taigamcp/internal/domain"
)

// fakeDoer implements Doer with per-method callbacks.  Unset callbacks fail
// the test, so each test declares exactly the traffic it expects.
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

func notFoundErr() error {
	return &client.StatusError{Code: 404, Status: "404 Not Found"}
}

func conflictErr() error {
	return &client.StatusError{Code: 409, Status: "409 Conflict"}
}

var issueWire = domain.Record{
	"id":      float64(42),
	"version": float64(1),
	"subject": "crash",
	"project": float64(5),
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()
	t.Run("found", func(t *testing.T) {
		r := New(&fakeDoer{t: t, onGet: func(path string, _ url.Values) (any, error) {
			assert.Equal(t, "issues/42", path)
			return map[string]any(issueWire), nil
		}})
		e, err := r.Issues.GetByID(ctx, 42)
		require.NoError(t, err)
		assert.Equal(t, "crash", e.Subject)
		require.NotNil(t, e.ProjectID)
		assert.Equal(t, 5, *e.ProjectID)
	})
	t.Run("missing", func(t *testing.T) {
		r := New(&fakeDoer{t: t, onGet: func(string, url.Values) (any, error) {
			return nil, notFoundErr()
		}})
		_, err := r.Issues.GetByID(ctx, 99)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()
	t.Run("filters and paging", func(t *testing.T) {
		r := New(&fakeDoer{t: t, onGet: func(path string, params url.Values) (any, error) {
			assert.Equal(t, "issues", path)
			assert.Equal(t, "5", params.Get("project"))
			assert.Equal(t, "20", params.Get("limit"))
			assert.Equal(t, "40", params.Get("offset"))
			return []any{map[string]any(issueWire)}, nil
		}})
		got, err := r.Issues.List(ctx, url.Values{"project": {"5"}}, 20, 40)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "crash", got[0].Subject)
	})
	t.Run("empty response", func(t *testing.T) {
		r := New(&fakeDoer{t: t, onGet: func(string, url.Values) (any, error) {
			return nil, nil
		}})
		got, err := r.Issues.List(ctx, nil, 0, 0)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
	t.Run("transport error propagates", func(t *testing.T) {
		boom := errors.New("wire snapped")
		r := New(&fakeDoer{t: t, onGet: func(string, url.Values) (any, error) {
			return nil, boom
		}})
		_, err := r.Issues.List(ctx, nil, 0, 0)
		assert.ErrorIs(t, err, boom)
	})
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	t.Run("strips id and version", func(t *testing.T) {
		r := New(&fakeDoer{t: t, onPost: func(path string, data any) (any, error) {
			assert.Equal(t, "issues", path)
			rec, ok := data.(domain.Record)
			require.True(t, ok)
			assert.NotContains(t, rec, "id")
			assert.NotContains(t, rec, "version")
			assert.Equal(t, "crash", rec["subject"])
			assert.Equal(t, float64(5), rec["project"])
			return map[string]any(issueWire), nil
		}})
		e := &domain.Issue{Subject: "crash", ProjectID: domain.Int(5)}
		e.ID = domain.Int(999)
		e.Version = domain.Int(7)
		created, err := r.Issues.Create(ctx, e)
		require.NoError(t, err)
		require.NotNil(t, created.ID)
		assert.Equal(t, 42, *created.ID)
	})
	t.Run("invalid entity never hits the wire", func(t *testing.T) {
		r := New(&fakeDoer{t: t})
		_, err := r.Issues.Create(ctx, &domain.Issue{Subject: "   "})
		assert.True(t, domain.IsValidation(err))
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	persisted := func() *domain.Issue {
		e := &domain.Issue{Subject: "crash", ProjectID: domain.Int(5)}
		e.ID = domain.Int(42)
		e.Version = domain.Int(1)
		return e
	}
	t.Run("patches by id", func(t *testing.T) {
		r := New(&fakeDoer{t: t, onPatch: func(path string, data any) (any, error) {
			assert.Equal(t, "issues/42", path)
			rec, ok := data.(domain.Record)
			require.True(t, ok)
			assert.Equal(t, float64(1), rec["version"])
			return map[string]any{
				"id": float64(42), "version": float64(2),
				"subject": "crash", "project": float64(5),
			}, nil
		}})
		upd, err := r.Issues.Update(ctx, persisted())
		require.NoError(t, err)
		require.NotNil(t, upd.Version)
		assert.Equal(t, 2, *upd.Version)
	})
	t.Run("no id", func(t *testing.T) {
		r := New(&fakeDoer{t: t})
		_, err := r.Issues.Update(ctx, &domain.Issue{Subject: "crash", ProjectID: domain.Int(5)})
		assert.True(t, domain.IsValidation(err))
	})
	t.Run("missing remotely", func(t *testing.T) {
		r := New(&fakeDoer{t: t, onPatch: func(string, any) (any, error) {
			return nil, notFoundErr()
		}})
		_, err := r.Issues.Update(ctx, persisted())
		assert.ErrorIs(t, err, ErrNotFound)
	})
	t.Run("stale version", func(t *testing.T) {
		r := New(&fakeDoer{t: t, onPatch: func(string, any) (any, error) {
			return nil, conflictErr()
		}})
		_, err := r.Issues.Update(ctx, persisted())
		assert.ErrorIs(t, err, ErrConflict)
	})
	t.Run("opaque 404 text classifies too", func(t *testing.T) {
		r := New(&fakeDoer{t: t, onPatch: func(string, any) (any, error) {
			return nil, errors.New("remote said 404")
		}})
		_, err := r.Issues.Update(ctx, persisted())
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	t.Run("deleted", func(t *testing.T) {
		r := New(&fakeDoer{t: t, onDelete: func(path string) error {
			assert.Equal(t, "issues/42", path)
			return nil
		}})
		ok, err := r.Issues.Delete(ctx, 42)
		require.NoError(t, err)
		assert.True(t, ok)
	})
	t.Run("already gone", func(t *testing.T) {
		r := New(&fakeDoer{t: t, onDelete: func(string) error {
			return notFoundErr()
		}})
		ok, err := r.Issues.Delete(ctx, 42)
		require.NoError(t, err)
		assert.False(t, ok)
	})
	t.Run("other failure", func(t *testing.T) {
		boom := errors.New("wire snapped")
		r := New(&fakeDoer{t: t, onDelete: func(string) error {
			return boom
		}})
		_, err := r.Issues.Delete(ctx, 42)
		assert.ErrorIs(t, err, boom)
	})
}

func TestExists(t *testing.T) {
	ctx := context.Background()
	t.Run("yes", func(t *testing.T) {
		r := New(&fakeDoer{t: t, onGet: func(string, url.Values) (any, error) {
			return map[string]any(issueWire), nil
		}})
		ok, err := r.Issues.Exists(ctx, 42)
		require.NoError(t, err)
		assert.True(t, ok)
	})
	t.Run("no", func(t *testing.T) {
		r := New(&fakeDoer{t: t, onGet: func(string, url.Values) (any, error) {
			return nil, notFoundErr()
		}})
		ok, err := r.Issues.Exists(ctx, 42)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestProjectsGetBySlug(t *testing.T) {
	r := New(&fakeDoer{t: t, onGet: func(path string, params url.Values) (any, error) {
		assert.Equal(t, "projects/by_slug", path)
		assert.Equal(t, "sprint-2024", params.Get("slug"))
		return map[string]any{"id": float64(5), "name": "Sprint", "slug": "sprint-2024"}, nil
	}})
	p, err := r.Projects.GetBySlug(context.Background(), "sprint-2024")
	require.NoError(t, err)
	assert.Equal(t, "Sprint", p.Name)
}

func TestGetByRef(t *testing.T) {
	r := New(&fakeDoer{t: t, onGet: func(path string, params url.Values) (any, error) {
		assert.Equal(t, "issues/by_ref", path)
		assert.Equal(t, "5", params.Get("project"))
		assert.Equal(t, "17", params.Get("ref"))
		return map[string]any(issueWire), nil
	}})
	e, err := r.Issues.GetByRef(context.Background(), 5, 17)
	require.NoError(t, err)
	assert.Equal(t, "crash", e.Subject)
}

func TestIssuesBulkCreate(t *testing.T) {
	r := New(&fakeDoer{t: t, onPost: func(path string, data any) (any, error) {
		assert.Equal(t, "issues/bulk_create", path)
		rec, ok := data.(domain.Record)
		require.True(t, ok)
		assert.Equal(t, 5, rec["project_id"])
		assert.Equal(t, "first\nsecond", rec["bulk_issues"])
		return []any{
			map[string]any{"id": float64(1), "subject": "first", "project": float64(5)},
			map[string]any{"id": float64(2), "subject": "second", "project": float64(5)},
		}, nil
	}})
	got, err := r.Issues.BulkCreate(context.Background(), 5, []string{"first", "second"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "second", got[1].Subject)
}

func TestMoveToMilestone(t *testing.T) {
	t.Run("attach", func(t *testing.T) {
		r := New(&fakeDoer{t: t, onPatch: func(path string, data any) (any, error) {
			assert.Equal(t, "userstories/11", path)
			assert.Equal(t, domain.Record{"milestone": 3}, data)
			return map[string]any{
				"id": float64(11), "subject": "story", "project": float64(5), "milestone": float64(3),
			}, nil
		}})
		us, err := r.UserStories.MoveToMilestone(context.Background(), 11, 3)
		require.NoError(t, err)
		require.NotNil(t, us.MilestoneID)
		assert.Equal(t, 3, *us.MilestoneID)
	})
	t.Run("detach", func(t *testing.T) {
		r := New(&fakeDoer{t: t, onPatch: func(path string, data any) (any, error) {
			assert.Equal(t, domain.Record{"milestone": nil}, data)
			return map[string]any{"id": float64(11), "subject": "story", "project": float64(5)}, nil
		}})
		us, err := r.UserStories.MoveToMilestone(context.Background(), 11, 0)
		require.NoError(t, err)
		assert.Nil(t, us.MilestoneID)
	})
}

func TestMilestonesCurrent(t *testing.T) {
	r := New(&fakeDoer{t: t, onGet: func(path string, params url.Values) (any, error) {
		assert.Equal(t, "milestones", path)
		assert.Equal(t, "5", params.Get("project"))
		return []any{
			map[string]any{"id": float64(1), "name": "done", "project": float64(5), "is_closed": true, "estimated_start": "2024-01-01"},
			map[string]any{"id": float64(2), "name": "later", "project": float64(5), "estimated_start": "2025-06-01"},
			map[string]any{"id": float64(3), "name": "now", "project": float64(5), "estimated_start": "2025-01-01"},
		}, nil
	}})
	m, err := r.Milestones.Current(context.Background(), 5)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, "now", m.Name)
}

func TestWikiPagesGetOrCreate(t *testing.T) {
	ctx := context.Background()
	t.Run("existing page wins", func(t *testing.T) {
		r := New(&fakeDoer{t: t, onGet: func(path string, params url.Values) (any, error) {
			assert.Equal(t, "wiki/by_slug", path)
			assert.Equal(t, "home", params.Get("slug"))
			return map[string]any{"id": float64(1), "slug": "home", "project": float64(5), "content": "old"}, nil
		}})
		pg, err := r.WikiPages.GetOrCreate(ctx, 5, "home", "new")
		require.NoError(t, err)
		assert.Equal(t, "old", pg.Content)
	})
	t.Run("created when missing", func(t *testing.T) {
		r := New(&fakeDoer{t: t,
			onGet: func(string, url.Values) (any, error) {
				return nil, notFoundErr()
			},
			onPost: func(path string, data any) (any, error) {
				assert.Equal(t, "wiki", path)
				rec, ok := data.(domain.Record)
				require.True(t, ok)
				assert.Equal(t, "home", rec["slug"])
				assert.Equal(t, "welcome", rec["content"])
				assert.Equal(t, float64(5), rec["project"])
				return map[string]any{"id": float64(9), "slug": "home", "project": float64(5), "content": "welcome"}, nil
			},
		})
		pg, err := r.WikiPages.GetOrCreate(ctx, 5, "home", "welcome")
		require.NoError(t, err)
		require.NotNil(t, pg.ID)
		assert.Equal(t, 9, *pg.ID)
	})
}

func TestUpdateClearsFields(t *testing.T) {
	ctx := context.Background()
	serverCopy := map[string]any{
		"id": float64(42), "version": float64(2),
		"subject": "story", "project": float64(5),
	}
	t.Run("unassign sends explicit null", func(t *testing.T) {
		r := New(&fakeDoer{t: t, onPatch: func(path string, data any) (any, error) {
			assert.Equal(t, "userstories/42", path)
			rec, ok := data.(domain.Record)
			require.True(t, ok)
			require.Contains(t, rec, "assigned_to")
			assert.Nil(t, rec["assigned_to"])
			return serverCopy, nil
		}})
		e := &domain.UserStory{Subject: "story", ProjectID: domain.Int(5), AssignedToID: domain.Int(7)}
		e.ID = domain.Int(42)
		e.Version = domain.Int(1)
		e.Unassign()
		_, err := r.UserStories.Update(ctx, e)
		require.NoError(t, err)
	})
	t.Run("reopen clears finished date", func(t *testing.T) {
		r := New(&fakeDoer{t: t, onPatch: func(_ string, data any) (any, error) {
			rec, ok := data.(domain.Record)
			require.True(t, ok)
			assert.Equal(t, false, rec["is_closed"])
			require.Contains(t, rec, "finished_date")
			assert.Nil(t, rec["finished_date"])
			return serverCopy, nil
		}})
		e := &domain.Issue{Subject: "crash", ProjectID: domain.Int(5)}
		e.ID = domain.Int(42)
		e.Version = domain.Int(1)
		e.Close(time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC))
		e.Reopen()
		_, err := r.Issues.Update(ctx, e)
		require.NoError(t, err)
	})
	t.Run("unblock clears note", func(t *testing.T) {
		r := New(&fakeDoer{t: t, onPatch: func(_ string, data any) (any, error) {
			rec, ok := data.(domain.Record)
			require.True(t, ok)
			assert.Equal(t, false, rec["is_blocked"])
			assert.Equal(t, "", rec["blocked_note"])
			return serverCopy, nil
		}})
		e := &domain.Task{Subject: "story", ProjectID: domain.Int(5)}
		e.ID = domain.Int(42)
		e.Version = domain.Int(1)
		e.Block("waiting on design")
		e.Unblock()
		_, err := r.Tasks.Update(ctx, e)
		require.NoError(t, err)
	})
}
