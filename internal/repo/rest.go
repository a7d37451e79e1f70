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

// In this file: the generic REST repository core shared by all entity
// repositories.

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"taigamcp/internal/domain"
)

// Doer is the subset of the API client that repositories need.  Responses
// come back as already-decoded JSON: a map for single resources, a slice
// for collections.
type Doer interface {
	Get(ctx context.Context, path string, params url.Values) (any, error)
	Post(ctx context.Context, path string, data any) (any, error)
	Patch(ctx context.Context, path string, data any) (any, error)
	Delete(ctx context.Context, path string) error
}

// rest is the generic repository core for one resource.  The toEntity and
// toWire pair is the resource's field mapping; everything else is shared.
type rest[T any] struct {
	cl       Doer
	path     string
	toEntity func(domain.Record) (*T, error)
	toWire   func(*T, bool) (domain.Record, error)
}

// GetByID fetches a single entity.  A missing id yields ErrNotFound.
func (r *rest[T]) GetByID(ctx context.Context, id int) (*T, error) {
	resp, err := r.cl.Get(ctx, r.idPath(id), nil)
	if err != nil {
		return nil, classify(err)
	}
	return r.decodeOne(resp)
}

// List fetches entities matching filters.  Zero limit and offset are
// omitted from the query.
func (r *rest[T]) List(ctx context.Context, filters url.Values, limit, offset int) ([]*T, error) {
	params := make(url.Values, len(filters)+2)
	for k, vs := range filters {
		params[k] = vs
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		params.Set("offset", strconv.Itoa(offset))
	}
	resp, err := r.cl.Get(ctx, r.path, params)
	if err != nil {
		return nil, err
	}
	return r.decodeList(resp)
}

// ListByProject fetches the entities belonging to a single project.
func (r *rest[T]) ListByProject(ctx context.Context, projectID int) ([]*T, error) {
	return r.List(ctx, url.Values{"project": {strconv.Itoa(projectID)}}, 0, 0)
}

// Create persists a new entity and returns the server's copy.  Any
// client-supplied id or version is stripped before sending, as both are
// server-assigned.
func (r *rest[T]) Create(ctx context.Context, e *T) (*T, error) {
	rec, err := r.toWire(e, true)
	if err != nil {
		return nil, err
	}
	delete(rec, "id")
	delete(rec, "version")
	resp, err := r.cl.Post(ctx, r.path, rec)
	if err != nil {
		return nil, err
	}
	return r.decodeOne(resp)
}

// Update patches an existing entity and returns the server's copy.  The
// entity must have been persisted: a nil id is a validation error.  A
// missing remote resource classifies as ErrNotFound, a stale version as
// ErrConflict.
//
// Unset optional fields are serialised as explicit nulls: an update always
// follows a fetch, so a nil field means "cleared", and omitting it would
// leave the stale remote value in place (unassign, reopen and unblock all
// clear fields this way).
func (r *rest[T]) Update(ctx context.Context, e *T) (*T, error) {
	rec, err := r.toWire(e, false)
	if err != nil {
		return nil, err
	}
	id, ok := recID(rec)
	if !ok {
		return nil, &domain.ValidationError{Field: "id", Reason: "cannot update an entity that has no id"}
	}
	resp, err := r.cl.Patch(ctx, r.idPath(id), rec)
	if err != nil {
		return nil, classify(err)
	}
	return r.decodeOne(resp)
}

// Delete removes the entity with id.  It reports whether the resource was
// actually deleted: deleting an id that does not exist is not an error.
func (r *rest[T]) Delete(ctx context.Context, id int) (bool, error) {
	err := r.cl.Delete(ctx, r.idPath(id))
	if err == nil {
		return true, nil
	}
	if err = classify(err); errors.Is(err, ErrNotFound) {
		return false, nil
	}
	return false, err
}

// Exists reports whether the entity with id exists remotely.
func (r *rest[T]) Exists(ctx context.Context, id int) (bool, error) {
	_, err := r.GetByID(ctx, id)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	return false, err
}

func (r *rest[T]) idPath(id int) string {
	return fmt.Sprintf("%s/%d", r.path, id)
}

// getOne performs a GET on a sub-path and decodes a single entity.
func (r *rest[T]) getOne(ctx context.Context, path string, params url.Values) (*T, error) {
	resp, err := r.cl.Get(ctx, path, params)
	if err != nil {
		return nil, classify(err)
	}
	return r.decodeOne(resp)
}

func (r *rest[T]) decodeOne(resp any) (*T, error) {
	rec, ok := resp.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("unexpected response shape %T for %s", resp, r.path)
	}
	return r.toEntity(rec)
}

func (r *rest[T]) decodeList(resp any) ([]*T, error) {
	if resp == nil {
		return nil, nil
	}
	items, ok := resp.([]any)
	if !ok {
		return nil, fmt.Errorf("unexpected response shape %T for %s", resp, r.path)
	}
	out := make([]*T, 0, len(items))
	for _, it := range items {
		rec, ok := it.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("unexpected item shape %T for %s", it, r.path)
		}
		e, err := r.toEntity(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// recID extracts the numeric id from a wire record.  JSON decoding yields
// float64 for numbers; records built locally may carry an int.
func recID(rec domain.Record) (int, bool) {
	switch v := rec["id"].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	}
	return 0, false
}
