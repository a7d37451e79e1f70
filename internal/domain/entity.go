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

package domain

// In this file: the Entity identity base embedded in every record.

import (
	"encoding/binary"
	"hash/fnv"
	"reflect"
)

// Entity is the identity base embedded in every domain record.  ID and
// Version are assigned by the remote API; both stay nil until the record is
// persisted.  Version is compared remotely on update for optimistic
// concurrency.
type Entity struct {
	ID      *int `json:"id,omitempty"`
	Version *int `json:"version,omitempty"`
}

// Same reports identity equality: both records carry a non-nil id and the
// ids match.  A record without an id equals nothing, not even another
// unsaved record with identical field values.
func (e *Entity) Same(o *Entity) bool {
	if e == nil || o == nil || e.ID == nil || o.ID == nil {
		return false
	}
	return *e.ID == *o.ID
}

// Hash returns a value stable across instances for persisted records
// (derived from the id) and a per-instance value for unsaved ones.
func (e *Entity) Hash() uint64 {
	if e.ID != nil {
		h := fnv.New64a()
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], uint64(*e.ID))
		h.Write(b[:])
		return h.Sum64()
	}
	return uint64(reflect.ValueOf(e).Pointer())
}

// Persisted reports whether the record has been assigned a remote id.
func (e *Entity) Persisted() bool { return e != nil && e.ID != nil }

// Int returns a pointer to v.  Convenience for optional numeric fields.
func Int(v int) *int { return &v }

// Float64 returns a pointer to v.
func Float64(v float64) *float64 { return &v }
