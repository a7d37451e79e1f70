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

// In this file: key renaming between wire records and entity records.

import "taigamcp/internal/domain"

// renames maps source key names to target key names for one direction of
// the wire↔entity translation.
type renames map[string]string

// apply returns a copy of rec with the renames applied.  A key is renamed
// only when the source name is present and the target name is absent, so a
// record that is already in target form passes through unchanged.
func (r renames) apply(rec domain.Record) domain.Record {
	out := make(domain.Record, len(rec))
	for k, v := range rec {
		out[k] = v
	}
	for from, to := range r {
		v, ok := out[from]
		if !ok {
			continue
		}
		if _, taken := out[to]; taken {
			continue
		}
		delete(out, from)
		out[to] = v
	}
	return out
}

// inverse returns the renames for the opposite direction.
func (r renames) inverse() renames {
	inv := make(renames, len(r))
	for from, to := range r {
		inv[to] = from
	}
	return inv
}

// mkToEntity builds the inbound mapping function for an entity type: apply
// the wire→entity renames, then decode and validate.
func mkToEntity[T any, PT interface {
	*T
	domain.Validator
}](ren renames) func(domain.Record) (*T, error) {
	return func(rec domain.Record) (*T, error) {
		e := PT(new(T))
		if err := domain.FromRecord(ren.apply(rec), e); err != nil {
			return nil, err
		}
		return (*T)(e), nil
	}
}

// mkToWire builds the outbound mapping function: validate (which also
// normalises the entity in place), serialise, then apply the entity→wire
// renames.
func mkToWire[T any, PT interface {
	*T
	domain.Validator
}](ren renames) func(*T, bool) (domain.Record, error) {
	inv := ren.inverse()
	return func(e *T, excludeUnset bool) (domain.Record, error) {
		if err := PT(e).Validate(); err != nil {
			return nil, err
		}
		rec, err := domain.ToRecord(e, excludeUnset)
		if err != nil {
			return nil, err
		}
		return inv.apply(rec), nil
	}
}
