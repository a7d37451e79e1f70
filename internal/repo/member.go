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
	"taigamcp/internal/domain"
)

var memberRenames = renames{
	"project": "project_id",
	"user":    "user_id",
	"role":    "role_id",
}

var memberToWire = mkToWire[domain.Member, *domain.Member](memberRenames)

// memberToEntity is the inbound mapping for memberships.  The wire email
// can be a string, null, or junk from older API versions; anything that is
// not a valid address string coerces to no email rather than failing the
// whole record.
func memberToEntity(rec domain.Record) (*domain.Member, error) {
	rec = memberRenames.apply(rec)
	if v, ok := rec["email"]; ok {
		em, err := domain.CoerceEmail(v)
		if err != nil {
			return nil, err
		}
		if em == nil {
			delete(rec, "email")
		} else {
			rec["email"] = em.String()
		}
	}
	var m domain.Member
	if err := domain.FromRecord(rec, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Members accesses the memberships resource.
type Members struct {
	rest[domain.Member]
}

func newMembers(cl Doer) *Members {
	return &Members{rest: rest[domain.Member]{
		cl:       cl,
		path:     "memberships",
		toEntity: memberToEntity,
		toWire:   memberToWire,
	}}
}
