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

import "time"

// Member is a project membership: the link between a user and a project,
// carrying the role and admin flag.
type Member struct {
	Entity

	ProjectID *int `json:"project_id" validate:"required,gt=0"`
	UserID    *int `json:"user_id" validate:"required,gt=0"`
	RoleID    *int `json:"role_id,omitempty" validate:"omitnil,gt=0"`

	FullName string `json:"full_name,omitempty"`
	Username string `json:"username" validate:"required"`

	Email *Email `json:"email,omitempty"`

	IsAdmin bool `json:"is_admin"`

	CreatedDate  *time.Time `json:"created_date,omitempty"`
	ModifiedDate *time.Time `json:"modified_date,omitempty"`
}

func (m *Member) Validate() error {
	trimStrings(m)
	if m.Email != nil {
		e, err := NewEmail(string(*m.Email))
		if err != nil {
			return err
		}
		*m.Email = e
	}
	return checkStruct(m)
}

// MakeAdmin grants project admin rights.
func (m *Member) MakeAdmin() { m.IsAdmin = true }

// RemoveAdmin revokes project admin rights.
func (m *Member) RemoveAdmin() { m.IsAdmin = false }

// ChangeRole sets the role.  The id must be positive.
func (m *Member) ChangeRole(roleID int) error {
	if roleID <= 0 {
		return invalid("role_id", "must be a positive id")
	}
	m.RoleID = &roleID
	return nil
}
