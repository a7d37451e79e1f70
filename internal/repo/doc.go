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

// Package repo maps Taiga REST resources onto domain entities.
//
// Each resource gets a repository built on the generic rest core, which
// provides GetByID, List, Create, Update, Delete and Exists; entity-specific
// conveniences (by-slug and by-ref lookups, bulk creation, milestone moves)
// sit on top.  The wire format uses Taiga's link-field names (project,
// assigned_to, milestone, ...), the entities use explicit id-suffixed names
// (project_id, assigned_to_id, ...); the per-entity rename tables in this
// package are the only place that knows about the difference.
package repo
