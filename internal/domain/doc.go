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

// Package domain holds the entity and value-object model of the Taiga
// project-management platform: projects, epics, issues, tasks, user stories,
// milestones, memberships and wiki pages.
//
// Entities are mutable records keyed by a remote-assigned id, with
// construction-time validation (required fields, length and range bounds,
// record-wide string trimming, tag normalisation).  Value objects (Email,
// ProjectSlug, AuthToken) are immutable and validated on construction.
//
// The package knows nothing about the remote API's field naming; the
// translation between wire records and entities lives in internal/repo.
package domain
