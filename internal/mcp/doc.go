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

// Package mcp implements a Model Context Protocol server that exposes a
// Taiga project-management instance as tools for AI agents.
//
// Every resource (projects, epics, issues, tasks, user stories, milestones,
// memberships, wiki pages) gets the standard list/get/create/update/delete
// tools plus resource-specific conveniences such as by-ref lookups, bulk
// creation and sprint moves.  Read tools degrade opaque transport failures
// to empty results with a warning in the log, so a flaky connection does
// not derail an agent's whole session; mutating tools always surface
// errors.
//
// The server supports two transports: stdio (default, for local agent
// integrations) and Streamable HTTP (for remote agents).
package mcp
