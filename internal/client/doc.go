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

// Package client is the HTTP transport to the Taiga REST API.  It owns
// request pacing, retries for transient failures (429 and recoverable 5xx),
// authentication headers and JSON decoding.  Responses come back as decoded
// values; non-2xx statuses surface as *StatusError so that the layers above
// can classify failures on the status code rather than on message text.
package client
