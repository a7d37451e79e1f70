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

// In this file: sentinel errors and transport-error classification.

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"taigamcp/internal/client"
)

var (
	// ErrNotFound indicates the remote resource does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrConflict indicates an optimistic concurrency conflict: the entity's
	// version no longer matches the remote copy.
	ErrConflict = errors.New("version conflict")
)

// classify maps a transport error onto the repository sentinels.  A
// structured client.StatusError is matched on its status code; for opaque
// errors it falls back to best-effort substring inspection of the message.
// Unrecognised errors are returned unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var se *client.StatusError
	if errors.As(err, &se) {
		switch se.Code {
		case http.StatusNotFound:
			return fmt.Errorf("%w: %v", ErrNotFound, err)
		case http.StatusConflict:
			return fmt.Errorf("%w: %v", ErrConflict, err)
		}
		return err
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "404") || strings.Contains(msg, "not found"):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case strings.Contains(msg, "409") || strings.Contains(msg, "conflict"):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	}
	return err
}
