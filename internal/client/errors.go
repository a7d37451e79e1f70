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

package client

// In this file: the structured error for non-2xx responses.

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// maxErrBody caps how much of an error response body is kept for the
// message.
const maxErrBody = 4096

// StatusError is returned when the remote API responds with a non-2xx
// status.  It carries the status code so that callers never have to match
// on the message text.
type StatusError struct {
	Code   int    // HTTP status code
	Status string // status line, e.g. "404 Not Found"
	Body   string // trimmed response body, possibly empty

	// RetryAfter is the server-requested delay on 429 responses, zero
	// otherwise.
	RetryAfter time.Duration
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return "server responded with " + e.Status
	}
	return fmt.Sprintf("server responded with %s: %s", e.Status, e.Body)
}

// newStatusError builds a StatusError from a response, consuming up to
// maxErrBody bytes of the body.
func newStatusError(resp *http.Response) *StatusError {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrBody))
	se := &StatusError{
		Code:   resp.StatusCode,
		Status: resp.Status,
		Body:   strings.TrimSpace(string(b)),
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		if s := resp.Header.Get("Retry-After"); s != "" {
			if sec, err := strconv.Atoi(s); err == nil && sec > 0 {
				se.RetryAfter = time.Duration(sec) * time.Second
			}
		}
	}
	return se
}
