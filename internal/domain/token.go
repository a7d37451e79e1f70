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

import (
	"log/slog"
	"strings"
)

const bearerPrefix = "Bearer "

// AuthToken is an API access token value object.  It may be stored with or
// without the "Bearer " prefix; the accessors normalise either way.
type AuthToken string

// NewAuthToken validates a token.  Anything shorter than 10 characters
// after trimming is rejected.
func NewAuthToken(s string) (AuthToken, error) {
	s = strings.TrimSpace(s)
	if len(s) < 10 {
		return "", invalid("token", "must be at least 10 characters")
	}
	return AuthToken(s), nil
}

// IsBearerFormat reports whether the stored value carries the "Bearer "
// prefix.
func (t AuthToken) IsBearerFormat() bool {
	return strings.HasPrefix(string(t), bearerPrefix)
}

// BearerToken returns the token in "Bearer ..." form.  Calling it on an
// already prefixed token is idempotent.
func (t AuthToken) BearerToken() string {
	if t.IsBearerFormat() {
		return string(t)
	}
	return bearerPrefix + string(t)
}

// RawToken returns the token without the "Bearer " prefix.
func (t AuthToken) RawToken() string {
	return strings.TrimPrefix(string(t), bearerPrefix)
}

func (t AuthToken) String() string { return string(t) }

// GoString masks everything but the trailing six characters, so %#v never
// leaks the secret.
func (t AuthToken) GoString() string { return "domain.AuthToken(" + t.masked() + ")" }

// LogValue implements slog.LogValuer; tokens are always logged masked.
func (t AuthToken) LogValue() slog.Value { return slog.StringValue(t.masked()) }

func (t AuthToken) masked() string {
	const keep = 6
	raw := t.RawToken()
	if len(raw) <= keep {
		return strings.Repeat("*", len(raw))
	}
	return strings.Repeat("*", len(raw)-keep) + raw[len(raw)-keep:]
}
