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
	"fmt"
	"regexp"
	"strings"
)

// emailRe is a simplified RFC 5322 pattern: local@domain.tld.
var emailRe = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)

// Email is an e-mail address value object.  It is stored lower-cased and
// validated on construction.
type Email string

// NewEmail validates and normalises an address.
func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if l := len(s); l < 3 || l > 254 {
		return "", invalid("email", "must be between 3 and 254 characters")
	}
	if !emailRe.MatchString(s) {
		return "", invalid("email", fmt.Sprintf("%q is not a valid e-mail address", s))
	}
	return Email(s), nil
}

func (e Email) String() string { return string(e) }

// Domain returns the part after the "@".
func (e Email) Domain() string {
	_, domain, _ := strings.Cut(string(e), "@")
	return domain
}

// LocalPart returns the part before the "@".
func (e Email) LocalPart() string {
	local, _, _ := strings.Cut(string(e), "@")
	return local
}

// CoerceEmail converts a decoded wire value into an optional Email.
// Strings are validated and normalised, null yields nil, and a value of any
// other type is dropped to nil rather than rejected.  The remote API has
// been observed sending non-string values here; dropping them keeps parity
// with its other clients.
func CoerceEmail(v any) (*Email, error) {
	s, ok := v.(string)
	if !ok {
		return nil, nil
	}
	e, err := NewEmail(s)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
