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

// slugRe allows lowercase alphanumeric groups joined by single hyphens;
// never leading, trailing or doubled.
var slugRe = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ProjectSlug is a URL-safe project identifier value object.
type ProjectSlug string

// NewProjectSlug validates a slug.
func NewProjectSlug(s string) (ProjectSlug, error) {
	s = strings.TrimSpace(s)
	if l := len(s); l < 3 || l > 50 {
		return "", invalid("slug", "must be between 3 and 50 characters")
	}
	if !slugRe.MatchString(s) {
		return "", invalid("slug", fmt.Sprintf("%q must be lowercase alphanumeric groups separated by single hyphens", s))
	}
	return ProjectSlug(s), nil
}

func (s ProjectSlug) String() string { return string(s) }
