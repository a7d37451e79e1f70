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
	"sort"
	"time"
)

// Milestone is a sprint: a named date range with a team availability ratio
// and a display order.
type Milestone struct {
	Entity

	Name string  `json:"name" validate:"required,max=255"`
	Slug *string `json:"slug,omitempty"`

	ProjectID *int `json:"project_id" validate:"required,gt=0"`

	EstimatedStart  *Date `json:"estimated_start,omitempty"`
	EstimatedFinish *Date `json:"estimated_finish,omitempty"`

	IsClosed bool `json:"is_closed"`

	// Disponibility is the team availability ratio for the sprint, 0..1.
	Disponibility *float64 `json:"disponibility,omitempty" validate:"omitnil,gte=0,lte=1"`
	// Order is the display position, starting at 1.
	Order *int `json:"order,omitempty" validate:"omitnil,gte=1"`

	CreatedDate  *time.Time `json:"created_date,omitempty"`
	ModifiedDate *time.Time `json:"modified_date,omitempty"`
}

func (m *Milestone) Validate() error {
	trimStrings(m)
	if err := checkStruct(m); err != nil {
		return err
	}
	if m.EstimatedStart != nil && m.EstimatedFinish != nil && m.EstimatedFinish.Before(*m.EstimatedStart) {
		return invalid("estimated_finish", "must not precede estimated_start")
	}
	return nil
}

// Close marks the milestone closed.
func (m *Milestone) Close() { m.IsClosed = true }

// Reopen clears the closed state.
func (m *Milestone) Reopen() { m.IsClosed = false }

// SetDates sets the estimated range.  finish must not precede start; an
// equal pair is a valid one-day sprint.
func (m *Milestone) SetDates(start, finish Date) error {
	if finish.Before(start) {
		return invalid("estimated_finish", "must not precede estimated_start")
	}
	m.EstimatedStart = &start
	m.EstimatedFinish = &finish
	return nil
}

// CurrentMilestone returns the earliest open milestone by estimated start
// date, or nil when none is open.  The sort is stable and milestones
// without a start date order last, so simultaneous candidates keep their
// incoming order.
func CurrentMilestone(ms []*Milestone) *Milestone {
	open := make([]*Milestone, 0, len(ms))
	for _, m := range ms {
		if m != nil && !m.IsClosed {
			open = append(open, m)
		}
	}
	if len(open) == 0 {
		return nil
	}
	sort.SliceStable(open, func(i, j int) bool {
		a, b := open[i].EstimatedStart, open[j].EstimatedStart
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.Before(*b)
		}
	})
	return open[0]
}
