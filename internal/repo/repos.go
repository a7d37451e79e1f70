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

// Repos bundles one repository per resource, all sharing a single client.
type Repos struct {
	Projects    *Projects
	Epics       *Epics
	Issues      *Issues
	Tasks       *Tasks
	UserStories *UserStories
	Milestones  *Milestones
	Members     *Members
	WikiPages   *WikiPages
}

// New creates the repository set on top of cl.
func New(cl Doer) *Repos {
	return &Repos{
		Projects:    newProjects(cl),
		Epics:       newEpics(cl),
		Issues:      newIssues(cl),
		Tasks:       newTasks(cl),
		UserStories: newUserStories(cl),
		Milestones:  newMilestones(cl),
		Members:     newMembers(cl),
		WikiPages:   newWikiPages(cl),
	}
}
