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

package auth

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taigamcp/internal/domain"
)

func TestResolve(t *testing.T) {
	empty := fstest.MapFS{}
	t.Run("environment wins", func(t *testing.T) {
		fsys := fstest.MapFS{
			".env": {Data: []byte("TAIGA_TOKEN=from-file-0123456789\n")},
		}
		tok, err := resolve(fsys, "from-env-0123456789")
		require.NoError(t, err)
		assert.Equal(t, domain.AuthToken("from-env-0123456789"), tok)
	})
	t.Run("falls back to first secrets file", func(t *testing.T) {
		fsys := fstest.MapFS{
			".env.txt":    {Data: []byte("TAIGA_TOKEN=from-envtxt-0123456789\n")},
			"secrets.txt": {Data: []byte("TAIGA_TOKEN=from-secrets-0123456789\n")},
		}
		tok, err := resolve(fsys, "")
		require.NoError(t, err)
		assert.Equal(t, domain.AuthToken("from-envtxt-0123456789"), tok)
	})
	t.Run("skips files without the key", func(t *testing.T) {
		fsys := fstest.MapFS{
			".env":        {Data: []byte("OTHER=value\n")},
			"secrets.txt": {Data: []byte("TAIGA_TOKEN=from-secrets-0123456789\n")},
		}
		tok, err := resolve(fsys, "")
		require.NoError(t, err)
		assert.Equal(t, domain.AuthToken("from-secrets-0123456789"), tok)
	})
	t.Run("no token anywhere", func(t *testing.T) {
		_, err := resolve(empty, "")
		assert.ErrorIs(t, err, ErrNoToken)
	})
	t.Run("short env token fails validation", func(t *testing.T) {
		_, err := resolve(empty, "tiny")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrNoToken)
	})
}
