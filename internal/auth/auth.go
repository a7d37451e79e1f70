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

// Package auth resolves the Taiga API token from the environment or from a
// local secrets file.
package auth

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"taigamcp/internal/domain"
)

// TokenEnv is the environment variable holding the API token.
const TokenEnv = "TAIGA_TOKEN"

// SecretFiles are the files probed for a token, in order, when the
// environment does not provide one.
var SecretFiles = []string{".env", ".env.txt", "secrets.txt"}

// ErrNoToken is returned when no token could be found anywhere.
var ErrNoToken = errors.New("no API token: set " + TokenEnv + " or put it in a secrets file")

// LoadSecrets loads environment variables from the given dotenv files.
// Missing or malformed files are skipped.
func LoadSecrets(files []string) {
	for _, f := range files {
		godotenv.Load(f)
	}
}

// Resolve returns the API token from the TAIGA_TOKEN environment variable,
// falling back to the secrets files in the current directory.
func Resolve() (domain.AuthToken, error) {
	return resolve(os.DirFS("."), os.Getenv(TokenEnv))
}

func resolve(fsys fs.FS, envToken string) (domain.AuthToken, error) {
	if envToken != "" {
		return domain.NewAuthToken(envToken)
	}
	for _, filename := range SecretFiles {
		tok, err := parseDotEnv(fsys, filename)
		if err != nil {
			continue
		}
		return tok, nil
	}
	return "", ErrNoToken
}

// parseDotEnv extracts and validates the token from one dotenv-format file.
func parseDotEnv(fsys fs.FS, filename string) (domain.AuthToken, error) {
	f, err := fsys.Open(filename)
	if err != nil {
		return "", err
	}
	defer f.Close()
	secrets, err := godotenv.Parse(f)
	if err != nil {
		return "", errors.New("not a secrets file")
	}
	token, ok := secrets[TokenEnv]
	if !ok {
		return "", errors.New("no " + TokenEnv + " found in the file")
	}
	return domain.NewAuthToken(token)
}
