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

// In this file: API pacing limits and their YAML configuration file.

import (
	"errors"
	"fmt"
	"os"
	"strings"

	englocale "github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/goccy/go-yaml"
	"golang.org/x/time/rate"
)

// Limits control request pacing and retry behaviour towards the remote API.
type Limits struct {
	// Attempts is the number of tries for a single request before giving up.
	Attempts int `yaml:"attempts" validate:"required,gte=1,lte=10"`
	// RequestsPerSec caps the sustained request rate.
	RequestsPerSec float64 `yaml:"requests_per_sec" validate:"required,gt=0,lte=50"`
	// Burst is the number of requests that may be sent back to back before
	// pacing kicks in.
	Burst uint `yaml:"burst" validate:"required,gte=1,lte=100"`
}

// DefLimits is a safe default that stays well under taiga.io's public
// throttle.
var DefLimits = Limits{
	Attempts:       3,
	RequestsPerSec: 5,
	Burst:          1,
}

// ErrLimitsInvalid is returned when a limits file fails validation.
var ErrLimitsInvalid = errors.New("limits validation failed")

var (
	limitsValidate *validator.Validate
	// ErrTranslations renders limit validation failures as readable English.
	ErrTranslations ut.Translator
)

func init() {
	lang := englocale.New()
	uni := ut.New(lang, lang)
	ErrTranslations, _ = uni.GetTranslator("en")
	limitsValidate = validator.New(validator.WithRequiredStructEnabled())
	if err := entranslations.RegisterDefaultTranslations(limitsValidate, ErrTranslations); err != nil {
		panic(err)
	}
}

// Validate checks the limits against their bounds.
func (l *Limits) Validate() error {
	err := limitsValidate.Struct(l)
	if err == nil {
		return nil
	}
	var vErr validator.ValidationErrors
	if errors.As(err, &vErr) {
		msgs := make([]string, 0, len(vErr))
		for _, fe := range vErr {
			msgs = append(msgs, fe.Translate(ErrTranslations))
		}
		return fmt.Errorf("%w: %s", ErrLimitsInvalid, strings.Join(msgs, "; "))
	}
	return err
}

// limiter builds the rate limiter for these limits.
func (l *Limits) limiter() *rate.Limiter {
	return rate.NewLimiter(rate.Limit(l.RequestsPerSec), int(l.Burst))
}

// LoadLimits reads, parses and validates a limits file.  Unknown and
// duplicate keys are rejected.
func LoadLimits(filename string) (*Limits, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// Duplicate keys are rejected by the decoder itself since go-yaml v1.15.
	var l Limits
	dec := yaml.NewDecoder(f, yaml.DisallowUnknownField())
	if err := dec.Decode(&l); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}
