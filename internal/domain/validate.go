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

// In this file: struct-tag validation wiring and the record-wide string
// trimming policy.

import (
	"errors"
	"reflect"
	"strings"

	englocale "github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

var (
	validate *validator.Validate
	trans    ut.Translator
)

func init() {
	lang := englocale.New()
	uni := ut.New(lang, lang)
	trans, _ = uni.GetTranslator("en")

	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	if err := entranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		panic(err)
	}
}

// checkStruct runs tag validation on v and converts the first failure into a
// *ValidationError with a translated message.
func checkStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var vErr validator.ValidationErrors
	if errors.As(err, &vErr) && len(vErr) > 0 {
		fe := vErr[0]
		return &ValidationError{Field: fe.Field(), Reason: fe.Translate(trans)}
	}
	return err
}

// trimStrings strips leading and trailing whitespace from every string-kind
// field of the struct pointed to by v, including fields behind a pointer.
// This is the record-wide trimming policy: it runs before any per-field
// validation.
func trimStrings(v any) {
	rv := reflect.ValueOf(v).Elem()
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		switch f.Kind() {
		case reflect.String:
			if f.CanSet() {
				f.SetString(strings.TrimSpace(f.String()))
			}
		case reflect.Pointer:
			if !f.IsNil() && f.Elem().Kind() == reflect.String && f.Elem().CanSet() {
				f.Elem().SetString(strings.TrimSpace(f.Elem().String()))
			}
		}
	}
}
