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

// In this file: flat-record (de)serialization shared by every entity.

import (
	"encoding/json"
	"reflect"
	"strings"
)

// Record is a flat field-name to value mapping, as decoded from or encoded
// for JSON.
type Record = map[string]any

// Validator is implemented by every entity; Validate normalises the record
// in place and reports the first violated constraint.
type Validator interface{ Validate() error }

// ToRecord serialises v into a Record based on its json tags.  When
// excludeUnset is true, unset optional fields are omitted; otherwise they
// are retained with an explicit null.
func ToRecord(v any, excludeUnset bool) (Record, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var rec Record
	if err := json.Unmarshal(b, &rec); err != nil {
		return nil, err
	}
	if !excludeUnset {
		addUnset(reflect.ValueOf(v), rec)
	}
	return rec, nil
}

// FromRecord decodes rec into the entity e and validates it.  Type
// mismatches in the record surface as a ValidationError.
func FromRecord(rec Record, e Validator) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, e); err != nil {
		return &ValidationError{Reason: err.Error()}
	}
	return e.Validate()
}

// UpdateRecord overwrites only the fields of e that are present in rec and
// exist on the entity, then re-validates.  Unknown keys are ignored.
func UpdateRecord(rec Record, e Validator) error {
	known := fieldSet(reflect.TypeOf(e).Elem())
	filtered := make(Record, len(rec))
	for k, v := range rec {
		if _, ok := known[k]; ok {
			filtered[k] = v
		}
	}
	b, err := json.Marshal(filtered)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, e); err != nil {
		return &ValidationError{Reason: err.Error()}
	}
	return e.Validate()
}

// addUnset inserts an explicit null for every nil optional field that the
// json encoder omitted.
func addUnset(rv reflect.Value, rec Record) {
	rv = reflect.Indirect(rv)
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if f.Anonymous {
			addUnset(rv.Field(i), rec)
			continue
		}
		name, ok := jsonName(f)
		if !ok {
			continue
		}
		switch rv.Field(i).Kind() {
		case reflect.Pointer, reflect.Slice, reflect.Map:
			if rv.Field(i).IsNil() {
				if _, present := rec[name]; !present {
					rec[name] = nil
				}
			}
		}
	}
}

// fieldSet collects the json field names of a struct type, descending into
// embedded structs.
func fieldSet(t reflect.Type) map[string]struct{} {
	out := make(map[string]struct{}, t.NumField())
	collectFields(t, out)
	return out
}

func collectFields(t reflect.Type, out map[string]struct{}) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			collectFields(f.Type, out)
			continue
		}
		if name, ok := jsonName(f); ok {
			out[name] = struct{}{}
		}
	}
}

func jsonName(f reflect.StructField) (string, bool) {
	tag := f.Tag.Get("json")
	if tag == "-" {
		return "", false
	}
	name := strings.SplitN(tag, ",", 2)[0]
	if name == "" {
		name = f.Name
	}
	return name, true
}
