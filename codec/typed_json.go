// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
)

const typeKey = "type"

var errNotObject = errors.New("typed value must encode to a JSON object")

// MarshalTypedJSON encodes [item] as a JSON object whose first key is "type",
// holding the registered type name, followed by the fields of [item].
// Registered types must not use "type" as a JSON field name.
func MarshalTypedJSON[T Typed](item T) ([]byte, error) {
	raw, err := json.Marshal(item)
	if err != nil {
		return nil, err
	}
	if len(raw) < 2 || raw[0] != '{' {
		return nil, fmt.Errorf("%w: %T", errNotObject, item)
	}
	name, err := json.Marshal(item.GetTypeName())
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(raw)+len(name)+len(typeKey)+4)
	out = append(out, `{"`+typeKey+`":`...)
	out = append(out, name...)
	if len(raw) > 2 {
		out = append(out, ',')
		out = append(out, raw[1:]...)
	} else {
		out = append(out, '}')
	}
	return out, nil
}

// UnmarshalTypedJSON decodes an object produced by MarshalTypedJSON into a
// new instance of the type registered under its "type" name. Every field
// without omitempty must be present and non-null.
func (p *TypeParser[T]) UnmarshalTypedJSON(b []byte) (T, error) {
	var (
		empty  T
		header struct {
			Type string `json:"type"`
		}
	)
	if err := json.Unmarshal(b, &header); err != nil {
		return empty, err
	}
	if header.Type == "" {
		return empty, ErrMissingType
	}
	item, err := p.newInstance(header.Type)
	if err != nil {
		return empty, err
	}
	if err := json.Unmarshal(b, item); err != nil {
		return empty, fmt.Errorf("%w: could not unmarshal %s", err, header.Type)
	}
	if err := checkFields(b, reflect.TypeOf(item).Elem()); err != nil {
		return empty, fmt.Errorf("%w: %s", err, header.Type)
	}
	return item, nil
}

func checkFields(b []byte, typ reflect.Type) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return err
	}
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		name, opts, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" || strings.Contains(opts, "omitempty") {
			continue
		}
		if name == "" {
			name = f.Name
		}
		if raw, ok := fields[name]; !ok || string(raw) == "null" {
			return fmt.Errorf("%w: %s", ErrFieldNotPopulated, name)
		}
	}
	return nil
}
