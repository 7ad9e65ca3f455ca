// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"fmt"
	"reflect"
	"slices"

	"golang.org/x/exp/maps"
)

// Typed is implemented by every value that can be registered in a
// TypeParser. Both the ID and the name are part of the encoding and must
// never change once released.
type Typed interface {
	GetTypeID() uint8
	GetTypeName() string
}

type TypedStruct struct {
	Name string `json:"name"`
	ID   uint8  `json:"id"`
}

type decoder[T Typed] struct {
	name string
	typ  reflect.Type
	f    func(*Packer) (T, error)
}

// TypeParser maps the type ID written in front of every packed item to the
// function able to decode it.
type TypeParser[T Typed] struct {
	indexToDecoder map[uint8]*decoder[T]
	nameToIndex    map[string]uint8
}

func NewTypeParser[T Typed]() *TypeParser[T] {
	return &TypeParser[T]{
		indexToDecoder: map[uint8]*decoder[T]{},
		nameToIndex:    map[string]uint8{},
	}
}

// Register registers [instance] under its own type ID and type name, and sets
// the decoder of that index to [f]. Returns an error if either the ID or the
// name has already been registered.
func (p *TypeParser[T]) Register(instance T, f func(*Packer) (T, error)) error {
	typ := reflect.TypeOf(instance)
	if typ == nil || typ.Kind() != reflect.Pointer || typ.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: %T", ErrNotPointer, instance)
	}

	id, name := instance.GetTypeID(), instance.GetTypeName()
	if _, ok := p.indexToDecoder[id]; ok {
		return fmt.Errorf("%w: type ID %d", ErrDuplicateItem, id)
	}
	if _, ok := p.nameToIndex[name]; ok {
		return fmt.Errorf("%w: type name %q", ErrDuplicateItem, name)
	}
	p.indexToDecoder[id] = &decoder[T]{
		name: name,
		typ:  typ.Elem(),
		f:    f,
	}
	p.nameToIndex[name] = id
	return nil
}

// LookupIndex returns the decoder function and success of lookup of [index]
// from TypeParser [p].
func (p *TypeParser[T]) LookupIndex(index uint8) (func(*Packer) (T, error), bool) {
	d, ok := p.indexToDecoder[index]
	if !ok {
		return nil, false
	}
	return d.f, true
}

func (p *TypeParser[T]) LookupName(name string) (uint8, bool) {
	index, ok := p.nameToIndex[name]
	return index, ok
}

// Unmarshal unpacks a type ID from [pk] and invokes the corresponding
// decoder.
func (p *TypeParser[T]) Unmarshal(pk *Packer) (T, error) {
	var empty T
	typeID := pk.UnpackByte()
	if err := pk.Err(); err != nil {
		return empty, err
	}
	f, ok := p.LookupIndex(typeID)
	if !ok {
		return empty, fmt.Errorf("%w: type ID %d", ErrUnknownType, typeID)
	}
	return f(pk)
}

// GetTypedStructs returns every registered type ordered by ID.
func (p *TypeParser[T]) GetTypedStructs() []TypedStruct {
	typeIDs := maps.Keys(p.indexToDecoder)
	slices.Sort(typeIDs)

	typedStructs := make([]TypedStruct, len(typeIDs))
	for i, id := range typeIDs {
		typedStructs[i] = TypedStruct{
			Name: p.indexToDecoder[id].name,
			ID:   id,
		}
	}
	return typedStructs
}

// newInstance returns a zero value of the type registered under [name].
func (p *TypeParser[T]) newInstance(name string) (T, error) {
	var empty T
	index, ok := p.nameToIndex[name]
	if !ok {
		return empty, fmt.Errorf("%w: type name %q", ErrUnknownType, name)
	}
	v := reflect.New(p.indexToDecoder[index].typ).Interface()
	item, ok := v.(T)
	if !ok {
		return empty, fmt.Errorf("%w: %T", ErrNotPointer, v)
	}
	return item, nil
}
