// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"fmt"
)

// TypeParser maps the type ID of a registered [Typed] to the function that
// decodes it.
type TypeParser[T Typed] struct {
	indexToDecoder map[uint8]func(*Packer) (T, error)
}

func NewTypeParser[T Typed]() *TypeParser[T] {
	return &TypeParser[T]{
		indexToDecoder: map[uint8]func(*Packer) (T, error){},
	}
}

// Register adds [f] as the decoder for the type ID of [instance].
func (p *TypeParser[T]) Register(instance Typed, f func(*Packer) (T, error)) error {
	id := instance.GetTypeID()
	if _, ok := p.indexToDecoder[id]; ok {
		return fmt.Errorf("%w: type id %d", ErrDuplicateItem, id)
	}
	p.indexToDecoder[id] = f
	return nil
}

// LookupIndex returns the decoder registered for [index].
func (p *TypeParser[T]) LookupIndex(index uint8) (func(*Packer) (T, error), bool) {
	f, ok := p.indexToDecoder[index]
	return f, ok
}

// Unmarshal reads a type ID followed by the type it identifies.
func (p *TypeParser[T]) Unmarshal(r *Packer) (T, error) {
	var empty T
	typeID := r.UnpackByte()
	if err := r.Err(); err != nil {
		return empty, err
	}
	f, ok := p.indexToDecoder[typeID]
	if !ok {
		return empty, fmt.Errorf("%w: type id %d", ErrUnknownType, typeID)
	}
	return f(r)
}
