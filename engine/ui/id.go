package ui

import (
	"encoding/binary"
	"reflect"
)

// ID identifies a widget within a frame. It is a 32-bit FNV-1a hash of
// caller data seeded with the enclosing id scope.
type ID uint32

const (
	hashInitial ID = 2166136261
	hashPrime   ID = 16777619
)

func hashBytes(h ID, data []byte) ID {
	for _, b := range data {
		h = (h ^ ID(b)) * hashPrime
	}
	return h
}

func hashString(h ID, s string) ID {
	for i := 0; i < len(s); i++ {
		h = (h ^ ID(s[i])) * hashPrime
	}
	return h
}

func (ctx *Context) idSeed() ID {
	if ctx.idStack.Empty() {
		return hashInitial
	}
	return ctx.idStack.Top()
}

// ID hashes data into the current id scope. The result is also remembered
// as the last id, see LastID.
func (ctx *Context) ID(data []byte) ID {
	ctx.lastID = hashBytes(ctx.idSeed(), data)
	return ctx.lastID
}

// IDString is ID for string data, without converting to a byte slice.
func (ctx *Context) IDString(s string) ID {
	ctx.lastID = hashString(ctx.idSeed(), s)
	return ctx.lastID
}

// IDPtr hashes the address held by p. It gives widgets bound to a variable
// (checkbox, slider, textbox) an identity that survives across frames.
// p must be a pointer.
func (ctx *Context) IDPtr(p any) ID {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(reflect.ValueOf(p).Pointer()))
	return ctx.ID(b[:])
}

// LastID returns the most recently generated identifier.
func (ctx *Context) LastID() ID { return ctx.lastID }

// PushID opens a nested id scope seeded by data.
func (ctx *Context) PushID(data []byte) { ctx.idStack.Push(ctx.ID(data)) }

func (ctx *Context) PushIDString(s string) { ctx.idStack.Push(ctx.IDString(s)) }

func (ctx *Context) PushIDPtr(p any) { ctx.idStack.Push(ctx.IDPtr(p)) }

func (ctx *Context) PopID() { ctx.idStack.Pop() }
