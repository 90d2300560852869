// Package schema declares the message and field metadata of the OpenRTB
// Native protocol as static descriptors: field numbers, names, cardinality,
// defaults, enum value sets, and the vendor extension range. The registry is
// assembled once at package initialization and never mutated afterwards, so
// it is safe for unsynchronized concurrent reads.
//
// Field numbers are part of the wire contract and must never be reassigned.
package schema

import (
	"fmt"

	"github.com/leerob727/openrtb/errortypes"
	"github.com/leerob727/openrtb/native1"
)

// Cardinality describes how many values a field carries.
type Cardinality int

const (
	// Optional fields may be absent. Absence is distinct from the zero value.
	Optional Cardinality = iota

	// Required fields must hold a value before the message is encodable.
	Required

	// Repeated fields hold an ordered sequence of zero or more values.
	Repeated
)

// Kind describes the shape of a field value.
type Kind int

const (
	Int32 Kind = iota
	Bool
	String
	Enum
	Message
)

// FieldDescriptor describes one declared field of a message.
type FieldDescriptor struct {
	Number      int32
	Name        string
	Cardinality Cardinality
	Kind        Kind

	// Default is the value getters report when an Optional field is absent.
	// Nil means the zero value of the kind.
	Default any

	// Enum is set for Enum kind fields.
	Enum *EnumDescriptor

	// Message is set for Message kind fields.
	Message *MessageDescriptor
}

// MessageDescriptor describes one message type: its declared fields plus the
// shared vendor extension range.
type MessageDescriptor struct {
	Name   string
	Fields []FieldDescriptor

	byNumber map[int32]*FieldDescriptor
	byName   map[string]*FieldDescriptor
}

func newMessageDescriptor(name string, fields []FieldDescriptor) *MessageDescriptor {
	m := &MessageDescriptor{
		Name:     name,
		Fields:   fields,
		byNumber: make(map[int32]*FieldDescriptor, len(fields)),
		byName:   make(map[string]*FieldDescriptor, len(fields)),
	}

	for i := range m.Fields {
		f := &m.Fields[i]

		if f.Number < 1 {
			panic(&errortypes.ConfigurationError{
				Message: fmt.Sprintf("schema: %s field %q has invalid number %d", name, f.Name, f.Number),
			})
		}
		if native1.InExtensionRange(f.Number) {
			panic(&errortypes.ConfigurationError{
				Message: fmt.Sprintf("schema: %s field %q number %d lies in the extension range", name, f.Name, f.Number),
			})
		}
		if _, ok := m.byNumber[f.Number]; ok {
			panic(&errortypes.ConfigurationError{
				Message: fmt.Sprintf("schema: %s declares field number %d twice", name, f.Number),
			})
		}
		if _, ok := m.byName[f.Name]; ok {
			panic(&errortypes.ConfigurationError{
				Message: fmt.Sprintf("schema: %s declares field name %q twice", name, f.Name),
			})
		}

		m.byNumber[f.Number] = f
		m.byName[f.Name] = f
	}

	return m
}

// FieldByNumber returns the declared field carrying the given wire number.
func (m *MessageDescriptor) FieldByNumber(number int32) (*FieldDescriptor, bool) {
	f, ok := m.byNumber[number]
	return f, ok
}

// FieldByName returns the declared field carrying the given name.
func (m *MessageDescriptor) FieldByName(name string) (*FieldDescriptor, bool) {
	f, ok := m.byName[name]
	return f, ok
}

// InExtensionRange reports whether a field number on this message is reserved
// for exchange-specific extensions.
func (m *MessageDescriptor) InExtensionRange(number int32) bool {
	return native1.InExtensionRange(number)
}

// EnumDescriptor describes an open enumeration: the symbolic names declared
// for core values plus, implicitly, the exchange-specific band above
// native1.ExchangeSpecificBoundary.
type EnumDescriptor struct {
	Name string

	values map[int32]string
	byName map[string]int32
}

func newEnum(name string, values map[int32]string) *EnumDescriptor {
	e := &EnumDescriptor{
		Name:   name,
		values: values,
		byName: make(map[string]int32, len(values)),
	}

	for value, valueName := range values {
		if native1.IsExchangeSpecific(value) {
			panic(&errortypes.ConfigurationError{
				Message: fmt.Sprintf("schema: enum %s declares %q above the exchange-specific boundary", name, valueName),
			})
		}
		if _, ok := e.byName[valueName]; ok {
			panic(&errortypes.ConfigurationError{
				Message: fmt.Sprintf("schema: enum %s declares name %q twice", name, valueName),
			})
		}
		e.byName[valueName] = value
	}

	return e
}

// ValueName returns the symbolic name declared for a core value.
func (e *EnumDescriptor) ValueName(value int32) (string, bool) {
	name, ok := e.values[value]
	return name, ok
}

// ValueByName returns the core value declared under a symbolic name.
func (e *EnumDescriptor) ValueByName(name string) (int32, bool) {
	value, ok := e.byName[name]
	return value, ok
}

// Recognized reports whether a value is either a declared core value or lies
// in the exchange-specific band. Unrecognized values are still accepted by
// every decoder; validation flags them as warnings only.
func (e *EnumDescriptor) Recognized(value int32) bool {
	if native1.IsExchangeSpecific(value) {
		return true
	}
	_, ok := e.values[value]
	return ok
}
