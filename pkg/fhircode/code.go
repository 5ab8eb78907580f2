package fhircode

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Value is implemented by the string type of every bound code system. The
// System method must work on the zero value.
type Value interface {
	~string
	System() *CodeSystem
}

// Code is a FHIR code primitive bound to the code system of V. The zero Code
// is absent: no value, id or extensions. A Code built through Of, From or a
// Builder always holds a valid value or at least one extension.
type Code[V Value] struct {
	elem  Element
	value *V
}

func systemOf[V Value]() *CodeSystem {
	var v V
	return v.System()
}

// SystemOf returns the code system that defines V.
func SystemOf[V Value]() *CodeSystem {
	return systemOf[V]()
}

// Parse converts a literal code into V. It fails for codes not defined by the
// code system of V.
func Parse[V Value](s string) (V, error) {
	var zero V
	cs := systemOf[V]()
	if err := cs.Validate(s); err != nil {
		return zero, err
	}
	concept, _ := cs.Lookup(s)
	return V(concept.Code), nil
}

// Of returns a Code holding v, which must be defined by its code system.
func Of[V Value](v V) (Code[V], error) {
	p, err := Parse[V](string(v))
	if err != nil {
		return Code[V]{}, err
	}
	return Code[V]{value: &p}, nil
}

// MustOf is Of for values known to be valid, such as generated constants.
func MustOf[V Value](v V) Code[V] {
	c, err := Of(v)
	if err != nil {
		panic(err)
	}
	return c
}

// From returns a Code holding the literal code s.
func From[V Value](s string) (Code[V], error) {
	return Of(V(s))
}

// Values returns every code of V in definition order.
func Values[V Value]() []V {
	cs := systemOf[V]()
	out := make([]V, 0, cs.Len())
	for _, c := range cs.concepts {
		out = append(out, V(c.Code))
	}
	return out
}

// Value returns the code value, if present.
func (c Code[V]) Value() (V, bool) {
	if c.value == nil {
		var zero V
		return zero, false
	}
	return *c.value, true
}

func (c Code[V]) HasValue() bool { return c.value != nil }

func (c Code[V]) ID() string { return c.elem.ID }

// Extensions returns a copy of the extensions.
func (c Code[V]) Extensions() []Extension { return cloneExtensions(c.elem.Extension) }

// Element returns a copy of the id and extensions.
func (c Code[V]) Element() Element {
	return Element{ID: c.elem.ID, Extension: cloneExtensions(c.elem.Extension)}
}

// IsZero reports whether the code is absent.
func (c Code[V]) IsZero() bool { return c.value == nil && c.elem.IsEmpty() }

// String returns the literal code, or "" when there is no value.
func (c Code[V]) String() string {
	if c.value == nil {
		return ""
	}
	return string(*c.value)
}

// System returns the canonical URL of the code system.
func (c Code[V]) System() string { return systemOf[V]().URL() }

func (c Code[V]) concept() (Concept, bool) {
	if c.value == nil {
		return Concept{}, false
	}
	return systemOf[V]().Lookup(string(*c.value))
}

func (c Code[V]) Display() string {
	concept, _ := c.concept()
	return concept.Display
}

func (c Code[V]) Definition() string {
	concept, _ := c.concept()
	return concept.Definition
}

// Coding returns the code as a Coding. It is empty when there is no value.
func (c Code[V]) Coding() Coding {
	if c.value == nil {
		return Coding{}
	}
	return systemOf[V]().Coding(string(*c.value))
}

// Equal reports whether both codes carry the same value, id and extensions.
func (c Code[V]) Equal(other Code[V]) bool {
	if (c.value == nil) != (other.value == nil) {
		return false
	}
	if c.value != nil && *c.value != *other.value {
		return false
	}
	if c.elem.ID != other.elem.ID || len(c.elem.Extension) != len(other.elem.Extension) {
		return false
	}
	return len(c.elem.Extension) == 0 || reflect.DeepEqual(c.elem.Extension, other.elem.Extension)
}

// Validate re-checks the invariants of a code. Codes obtained from this
// package always pass; the zero Code fails with ErrEmptyElement.
func (c Code[V]) Validate() error {
	if err := c.elem.Validate(); err != nil {
		return err
	}
	if c.value == nil {
		if len(c.elem.Extension) == 0 {
			return &CodeError{System: systemOf[V]().URL(), Err: ErrEmptyElement}
		}
		return nil
	}
	return systemOf[V]().Validate(string(*c.value))
}

// ToBuilder returns a builder initialised from c.
func (c Code[V]) ToBuilder() *Builder[V] {
	b := NewBuilder[V]().ID(c.elem.ID).Extension(c.elem.Extension...)
	if c.value != nil {
		b.Value(*c.value)
	}
	return b
}

// MarshalJSON writes the bare code, or null when there is no value. The id and
// extensions travel separately; see MarshalElement and PutField.
func (c Code[V]) MarshalJSON() ([]byte, error) {
	if c.value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(string(*c.value))
}

// UnmarshalJSON reads a bare code and validates it. Null clears the value and
// keeps the element.
func (c *Code[V]) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%s: %w", systemOf[V]().URL(), err)
	}
	if s == nil {
		c.value = nil
		return nil
	}
	v, err := Parse[V](*s)
	if err != nil {
		return err
	}
	c.value = &v
	return nil
}

// MarshalElement encodes the companion "_field" object. It returns nil when
// the code carries no id or extensions.
func (c Code[V]) MarshalElement() (json.RawMessage, error) {
	if c.elem.IsEmpty() {
		return nil, nil
	}
	return json.Marshal(c.elem)
}

// UnmarshalElement decodes the companion "_field" object.
func (c *Code[V]) UnmarshalElement(data []byte) error {
	var elem Element
	if err := json.Unmarshal(data, &elem); err != nil {
		return fmt.Errorf("%s: element: %w", systemOf[V]().URL(), err)
	}
	if err := elem.Validate(); err != nil {
		return err
	}
	c.elem = elem
	return nil
}

// PutField writes c into obj as name and, when it has an id or extensions,
// "_"+name. An absent code writes nothing.
func PutField[V Value](obj map[string]json.RawMessage, name string, c Code[V]) error {
	if c.IsZero() {
		return nil
	}
	if c.value != nil {
		raw, err := c.MarshalJSON()
		if err != nil {
			return err
		}
		obj[name] = raw
	}
	elem, err := c.MarshalElement()
	if err != nil {
		return err
	}
	if elem != nil {
		obj["_"+name] = elem
	}
	return nil
}

// GetField reads the primitive name and its "_"+name companion from obj.
// A missing field yields the zero Code.
func GetField[V Value](obj map[string]json.RawMessage, name string) (Code[V], error) {
	var c Code[V]
	raw, hasValue := obj[name]
	elem, hasElem := obj["_"+name]
	if !hasValue && !hasElem {
		return c, nil
	}
	if hasValue {
		if err := c.UnmarshalJSON(raw); err != nil {
			return Code[V]{}, fmt.Errorf("%s: %w", name, err)
		}
	}
	if hasElem {
		if err := c.UnmarshalElement(elem); err != nil {
			return Code[V]{}, fmt.Errorf("_%s: %w", name, err)
		}
	}
	if c.value == nil && len(c.elem.Extension) == 0 {
		return Code[V]{}, fmt.Errorf("%s: %w", name, ErrEmptyElement)
	}
	return c, nil
}
