package fhircode

// Builder assembles a Code with an optional id and extensions. Errors are
// reported by Build.
type Builder[V Value] struct {
	id      string
	ext     []Extension
	value   *V
	literal *string
}

func NewBuilder[V Value]() *Builder[V] {
	return &Builder[V]{}
}

func (b *Builder[V]) ID(id string) *Builder[V] {
	b.id = id
	return b
}

// Extension appends extensions.
func (b *Builder[V]) Extension(ext ...Extension) *Builder[V] {
	b.ext = append(b.ext, cloneExtensions(ext)...)
	return b
}

func (b *Builder[V]) Value(v V) *Builder[V] {
	b.value = &v
	b.literal = nil
	return b
}

// ValueString sets the value from a literal code, validated at Build.
func (b *Builder[V]) ValueString(s string) *Builder[V] {
	b.literal = &s
	b.value = nil
	return b
}

// Build validates and returns the code.
func (b *Builder[V]) Build() (Code[V], error) {
	c := Code[V]{elem: Element{ID: b.id, Extension: cloneExtensions(b.ext)}}
	if err := c.elem.Validate(); err != nil {
		return Code[V]{}, err
	}

	var raw *string
	switch {
	case b.value != nil:
		s := string(*b.value)
		raw = &s
	case b.literal != nil:
		raw = b.literal
	}
	if raw != nil {
		v, err := Parse[V](*raw)
		if err != nil {
			return Code[V]{}, err
		}
		c.value = &v
	}

	if c.value == nil && len(c.elem.Extension) == 0 {
		return Code[V]{}, &CodeError{System: systemOf[V]().URL(), Err: ErrEmptyElement}
	}
	return c, nil
}
