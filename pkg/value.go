package brio

import "strconv"

// Kind identifies the runtime value category.
type Kind int

const (
	KindNumber Kind = iota
	KindBoolean
	KindNoValue
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindNoValue:
		return "no value"
	default:
		return "unknown"
	}
}

// Value is a runtime value. There is no implicit conversion between kinds.
type Value interface {
	Kind() Kind
	String() string
}

type Number float64

func (Number) Kind() Kind {
	return KindNumber
}

func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

type Boolean bool

func (Boolean) Kind() Kind {
	return KindBoolean
}

func (b Boolean) String() string {
	return strconv.FormatBool(bool(b))
}

// NoValue is the result of a statement that completes without producing a
// usable value: an untaken if branch, a while loop whose body never ran, or
// an empty block. It cannot participate in any operation.
type NoValue struct{}

func (NoValue) Kind() Kind {
	return KindNoValue
}

func (NoValue) String() string {
	return "no value"
}

// Store is the mutable name to value mapping for one program run. It is
// owned by the caller of Eval; independent runs get independent stores.
type Store struct {
	vars map[string]Value
}

func NewStore() *Store {
	return &Store{
		vars: make(map[string]Value),
	}
}

func (s *Store) Set(name string, v Value) {
	s.vars[name] = v
}

func (s *Store) Get(name string) (Value, bool) {
	v, ok := s.vars[name]
	return v, ok
}

func (s *Store) Len() int {
	return len(s.vars)
}

func (s *Store) Copy() *Store {
	s2 := NewStore()
	for k, v := range s.vars {
		s2.vars[k] = v
	}

	return s2
}
