package mirror

import (
	"errors"
	"reflect"
)

var (
	ErrNotPointer         = errors.New("not a pointer")
	ErrNilPointer         = errors.New("nil pointer")
	ErrInvalidPointerKind = errors.New("invalid pointer")
)

// IsStructPointer returns nil if v is a non-nil pointer to a struct, which is
// what the config loaders decode into.
func IsStructPointer(v any) error {
	rv := reflect.ValueOf(v)
	switch {
	case rv.Kind() != reflect.Pointer:
		return ErrNotPointer
	case rv.IsNil():
		return ErrNilPointer
	case rv.Elem().Kind() != reflect.Struct:
		return ErrInvalidPointerKind
	}
	return nil
}
