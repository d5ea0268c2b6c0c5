package mirror

import "reflect"

// Fresh returns a pointer to a new zeroed value.
// If T is a pointer type the pointed-to type is allocated, so the result has type T.
// Otherwise the result has type *T.
func Fresh[T any]() any {
	return alloc(reflect.TypeFor[T]())
}

// NewEmpty is Fresh for the dynamic type of v.
func NewEmpty(v any) any {
	return alloc(reflect.TypeOf(v))
}

func alloc(typ reflect.Type) any {
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	return reflect.New(typ).Interface()
}
