package nopanic

import (
	"github.com/lattesec/log"
)

// NoPanicRun runs fn and returns its result. If fn panics the panic is logged
// and fallback is returned instead.
func NoPanicRun[T any](name string, fallback T, fn func() T) (out T) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().
				WithMeta("scope", "nopanic").
				Msgf("panic in %s: %v", name, r).Send()
			out = fallback
		}
	}()

	return fn()
}

// NoPanicRunVoid runs fn and reports whether it panicked.
func NoPanicRunVoid(name string, fn func()) (panicked bool) {
	return NoPanicRun(name, true, func() bool {
		fn()
		return false
	})
}
