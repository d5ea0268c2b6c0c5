package frameinfo

import (
	"strings"

	lru "github.com/hashicorp/golang-lru"
)

// nameCache memoises splitName. A nil cache splits on every call.
type nameCache struct {
	c *lru.Cache
}

func newNameCache(size int) *nameCache {
	if size <= 0 {
		return nil
	}
	c, err := lru.New(size)
	if err != nil {
		return nil
	}
	return &nameCache{c}
}

func (nc *nameCache) split(function string) (module, name string) {
	if nc == nil {
		return splitName(function)
	}

	if v, ok := nc.c.Get(function); ok {
		n := v.(Name)
		return n.Module, n.Function
	}

	module, name = splitName(function)
	nc.c.Add(function, Name{Module: module, Function: name})
	return module, name
}

// splitName splits a runtime function name such as
// "github.com/a/b.(*T).M" into its package path and the rest.
func splitName(function string) (module, name string) {
	if function == "" {
		return "", ""
	}

	// type arguments may contain dots and slashes
	end := len(function)
	if i := strings.IndexByte(function, '['); i >= 0 {
		end = i
	}

	slash := strings.LastIndexByte(function[:end], '/')
	dot := strings.IndexByte(function[slash+1:end], '.')
	if dot < 0 {
		return "", function
	}
	dot += slash + 1

	// the linker escapes dots in the last path element
	module = strings.ReplaceAll(function[:dot], "%2e", ".")
	return module, function[dot+1:]
}
