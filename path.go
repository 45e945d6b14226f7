package jod

import (
	"strconv"
	"strings"
)

// RootPath is the marker every root-relative path starts with.
const RootPath = "$"

// nestPath inserts seg immediately after the root marker of child, so a
// violation at "$.f" nested under index 2 becomes "$.[2].f" rather than
// "$.f.[2]". The child path is always root-relative by construction.
func nestPath(seg, child string) string {
	if child == RootPath {
		return RootPath + seg
	}
	return RootPath + seg + strings.TrimPrefix(child, RootPath)
}

// Path builds root-relative location strings in a chain-safe way and creates
// Errors at the resulting location. The zero value denotes the root "$".
type Path struct {
	parts []string
}

// Root returns the root path "$".
func Root() Path { return Path{} }

// Field returns a new Path extended by an object field name.
func (p Path) Field(name string) Path {
	if name == "" {
		return p
	}
	return Path{parts: append(append([]string{}, p.parts...), name)}
}

// Index returns a new Path extended by a list index.
func (p Path) Index(i int) Path {
	return Path{parts: append(append([]string{}, p.parts...), "["+strconv.Itoa(i)+"]")}
}

// String renders the path, e.g. "$.items.[0].sku".
func (p Path) String() string {
	if len(p.parts) == 0 {
		return RootPath
	}
	return RootPath + "." + strings.Join(p.parts, ".")
}

// Error creates an Error located at this path. kv lists params as
// alternating key/value pairs.
func (p Path) Error(code, message string, rejected any, kv ...any) Error {
	var params map[string]any
	if len(kv) > 1 {
		params = make(map[string]any, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			k, _ := kv[i].(string)
			params[k] = kv[i+1]
		}
	}
	return Error{Code: code, Message: message, Path: p.String(), Rejected: rejected, Params: params}
}
