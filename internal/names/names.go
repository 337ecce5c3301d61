// Package names turns a path-qualified identifier such as "relative/path/to/example"
// into the directory, base name, type name, guard token and file names used by
// the generator. Every function here is pure.
package names

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ccpsceo/classgen/internal/config"
)

// separators are accepted on every platform.
const separators = `/\`

// Derived holds everything computed from a single identifier.
type Derived struct {
	Identifier     string
	Directory      string
	BaseName       string
	TypeName       string
	GuardToken     string
	HeaderFileName string
	SourceFileName string
}

// Derive computes all names for identifier under the given conventions.
func Derive(identifier string, c config.Conventions) Derived {
	base := Base(identifier)
	typeName := Capitalize(base)
	return Derived{
		Identifier:     identifier,
		Directory:      Dir(identifier),
		BaseName:       base,
		TypeName:       typeName,
		GuardToken:     Upcase(base) + c.GuardSuffix,
		HeaderFileName: typeName + c.HeaderExt,
		SourceFileName: typeName + c.SourceExt,
	}
}

// HasDirectory reports whether the identifier names a directory distinct from
// its base name. When it does not, output goes to the current directory.
func (d Derived) HasDirectory() bool {
	return d.Directory != d.BaseName
}

// Dir returns everything before the last separator. Without a separator the
// whole identifier is returned, so callers compare it with Base.
func Dir(identifier string) string {
	i := strings.LastIndexAny(identifier, separators)
	if i < 0 {
		return identifier
	}
	return identifier[:i]
}

// Base returns the final path segment. A trailing separator is stepped over
// so that "a/b/" yields "b" and "foo/" yields "foo".
func Base(identifier string) string {
	if identifier == "" {
		return ""
	}

	i := strings.LastIndexAny(identifier, separators)
	if i < 0 {
		return identifier
	}
	if i+1 < len(identifier) {
		return identifier[i+1:]
	}

	// Trailing separator.
	trimmed := identifier[:len(identifier)-1]
	if trimmed == "" {
		return identifier
	}
	return trimmed[strings.LastIndexAny(trimmed, separators)+1:]
}

// Capitalize upper-cases the first character and leaves the rest untouched.
func Capitalize(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size == 1 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Upcase upper-cases every character one rune at a time, so the result has
// the same number of characters as s. Invalid UTF-8 bytes are copied through.
func Upcase(s string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			b.WriteByte(s[i])
		} else {
			b.WriteRune(unicode.ToUpper(r))
		}
		i += size
	}
	return b.String()
}
