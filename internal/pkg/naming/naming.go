// Package naming converts user-supplied model names into the identifiers
// used by the generators (Go type names, handler names, table names).
package naming

import (
	"strings"

	"github.com/jinzhu/inflection"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var titleCaser = cases.Title(language.English)

// Normalize cleans a raw model name: NFKC normalization, then strip every
// character that is not a letter, digit or underscore, then lowercase.
func Normalize(raw string) string {
	normalized := norm.NFKC.String(raw)

	var b strings.Builder
	for _, r := range normalized {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		}
	}
	return b.String()
}

// Singularize returns the singular form of a normalized name.
func Singularize(name string) string {
	return inflection.Singular(name)
}

// Pluralize returns the plural form of a normalized name.
func Pluralize(name string) string {
	return inflection.Plural(name)
}

// TypeName converts a snake_case name to a PascalCase Go type name.
func TypeName(name string) string {
	words := strings.Split(name, "_")
	for i, w := range words {
		words[i] = titleCaser.String(w)
	}
	return strings.Join(words, "")
}

// Resource holds every derived identifier for a model name.
type Resource struct {
	Singular string // snake_case singular, e.g. "blog_post"
	Plural   string // snake_case plural, e.g. "blog_posts"
	Type     string // Go type name, e.g. "BlogPost"
	TypeList string // plural Go identifier, e.g. "BlogPosts"
}

// ForModel derives all resource identifiers from a raw model name.
// The input may be singular or plural in any casing; "Users", "user" and
// "USER" all map to the same resource.
func ForModel(raw string) Resource {
	singular := Singularize(Normalize(raw))
	plural := Pluralize(singular)
	return Resource{
		Singular: singular,
		Plural:   plural,
		Type:     TypeName(singular),
		TypeList: TypeName(plural),
	}
}

// IsValidAppName reports whether name can be used as an application name:
// letters, digits and underscores only, not starting with a digit, not empty.
func IsValidAppName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
