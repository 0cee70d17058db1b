package domain

import (
	"strings"

	"github.com/fatih/camelcase"
)

// Label renders the field as lower-case words, e.g. "contact phone".
func (f CustomerField) Label() string { return humanize(string(f)) }

// Label renders the field as lower-case words.
func (f ProductField) Label() string { return humanize(string(f)) }

// humanize splits a CamelCase identifier into lower-case words.
func humanize(name string) string {
	return strings.ToLower(strings.Join(camelcase.Split(name), " "))
}
