// Package i18n holds the user-facing strings of the command line tools.
package i18n

import (
	_ "embed"

	"github.com/leonelquinteros/gotext"
)

//go:embed locales/en_US/default.po
var defaultPo []byte

var po = load(defaultPo)

func load(raw []byte) *gotext.Po {
	p := gotext.NewPo()
	p.Parse(raw)
	return p
}

// Get returns the translation of key, formatted with vars when given.
// Unknown keys are returned unchanged.
func Get(key string, vars ...any) string {
	return po.Get(key, vars...)
}
