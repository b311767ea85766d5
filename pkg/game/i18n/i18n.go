// Package i18n loads the translation catalogue. UI code looks strings up by
// key with gotext.Get; a key with no translation is shown as-is.
package i18n

import (
	"path/filepath"

	"github.com/leonelquinteros/gotext"
)

// Domain is the name of the .po file in each locale directory.
const Domain = "default"

// Dir returns the locale directory under a resource root.
func Dir(resourceDir string) string {
	return filepath.Join(resourceDir, "locales")
}

// Setup selects the locale, reading
// <resourceDir>/locales/<locale>/LC_MESSAGES/default.po.
func Setup(resourceDir, locale string) {
	gotext.Configure(Dir(resourceDir), locale, Domain)
}
