// Package labels resolves the display text shown around the converters.
// It only substitutes values into translated templates; it never formats
// temperatures itself.
package labels

import (
	"fmt"
	"os"
	"sort"

	"tempconv/internal/temperature"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// Tables maps a locale name to its texts.
type Tables map[string]map[Key]string

// Builtin returns a copy of the bundled English and Indonesian tables.
func Builtin() Tables {
	return Tables{}.Merge(builtin)
}

// LoadFile reads a YAML overlay of the form
//
//	en:
//	  enter_celsius: "Celsius, please"
func LoadFile(path string) (Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read labels: %w", err)
	}
	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse labels %s: %w", path, err)
	}
	return t, nil
}

// Merge returns a new table set with other's entries layered over t.
func (t Tables) Merge(other Tables) Tables {
	out := make(Tables, len(t)+len(other))
	for _, src := range []Tables{t, other} {
		for locale, texts := range src {
			dst, ok := out[locale]
			if !ok {
				dst = make(map[Key]string, len(texts))
				out[locale] = dst
			}
			for k, v := range texts {
				dst[k] = v
			}
		}
	}
	return out
}

// locales lists the table names with DefaultLocale first, which makes it
// the matcher's fallback.
func (t Tables) locales() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		if name != DefaultLocale {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	if _, ok := t[DefaultLocale]; ok {
		names = append([]string{DefaultLocale}, names...)
	}
	return names
}

// Resolve picks the table that best matches locale.
func (t Tables) Resolve(locale string) *Catalog {
	if len(t) == 0 {
		t = Builtin()
	}
	names := t.locales()
	tags := make([]language.Tag, len(names))
	for i, name := range names {
		tags[i] = language.Make(name)
	}

	_, idx, _ := language.NewMatcher(tags).Match(language.Make(locale))

	texts := make(map[Key]string)
	for k, v := range builtin[DefaultLocale] {
		texts[k] = v
	}
	for k, v := range t[DefaultLocale] {
		texts[k] = v
	}
	for k, v := range t[names[idx]] {
		texts[k] = v
	}

	return &Catalog{
		locale:  names[idx],
		printer: message.NewPrinter(tags[idx]),
		texts:   texts,
	}
}

// Resolve is Builtin().Resolve(locale).
func Resolve(locale string) *Catalog {
	return Builtin().Resolve(locale)
}

// Catalog is the resolved text for one locale.
type Catalog struct {
	locale  string
	printer *message.Printer
	texts   map[Key]string
}

// Locale is the table name the catalog was resolved to.
func (c *Catalog) Locale() string { return c.locale }

// Text formats the template for key with args. Unknown keys render as
// the key itself.
func (c *Catalog) Text(key Key, args ...any) string {
	format, ok := c.texts[key]
	if !ok {
		return string(key)
	}
	if len(args) == 0 {
		return format
	}
	return c.printer.Sprintf(format, args...)
}

// ScaleName is the localized name of s.
func (c *Catalog) ScaleName(s temperature.Scale) string {
	if s == temperature.Fahrenheit {
		return c.Text(ScaleFahrenheit)
	}
	return c.Text(ScaleCelsius)
}
