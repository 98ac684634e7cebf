// Package locale loads YAML string tables for user-facing text. Engine
// strings ship embedded; a game adds its own table on top and may override
// engine keys.
package locale

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/*.yaml
var engineTables embed.FS

// ErrUnknownLocale is returned when no engine table exists for a locale
var ErrUnknownLocale = errors.New("unknown locale")

// FileReader is the slice of the virtual filesystem locale needs
type FileReader interface {
	ReadFile(name string) ([]byte, error)
}

// Locale is a flattened string table keyed by dotted path, e.g.
// "errors.titles.scene"
type Locale struct {
	name    string
	strings map[string]string
}

// Load reads the engine table for name and, when client is non-nil, merges
// "<clientDir>/<name>.yaml" from it. A missing client table is not an error.
func Load(name string, client FileReader, clientDir string) (*Locale, error) {
	data, err := engineTables.ReadFile("defaults/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, name)
	}
	l := &Locale{name: name, strings: make(map[string]string)}
	if err := l.merge(data); err != nil {
		return nil, fmt.Errorf("engine locale %q: %w", name, err)
	}

	if client != nil {
		path := name + ".yaml"
		if clientDir != "" {
			path = clientDir + "/" + path
		}
		if data, err := client.ReadFile(path); err == nil {
			if err := l.merge(data); err != nil {
				return nil, fmt.Errorf("client locale %s: %w", path, err)
			}
		}
	}
	return l, nil
}

// Name returns the locale name, e.g. "en"
func (l *Locale) Name() string { return l.name }

// Get returns the string at key, or the key itself when it is missing
func (l *Locale) Get(key string) string {
	if l == nil {
		return key
	}
	if s, ok := l.strings[key]; ok {
		return s
	}
	return key
}

// Lookup returns the string at key and whether it exists
func (l *Locale) Lookup(key string) (string, bool) {
	s, ok := l.strings[key]
	return s, ok
}

// Len returns the number of strings in the table
func (l *Locale) Len() int { return len(l.strings) }

func (l *Locale) merge(data []byte) error {
	var tree map[string]any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return err
	}
	flatten("", tree, l.strings)
	return nil
}

func flatten(prefix string, node map[string]any, out map[string]string) {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch v := v.(type) {
		case map[string]any:
			flatten(key, v, out)
		case string:
			out[key] = v
		case nil:
		default:
			out[key] = strings.TrimSpace(fmt.Sprint(v))
		}
	}
}
