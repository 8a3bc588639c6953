/*
Copyright © 2025 Benny Powers <web@bennypowers.com>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program. If not, see <http://www.gnu.org/licenses/>.
*/

package transform

import (
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Registry dispatches a Transformer by the requesting file's extension,
// the shape of the Locator's default transformer: ".scss" -> an SCSS
// backend, ".less" -> a Less backend, anything else -> not handled. The
// concrete SCSS/Less backends are an excluded collaborator (spec §1); this
// registry only supplies the dispatch mechanism they plug into.
type Registry struct {
	mu       sync.RWMutex
	backends map[string]Transformer
	aliases  map[string]string
}

// NewRegistry builds an empty Registry. With no backends registered, the
// Transformer it produces always reports "not handled", matching the
// stock built-in default described in spec §6.
func NewRegistry() *Registry {
	return &Registry{
		backends: make(map[string]Transformer),
		aliases:  make(map[string]string),
	}
}

// Register installs backend as the Transformer for files with the given
// extension (including the leading dot, e.g. ".scss").
func (r *Registry) Register(ext string, backend Transformer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backends[ext] = backend
}

// Config is the optional front-matter this registry accepts for mapping
// additional extensions onto an already-registered backend, e.g. treating
// ".sass" as ".scss". Only a file's last extension is looked up.
type Config struct {
	ExtensionAliases map[string]string `yaml:"extensionAliases"`
}

// LoadConfig decodes a Config from YAML and merges its aliases in.
func (r *Registry) LoadConfig(data []byte) error {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for ext, target := range cfg.ExtensionAliases {
		r.aliases[ext] = target
	}
	return nil
}

// Transformer returns the dispatching Transformer to hand to NewGateway.
func (r *Registry) Transformer() Transformer {
	return func(source string, ctx Context) (Outcome, bool) {
		ext := strings.ToLower(filepath.Ext(ctx.From))

		r.mu.RLock()
		if target, ok := r.aliases[ext]; ok {
			ext = target
		}
		backend, ok := r.backends[ext]
		r.mu.RUnlock()

		if !ok {
			return Outcome{}, false
		}
		return backend(source, ctx)
	}
}
