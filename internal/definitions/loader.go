package definitions

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"

	"github.com/protokit-labs/protokit/internal/logging"
	"go.yaml.in/yaml/v3"
)

// ErrNotFound is returned when no loaded definition matches a lookup.
var ErrNotFound = errors.New("project definition not found")

// Set is the result of Load: raw definitions keyed by KeyFromDir of their
// directory name.
type Set struct {
	raw     map[string]any
	origins map[string]string
}

// Load reads every <dir>/project-definition.yaml from sources. The first
// source defining a key wins; later duplicates are skipped. Unreadable
// sources and unparseable files are logged and skipped. Only a cancelled
// context aborts the load.
func Load(ctx context.Context, logger *slog.Logger, sources ...Source) (*Set, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	set := &Set{
		raw:     make(map[string]any),
		origins: make(map[string]string),
	}

	for _, src := range sources {
		entries, err := fs.ReadDir(src.FS, ".")
		if err != nil {
			logger.Warn("skipping definition source", "source", src.Name, "error", err)
			continue
		}
		for _, entry := range entries {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("loading project definitions: %w", err)
			}
			if !entry.IsDir() {
				continue
			}

			key := KeyFromDir(entry.Name())
			if prev, dup := set.origins[key]; dup {
				logger.Debug("definition shadowed", "key", key, "source", src.Name, "kept", prev)
				continue
			}

			def, err := readDefinition(src.FS, entry.Name())
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			if err != nil {
				logger.Warn("could not load project definition",
					"dir", entry.Name(), "source", src.Name, "error", err)
				continue
			}

			set.raw[key] = def
			set.origins[key] = src.Name
			logger.Debug("loaded definition", "key", key, "source", src.Name)
		}
	}

	return set, nil
}

func readDefinition(fsys fs.FS, dir string) (any, error) {
	data, err := fs.ReadFile(fsys, path.Join(dir, FileName))
	if err != nil {
		return nil, err
	}
	var def any
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path.Join(dir, FileName), err)
	}
	return def, nil
}

// Raw returns the decoded definitions keyed by definition key. The returned
// map is a copy; the values are shared.
func (s *Set) Raw() map[string]any {
	out := make(map[string]any, len(s.raw))
	for k, v := range s.raw {
		out[k] = v
	}
	return out
}

// Keys returns the definition keys in sorted order.
func (s *Set) Keys() []string {
	keys := make([]string, 0, len(s.raw))
	for k := range s.raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of loaded definitions.
func (s *Set) Len() int { return len(s.raw) }

// Get returns the raw definition stored under key.
func (s *Set) Get(key string) (any, bool) {
	v, ok := s.raw[key]
	return v, ok
}

// Origin returns the name of the source key was loaded from.
func (s *Set) Origin(key string) string { return s.origins[key] }

// Resolve finds the key for name. name may be a key, a directory name or a
// definition's type value. Both lookups ignore case and treat "-" and "_" as
// the same, so "next-typescript", "NEXT_TYPESCRIPT" and "Next_Typescript"
// all resolve alike.
func (s *Set) Resolve(name string) (string, error) {
	want := KeyFromDir(strings.TrimSpace(name))
	if _, ok := s.raw[want]; ok {
		return want, nil
	}
	for _, key := range s.Keys() {
		obj, ok := s.raw[key].(map[string]any)
		if !ok {
			continue
		}
		if t, _ := obj["type"].(string); t != "" && KeyFromDir(t) == want {
			return key, nil
		}
	}
	return "", fmt.Errorf("%q: %w", name, ErrNotFound)
}

// ByType returns the typed definition whose type field equals typ.
func (s *Set) ByType(typ string) (*Definition, error) {
	for _, key := range s.Keys() {
		obj, ok := s.raw[key].(map[string]any)
		if !ok {
			continue
		}
		if t, _ := obj["type"].(string); t == typ {
			return s.decode(key)
		}
	}
	return nil, fmt.Errorf("type %q: %w", typ, ErrNotFound)
}

// Definition returns the typed definition stored under key.
func (s *Set) Definition(key string) (*Definition, error) {
	if _, ok := s.raw[key]; !ok {
		return nil, fmt.Errorf("key %q: %w", key, ErrNotFound)
	}
	return s.decode(key)
}

func (s *Set) decode(key string) (*Definition, error) {
	def, err := Decode(s.raw[key])
	if err != nil {
		return nil, fmt.Errorf("decoding definition %s: %w", key, err)
	}
	def.Key = key
	def.Origin = s.origins[key]
	return def, nil
}
