// Package portability implements the legacy case/drive-insensitive path
// lookup consulted when a set-times call fails with "not found". The old
// implementation kept the enabled behaviors in ambient global flags; here
// they are explicit configuration on the resolver.
package portability

import (
	"os"
	"path/filepath"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

const cacheSize = 256

// Options selects which compatibility behaviors are applied. The zero
// value disables the resolver entirely.
type Options struct {
	// IgnoreCase matches each path component ignoring case when the exact
	// name is absent.
	IgnoreCase bool
	// DriveLetters strips a leading "X:" drive prefix and converts
	// backslash separators before resolving.
	DriveLetters bool
}

// Resolver locates an existing file for a path that failed an exact
// lookup. Successful resolutions are cached.
type Resolver struct {
	opts  Options
	cache *lru.Cache[string, string]
}

// NewResolver creates a resolver with the given options. A nil cache is
// never exposed; construction of the LRU cannot fail for a fixed positive
// size.
func NewResolver(opts Options) *Resolver {
	cache, _ := lru.New[string, string](cacheSize)
	return &Resolver{opts: opts, cache: cache}
}

// Enabled reports whether any compatibility behavior is configured.
func (r *Resolver) Enabled() bool {
	return r != nil && (r.opts.IgnoreCase || r.opts.DriveLetters)
}

// Find returns the path of an existing file matching path under the
// configured behaviors. When lastMustExist is false the final component
// may be absent as long as its parent directory resolves. The boolean is
// false when no match exists.
func (r *Resolver) Find(path string, lastMustExist bool) (string, bool) {
	if !r.Enabled() || path == "" {
		return "", false
	}

	if found, ok := r.cache.Get(path); ok {
		if _, err := os.Lstat(found); err == nil {
			return found, true
		}
		r.cache.Remove(path)
	}

	candidate := path
	if r.opts.DriveLetters {
		candidate = stripDrive(candidate)
	}

	found, ok := r.resolve(candidate, lastMustExist)
	if !ok {
		return "", false
	}
	r.cache.Add(path, found)
	return found, true
}

// resolve walks the path component by component, descending through the
// exact name when it exists and otherwise through a case-insensitive
// match.
func (r *Resolver) resolve(path string, lastMustExist bool) (string, bool) {
	components := split(path)
	if len(components) == 0 {
		return "", false
	}

	current := "."
	if filepath.IsAbs(path) {
		current = string(filepath.Separator)
	}

	for i, component := range components {
		last := i == len(components)-1
		next := filepath.Join(current, component)
		if _, err := os.Lstat(next); err == nil {
			current = next
			continue
		}
		if !r.opts.IgnoreCase {
			if last && !lastMustExist {
				current = next
				continue
			}
			return "", false
		}
		match, ok := matchComponent(current, component)
		if !ok {
			if last && !lastMustExist {
				current = next
				continue
			}
			return "", false
		}
		current = filepath.Join(current, match)
	}
	return current, true
}

// matchComponent scans dir for an entry equal to name ignoring case.
func matchComponent(dir, name string) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}
	for _, entry := range entries {
		if strings.EqualFold(entry.Name(), name) {
			return entry.Name(), true
		}
	}
	return "", false
}

// stripDrive removes an "X:" prefix and normalizes backslash separators,
// the forms produced by code written against drive-lettered filesystems.
func stripDrive(path string) string {
	path = strings.ReplaceAll(path, "\\", "/")
	if len(path) >= 2 && path[1] == ':' && isDriveLetter(path[0]) {
		path = path[2:]
		if path == "" || path[0] != '/' {
			path = "/" + path
		}
	}
	return path
}

func isDriveLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func split(path string) []string {
	var components []string
	for _, c := range strings.Split(filepath.ToSlash(path), "/") {
		if c != "" && c != "." {
			components = append(components, c)
		}
	}
	return components
}
