// Package styling provides scoped component stylesheets. Class names in a
// component's CSS are rewritten to content-hashed names so stylesheets from
// different components never collide.
package styling

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"sync"
)

// Sheet holds one component's scoped stylesheet.
type Sheet struct {
	// Hash is derived from the CSS content.
	Hash string

	// names maps original class names to scoped names,
	// e.g. "menu" -> "_a1b2c3_menu".
	names map[string]string

	// CSS is the original stylesheet content.
	CSS string
}

// Style parses css and returns a sheet with scoped class names.
func Style(css string) *Sheet {
	sum := sha256.Sum256([]byte(css))
	hash := "_" + hex.EncodeToString(sum[:])[:6]

	names := make(map[string]string)
	for _, name := range classNames(css) {
		scoped := hash + "_" + strings.NewReplacer(".", "_", ":", "_").Replace(name)
		names[name] = scoped
	}

	return &Sheet{Hash: hash, names: names, CSS: css}
}

// Class returns the scoped name for an original class name, falling back
// to the original when unknown.
func (s *Sheet) Class(name string) string {
	if s == nil {
		return name
	}
	if scoped, ok := s.names[name]; ok {
		return scoped
	}
	return name
}

// Classes returns multiple scoped names joined by spaces.
func (s *Sheet) Classes(names ...string) string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = s.Class(n)
	}
	return strings.Join(out, " ")
}

// Has reports whether the sheet defines the class.
func (s *Sheet) Has(name string) bool {
	if s == nil {
		return false
	}
	_, ok := s.names[name]
	return ok
}

// classNames extracts the class selectors from css, including compound
// (.a.b) and pseudo-class (.a:hover) forms.
func classNames(css string) []string {
	css = stripComments(css)

	seen := make(map[string]bool)
	isBoundary := func(c byte) bool {
		switch c {
		case ' ', '{', ',', '[', '\n', '\r', '\t', '#', '>', '+', '~', '(':
			return true
		}
		return false
	}

	i := 0
	for i < len(css) {
		if css[i] != '.' {
			i++
			continue
		}
		start := i + 1
		end := start
		for end < len(css) {
			c := css[end]
			if isBoundary(c) || c == '.' || c == ':' {
				break
			}
			end++
		}
		if end == start {
			i = end + 1
			continue
		}

		// Extend across compound selectors and pseudo-classes so
		// ".card.active:hover" is recorded whole.
		full := end
		for full < len(css) && (css[full] == '.' || css[full] == ':') {
			full++
			for full < len(css) && !isBoundary(css[full]) && css[full] != '.' && css[full] != ':' {
				full++
			}
		}
		if full > end {
			seen[css[start:full]] = true
		} else {
			seen[css[start:end]] = true
		}
		i = full
	}

	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	return out
}

func stripComments(css string) string {
	var sb strings.Builder
	i := 0
	for i < len(css) {
		if i+1 < len(css) && css[i] == '/' && css[i+1] == '*' {
			i += 2
			for i+1 < len(css) && !(css[i] == '*' && css[i+1] == '/') {
				i++
			}
			i += 2
			continue
		}
		sb.WriteByte(css[i])
		i++
	}
	return sb.String()
}

// registry collects every sheet created through Register so a host page
// can emit them all in one <style> block.
type registry struct {
	mu     sync.RWMutex
	sheets map[string]*Sheet
}

var global = &registry{sheets: make(map[string]*Sheet)}

// Register adds a sheet to the global registry, keyed by hash.
func Register(s *Sheet) {
	if s == nil || s.CSS == "" {
		return
	}
	global.mu.Lock()
	global.sheets[s.Hash] = s
	global.mu.Unlock()
}

// StyleAndRegister creates a sheet and registers it in one step.
func StyleAndRegister(css string) *Sheet {
	s := Style(css)
	Register(s)
	return s
}

// AllCSS returns every registered stylesheet concatenated.
func AllCSS() string {
	global.mu.RLock()
	defer global.mu.RUnlock()

	var sb strings.Builder
	for _, s := range global.sheets {
		sb.WriteString(s.CSS)
		sb.WriteString("\n")
	}
	return sb.String()
}

// Reset clears the global registry. Intended for tests.
func Reset() {
	global.mu.Lock()
	global.sheets = make(map[string]*Sheet)
	global.mu.Unlock()
}
