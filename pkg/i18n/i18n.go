// Package i18n provides a locale provider for components: translation
// bundles keyed by locale, a reactive current locale, and printf-style
// message formatting.
package i18n

import (
	"fmt"
	"io"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/loomui/loom/pkg/reactive"
)

// Bundle maps locale → message key → printf template.
type Bundle map[string]map[string]string

// Provider resolves message keys against the current locale, falling back
// to a fallback locale and finally to the key itself. Lookup never errors;
// a missing key renders as the key so broken translations stay visible
// without breaking the view.
type Provider struct {
	mu       sync.RWMutex
	bundle   Bundle
	fallback string
	locale   *reactive.State[string]
}

// New creates a provider with the given bundle, initial locale and
// fallback locale.
func New(bundle Bundle, locale, fallback string) *Provider {
	if bundle == nil {
		bundle = Bundle{}
	}
	return &Provider{
		bundle:   bundle,
		fallback: fallback,
		locale:   reactive.CreateState(locale),
	}
}

// Load reads a YAML bundle and creates a provider from it.
//
// Bundle layout:
//
//	en:
//	  greeting: "Hello, %s"
//	de:
//	  greeting: "Hallo, %s"
func Load(r io.Reader, locale, fallback string) (*Provider, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read bundle: %w", err)
	}
	var bundle Bundle
	if err := yaml.Unmarshal(raw, &bundle); err != nil {
		return nil, fmt.Errorf("parse bundle: %w", err)
	}
	return New(bundle, locale, fallback), nil
}

// Locale returns the current locale.
func (p *Provider) Locale() string {
	return p.locale.Get()
}

// SetLocale switches the current locale; dependent fibers re-render.
func (p *Provider) SetLocale(locale string) {
	p.locale.Set(locale)
}

// LocaleState exposes the locale signal so views can subscribe to it.
func (p *Provider) LocaleState() *reactive.State[string] {
	return p.locale
}

// Merge adds messages to the bundle, overwriting existing keys.
func (p *Provider) Merge(extra Bundle) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for locale, msgs := range extra {
		if p.bundle[locale] == nil {
			p.bundle[locale] = make(map[string]string, len(msgs))
		}
		for k, v := range msgs {
			p.bundle[locale][k] = v
		}
	}
}

// T resolves key in the current locale and formats it with args.
func (p *Provider) T(key string, args ...any) string {
	tmpl := p.lookup(key)
	if len(args) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, args...)
}

func (p *Provider) lookup(key string) string {
	locale := p.locale.Get()

	p.mu.RLock()
	defer p.mu.RUnlock()

	if msgs, ok := p.bundle[locale]; ok {
		if tmpl, ok := msgs[key]; ok {
			return tmpl
		}
	}
	if msgs, ok := p.bundle[p.fallback]; ok {
		if tmpl, ok := msgs[key]; ok {
			return tmpl
		}
	}
	return key
}

// Locales lists the locales present in the bundle.
func (p *Provider) Locales() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]string, 0, len(p.bundle))
	for locale := range p.bundle {
		out = append(out, locale)
	}
	return out
}
