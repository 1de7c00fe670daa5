package ids

import (
	"strings"
	"unicode"
)

const (
	// DefaultPrefix is the first segment of every generated ID.
	DefaultPrefix = "ds"

	// DefaultSeparator joins ID segments.
	DefaultSeparator = "-"
)

// Scope selects which counter disambiguates a generated ID.
type Scope int

const (
	// ScopeGlobal draws from the allocator-wide counter (call order).
	ScopeGlobal Scope = iota

	// ScopeComponent draws from a counter private to the component name,
	// so IDs read as "the Kth X".
	ScopeComponent
)

// String returns the scope name.
func (s Scope) String() string {
	switch s {
	case ScopeGlobal:
		return "global"
	case ScopeComponent:
		return "component"
	default:
		return "unknown"
	}
}

// ParseScope converts "global" or "component" into a Scope.
func ParseScope(s string) (Scope, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "global":
		return ScopeGlobal, true
	case "component":
		return ScopeComponent, true
	default:
		return ScopeGlobal, false
	}
}

// Config controls how IDs are composed. The zero value selects the
// defaults: prefix "ds", separator "-", component name embedded, caching on,
// global counter.
type Config struct {
	// Prefix is the leading segment. Empty means DefaultPrefix.
	Prefix string

	// Separator joins segments. Empty means DefaultSeparator.
	Separator string

	// OmitComponentName drops the component segment from the ID. IDs then
	// stay unique only under the global counter: with ScopeComponent, or in
	// generators from Allocator.Component, two components can produce the
	// same ID (ds-field-1 from both Input and Select).
	OmitComponentName bool

	// DisableCache turns off instance-key caching.
	DisableCache bool

	// Scope selects the counter.
	Scope Scope
}

func (c Config) withDefaults() Config {
	if c.Prefix == "" {
		c.Prefix = DefaultPrefix
	}
	if c.Separator == "" {
		c.Separator = DefaultSeparator
	}
	return c
}

// GenOption adjusts a single Generate call.
type GenOption func(*genRequest)

type genRequest struct {
	cfg Config
	key string
}

// WithKey sets the instance key. Keyed requests are cached unless caching is
// disabled.
func WithKey(key string) GenOption {
	return func(r *genRequest) {
		r.key = key
	}
}

// WithPrefix overrides the prefix for one call.
func WithPrefix(prefix string) GenOption {
	return func(r *genRequest) {
		if prefix != "" {
			r.cfg.Prefix = prefix
		}
	}
}

// WithSeparator overrides the separator for one call.
func WithSeparator(sep string) GenOption {
	return func(r *genRequest) {
		if sep != "" {
			r.cfg.Separator = sep
		}
	}
}

// WithoutComponentName omits the component segment for one call. See
// Config.OmitComponentName for when that can collide.
func WithoutComponentName() GenOption {
	return func(r *genRequest) {
		r.cfg.OmitComponentName = true
	}
}

// WithoutCache bypasses the cache for one call. The result is neither
// looked up nor stored.
func WithoutCache() GenOption {
	return func(r *genRequest) {
		r.cfg.DisableCache = true
	}
}

// WithScope selects the counter for one call.
func WithScope(s Scope) GenOption {
	return func(r *genRequest) {
		r.cfg.Scope = s
	}
}

// normalize lowercases s and converts camelCase, spaces and punctuation to
// kebab-case: "RadioGroup" -> "radio-group", "helpText" -> "help-text".
func normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)

	runes := []rune(strings.TrimSpace(s))
	pendingDash := false
	for i, r := range runes {
		switch {
		case unicode.IsUpper(r):
			if b.Len() > 0 && i > 0 {
				prev := runes[i-1]
				nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
				if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
					pendingDash = true
				}
			}
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(unicode.ToLower(r))
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
		default:
			pendingDash = true
		}
	}
	return b.String()
}
