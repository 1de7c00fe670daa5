package ids

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"sync"
)

// Sentinel errors returned by Generate and the bundle helpers.
var (
	// ErrEmptyComponent is returned when the component name is empty or
	// normalizes to nothing.
	ErrEmptyComponent = errors.New("ids: empty component name")

	// ErrEmptyPurpose is returned when the purpose (or element name) is empty
	// or normalizes to nothing.
	ErrEmptyPurpose = errors.New("ids: empty purpose")

	// ErrInstanceTaken is returned by Allocator.Component when an explicit
	// instance key equals a number already assigned to an unkeyed instance
	// of the same component.
	ErrInstanceTaken = errors.New("ids: instance key already assigned")
)

// Observer is notified of allocator activity. Implementations must be safe
// for concurrent use; they are called without the allocator lock held.
type Observer interface {
	ObserveGenerate(component string, cached bool)
	ObserveReset()
}

// Record describes one ID handed out during a pass.
type Record struct {
	Component string `json:"component"`
	Purpose   string `json:"purpose"`
	Key       string `json:"key,omitempty"`
	ID        string `json:"id"`
	Cached    bool   `json:"cached,omitempty"`
}

// Stats is a snapshot of allocator state.
type Stats struct {
	// Counter is the current value of the global counter.
	Counter uint64

	// Components is the number of component names with a private counter.
	Components int

	// CacheSize is the number of cached keyed IDs.
	CacheSize int

	// Hits and Misses count cache lookups for keyed requests. Unkeyed
	// requests count as misses.
	Hits   uint64
	Misses uint64
}

// Option configures an Allocator.
type Option func(*Allocator)

// WithConfig sets the default composition rules for every Generate call.
func WithConfig(cfg Config) Option {
	return func(a *Allocator) {
		a.cfg = cfg
	}
}

// WithObserver attaches an Observer.
func WithObserver(o Observer) Option {
	return func(a *Allocator) {
		a.observer = o
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Allocator) {
		if logger != nil {
			a.logger = logger
		}
	}
}

type cacheKey struct {
	component string
	purpose   string
	key       string
}

// Allocator hands out deterministic IDs for one render pass.
//
// An Allocator is safe for concurrent use, but IDs are only reproducible
// when calls arrive in the same order on every pass.
type Allocator struct {
	mu sync.Mutex

	cfg      Config
	observer Observer
	logger   *slog.Logger

	counter    uint64
	components map[string]uint64
	instances  map[string]uint64
	claimed    map[string]map[string]bool
	cache      map[cacheKey]string
	records    []Record
	hits       uint64
	misses     uint64
}

// New creates an Allocator with empty state.
func New(opts ...Option) *Allocator {
	a := &Allocator{
		logger:     slog.Default().With("component", "ids"),
		components: make(map[string]uint64),
		instances:  make(map[string]uint64),
		claimed:    make(map[string]map[string]bool),
		cache:      make(map[cacheKey]string),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Config returns the allocator's default configuration with defaults
// applied.
func (a *Allocator) Config() Config {
	return a.cfg.withDefaults()
}

// Reset clears the global counter, every per-component and instance counter,
// the cache and the issued-record log. Numbering restarts at 1.
//
// Call Reset at the start of each server render. Calling it during hydration
// breaks the match with server-assigned IDs.
func (a *Allocator) Reset() {
	a.mu.Lock()
	issued := len(a.records)
	a.counter = 0
	a.components = make(map[string]uint64)
	a.instances = make(map[string]uint64)
	a.claimed = make(map[string]map[string]bool)
	a.cache = make(map[cacheKey]string)
	a.records = nil
	a.hits = 0
	a.misses = 0
	a.mu.Unlock()

	a.logger.Debug("allocator reset", "issued", issued)
	if a.observer != nil {
		a.observer.ObserveReset()
	}
}

// Generate returns the ID for purpose within component.
//
// With an instance key (WithKey) and caching enabled, a repeated request for
// the same component, purpose and key returns the cached ID and advances no
// counter. Otherwise the ID is composed as prefix, component (unless
// omitted), purpose and counter, joined by the separator.
func (a *Allocator) Generate(component, purpose string, opts ...GenOption) (string, error) {
	comp := normalize(component)
	if comp == "" {
		return "", ErrEmptyComponent
	}
	purp := normalize(purpose)
	if purp == "" {
		return "", ErrEmptyPurpose
	}

	req := genRequest{cfg: a.cfg}
	for _, opt := range opts {
		opt(&req)
	}
	cfg := req.cfg.withDefaults()
	useCache := req.key != "" && !cfg.DisableCache
	ck := cacheKey{component: comp, purpose: purp, key: req.key}

	a.mu.Lock()
	if useCache {
		if id, ok := a.cache[ck]; ok {
			a.hits++
			a.records = append(a.records, Record{Component: comp, Purpose: purp, Key: req.key, ID: id, Cached: true})
			a.mu.Unlock()
			a.notify(comp, true)
			return id, nil
		}
	}

	var n uint64
	switch cfg.Scope {
	case ScopeComponent:
		a.components[comp]++
		n = a.components[comp]
	default:
		a.counter++
		n = a.counter
	}

	id := compose(cfg, comp, "", purp, n)
	if useCache {
		a.cache[ck] = id
	}
	a.misses++
	a.records = append(a.records, Record{Component: comp, Purpose: purp, Key: req.key, ID: id})
	a.mu.Unlock()

	a.notify(comp, false)
	return id, nil
}

// Records returns the IDs handed out since the last Reset, in call order.
func (a *Allocator) Records() []Record {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Record, len(a.records))
	copy(out, a.records)
	return out
}

// IDs returns the ID strings handed out since the last Reset, in call order.
func (a *Allocator) IDs() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, len(a.records))
	for i, r := range a.records {
		out[i] = r.ID
	}
	return out
}

// Stats returns a snapshot of the allocator counters.
func (a *Allocator) Stats() Stats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return Stats{
		Counter:    a.counter,
		Components: len(a.components),
		CacheSize:  len(a.cache),
		Hits:       a.hits,
		Misses:     a.misses,
	}
}

// claimInstance reserves an instance segment of component. An empty key
// takes the next number not claimed by an explicit key. Claimed segments map
// to true when they were auto-assigned.
func (a *Allocator) claimInstance(component, key string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	claimed := a.claimed[component]
	if claimed == nil {
		claimed = make(map[string]bool)
		a.claimed[component] = claimed
	}

	if key != "" {
		if claimed[key] {
			return "", ErrInstanceTaken
		}
		claimed[key] = false
		return key, nil
	}

	for {
		a.instances[component]++
		seg := strconv.FormatUint(a.instances[component], 10)
		if _, ok := claimed[seg]; !ok {
			claimed[seg] = true
			return seg, nil
		}
	}
}

// record appends an ID issued by a ComponentGenerator created from a.
func (a *Allocator) record(r Record) {
	a.mu.Lock()
	if r.Cached {
		a.hits++
	} else {
		a.misses++
	}
	a.records = append(a.records, r)
	a.mu.Unlock()
	a.notify(r.Component, r.Cached)
}

func (a *Allocator) notify(component string, cached bool) {
	if a.observer != nil {
		a.observer.ObserveGenerate(component, cached)
	}
}

// compose joins the ID segments. instance is omitted when empty.
func compose(cfg Config, component, instance, purpose string, n uint64) string {
	parts := make([]string, 0, 5)
	parts = append(parts, cfg.Prefix)
	if !cfg.OmitComponentName {
		parts = append(parts, component)
	}
	if instance != "" {
		parts = append(parts, instance)
	}
	parts = append(parts, purpose, strconv.FormatUint(n, 10))
	return strings.Join(parts, cfg.Separator)
}
