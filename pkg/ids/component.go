package ids

import (
	"strings"
	"sync"
	"unicode"
)

// ComponentGenerator issues IDs for a single component instance from a
// counter private to that instance. IDs embed the instance segment, so two
// generators with the same component name and different instance keys never
// collide.
type ComponentGenerator struct {
	mu sync.Mutex

	component string
	instance  string
	cfg       Config
	parent    *Allocator

	counter uint64
	cache   map[cacheKey]string
}

// NewComponentGenerator creates a standalone generator. An empty instanceKey
// omits the instance segment; callers rendering siblings should either pass
// distinct keys or use Allocator.Component.
func NewComponentGenerator(component, instanceKey string, cfg Config) (*ComponentGenerator, error) {
	comp := normalize(component)
	if comp == "" {
		return nil, ErrEmptyComponent
	}
	return &ComponentGenerator{
		component: comp,
		instance:  instanceSegment(instanceKey),
		cfg:       cfg,
		cache:     make(map[cacheKey]string),
	}, nil
}

// Component creates a generator scoped to one instance of component. Without
// an instanceKey the allocator assigns the next instance number for the
// component that no keyed sibling uses, so sibling instances rendered in the
// same order on every pass get the same, distinct numbers. Reusing an
// explicit key returns a generator for the same instance; an explicit key
// equal to an already assigned number fails with ErrInstanceTaken. IDs the
// generator hands out are included in the allocator's Records.
func (a *Allocator) Component(component, instanceKey string) (*ComponentGenerator, error) {
	g, err := NewComponentGenerator(component, instanceKey, a.cfg)
	if err != nil {
		return nil, err
	}
	seg, err := a.claimInstance(g.component, g.instance)
	if err != nil {
		return nil, err
	}
	g.instance = seg
	g.parent = a
	return g, nil
}

// Name returns the normalized component name.
func (g *ComponentGenerator) Name() string { return g.component }

// Instance returns the instance segment embedded in every ID.
func (g *ComponentGenerator) Instance() string { return g.instance }

// Generate returns the ID for purpose within this instance. WithKey caches
// like Allocator.Generate; WithScope is ignored since the counter is always
// local.
func (g *ComponentGenerator) Generate(purpose string, opts ...GenOption) (string, error) {
	purp := normalize(purpose)
	if purp == "" {
		return "", ErrEmptyPurpose
	}

	req := genRequest{cfg: g.cfg}
	for _, opt := range opts {
		opt(&req)
	}
	cfg := req.cfg.withDefaults()
	useCache := req.key != "" && !cfg.DisableCache
	ck := cacheKey{component: g.component, purpose: purp, key: req.key}

	g.mu.Lock()
	if useCache {
		if id, ok := g.cache[ck]; ok {
			g.mu.Unlock()
			g.report(purp, req.key, id, true)
			return id, nil
		}
	}
	g.counter++
	id := compose(cfg, g.component, g.instance, purp, g.counter)
	if useCache {
		g.cache[ck] = id
	}
	g.mu.Unlock()

	g.report(purp, req.key, id, false)
	return id, nil
}

// FormFieldIDs generates the five form field IDs within this instance.
func (g *ComponentGenerator) FormFieldIDs(fieldName string) (FormFieldIDs, error) {
	return formFieldIDs(g.generate, g.component, fieldName)
}

// AriaIDs generates the ARIA relationship IDs for element within this
// instance.
func (g *ComponentGenerator) AriaIDs(element, key string) (AriaIDs, error) {
	return ariaIDs(g.generate, g.component, element, key)
}

// generate adapts Generate to the shared bundle helpers.
func (g *ComponentGenerator) generate(_ string, purpose string, opts ...GenOption) (string, error) {
	return g.Generate(purpose, opts...)
}

func (g *ComponentGenerator) report(purpose, key, id string, cached bool) {
	if g.parent == nil {
		return
	}
	g.parent.record(Record{Component: g.component, Purpose: purpose, Key: key, ID: id, Cached: cached})
}

// instanceSegment keeps the key verbatim apart from whitespace, which is not
// allowed in HTML IDs.
func instanceSegment(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '_'
		}
		return r
	}, key)
}
