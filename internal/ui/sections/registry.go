package sections

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	studioerrors "github.com/alexisbeaulieu97/studio/pkg/errors"
)

// Decoder builds a section from its prop object.
type Decoder func(node *yaml.Node) (Section, error)

// ErrUnknownType is wrapped by the SectionError returned for an unregistered type.
var ErrUnknownType = errors.New("unknown section type")

// Registry maps section type names to decoders. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	decoders map[string]Decoder
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{decoders: make(map[string]Decoder)}
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the shared registry holding the built-in sections.
func Default() *Registry {
	defaultOnce.Do(func() {
		reg := NewRegistry()
		reg.Register(HeroType, decoderFor[Hero]())
		reg.Register(CTAType, decoderFor[CTA]())
		reg.Register(TestimonialsType, decoderFor[Testimonials]())
		reg.Register(PricingType, decoderFor[Pricing]())
		defaultRegistry = reg
	})
	return defaultRegistry
}

// Register adds or replaces the decoder for sectionType.
func (r *Registry) Register(sectionType string, decoder Decoder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.decoders[sectionType] = decoder
}

// Has reports whether sectionType is registered.
func (r *Registry) Has(sectionType string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.decoders[sectionType]
	return ok
}

// Types returns the registered type names in sorted order.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	types := make([]string, 0, len(r.decoders))
	for sectionType := range r.decoders {
		types = append(types, sectionType)
	}
	sort.Strings(types)
	return types
}

// Decode builds the section of sectionType from props and assigns it id. An empty props
// node yields a section with every prop unset.
func (r *Registry) Decode(sectionType, id string, props *yaml.Node) (Section, error) {
	r.mu.RLock()
	decoder, ok := r.decoders[sectionType]
	r.mu.RUnlock()
	if !ok {
		return nil, studioerrors.NewSectionError(sectionType, id, ErrUnknownType)
	}

	section, err := decoder(props)
	if err != nil {
		return nil, studioerrors.NewSectionError(sectionType, id, fmt.Errorf("invalid props: %w", err))
	}

	if b, ok := section.(binder); ok {
		if err := b.bind(id); err != nil {
			return nil, studioerrors.NewSectionError(sectionType, id, fmt.Errorf("invalid style literal: %w", err))
		}
	}
	return section, nil
}

type binder interface {
	bind(id string) error
}

// decoderFor decodes props into a fresh *T.
func decoderFor[T any, P interface {
	*T
	Section
}]() Decoder {
	return func(node *yaml.Node) (Section, error) {
		section := P(new(T))
		if node == nil || node.Kind == 0 {
			return section, nil
		}
		if err := node.Decode(section); err != nil {
			return nil, err
		}
		return section, nil
	}
}
