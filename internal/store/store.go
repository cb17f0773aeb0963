package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/youruser/jashn/internal/config"
)

// ErrNotFound is returned by Get for a key that was never set or was deleted.
var ErrNotFound = errors.New("key not found")

// Keys shared by the wizard and the presentation session.
const (
	KeyCelebration   = "celebrationData"
	KeyVisitorName   = "jashnVisitorName"
	KeyBalloonCount  = "jashnGlobalBalloonPopCount"
	KeyComments      = "storyCommentsV3"
	KeyEmotionalTerm = "emotionalTerm"
	KeyBabyTerm      = "babyTerm"
	KeyCoupleTerm    = "coupleTerm"
)

// Store is a small key/value persistence layer. Values are JSON encoded.
type Store interface {
	Get(key string, v any) error
	Set(key string, v any) error
	Delete(key string) error
}

// New picks the backend named by cfg.Type.
func New(cfg config.StorageConfig) (Store, error) {
	switch strings.ToLower(cfg.Type) {
	case "", "memory":
		return NewMemoryStore(), nil
	case "disk", "file":
		return NewDiskStore(cfg.DataDir)
	}
	return nil, fmt.Errorf("unknown storage type %q", cfg.Type)
}

// prefixed namespaces every key except the shared ones.
type prefixed struct {
	base   Store
	prefix string
	shared map[string]bool
}

// Prefixed returns a view of base where keys are stored under prefix.
// Keys listed in shared are passed through unchanged.
func Prefixed(base Store, prefix string, shared ...string) Store {
	p := &prefixed{base: base, prefix: prefix, shared: make(map[string]bool, len(shared))}
	for _, k := range shared {
		p.shared[k] = true
	}
	return p
}

func (p *prefixed) key(k string) string {
	if p.shared[k] {
		return k
	}
	return p.prefix + k
}

func (p *prefixed) Get(key string, v any) error { return p.base.Get(p.key(key), v) }
func (p *prefixed) Set(key string, v any) error { return p.base.Set(p.key(key), v) }
func (p *prefixed) Delete(key string) error     { return p.base.Delete(p.key(key)) }
