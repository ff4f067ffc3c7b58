package types

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	ErrUnknownEnvironment   = errors.New("unknown environment")
	ErrDuplicateEnvironment = errors.New("environment already registered")
)

// EnvSpec describes how to build a named environment variant
type EnvSpec struct {
	ID string
	// MaxEpisodeSteps force-terminates episodes, 0 disables the limit
	MaxEpisodeSteps int
	New             func() (Environment, error)
}

// Registry of named environment variants
type Registry struct {
	lock  *sync.Mutex
	specs map[string]EnvSpec
}

func NewRegistry() *Registry {
	return &Registry{
		lock:  new(sync.Mutex),
		specs: make(map[string]EnvSpec),
	}
}

func (r *Registry) Register(spec EnvSpec) error {
	if spec.ID == "" || spec.New == nil {
		return fmt.Errorf("register %q: id and constructor are required", spec.ID)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	if _, ok := r.specs[spec.ID]; ok {
		return fmt.Errorf("register %q: %w", spec.ID, ErrDuplicateEnvironment)
	}
	r.specs[spec.ID] = spec
	return nil
}

// Make builds a fresh instance of the environment, wrapped in a TimeLimit
// when the spec declares a step limit
func (r *Registry) Make(id string) (Environment, error) {
	r.lock.Lock()
	spec, ok := r.specs[id]
	r.lock.Unlock()
	if !ok {
		return nil, fmt.Errorf("make %q: %w", id, ErrUnknownEnvironment)
	}
	env, err := spec.New()
	if err != nil {
		return nil, fmt.Errorf("make %q: %w", id, err)
	}
	if spec.MaxEpisodeSteps > 0 {
		return NewTimeLimit(env, spec.MaxEpisodeSteps), nil
	}
	return env, nil
}

// Specs returns the registered specs sorted by id
func (r *Registry) Specs() []EnvSpec {
	r.lock.Lock()
	defer r.lock.Unlock()
	out := make([]EnvSpec, 0, len(r.specs))
	for _, s := range r.specs {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
