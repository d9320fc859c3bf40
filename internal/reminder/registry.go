package reminder

import (
	"context"

	"github.com/pawclinic/vet-scheduler/internal/models"
)

// Strategy delivers one reminder for one appointment. Strategies are
// independent: one failing must not stop the others.
type Strategy func(ctx context.Context, ap models.Appointment) error

// Registry maps strategy names to handlers. Dispatch iterates in
// registration order, so runs are deterministic.
type Registry struct {
	names    []string
	handlers map[string]Strategy
}

func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]Strategy),
	}
}

func (r *Registry) Register(name string, s Strategy) {
	if _, exists := r.handlers[name]; !exists {
		r.names = append(r.names, name)
	}
	r.handlers[name] = s
}

func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

func (r *Registry) Get(name string) (Strategy, bool) {
	s, ok := r.handlers[name]
	return s, ok
}
