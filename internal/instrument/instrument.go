package instrument

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/specialistvlad/floorplan/internal/ctxlog"
)

// Types of possible instruments.
const (
	TypeTeam                = "team"
	TypeManagedObjectSource = "managed_object_source"
)

var (
	ErrNotObservable     = errors.New("object is not observable")
	ErrAlreadyRegistered = errors.New("already registered")
	ErrNotRegistered     = errors.New("not registered")
)

// Possible is an entity offered for management, keyed by (Type, Name).
type Possible struct {
	Type   string
	Name   string
	Object any
}

// Key identifies p among all possible instruments.
func (p Possible) Key() string {
	return p.Type + ":" + p.Name
}

// Registrator makes entities manageable.
type Registrator interface {
	Register(ctx context.Context, p Possible) error
	Unregister(ctx context.Context, p Possible) error
}

// Observable is implemented by objects that expose named gauges.
type Observable interface {
	Observe() map[string]int64
}

// Gauges is a fixed set of gauge values.
type Gauges map[string]int64

func (g Gauges) Observe() map[string]int64 { return g }

// Lifecycle ties registration to the opened and closed events of a floor.
type Lifecycle struct {
	registrator Registrator
	possible    []Possible

	mu         sync.Mutex
	registered []Possible
}

// NewLifecycle creates a lifecycle offering possible to registrator.
func NewLifecycle(registrator Registrator, possible []Possible) *Lifecycle {
	return &Lifecycle{
		registrator: registrator,
		possible:    slices.Clone(possible),
	}
}

// Opened registers every possible instrument not registered yet.
func (l *Lifecycle) Opened(ctx context.Context) {
	logger := ctxlog.FromContext(ctx)
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, p := range l.possible {
		if l.indexOf(p) >= 0 {
			continue
		}
		if err := l.registrator.Register(ctx, p); err != nil {
			logger.Debug("Failed to register instrument, ignoring.", "instrument", p.Key(), "error", err)
			continue
		}
		l.registered = append(l.registered, p)
	}
	logger.Debug("Instruments registered.", "registered", len(l.registered), "offered", len(l.possible))
}

// Closed unregisters everything Opened registered, in reverse order.
func (l *Lifecycle) Closed(ctx context.Context) {
	logger := ctxlog.FromContext(ctx)
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := len(l.registered) - 1; i >= 0; i-- {
		p := l.registered[i]
		if err := l.registrator.Unregister(ctx, p); err != nil {
			logger.Debug("Failed to unregister instrument, ignoring.", "instrument", p.Key(), "error", err)
		}
	}
	l.registered = nil
}

// Registered returns the instruments currently registered.
func (l *Lifecycle) Registered() []Possible {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.registered)
}

func (l *Lifecycle) indexOf(p Possible) int {
	return slices.IndexFunc(l.registered, func(r Possible) bool { return r.Key() == p.Key() })
}
