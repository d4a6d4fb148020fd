// Package hook defines the window manager's object model as seen by its
// extensions, and the events the window manager delivers to them.
//
// All events are delivered synchronously on the window manager's event
// goroutine, one at a time. Handlers must not block.
package hook

import (
	"fmt"
	"runtime/debug"

	"github.com/groupwm/groupwm/log"
)

// WMClass is a window's ICCCM WM_CLASS property.
type WMClass struct {
	Instance string
	Class    string
}

// Client is a managed top-level window. Clients are owned by the window
// manager; extensions may hold on to them only until ClientKilled.
type Client interface {
	ID() uint32
	Class() WMClass
	Title() string
	// Group returns the name of the group the client belongs to.
	Group() string
	// ToGroup moves the client to the named group. Unknown names are ignored.
	ToGroup(name string)
	Floating() bool
	SetFloating(floating bool)
}

// Group is a named set of clients shown together on a screen.
type Group interface {
	Name() string
	Label() string
}

// Handler receives window manager events.
type Handler interface {
	// StartupOnce is called on the first start of the window manager, but
	// not after an in-place restart.
	StartupOnce()
	// Startup is called on every start, after StartupOnce.
	Startup()
	// ClientManaged is called once a new client has been placed.
	ClientManaged(c Client)
	// ClientKilled is called exactly once when a managed client goes away.
	ClientKilled(c Client)
	// GroupActivated is called whenever a screen switches to a group.
	GroupActivated(g Group)
}

// Funcs adapts plain functions to a Handler. Nil fields are no-ops.
type Funcs struct {
	OnStartupOnce    func()
	OnStartup        func()
	OnClientManaged  func(Client)
	OnClientKilled   func(Client)
	OnGroupActivated func(Group)
}

var _ Handler = Funcs{}

func (f Funcs) StartupOnce() {
	if f.OnStartupOnce != nil {
		f.OnStartupOnce()
	}
}

func (f Funcs) Startup() {
	if f.OnStartup != nil {
		f.OnStartup()
	}
}

func (f Funcs) ClientManaged(c Client) {
	if f.OnClientManaged != nil {
		f.OnClientManaged(c)
	}
}

func (f Funcs) ClientKilled(c Client) {
	if f.OnClientKilled != nil {
		f.OnClientKilled(c)
	}
}

func (f Funcs) GroupActivated(g Group) {
	if f.OnGroupActivated != nil {
		f.OnGroupActivated(g)
	}
}

// Dispatcher fans events out to its handlers in registration order. The zero
// value is ready to use.
type Dispatcher struct {
	handlers []Handler
}

func (d *Dispatcher) Register(hs ...Handler) {
	for _, h := range hs {
		if h != nil {
			d.handlers = append(d.handlers, h)
		}
	}
}

func (d *Dispatcher) Len() int {
	return len(d.handlers)
}

func (d *Dispatcher) StartupOnce() {
	d.each("StartupOnce", func(h Handler) { h.StartupOnce() })
}

func (d *Dispatcher) Startup() {
	d.each("Startup", func(h Handler) { h.Startup() })
}

func (d *Dispatcher) ClientManaged(c Client) {
	d.each("ClientManaged", func(h Handler) { h.ClientManaged(c) })
}

func (d *Dispatcher) ClientKilled(c Client) {
	d.each("ClientKilled", func(h Handler) { h.ClientKilled(c) })
}

func (d *Dispatcher) GroupActivated(g Group) {
	d.each("GroupActivated", func(h Handler) { h.GroupActivated(g) })
}

func (d *Dispatcher) each(event string, call func(Handler)) {
	for _, h := range d.handlers {
		if err := safeCall(h, call); err != nil {
			log.Errorf("hook %T: %s: %v", h, event, err)
		}
	}
}

func safeCall(h Handler, call func(Handler)) (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Debugf("%s", debug.Stack())
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	call(h)
	return nil
}
