// Package sticky keeps track of sticky windows: windows that follow the user
// from group to group instead of staying in the group that owns them.
package sticky

import (
	"github.com/groupwm/groupwm/hook"
	"github.com/groupwm/groupwm/log"
)

// Matcher reports whether a newly managed client starts out sticky.
type Matcher interface {
	Match(c hook.Client) bool
}

// Registry is the set of sticky clients, in the order they became sticky.
//
// Clients are compared by identity, so the window manager must hand out
// comparable Client values (typically pointers). A Registry is not safe for
// concurrent use; the window manager calls it from its event goroutine only.
type Registry struct {
	clients []hook.Client
	auto    Matcher
}

var _ hook.Handler = (*Registry)(nil)

// New returns an empty Registry. If auto is non-nil, clients it matches are
// made sticky as soon as they are managed.
func New(auto Matcher) *Registry {
	return &Registry{auto: auto}
}

func (r *Registry) index(c hook.Client) int {
	for i, s := range r.clients {
		if s == c {
			return i
		}
	}
	return -1
}

// Toggle makes c sticky if it is not, and not sticky if it is. It returns
// whether c is sticky afterwards. A nil client is ignored.
func (r *Registry) Toggle(c hook.Client) bool {
	if c == nil {
		return false
	}
	if i := r.index(c); i >= 0 {
		r.remove(i)
		log.Debugf("sticky: window %#x released", c.ID())
		return false
	}
	r.clients = append(r.clients, c)
	log.Debugf("sticky: window %#x is sticky", c.ID())
	return true
}

// Add makes c sticky. It is a no-op if c already is.
func (r *Registry) Add(c hook.Client) {
	if c == nil || r.index(c) >= 0 {
		return
	}
	r.clients = append(r.clients, c)
}

func (r *Registry) Contains(c hook.Client) bool {
	return c != nil && r.index(c) >= 0
}

func (r *Registry) Len() int {
	return len(r.clients)
}

// Clients returns a copy of the sticky clients in insertion order.
func (r *Registry) Clients() []hook.Client {
	return append([]hook.Client(nil), r.clients...)
}

// Reset forgets every sticky client.
func (r *Registry) Reset() {
	r.clients = nil
}

func (r *Registry) remove(i int) {
	copy(r.clients[i:], r.clients[i+1:])
	r.clients[len(r.clients)-1] = nil
	r.clients = r.clients[:len(r.clients)-1]
}

// GroupActivated moves every sticky client to g.
func (r *Registry) GroupActivated(g hook.Group) {
	if g == nil {
		return
	}
	// ToGroup calls back into the window manager, which may report the
	// client killed and so shrink r.clients.
	for _, c := range r.Clients() {
		if r.index(c) < 0 {
			continue
		}
		c.ToGroup(g.Name())
	}
}

// WindowClosed forgets c. It is a no-op if c is not sticky.
func (r *Registry) WindowClosed(c hook.Client) {
	if i := r.index(c); i >= 0 {
		r.remove(i)
	}
}

// ClientKilled implements hook.Handler.
func (r *Registry) ClientKilled(c hook.Client) {
	r.WindowClosed(c)
}

// ClientManaged implements hook.Handler.
func (r *Registry) ClientManaged(c hook.Client) {
	if r.auto != nil && r.auto.Match(c) {
		log.Infof("sticky: %q (%s) is sticky by rule", c.Title(), c.Class().Class)
		r.Add(c)
	}
}

func (r *Registry) StartupOnce() {}
func (r *Registry) Startup()     {}
