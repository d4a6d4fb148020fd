package hook

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	name   string
	events *[]string
}

func (r recorder) StartupOnce()           { *r.events = append(*r.events, r.name+":once") }
func (r recorder) Startup()               { *r.events = append(*r.events, r.name+":startup") }
func (r recorder) ClientManaged(c Client) { *r.events = append(*r.events, r.name+":managed") }
func (r recorder) ClientKilled(c Client)  { *r.events = append(*r.events, r.name+":killed") }
func (r recorder) GroupActivated(g Group) { *r.events = append(*r.events, r.name+":group:"+g.Name()) }

type group string

func (g group) Name() string  { return string(g) }
func (g group) Label() string { return string(g) }

func TestDispatcherOrder(t *testing.T) {
	var events []string
	var d Dispatcher
	d.Register(recorder{"a", &events}, nil, recorder{"b", &events})
	assert.Equal(t, 2, d.Len())

	d.StartupOnce()
	d.Startup()
	d.ClientManaged(nil)
	d.GroupActivated(group("web"))
	d.ClientKilled(nil)

	assert.Equal(t, []string{
		"a:once", "b:once",
		"a:startup", "b:startup",
		"a:managed", "b:managed",
		"a:group:web", "b:group:web",
		"a:killed", "b:killed",
	}, events)
}

func TestDispatcherRecoversPanics(t *testing.T) {
	var events []string
	var d Dispatcher
	d.Register(
		Funcs{OnStartup: func() { panic("boom") }},
		recorder{"after", &events},
	)
	assert.NotPanics(t, d.Startup)
	assert.Equal(t, []string{"after:startup"}, events)
}

func TestFuncsNilFieldsAreNoOps(t *testing.T) {
	var f Funcs
	assert.NotPanics(t, func() {
		f.StartupOnce()
		f.Startup()
		f.ClientManaged(nil)
		f.ClientKilled(nil)
		f.GroupActivated(group("1"))
	})

	var got string
	f.OnGroupActivated = func(g Group) { got = g.Name() }
	f.GroupActivated(group("3"))
	assert.Equal(t, "3", got)
}
