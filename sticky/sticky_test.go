package sticky

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/groupwm/groupwm/hook"
)

type fakeClient struct {
	id      uint32
	class   hook.WMClass
	title   string
	group   string
	moves   []string
	onMove  func()
	floated bool
}

func (c *fakeClient) ID() uint32          { return c.id }
func (c *fakeClient) Class() hook.WMClass { return c.class }
func (c *fakeClient) Title() string       { return c.title }
func (c *fakeClient) Group() string       { return c.group }
func (c *fakeClient) Floating() bool      { return c.floated }
func (c *fakeClient) SetFloating(f bool)  { c.floated = f }
func (c *fakeClient) ToGroup(name string) {
	c.moves = append(c.moves, name)
	c.group = name
	if c.onMove != nil {
		c.onMove()
	}
}

type fakeGroup string

func (g fakeGroup) Name() string  { return string(g) }
func (g fakeGroup) Label() string { return string(g) }

type matchFunc func(hook.Client) bool

func (f matchFunc) Match(c hook.Client) bool { return f(c) }

func TestToggleTwiceRestoresMembership(t *testing.T) {
	r := New(nil)
	w := &fakeClient{id: 1}

	assert.True(t, r.Toggle(w))
	assert.True(t, r.Contains(w))
	assert.False(t, r.Toggle(w))
	assert.False(t, r.Contains(w))
	assert.Equal(t, 0, r.Len())
}

func TestToggleParity(t *testing.T) {
	w1, w2, w3 := &fakeClient{id: 1}, &fakeClient{id: 2}, &fakeClient{id: 3}
	sequence := []*fakeClient{w1, w2, w1, w3, w1, w2, w2, w2}

	r := New(nil)
	counts := map[*fakeClient]int{}
	for _, w := range sequence {
		r.Toggle(w)
		counts[w]++
	}
	for _, w := range []*fakeClient{w1, w2, w3} {
		assert.Equal(t, counts[w]%2 == 1, r.Contains(w), "window %d", w.id)
	}
}

func TestToggleNilIsNoOp(t *testing.T) {
	r := New(nil)
	assert.False(t, r.Toggle(nil))
	assert.Equal(t, 0, r.Len())
}

func TestWindowClosedIsIdempotent(t *testing.T) {
	r := New(nil)
	w := &fakeClient{id: 7}
	r.Toggle(w)

	for i := 0; i < 3; i++ {
		assert.NotPanics(t, func() { r.WindowClosed(w) })
		assert.False(t, r.Contains(w))
	}
	assert.NotPanics(t, func() { r.WindowClosed(&fakeClient{id: 8}) })
}

func TestGroupActivatedReattachesEachOnce(t *testing.T) {
	r := New(nil)
	a, b, c := &fakeClient{id: 1}, &fakeClient{id: 2}, &fakeClient{id: 3}
	r.Toggle(a)
	r.Toggle(b)

	r.GroupActivated(fakeGroup("4"))

	assert.Equal(t, []string{"4"}, a.moves)
	assert.Equal(t, []string{"4"}, b.moves)
	assert.Empty(t, c.moves)
	assert.Equal(t, 2, r.Len())
}

func TestScenarioToggleOffStopsReattach(t *testing.T) {
	r := New(nil)
	w1 := &fakeClient{id: 1}

	r.Toggle(w1)
	assert.Equal(t, []hook.Client{w1}, r.Clients())
	r.GroupActivated(fakeGroup("2"))
	assert.Equal(t, []string{"2"}, w1.moves)

	r.Toggle(w1)
	assert.Empty(t, r.Clients())
	r.GroupActivated(fakeGroup("3"))
	assert.Equal(t, []string{"2"}, w1.moves)
}

func TestScenarioClosedWindowIsNotReattached(t *testing.T) {
	r := New(nil)
	w1 := &fakeClient{id: 1}

	r.Toggle(w1)
	r.ClientKilled(w1)
	assert.Equal(t, 0, r.Len())

	r.GroupActivated(fakeGroup("5"))
	assert.Empty(t, w1.moves)
}

func TestGroupActivatedToleratesRemovalDuringMove(t *testing.T) {
	r := New(nil)
	a, b := &fakeClient{id: 1}, &fakeClient{id: 2}
	a.onMove = func() { r.WindowClosed(b) }
	r.Toggle(a)
	r.Toggle(b)

	require.NotPanics(t, func() { r.GroupActivated(fakeGroup("9")) })
	assert.Equal(t, []string{"9"}, a.moves)
	assert.Empty(t, b.moves)
	assert.Equal(t, []hook.Client{a}, r.Clients())
}

func TestInsertionOrder(t *testing.T) {
	r := New(nil)
	var order []uint32
	ws := []*fakeClient{{id: 3}, {id: 1}, {id: 2}}
	for _, w := range ws {
		w := w
		w.onMove = func() { order = append(order, w.id) }
		r.Toggle(w)
	}
	r.GroupActivated(fakeGroup("1"))
	assert.Equal(t, []uint32{3, 1, 2}, order)
}

func TestClientManagedAutoSticky(t *testing.T) {
	pip := matchFunc(func(c hook.Client) bool {
		return c.Class().Class == "firefox" && c.Title() == "Picture-in-Picture"
	})
	r := New(pip)

	video := &fakeClient{id: 1, class: hook.WMClass{Instance: "Toolkit", Class: "firefox"}, title: "Picture-in-Picture"}
	browser := &fakeClient{id: 2, class: hook.WMClass{Instance: "Navigator", Class: "firefox"}, title: "Mozilla Firefox"}
	r.ClientManaged(video)
	r.ClientManaged(browser)
	r.ClientManaged(video)

	assert.Equal(t, []hook.Client{video}, r.Clients())
}

func TestReset(t *testing.T) {
	r := New(nil)
	r.Add(&fakeClient{id: 1})
	r.Add(&fakeClient{id: 2})
	r.Reset()
	assert.Equal(t, 0, r.Len())
}
