package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/groupwm/groupwm/config"
	"github.com/groupwm/groupwm/hook"
	"github.com/groupwm/groupwm/rules"
)

func TestNewSession(t *testing.T) {
	s, err := newSession(config.Default(), false)
	require.NoError(t, err)
	assert.Equal(t, 4, s.hooks.Len())
	assert.Equal(t, 0, s.sticky.Len())
	assert.False(t, s.restarted)

	gs := s.newGroups()
	require.Len(t, gs, 10)
	for i, k := range gs {
		assert.Equal(t, i, k.index)
		assert.Equal(t, s.cfg.Groups[i].Name, k.Name())
		assert.Nil(t, k.screen)
	}
	assert.Equal(t, "0", gs[9].Name())
}

func TestNewSessionBadRules(t *testing.T) {
	cfg := config.Default()
	cfg.Sticky = append(cfg.Sticky, rules.Match{})
	_, err := newSession(cfg, false)
	assert.ErrorContains(t, err, "sticky rules")

	cfg = config.Default()
	cfg.Float = []rules.Match{{Title: "re:("}}
	_, err = newSession(cfg, false)
	assert.Error(t, err)
}

type fakeClient struct {
	class    hook.WMClass
	title    string
	group    string
	floating bool
	events   []string
	onMove   func(c *fakeClient)
}

func (c *fakeClient) ID() uint32          { return 1 }
func (c *fakeClient) Class() hook.WMClass { return c.class }
func (c *fakeClient) Title() string       { return c.title }
func (c *fakeClient) Group() string       { return c.group }
func (c *fakeClient) Floating() bool      { return c.floating }
func (c *fakeClient) ToGroup(name string) {
	c.group = name
	c.events = append(c.events, "to:"+name)
	if c.onMove != nil {
		c.onMove(c)
	}
}

func (c *fakeClient) SetFloating(f bool) {
	c.floating = f
	c.events = append(c.events, "float")
}

func TestSessionHooks(t *testing.T) {
	s, err := newSession(config.Default(), false)
	require.NoError(t, err)

	// The default rules send Picture-in-Picture to the browser group and make
	// it sticky, in that order.
	var stickyOnMove []bool
	pip := &fakeClient{
		class:  hook.WMClass{Instance: "Toolkit", Class: "firefox"},
		title:  "Picture-in-Picture",
		group:  "1",
		onMove: func(c *fakeClient) { stickyOnMove = append(stickyOnMove, s.sticky.Contains(c)) },
	}
	s.hooks.ClientManaged(pip)
	assert.Equal(t, []string{"to:2"}, pip.events)
	assert.Equal(t, []bool{false}, stickyOnMove)
	assert.True(t, s.sticky.Contains(pip))

	s.hooks.GroupActivated(newGroup("7", "", 6))
	assert.Equal(t, []string{"to:2", "to:7"}, pip.events)

	s.hooks.ClientKilled(pip)
	s.hooks.GroupActivated(newGroup("8", "", 7))
	assert.Equal(t, []string{"to:2", "to:7"}, pip.events)
	assert.Equal(t, 0, s.sticky.Len())

	// Routing runs before floating.
	about := &fakeClient{
		class: hook.WMClass{Instance: "jetbrains-pycharm-ce", Class: "jetbrains-pycharm-ce"},
		title: "About PyCharm",
		group: "1",
	}
	s.hooks.ClientManaged(about)
	assert.Equal(t, []string{"to:3", "float"}, about.events)
	assert.False(t, s.sticky.Contains(about))

	ide := &fakeClient{class: hook.WMClass{Class: "JetBrains-PyCharm"}, title: "main.go", group: "1"}
	s.hooks.ClientManaged(ide)
	assert.Equal(t, []string{"to:3"}, ide.events)

	term := &fakeClient{class: hook.WMClass{Class: "XTerm"}, title: "xterm", group: "1"}
	s.hooks.ClientManaged(term)
	assert.Empty(t, term.events)
}
