package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/groupwm/groupwm/hook"
)

type client struct {
	class    hook.WMClass
	title    string
	group    string
	floating bool
	moves    []string
}

func (c *client) ID() uint32          { return 1 }
func (c *client) Class() hook.WMClass { return c.class }
func (c *client) Title() string       { return c.title }
func (c *client) Group() string       { return c.group }
func (c *client) Floating() bool      { return c.floating }
func (c *client) SetFloating(f bool)  { c.floating = f }
func (c *client) ToGroup(name string) {
	c.moves = append(c.moves, name)
	c.group = name
}

func newClient(instance, class, title string) *client {
	return &client{class: hook.WMClass{Instance: instance, Class: class}, title: title, group: "1"}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name     string
		match    Match
		client   *client
		expected bool
	}{
		{"class matches class", Match{Class: "firefox"}, newClient("Navigator", "firefox", ""), true},
		{"class matches instance", Match{Class: "Toolkit"}, newClient("Toolkit", "firefox", ""), true},
		{"class mismatch", Match{Class: "chromium"}, newClient("Navigator", "firefox", ""), false},
		{"instance only matches instance", Match{Instance: "firefox"}, newClient("Navigator", "firefox", ""), false},
		{"title", Match{Title: "pinentry"}, newClient("pinentry", "Pinentry", "pinentry"), true},
		{"class and title both required", Match{Class: "firefox", Title: "Picture-in-Picture"}, newClient("Toolkit", "firefox", "Mozilla Firefox"), false},
		{"class and title", Match{Class: "firefox", Title: "Picture-in-Picture"}, newClient("Toolkit", "firefox", "Picture-in-Picture"), true},
		{"regexp title", Match{Title: "re:^About "}, newClient("x", "jetbrains-pycharm", "About PyCharm"), true},
		{"regexp class", Match{Class: "re:(?i)^gimp"}, newClient("gimp", "Gimp-2.10", ""), true},
		{"literal is exact", Match{Class: "code"}, newClient("code-oss", "code-oss", ""), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := Compile([]Match{tc.match})
			require.NoError(t, err)
			assert.Equal(t, tc.expected, s.Match(tc.client))
		})
	}
}

func TestCompileErrors(t *testing.T) {
	_, err := Compile([]Match{{Class: "re:("}})
	assert.Error(t, err)

	_, err = Compile([]Match{{}})
	assert.Error(t, err)

	_, err = Compile([]Match{{Title: "re:["}})
	assert.Error(t, err)
}

func TestSetFirst(t *testing.T) {
	s, err := Compile([]Match{{Class: "mpv"}, {Class: "vlc"}, {Title: "re:."}})
	require.NoError(t, err)
	m, ok := s.First(newClient("vlc", "vlc", "movie"))
	assert.True(t, ok)
	assert.Equal(t, Match{Class: "vlc"}, m)

	_, ok = Set{}.First(newClient("vlc", "vlc", ""))
	assert.False(t, ok)
	assert.False(t, s.Match(nil))
}

func TestGrouper(t *testing.T) {
	g, err := NewGrouper(
		[]GroupRule{
			{Group: "2", Matches: []Match{{Class: "firefox"}, {Class: "chromium"}}},
			{Group: "5", Matches: []Match{{Title: "Docker"}}},
			{Group: "9"},
		},
		[]ClassRoute{
			{Group: "3", Contains: []string{"Code", "pycharm", ""}},
			{Group: "2", Contains: []string{"chrome"}},
		},
	)
	require.NoError(t, err)

	tests := []struct {
		name   string
		client *client
		group  string
		ok     bool
	}{
		{"match rule", newClient("Navigator", "firefox", ""), "2", true},
		{"title rule", newClient("x", "Electron", "Docker"), "5", true},
		{"route substring ignores case", newClient("code", "Code-OSS", ""), "3", true},
		{"route", newClient("jetbrains-pycharm-ce", "jetbrains-pycharm-ce", ""), "3", true},
		{"second route", newClient("google-chrome", "Google-chrome", ""), "2", true},
		{"no rule", newClient("xterm", "XTerm", ""), "", false},
		{"no class", newClient("", "", "untitled"), "", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			group, ok := g.GroupFor(tc.client)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.group, group)
		})
	}
}

func TestGrouperClientManaged(t *testing.T) {
	g, err := NewGrouper([]GroupRule{{Group: "8", Matches: []Match{{Class: "mpv"}}}}, nil)
	require.NoError(t, err)

	c := newClient("mpv", "mpv", "")
	g.ClientManaged(c)
	assert.Equal(t, []string{"8"}, c.moves)

	// Already there: no move.
	g.ClientManaged(c)
	assert.Equal(t, []string{"8"}, c.moves)

	other := newClient("xterm", "XTerm", "")
	g.ClientManaged(other)
	assert.Empty(t, other.moves)
}

func TestGrouperBadRule(t *testing.T) {
	_, err := NewGrouper([]GroupRule{{Group: "2", Matches: []Match{{Title: "re:("}}}}, nil)
	assert.ErrorContains(t, err, `group "2"`)
}

func TestFloater(t *testing.T) {
	f, err := NewFloater([]Match{{Class: "ssh-askpass"}, {Title: "pinentry"}})
	require.NoError(t, err)

	askpass := newClient("ssh-askpass", "Ssh-askpass", "")
	term := newClient("terminator", "Terminator", "")
	f.ClientManaged(askpass)
	f.ClientManaged(term)
	assert.True(t, askpass.floating)
	assert.False(t, term.floating)
	assert.True(t, f.set.Match(askpass))

	// Floater only ever floats.
	term.floating = true
	f.ClientManaged(term)
	assert.True(t, term.floating)
}
