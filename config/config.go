// Package config holds groupwm's configuration: the compiled-in defaults and
// the optional TOML file that overrides them.
package config

import (
	"strings"

	"github.com/groupwm/groupwm/rules"
)

// Config is the whole of groupwm's configuration. The zero value is not
// useful; start from Default.
type Config struct {
	// ModKey is substituted for "$mod" in key strings.
	ModKey string `toml:"mod-key"`

	Terminal    string `toml:"terminal"`
	FileManager string `toml:"file-manager"`
	BorderWidth int    `toml:"border-width"`

	// WMName is announced as _NET_WM_NAME on the EWMH check window.
	WMName string `toml:"wm-name"`

	// GroupKeys adds "$mod-N", "$mod-shift-N" and "$mod-control-N" bindings
	// for every group N.
	GroupKeys bool `toml:"group-keys"`

	Colors      Colors             `toml:"colors"`
	Autostart   Autostart          `toml:"autostart"`
	Groups      []Group            `toml:"group"`
	ClassRoutes []rules.ClassRoute `toml:"class-route"`
	Float       []rules.Match      `toml:"float"`
	Sticky      []rules.Match      `toml:"sticky"`
	Keys        []Key              `toml:"key"`
}

// Colors are "#RRGGBB" strings.
type Colors struct {
	BorderFocus  string `toml:"border-focus"`
	BorderNormal string `toml:"border-normal"`
	PulseFocus   string `toml:"pulse-focus"`
	PulseNormal  string `toml:"pulse-normal"`
	QuitFocus    string `toml:"quit-focus"`
	QuitNormal   string `toml:"quit-normal"`
	Text         string `toml:"text"`
}

type Autostart struct {
	X11Script     string     `toml:"x11-script"`
	WaylandScript string     `toml:"wayland-script"`
	Always        [][]string `toml:"always"`
}

// Group is a named workspace. Clients matching any of Matches are moved to
// it when they appear.
type Group struct {
	Name    string        `toml:"name"`
	Label   string        `toml:"label"`
	Matches []rules.Match `toml:"matches,omitempty"`
}

// Key binds a key string such as "$mod-shift-h" to an action.
type Key struct {
	Keys   string   `toml:"keys"`
	Action string   `toml:"action"`
	Args   []string `toml:"args,omitempty"`
	Desc   string   `toml:"desc,omitempty"`
}

// Actions lists every action name a Key may use.
var Actions = []string{
	"spawn",
	"kill",
	"toggle-sticky",
	"toggle-floating",
	"toggle-fullscreen",
	"hide",
	"group",
	"to-group",
	"to-group-follow",
	"to-prev-group",
	"to-next-group",
	"next-group",
	"prev-group",
	"next-frame",
	"prev-frame",
	"next-window",
	"prev-window",
	"shuffle-next",
	"shuffle-prev",
	"split-horizontal",
	"split-vertical",
	"merge",
	"next-screen",
	"list-windows",
	"list-groups",
	"restart",
	"quit",
}

// groupActions take a group name as their only argument.
var groupActions = map[string]bool{
	"group":           true,
	"to-group":        true,
	"to-group-follow": true,
}

func isAction(name string) bool {
	for _, a := range Actions {
		if a == name {
			return true
		}
	}
	return false
}

// GroupNames returns the group names in order.
func (c *Config) GroupNames() []string {
	names := make([]string, len(c.Groups))
	for i, g := range c.Groups {
		names[i] = g.Name
	}
	return names
}

// GroupRules returns the groups' match rules.
func (c *Config) GroupRules() []rules.GroupRule {
	var rs []rules.GroupRule
	for _, g := range c.Groups {
		if len(g.Matches) != 0 {
			rs = append(rs, rules.GroupRule{Group: g.Name, Matches: g.Matches})
		}
	}
	return rs
}

// Bindings returns the key bindings with "$mod" expanded in key strings,
// "$terminal" and "$file-manager" expanded in arguments, and the group keys
// appended if enabled.
func (c *Config) Bindings() []Key {
	argReplacer := strings.NewReplacer(
		"$terminal", c.Terminal,
		"$file-manager", c.FileManager,
	)
	out := make([]Key, 0, len(c.Keys)+3*len(c.Groups))
	for _, k := range c.Keys {
		b := Key{
			Keys:   c.expandMod(k.Keys),
			Action: k.Action,
			Desc:   k.Desc,
		}
		if k.Args != nil {
			b.Args = make([]string, len(k.Args))
			for i, a := range k.Args {
				b.Args[i] = argReplacer.Replace(a)
			}
		}
		out = append(out, b)
	}
	if c.GroupKeys {
		for _, g := range c.Groups {
			out = append(out,
				Key{c.ModKey + "-" + g.Name, "group", []string{g.Name},
					"Switch to group " + g.Name},
				Key{c.ModKey + "-shift-" + g.Name, "to-group", []string{g.Name},
					"Move window to group " + g.Name},
				Key{c.ModKey + "-control-" + g.Name, "to-group-follow", []string{g.Name},
					"Move window to group " + g.Name + " and follow"},
			)
		}
	}
	return out
}

func (c *Config) expandMod(keys string) string {
	return strings.ReplaceAll(keys, "$mod", c.ModKey)
}
