package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/groupwm/groupwm/rules"
)

var (
	ErrNoGroups       = errors.New("no groups")
	ErrEmptyGroupName = errors.New("empty group name")
	ErrDuplicateGroup = errors.New("duplicate group")
	ErrUnknownGroup   = errors.New("unknown group")
	ErrBadColor       = errors.New("bad color")
	ErrEmptyKeys      = errors.New("empty key string")
	ErrUnknownAction  = errors.New("unknown action")
	ErrBadArgs        = errors.New("bad action arguments")
	ErrBadRule        = errors.New("bad match rule")
	ErrBadModKey      = errors.New("bad mod key")
)

var modKeys = map[string]bool{
	"shift": true, "lock": true, "control": true,
	"mod1": true, "mod2": true, "mod3": true, "mod4": true, "mod5": true,
}

// Validate checks c and returns every problem it finds, joined. Each problem
// wraps one of the Err* values.
func (c *Config) Validate() error {
	var errs []error
	add := func(sentinel error, format string, args ...interface{}) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]interface{}{sentinel}, args...)...))
	}

	if !modKeys[strings.ToLower(c.ModKey)] {
		add(ErrBadModKey, "%q", c.ModKey)
	}

	groups := map[string]bool{}
	if len(c.Groups) == 0 {
		add(ErrNoGroups, "at least one [[group]] is required")
	}
	for i, g := range c.Groups {
		switch {
		case g.Name == "":
			add(ErrEmptyGroupName, "group #%d", i+1)
		case groups[g.Name]:
			add(ErrDuplicateGroup, "%q", g.Name)
		}
		groups[g.Name] = true
		if _, err := rules.Compile(g.Matches); err != nil {
			add(ErrBadRule, "group %q: %v", g.Name, err)
		}
	}
	for _, r := range c.ClassRoutes {
		if !groups[r.Group] {
			add(ErrUnknownGroup, "class route to %q", r.Group)
		}
	}
	if _, err := rules.Compile(c.Float); err != nil {
		add(ErrBadRule, "float: %v", err)
	}
	if _, err := rules.Compile(c.Sticky); err != nil {
		add(ErrBadRule, "sticky: %v", err)
	}

	for _, nc := range c.Colors.named() {
		if _, err := ParseColor(nc.value); err != nil {
			add(ErrBadColor, "%s: %v", nc.name, err)
		}
	}

	for _, k := range c.Bindings() {
		if k.Keys == "" {
			add(ErrEmptyKeys, "binding for %q", k.Action)
		}
		if !isAction(k.Action) {
			add(ErrUnknownAction, "%q bound to %q", k.Action, k.Keys)
			continue
		}
		switch {
		case k.Action == "spawn" && len(k.Args) == 0:
			add(ErrBadArgs, "%s: spawn needs a command", k.Keys)
		case groupActions[k.Action] && len(k.Args) != 1:
			add(ErrBadArgs, "%s: %s needs one group name", k.Keys, k.Action)
		case groupActions[k.Action] && !groups[k.Args[0]]:
			add(ErrUnknownGroup, "%s: %s %q", k.Keys, k.Action, k.Args[0])
		}
	}
	return errors.Join(errs...)
}

type namedColor struct {
	name  string
	value string
}

func (c Colors) named() []namedColor {
	return []namedColor{
		{"border-focus", c.BorderFocus},
		{"border-normal", c.BorderNormal},
		{"pulse-focus", c.PulseFocus},
		{"pulse-normal", c.PulseNormal},
		{"quit-focus", c.QuitFocus},
		{"quit-normal", c.QuitNormal},
		{"text", c.Text},
	}
}

// Palette is Colors parsed to 24-bit RGB values.
type Palette struct {
	BorderFocus  uint32
	BorderNormal uint32
	PulseFocus   uint32
	PulseNormal  uint32
	QuitFocus    uint32
	QuitNormal   uint32
	Text         uint32
}

// Palette parses c. Validate has already checked every color, so errors are
// only possible on an unvalidated Config.
func (c Colors) Palette() (Palette, error) {
	var p Palette
	dst := []*uint32{
		&p.BorderFocus, &p.BorderNormal,
		&p.PulseFocus, &p.PulseNormal,
		&p.QuitFocus, &p.QuitNormal,
		&p.Text,
	}
	for i, nc := range c.named() {
		v, err := ParseColor(nc.value)
		if err != nil {
			return Palette{}, fmt.Errorf("%s: %w", nc.name, err)
		}
		*dst[i] = v
	}
	return p, nil
}

// ParseColor parses "#RRGGBB" (or "#RGB") to a 24-bit RGB value.
func ParseColor(s string) (uint32, error) {
	if !strings.HasPrefix(s, "#") {
		return 0, fmt.Errorf("%q does not start with '#'", s)
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return 0, fmt.Errorf("%q is not #RRGGBB", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%q is not #RRGGBB", s)
	}
	return uint32(v), nil
}
