package rules

import (
	"fmt"
	"strings"

	"github.com/groupwm/groupwm/hook"
	"github.com/groupwm/groupwm/log"
)

// GroupRule sends clients matching any of Matches to Group.
type GroupRule struct {
	Group   string
	Matches []Match
}

// ClassRoute sends clients whose WM_CLASS class contains any of Contains,
// ignoring case, to Group.
type ClassRoute struct {
	Group    string   `toml:"group"`
	Contains []string `toml:"contains"`
}

type groupSet struct {
	group string
	set   Set
}

// Grouper moves newly managed clients to the group their rules name.
// GroupRules are tried first, in order, then ClassRoutes.
type Grouper struct {
	hook.Funcs
	rules  []groupSet
	routes []ClassRoute
}

var _ hook.Handler = (*Grouper)(nil)

func NewGrouper(groupRules []GroupRule, routes []ClassRoute) (*Grouper, error) {
	g := &Grouper{}
	for _, r := range groupRules {
		if len(r.Matches) == 0 {
			continue
		}
		set, err := Compile(r.Matches)
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", r.Group, err)
		}
		g.rules = append(g.rules, groupSet{r.Group, set})
	}
	for _, r := range routes {
		route := ClassRoute{Group: r.Group}
		for _, s := range r.Contains {
			if s == "" {
				continue
			}
			route.Contains = append(route.Contains, strings.ToLower(s))
		}
		g.routes = append(g.routes, route)
	}
	return g, nil
}

// GroupFor returns the group c belongs in according to the rules.
func (g *Grouper) GroupFor(c hook.Client) (string, bool) {
	for _, r := range g.rules {
		if r.set.Match(c) {
			return r.group, true
		}
	}
	class := strings.ToLower(c.Class().Class)
	if class == "" {
		return "", false
	}
	for _, r := range g.routes {
		for _, s := range r.Contains {
			if strings.Contains(class, s) {
				return r.Group, true
			}
		}
	}
	return "", false
}

// ClientManaged implements hook.Handler.
func (g *Grouper) ClientManaged(c hook.Client) {
	name, ok := g.GroupFor(c)
	if !ok || name == c.Group() {
		return
	}
	log.Debugf("rules: %s %q to group %s", c.Class().Class, c.Title(), name)
	c.ToGroup(name)
}

// Floater floats newly managed clients matching its rules.
type Floater struct {
	hook.Funcs
	set Set
}

var _ hook.Handler = (*Floater)(nil)

func NewFloater(ms []Match) (*Floater, error) {
	set, err := Compile(ms)
	if err != nil {
		return nil, fmt.Errorf("float rules: %w", err)
	}
	return &Floater{set: set}, nil
}

// ClientManaged implements hook.Handler.
func (f *Floater) ClientManaged(c hook.Client) {
	if !c.Floating() && f.set.Match(c) {
		c.SetFloating(true)
	}
}
