package main

import (
	"fmt"

	"github.com/groupwm/groupwm/autostart"
	"github.com/groupwm/groupwm/config"
	"github.com/groupwm/groupwm/hook"
	"github.com/groupwm/groupwm/log"
	"github.com/groupwm/groupwm/rules"
	"github.com/groupwm/groupwm/sticky"
)

// session is everything built from the configuration that outlives a single
// X event: the hooks and the sticky registry.
type session struct {
	cfg       *config.Config
	palette   config.Palette
	hooks     hook.Dispatcher
	sticky    *sticky.Registry
	autostart *autostart.Runner
	restarted bool
}

func newSession(cfg *config.Config, restarted bool) (*session, error) {
	palette, err := cfg.Colors.Palette()
	if err != nil {
		return nil, err
	}
	stickyRules, err := rules.Compile(cfg.Sticky)
	if err != nil {
		return nil, fmt.Errorf("sticky rules: %w", err)
	}
	grouper, err := rules.NewGrouper(cfg.GroupRules(), cfg.ClassRoutes)
	if err != nil {
		return nil, err
	}
	floater, err := rules.NewFloater(cfg.Float)
	if err != nil {
		return nil, err
	}

	s := &session{
		cfg:       cfg,
		palette:   palette,
		sticky:    sticky.New(stickyRules),
		restarted: restarted,
	}
	s.autostart = autostart.New(autostart.Config{
		Dir:           config.Dir(),
		X11Script:     cfg.Autostart.X11Script,
		WaylandScript: cfg.Autostart.WaylandScript,
		Always:        cfg.Autostart.Always,
	}, nil)
	// Grouping runs first, then floating, then the sticky rules.
	s.hooks.Register(grouper, floater, s.sticky, s.autostart)
	log.Debugf("%d hooks, %d sticky rules", s.hooks.Len(), stickyRules.Len())
	return s, nil
}

// start fires the startup hooks. StartupOnce is skipped after an in-place
// restart.
func (s *session) start() {
	if !s.restarted {
		s.hooks.StartupOnce()
	}
	s.hooks.Startup()
}

func (s *session) close() {
	log.Debugf("forgetting %d sticky windows", s.sticky.Len())
	s.sticky.Reset()
}

// newGroups makes one group per configured group, in order.
func (s *session) newGroups() []*group {
	gs := make([]*group, len(s.cfg.Groups))
	for i, g := range s.cfg.Groups {
		gs[i] = newGroup(g.Name, g.Label, i)
	}
	return gs
}
