// Package autostart launches the user's startup programs.
package autostart

import (
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/mitchellh/go-homedir"

	"github.com/groupwm/groupwm/hook"
	"github.com/groupwm/groupwm/log"
)

// Spawner starts a program without waiting for it.
type Spawner interface {
	Spawn(argv []string) error
}

// ExecSpawner starts programs with os/exec and reaps them in the background.
type ExecSpawner struct{}

func (ExecSpawner) Spawn(argv []string) error {
	if len(argv) == 0 {
		return errors.New("empty command")
	}
	c := exec.Command(argv[0], argv[1:]...)
	if err := c.Start(); err != nil {
		return err
	}
	// Ignore any error from the program itself.
	go c.Wait()
	return nil
}

// Config says what to run. Script paths may be relative to Dir and may start
// with "~".
type Config struct {
	Dir           string
	X11Script     string
	WaylandScript string

	// Always lists the commands run on every start, including restarts.
	Always [][]string
}

// Runner runs Config's programs on the startup events.
type Runner struct {
	hook.Funcs
	cfg     Config
	spawner Spawner
	getenv  func(string) string
	stat    func(string) (fs.FileInfo, error)
}

var _ hook.Handler = (*Runner)(nil)

func New(cfg Config, spawner Spawner) *Runner {
	if spawner == nil {
		spawner = ExecSpawner{}
	}
	return &Runner{
		cfg:     cfg,
		spawner: spawner,
		getenv:  os.Getenv,
		stat:    os.Stat,
	}
}

// IsWayland reports whether the session looks like a Wayland session.
func (r *Runner) IsWayland() bool {
	return r.getenv("WAYLAND_DISPLAY") != ""
}

// Script returns the session script to run, or "" if none is configured.
func (r *Runner) Script() (string, error) {
	script := r.cfg.X11Script
	if r.IsWayland() {
		script = r.cfg.WaylandScript
	}
	if script == "" {
		return "", nil
	}
	script, err := homedir.Expand(script)
	if err != nil {
		return "", err
	}
	if !filepath.IsAbs(script) && r.cfg.Dir != "" {
		dir, err := homedir.Expand(r.cfg.Dir)
		if err != nil {
			return "", err
		}
		script = filepath.Join(dir, script)
	}
	return script, nil
}

// StartupOnce runs the session script.
func (r *Runner) StartupOnce() {
	script, err := r.Script()
	if err != nil {
		log.Warnf("autostart: %v", err)
		return
	}
	if script == "" {
		return
	}
	if _, err := r.stat(script); err != nil {
		log.Debugf("autostart: skipping %s: %v", script, err)
		return
	}
	log.Infof("autostart: running %s", script)
	if err := r.spawner.Spawn([]string{script}); err != nil {
		log.Warnf("autostart: could not start %s: %v", script, err)
	}
}

// Startup runs the Always commands.
func (r *Runner) Startup() {
	for _, argv := range r.cfg.Always {
		argv = expandArgs(argv)
		if err := r.spawner.Spawn(argv); err != nil {
			log.Warnf("autostart: could not start command %q: %v", argv, err)
		}
	}
}

func expandArgs(argv []string) []string {
	out := make([]string, len(argv))
	for i, a := range argv {
		if e, err := homedir.Expand(a); err == nil {
			a = e
		}
		out[i] = a
	}
	return out
}
