package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xinerama"
	xp "github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/spf13/pflag"

	"github.com/groupwm/groupwm/config"
	"github.com/groupwm/groupwm/log"
)

var (
	xConn    *xgb.Conn
	xUtil    *xgbutil.XUtil
	rootXWin xp.Window

	sess *session

	// activeWindow is the window that last got the input focus.
	activeWindow *window

	eventTime xp.Timestamp

	// proactiveChan carries X operations that happen of the program's
	// own accord, such as animations. These are sent to the main goroutine
	// from other goroutines. In comparison, examples of reactive operations
	// are responding to window creation and key presses.
	proactiveChan = make(chan func())
)

type checker interface {
	Check() error
}

var checkers []checker

func check(c checker) {
	checkers = append(checkers, c)
}

type xEventOrError struct {
	event xgb.Event
	error xgb.Error
}

func main() {
	var (
		configPath   = pflag.StringP("config", "c", "", "configuration `file`")
		debug        = pflag.BoolP("debug", "d", false, "log debug messages")
		sampleConfig = pflag.Bool("sample-config", false, "print a sample configuration and exit")
		checkOnly    = pflag.BoolP("check", "n", false, "check the configuration and exit")
		listKeys     = pflag.Bool("list-keys", false, "print the key bindings and exit")
		restarted    = pflag.Bool("restarted", false, "set on an in-place restart")
	)
	if err := pflag.CommandLine.MarkHidden("restarted"); err != nil {
		log.Fatalf("%v", err)
	}
	pflag.Parse()
	log.SetPrefix("groupwm")
	if *debug {
		log.SetLevel(log.LevelDebug)
	}

	if *sampleConfig {
		s, err := config.Sample()
		if err != nil {
			log.Fatalf("%v", err)
		}
		fmt.Print(s)
		return
	}

	cfg, path, err := config.LoadAndValidate(*configPath)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if *checkOnly {
		if path == "" {
			path = "built-in defaults"
		}
		fmt.Printf("%s: ok, groups %s\n", path, strings.Join(cfg.GroupNames(), " "))
		return
	}
	if *listKeys {
		if err := printKeys(os.Stdout, cfg.Bindings()); err != nil {
			log.Fatalf("%v", err)
		}
		return
	}

	sess, err = newSession(cfg, *restarted)
	if err != nil {
		log.Fatalf("%v", err)
	}
	initPalette(sess.palette, cfg.BorderWidth)
	groups = sess.newGroups()
	run()
}

// printKeys writes one line per key binding: the key string and what it does.
func printKeys(w io.Writer, keys []config.Key) error {
	for _, k := range keys {
		b, err := newBinding(k)
		if err != nil {
			return fmt.Errorf("key %q: %w", k.Keys, err)
		}
		if _, err := fmt.Fprintf(w, "%-24s %s\n", k.Keys, b); err != nil {
			return err
		}
	}
	return nil
}

func run() {
	var err error
	xConn, err = xgb.NewConn()
	if err != nil {
		log.Fatalf("%v", err)
	}
	if err = xinerama.Init(xConn); err != nil {
		log.Fatalf("%v", err)
	}
	xSetup := xp.Setup(xConn)
	if len(xSetup.Roots) != 1 {
		log.Fatalf("X setup has unsupported number of roots: %d", len(xSetup.Roots))
	}
	rootXWin = xSetup.Roots[0].Root
	if xUtil, err = xgbutil.NewConnXgb(xConn); err != nil {
		log.Fatalf("%v", err)
	}

	becomeTheWM()
	initAtoms()
	initDesktop(&xSetup.Roots[0])
	initScreens()
	initEWMH(sess.cfg.WMName)
	keybind.Initialize(xUtil)
	grabKeys(sess.cfg.Bindings())
	publishCurrentGroup(screens[0].group)

	// Manage any existing windows.
	tree, err := xp.QueryTree(xConn, rootXWin).Reply()
	if err != nil {
		log.Fatalf("%v", err)
	}
	for _, c := range tree.Children {
		if c == desktopXWin {
			continue
		}
		attrs, err := xp.GetWindowAttributes(xConn, c).Reply()
		if err != nil {
			continue
		}
		if attrs.OverrideRedirect || attrs.MapState == xp.MapStateUnmapped {
			continue
		}
		manage(c, false)
	}

	sess.start()
	go runPulse()

	// Process X events.
	eeChan := make(chan xEventOrError)
	go func() {
		for {
			e, err := xConn.WaitForEvent()
			if e == nil && err == nil {
				log.Errorf("X connection closed")
				os.Exit(1)
			}
			eeChan <- xEventOrError{e, err}
		}
	}()
	for {
		for i, c := range checkers {
			if err := c.Check(); err != nil {
				log.Warnf("%v", err)
			}
			checkers[i] = nil
		}
		checkers = checkers[:0]

		select {
		case f := <-proactiveChan:
			f()
		case ee := <-eeChan:
			if ee.error != nil {
				log.Warnf("%v", ee.error)
				continue
			}
			switch e := ee.event.(type) {
			case xp.ButtonPressEvent:
				eventTime = e.Time
				handleButtonPress(e)
			case xp.ButtonReleaseEvent:
				eventTime = e.Time
			case xp.ClientMessageEvent:
				handleClientMessage(e)
			case xp.ConfigureNotifyEvent:
				// No-op.
			case xp.ConfigureRequestEvent:
				handleConfigureRequest(e)
			case xp.DestroyNotifyEvent:
				unmanage(e.Window)
			case xp.EnterNotifyEvent:
				eventTime = e.Time
				handleEnterNotify(e)
			case xp.ExposeEvent:
				handleExpose(e)
			case xp.KeyPressEvent:
				eventTime = e.Time
				handleKeyPress(e)
			case xp.KeyReleaseEvent:
				eventTime = e.Time
			case xp.MapNotifyEvent:
				// No-op.
			case xp.MappingNotifyEvent:
				handleMappingNotify(e)
			case xp.MapRequestEvent:
				manage(e.Window, true)
			case xp.MotionNotifyEvent:
				eventTime = e.Time
				handleMotionNotify(e)
			case xp.UnmapNotifyEvent:
				unmanage(e.Window)
			default:
				log.Debugf("unhandled event: %v", ee.event)
			}
		}
	}
}
