package main

import (
	"os"
	"syscall"
	"time"

	xp "github.com/BurntSushi/xgb/xproto"

	"github.com/groupwm/groupwm/autostart"
	"github.com/groupwm/groupwm/log"
)

// action is what a key binding runs. The do function returns whether to
// pulsate the frames' borders to acknowledge the key press. A binding's args,
// if any, are passed as a []string in place of arg.
type action struct {
	do  func(*group, interface{}) bool
	arg interface{}
}

// actions is keyed by the names that configuration files use.
var actions = map[string]action{
	"spawn":             {doSpawn, nil},
	"kill":              {doKill, nil},
	"toggle-sticky":     {doToggleSticky, nil},
	"toggle-floating":   {doToggleFloating, nil},
	"toggle-fullscreen": {doFullscreen, nil},
	"hide":              {doHide, nil},
	"group":             {doGroup, nil},
	"to-group":          {doToGroup, nil},
	"to-group-follow":   {doToGroupFollow, nil},
	"to-prev-group":     {doToAdjacentGroup, prev},
	"to-next-group":     {doToAdjacentGroup, next},
	"next-group":        {doAdjacentGroup, next},
	"prev-group":        {doAdjacentGroup, prev},
	"next-frame":        {doFrame, next},
	"prev-frame":        {doFrame, prev},
	"next-window":       {doWindow, next},
	"prev-window":       {doWindow, prev},
	"shuffle-next":      {doShuffle, next},
	"shuffle-prev":      {doShuffle, prev},
	"split-horizontal":  {doSplit, horizontal},
	"split-vertical":    {doSplit, vertical},
	"merge":             {doMerge, nil},
	"next-screen":       {doScreen, next},
	"list-windows":      {doList, listWindows},
	"list-groups":       {doList, listGroups},
	"restart":           {doRestart, nil},
	"quit":              {doQuit, nil},
}

func doSpawn(_ *group, argv1 interface{}) bool {
	argv, ok := argv1.([]string)
	if !ok || len(argv) == 0 {
		return false
	}
	if err := (autostart.ExecSpawner{}).Spawn(argv); err != nil {
		log.Warnf("could not start command %q: %v", argv, err)
	}
	return false
}

func doKill(k *group, _ interface{}) bool {
	w := k.current()
	if w == nil {
		return false
	}
	closeWindow(w)
	return true
}

// closeWindow asks w to close, or disconnects its client if it does not speak
// WM_DELETE_WINDOW.
func closeWindow(w *window) {
	if w.wmDeleteWindow {
		sendClientMessage(w.xWin, atomWMDeleteWindow)
		return
	}
	log.Debugf("window %#x: no WM_DELETE_WINDOW, killing its client", w.xWin)
	check(xp.KillClientChecked(xConn, uint32(w.xWin)))
}

func doToggleSticky(k *group, _ interface{}) bool {
	w := k.current()
	if w == nil {
		return false
	}
	sess.sticky.Toggle(w)
	publishWindowDesktop(w)
	makeLists()
	return true
}

func doToggleFloating(k *group, _ interface{}) bool {
	w := k.current()
	if w == nil {
		return false
	}
	w.SetFloating(!w.floating)
	if w.floating || w.frame != nil {
		focus(w)
	}
	return true
}

// groupArg returns the group named by a binding's args.
func groupArg(names1 interface{}) *group {
	names, ok := names1.([]string)
	if !ok || len(names) == 0 {
		return nil
	}
	return groupByName(names[0])
}

func doGroup(k0 *group, names interface{}) bool {
	k1 := groupArg(names)
	if k1 == nil || k1 == k0 {
		return false
	}
	changeGroup(k0.screen, k0, k1)
	return true
}

func doToGroup(k *group, names interface{}) bool {
	k1, w := groupArg(names), k.current()
	if k1 == nil || w == nil {
		return false
	}
	moveWindow(w, k1)
	return true
}

func doToGroupFollow(k *group, names interface{}) bool {
	k1, w := groupArg(names), k.current()
	if k1 == nil || w == nil {
		return false
	}
	moveWindow(w, k1)
	changeGroup(k.screen, k, k1)
	if f := w.frame; f != nil {
		warpPointerTo(f)
	} else {
		focus(w)
	}
	return true
}

func doToAdjacentGroup(k *group, t1 interface{}) bool {
	t, ok := t1.(traversal)
	w := k.current()
	if !ok || w == nil {
		return false
	}
	moveWindow(w, adjacentGroup(k, t))
	return true
}

// doAdjacentGroup shows the next (or previous) group that is not on any
// screen.
func doAdjacentGroup(k0 *group, t1 interface{}) bool {
	t, ok := t1.(traversal)
	if !ok {
		return false
	}
	k1 := k0
	for {
		k1 = adjacentGroup(k1, t)
		if k1 == k0 {
			return true
		}
		if k1.screen == nil {
			break
		}
	}
	changeGroup(k0.screen, k0, k1)
	return true
}

// changeGroup shows k1 on s0 in place of k0. If k1 was on another screen, k0
// takes its place there.
func changeGroup(s0 *screen, k0, k1 *group) {
	if s0 == nil || k0 == nil || k1 == nil {
		return
	}
	k0.listing = listNone
	s1 := k1.screen
	if k0 != k1 {
		if s1 != nil {
			s1.group, k0.screen = k0, s1
		} else {
			k0.screen = nil
		}
		s0.group, k1.screen = k1, s0
	}
	k1.layout()
	k0.layout()
	k1.configure()
	k0.configure()
	if k0 != k1 {
		log.Debugf("screen %d: group %s", screenIndex(s0), k1.name)
		publishCurrentGroup(k1)
		sess.hooks.GroupActivated(k1)
	}
	if p, err := xp.QueryPointer(xConn, rootXWin).Reply(); err != nil {
		log.Warnf("query pointer: %v", err)
		k1.focusFrame(k1.mainFrame.firstDescendent())
	} else {
		k1.focusFrame(k1.frameContaining(p.RootX, p.RootY))
	}
	s0.repaint()
	if s1 != nil {
		s1.repaint()
	}
	makeLists()
}

func screenIndex(s *screen) int {
	for i, s1 := range screens {
		if s1 == s {
			return i
		}
	}
	return -1
}

func doScreen(k *group, t1 interface{}) bool {
	t, ok := t1.(traversal)
	if !ok {
		return false
	}
	i := screenIndex(k.screen)
	if i < 0 {
		return true
	}
	if t == next {
		i = (i + 1) % len(screens)
	} else {
		i = (i + len(screens) - 1) % len(screens)
	}
	warpPointerTo(screens[i].group.focusedFrame)
	return true
}

func doFrame(k *group, t1 interface{}) bool {
	t, ok := t1.(traversal)
	if !ok {
		return false
	}
	if k.fullscreen || k.listing != listNone {
		return false
	}
	k.focusedFrame = k.focusedFrame.traverse(t)
	warpPointerTo(k.focusedFrame)
	return true
}

func warpPointerTo(f *frame) {
	f.group.focusFrame(f)
	check(xp.WarpPointerChecked(xConn, xp.WindowNone, rootXWin, 0, 0, 0, 0,
		f.rect.X+int16(f.rect.Width/2),
		f.rect.Y+int16(f.rect.Height/2),
	))
	makeLists()
}

// doWindow cycles the focused frame through the group's hidden tiled windows.
func doWindow(k *group, t1 interface{}) bool {
	t, ok := t1.(traversal)
	if !ok {
		return false
	}
	f0 := k.focusedFrame
	dummy := &k.dummyWindow
	w0 := f0.window
	if w0 == nil {
		w0 = dummy
	}
	w1 := w0
	for {
		w1 = w1.link[t]
		if w1 == w0 {
			return true
		}
		if w1 == dummy || w1.floating {
			continue
		}
		if w1.frame == nil || k.fullscreen {
			break
		}
	}
	if w0 == dummy {
		w0 = nil
	}
	changeWindow(f0, w0, w1)
	return true
}

// changeWindow puts w1 in f0, swapping frames with w0 if w1 was in another
// frame.
func changeWindow(f0 *frame, w0, w1 *window) {
	if f0 == nil || w1 == nil {
		return
	}
	if w0 != w1 {
		if f1 := w1.frame; f1 != nil {
			if w0 != nil {
				f1.window, w0.frame = w0, f1
			} else {
				f1.window = nil
			}
		} else if w0 != nil {
			w0.frame = nil
		}
		f0.window, w1.frame = w1, f0
	}
	w1.configure()
	if w0 != nil {
		w0.configure()
	}
	focus(w1)
	makeLists()
}

func doList(k *group, l1 interface{}) bool {
	l, ok := l1.(listing)
	if !ok {
		return false
	}
	if k.listing != l {
		k.listing = l
	} else {
		k.listing = listNone
	}
	k.makeList()
	return false
}

// doShuffle moves the current window one place along the group's window
// list, which is the order that next-window and prev-window follow.
func doShuffle(k *group, t1 interface{}) bool {
	t, ok := t1.(traversal)
	if !ok {
		return false
	}
	if w := k.current(); w != nil {
		wn, wp := w.link[next], w.link[prev]
		wn.link[prev] = wp
		wp.link[next] = wn
		if t == next {
			w.link[next] = wn.link[next]
			w.link[prev] = wn
		} else {
			w.link[next] = wp
			w.link[prev] = wp.link[prev]
		}
		w.link[next].link[prev] = w
		w.link[prev].link[next] = w
	}
	makeLists()
	return true
}

func doFullscreen(k *group, _ interface{}) bool {
	if !k.fullscreen && k.focusedFrame.window == nil {
		return true
	}
	k.fullscreen = !k.fullscreen
	if p, err := xp.QueryPointer(xConn, rootXWin).Reply(); err != nil {
		log.Warnf("query pointer: %v", err)
	} else {
		k.focusFrame(k.frameContaining(p.RootX, p.RootY))
	}
	k.configure()
	if k.screen != nil {
		k.screen.repaint()
	}
	return true
}

func doHide(k *group, _ interface{}) bool {
	f := k.focusedFrame
	w := f.window
	if w != nil {
		f.window, w.frame = nil, nil
		w.configure()
	}
	if k.fullscreen {
		doFullscreen(k, nil)
	}
	makeLists()
	return true
}

func doMerge(k *group, _ interface{}) bool {
	if k.fullscreen || k.listing == listGroups {
		return false
	}
	w := k.focusedFrame.window
	if !k.focusedFrame.merge() {
		// Merge fails if the frame is the main frame.
		return true
	}
	if w != nil {
		w.configure()
	}
	finishMergeSplit(k)
	return true
}

func doSplit(k *group, o1 interface{}) bool {
	o, ok := o1.(orientation)
	if !ok {
		return false
	}
	if k.fullscreen || k.listing == listGroups {
		return false
	}
	k.focusedFrame.split(o)
	finishMergeSplit(k)
	return true
}

func finishMergeSplit(k *group) {
	if p, err := xp.QueryPointer(xConn, rootXWin).Reply(); err != nil {
		log.Warnf("query pointer: %v", err)
		k.focusFrame(k.mainFrame.firstDescendent())
	} else {
		k.focusFrame(k.frameContaining(p.RootX, p.RootY))
	}
	k.screen.repaint()
	makeLists()
}

// doRestart replaces the running process with a fresh copy of groupwm. The
// X server keeps the windows, and the new process adopts them.
func doRestart(_ *group, _ interface{}) bool {
	exe, err := os.Executable()
	if err != nil {
		log.Errorf("restart: %v", err)
		return false
	}
	args := restartArgs(os.Args)
	log.Infof("restarting: %s %q", exe, args[1:])
	sess.close()
	xConn.Close()
	if err := syscall.Exec(exe, args, os.Environ()); err != nil {
		log.Fatalf("restart: %v", err)
	}
	return false
}

// restartArgs returns args with --restarted added, so that the new process
// skips the once-per-session startup hooks.
func restartArgs(args []string) []string {
	if len(args) == 0 {
		args = []string{"groupwm"}
	}
	out := append([]string(nil), args...)
	for _, a := range out[1:] {
		if a == "--restarted" {
			return out
		}
	}
	return append(out, "--restarted")
}

var (
	quitTimes [2]time.Time
	quitIndex int
	quitting  bool
)

// doQuit quits on the third press within five seconds. Windows that speak
// WM_DELETE_WINDOW are asked to close first, and get quitDuration to do so.
func doQuit(_ *group, _ interface{}) bool {
	if quitting {
		return false
	}
	now := time.Now()
	since := now.Sub(quitTimes[quitIndex])
	quitTimes[quitIndex] = now
	quitIndex = (quitIndex + 1) % len(quitTimes)
	if since > 5*time.Second {
		return true
	}
	quitting = true
	log.Infof("quitting")

	waiting := false
	for _, k := range groups {
		for w := k.dummyWindow.link[next]; w != &k.dummyWindow; w = w.link[next] {
			if w.wmDeleteWindow {
				waiting = true
				sendClientMessage(w.xWin, atomWMDeleteWindow)
			}
		}
	}
	if waiting {
		go func() {
			time.Sleep(quitDuration)
			proactiveChan <- shutdown
		}()
	} else {
		shutdown()
	}
	return true
}

func shutdown() {
	sess.close()
	os.Exit(0)
}

func focus(w *window) {
	xWin := desktopXWin
	if w != nil {
		xWin = w.xWin
	}
	if activeWindow != w {
		activeWindow = w
		publishActiveWindow(w)
	}
	if w != nil && w.wmTakeFocus {
		sendClientMessage(xWin, atomWMTakeFocus)
		return
	}
	check(xp.SetInputFocusChecked(xConn, xp.InputFocusParent, xWin, eventTime))
}
