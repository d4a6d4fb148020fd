package main

import (
	xp "github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"

	"github.com/groupwm/groupwm/log"
)

// stickyDesktop is the _NET_WM_DESKTOP value for windows on every desktop.
const stickyDesktop = 0xFFFFFFFF

var ewmhSupported = []string{
	"_NET_SUPPORTED",
	"_NET_SUPPORTING_WM_CHECK",
	"_NET_WM_NAME",
	"_NET_NUMBER_OF_DESKTOPS",
	"_NET_DESKTOP_NAMES",
	"_NET_CURRENT_DESKTOP",
	"_NET_CLIENT_LIST",
	"_NET_ACTIVE_WINDOW",
	"_NET_CLOSE_WINDOW",
	"_NET_WM_DESKTOP",
	"_NET_WM_WINDOW_TYPE",
}

func warnEWMH(what string, err error) {
	if err != nil {
		log.Warnf("ewmh: %s: %v", what, err)
	}
}

// initEWMH announces groupwm to pagers and bars. The desktop window doubles as
// the _NET_SUPPORTING_WM_CHECK window.
func initEWMH(wmName string) {
	warnEWMH("supporting wm check", ewmh.SupportingWmCheckSet(xUtil, rootXWin, desktopXWin))
	warnEWMH("supporting wm check", ewmh.SupportingWmCheckSet(xUtil, desktopXWin, desktopXWin))
	warnEWMH("wm name", ewmh.WmNameSet(xUtil, desktopXWin, wmName))
	warnEWMH("supported", ewmh.SupportedSet(xUtil, ewmhSupported))

	names := make([]string, len(groups))
	for i, k := range groups {
		names[i] = k.Label()
	}
	warnEWMH("number of desktops", ewmh.NumberOfDesktopsSet(xUtil, uint(len(groups))))
	warnEWMH("desktop names", ewmh.DesktopNamesSet(xUtil, names))
}

func publishCurrentGroup(k *group) {
	warnEWMH("current desktop", ewmh.CurrentDesktopSet(xUtil, uint(k.index)))
}

func publishClientList() {
	var xWins []xp.Window
	for _, k := range groups {
		for w := k.dummyWindow.link[next]; w != &k.dummyWindow; w = w.link[next] {
			xWins = append(xWins, w.xWin)
		}
	}
	warnEWMH("client list", ewmh.ClientListSet(xUtil, xWins))
}

func publishActiveWindow(w *window) {
	xWin := xp.Window(0)
	if w != nil {
		xWin = w.xWin
	}
	warnEWMH("active window", ewmh.ActiveWindowSet(xUtil, xWin))
}

func publishWindowDesktop(w *window) {
	if w.group == nil {
		return
	}
	desktop := uint(w.group.index)
	if sess.sticky.Contains(w) {
		desktop = stickyDesktop
	}
	warnEWMH("wm desktop", ewmh.WmDesktopSet(xUtil, w.xWin, desktop))
}

// handleClientMessage serves the EWMH requests that pagers and bars send.
func handleClientMessage(e xp.ClientMessageEvent) {
	if e.Format != 32 {
		return
	}
	data := e.Data.Data32
	switch e.Type {
	case atomNetCurrentDesktop:
		if i := int(data[0]); i < len(groups) {
			k0 := pointerScreen().group
			changeGroup(k0.screen, k0, groups[i])
			startPulse()
		}
	case atomNetActiveWindow:
		if w := findXWin(e.Window); w != nil {
			activate(w)
		}
	case atomNetCloseWindow:
		if w := findXWin(e.Window); w != nil {
			closeWindow(w)
		}
	case atomNetWMDesktop:
		w := findXWin(e.Window)
		if w == nil {
			return
		}
		if data[0] == stickyDesktop {
			sess.sticky.Add(w)
			publishWindowDesktop(w)
			makeLists()
		} else if i := int(data[0]); i < len(groups) {
			moveWindow(w, groups[i])
		}
	}
}

// activate shows w: its group is brought to the screen under the pointer if
// not already shown, and a tiled w is put in the focused frame.
func activate(w *window) {
	k := w.group
	if k.screen == nil {
		k0 := pointerScreen().group
		changeGroup(k0.screen, k0, k)
	}
	if !w.floating {
		f := k.focusedFrame
		if w.frame != nil {
			f = w.frame
		}
		changeWindow(f, f.window, w)
		k.focusFrame(f)
	} else {
		focus(w)
	}
}
