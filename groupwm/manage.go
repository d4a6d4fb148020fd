package main

import (
	xp "github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"

	"github.com/groupwm/groupwm/hook"
	"github.com/groupwm/groupwm/log"
)

func sendClientMessage(xWin xp.Window, atom xp.Atom) {
	check(xp.SendEventChecked(xConn, false, xWin, xp.EventMaskNoEvent,
		string(xp.ClientMessageEvent{
			Format: 32,
			Window: xWin,
			Type:   atomWMProtocols,
			Data: xp.ClientMessageDataUnionData32New([]uint32{
				uint32(atom),
				uint32(eventTime),
				0,
				0,
				0,
			}),
		}.Bytes()),
	))
}

// pointerScreen returns the screen under the pointer.
func pointerScreen() *screen {
	p, err := xp.QueryPointer(xConn, rootXWin).Reply()
	if err != nil {
		log.Warnf("query pointer: %v", err)
		return screens[0]
	}
	return screenContaining(p.RootX, p.RootY)
}

func handleConfigureRequest(e xp.ConfigureRequestEvent) {
	if w := findXWin(e.Window); w != nil {
		if w.floating {
			w.requestFloatRect(e)
		}
		// Tell the client where it actually is.
		cne := xp.ConfigureNotifyEvent{
			Event:  w.xWin,
			Window: w.xWin,
			X:      w.rect.X,
			Y:      w.rect.Y,
			Width:  w.rect.Width,
			Height: w.rect.Height,
		}
		check(xp.SendEventChecked(xConn, false, w.xWin,
			xp.EventMaskStructureNotify, string(cne.Bytes())))
		return
	}
	mask, values := uint16(0), []uint32(nil)
	if e.ValueMask&xp.ConfigWindowX != 0 {
		mask |= xp.ConfigWindowX
		values = append(values, uint32(e.X))
	}
	if e.ValueMask&xp.ConfigWindowY != 0 {
		mask |= xp.ConfigWindowY
		values = append(values, uint32(e.Y))
	}
	if e.ValueMask&xp.ConfigWindowWidth != 0 {
		mask |= xp.ConfigWindowWidth
		values = append(values, uint32(e.Width))
	}
	if e.ValueMask&xp.ConfigWindowHeight != 0 {
		mask |= xp.ConfigWindowHeight
		values = append(values, uint32(e.Height))
	}
	if e.ValueMask&xp.ConfigWindowBorderWidth != 0 {
		mask |= xp.ConfigWindowBorderWidth
		values = append(values, uint32(e.BorderWidth))
	}
	if e.ValueMask&xp.ConfigWindowSibling != 0 {
		mask |= xp.ConfigWindowSibling
		values = append(values, uint32(e.Sibling))
	}
	if e.ValueMask&xp.ConfigWindowStackMode != 0 {
		mask |= xp.ConfigWindowStackMode
		values = append(values, uint32(e.StackMode))
	}
	check(xp.ConfigureWindowChecked(xConn, e.Window, mask, values))
}

// requestFloatRect applies a floating window's own request to move or resize.
// Requested positions are in root co-ordinates.
func (w *window) requestFloatRect(e xp.ConfigureRequestEvent) {
	r := w.floatRect
	origin := xp.Rectangle{}
	if w.group.screen != nil {
		origin = w.group.screen.rect
	}
	if e.ValueMask&xp.ConfigWindowX != 0 {
		r.X = e.X - origin.X
	}
	if e.ValueMask&xp.ConfigWindowY != 0 {
		r.Y = e.Y - origin.Y
	}
	if e.ValueMask&xp.ConfigWindowWidth != 0 && e.Width > 0 {
		r.Width = e.Width
	}
	if e.ValueMask&xp.ConfigWindowHeight != 0 && e.Height > 0 {
		r.Height = e.Height
	}
	w.floatRect = r
	w.configure()
}

// wantsFloat reports whether xWin should float regardless of the float
// rules: dialogs and other transient window types, and fixed-size windows.
func wantsFloat(xWin xp.Window) bool {
	if types, err := ewmh.WmWindowTypeGet(xUtil, xWin); err == nil {
		for _, t := range types {
			switch t {
			case "_NET_WM_WINDOW_TYPE_DIALOG",
				"_NET_WM_WINDOW_TYPE_UTILITY",
				"_NET_WM_WINDOW_TYPE_SPLASH",
				"_NET_WM_WINDOW_TYPE_TOOLBAR":
				return true
			}
		}
	}
	if nh, err := icccm.WmNormalHintsGet(xUtil, xWin); err == nil {
		const minMax = icccm.SizeHintPMinSize | icccm.SizeHintPMaxSize
		if nh.Flags&minMax == minMax && nh.MinWidth > 0 && nh.MinHeight > 0 &&
			nh.MinWidth == nh.MaxWidth && nh.MinHeight == nh.MaxHeight {
			return true
		}
	}
	return false
}

// newWindow reads xWin's ICCCM properties.
func newWindow(xWin xp.Window) *window {
	w := &window{
		xWin: xWin,
		rect: xp.Rectangle{
			X:      offscreenXY,
			Y:      offscreenXY,
			Width:  1,
			Height: 1,
		},
	}
	if protocols, err := icccm.WmProtocolsGet(xUtil, xWin); err != nil {
		log.Debugf("window %#x: WM_PROTOCOLS: %v", xWin, err)
	} else {
		for _, p := range protocols {
			switch p {
			case "WM_DELETE_WINDOW":
				w.wmDeleteWindow = true
			case "WM_TAKE_FOCUS":
				w.wmTakeFocus = true
			}
		}
	}
	if class, err := icccm.WmClassGet(xUtil, xWin); err != nil {
		log.Debugf("window %#x: WM_CLASS: %v", xWin, err)
	} else {
		w.class = hook.WMClass{Instance: class.Instance, Class: class.Class}
	}
	if t, err := icccm.WmTransientForGet(xUtil, xWin); err == nil && t != 0 {
		w.transientFor = findXWin(t)
	}
	w.refreshName()
	return w
}

func manage(xWin xp.Window, mapRequest bool) {
	w := findXWin(xWin)
	isNew := w == nil
	if isNew {
		w = newWindow(xWin)
		transientFor := w.transientFor

		k := pointerScreen().group
		if transientFor != nil {
			k = transientFor.group
		}
		w.group = k
		w.floating = wantsFloat(xWin)

		previous := k.dummyWindow.link[prev]
		if transientFor != nil {
			previous = transientFor
		} else if f := k.focusedFrame; f.window != nil {
			previous = f.window
		}
		w.insertAfter(previous)

		if w.floating {
			w.floatRect = initialFloatRect(xWin, k)
		} else {
			f := k.focusedFrame
			if transientFor != nil && transientFor.frame != nil {
				f = transientFor.frame
				f.window, transientFor.frame = nil, nil
			} else if f.window != nil {
				f = k.mainFrame.firstEmptyFrame()
			}
			if f != nil {
				f.window, w.frame = w, f
			}
		}

		check(xp.ChangeWindowAttributesChecked(xConn, xWin, xp.CwEventMask,
			[]uint32{xp.EventMaskEnterWindow | xp.EventMaskStructureNotify},
		))
		w.configure()
		if transientFor != nil {
			transientFor.hasTransientFor = true
			transientFor.configure()
		}
		log.Debugf("manage %#x: %s %q in group %s", xWin, w.class.Class, w.name, k.name)

		sess.hooks.ClientManaged(w)
		publishWindowDesktop(w)
		publishClientList()
	}
	if mapRequest {
		check(xp.MapWindowChecked(xConn, xWin))
	}
	if isNew && w.group != nil && w.group.screen != nil &&
		(w.floating || w.frame != nil && w.frame == w.group.focusedFrame) {
		focus(w)
	}
	makeLists()
	startPulse()
}

// initialFloatRect is where a new floating window goes: where it asked to be
// if that is on k's screen, else centered.
func initialFloatRect(xWin xp.Window, k *group) xp.Rectangle {
	sr := k.mainFrame.rect
	if k.screen != nil {
		sr = k.screen.rect
	}
	g, err := xp.GetGeometry(xConn, xp.Drawable(xWin)).Reply()
	if err != nil {
		log.Debugf("window %#x: geometry: %v", xWin, err)
		return defaultFloatRect(sr)
	}
	r := xp.Rectangle{X: g.X - sr.X, Y: g.Y - sr.Y, Width: g.Width, Height: g.Height}
	if r.Width < 2 || r.Height < 2 || r.Width > sr.Width || r.Height > sr.Height {
		return defaultFloatRect(sr)
	}
	if r.X <= 0 || r.Y <= 0 || int(r.X)+int(r.Width) > int(sr.Width) ||
		int(r.Y)+int(r.Height) > int(sr.Height) {
		r.X = int16((sr.Width - r.Width) / 2)
		r.Y = int16((sr.Height - r.Height) / 2)
	}
	return r
}

func unmanage(xWin xp.Window) {
	w := findXWin(xWin)
	if w == nil {
		return
	}
	log.Debugf("unmanage %#x: %s %q", xWin, w.class.Class, w.name)
	sess.hooks.ClientKilled(w)

	if w.hasTransientFor {
		for {
			w1 := findWindow(func(w2 *window) bool { return w2.transientFor == w })
			if w1 == nil {
				break
			}
			w1.transientFor = nil
		}
	}
	if f := w.frame; f != nil {
		f.window, w.frame = nil, nil
		fillFrame(f, w)
	}
	w.unlink()
	if activeWindow == w {
		activeWindow = nil
		publishActiveWindow(nil)
	}
	*w = window{}
	publishClientList()
	if quitting && findWindow(func(w *window) bool { return true }) == nil {
		shutdown()
	}
	makeLists()
	startPulse()
}
