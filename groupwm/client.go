package main

import (
	xp "github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"

	"github.com/groupwm/groupwm/hook"
	"github.com/groupwm/groupwm/log"
)

var _ hook.Client = (*window)(nil)

func (w *window) ID() uint32          { return uint32(w.xWin) }
func (w *window) Class() hook.WMClass { return w.class }
func (w *window) Floating() bool      { return w.floating }

func (w *window) Title() string {
	if w.name == "" {
		w.refreshName()
	}
	return w.name
}

func (w *window) Group() string {
	if w.group == nil {
		return ""
	}
	return w.group.name
}

// ToGroup moves w to the named group without changing what any screen
// shows.
func (w *window) ToGroup(name string) {
	k := groupByName(name)
	if k == nil {
		log.Warnf("window %#x: no group %q", w.xWin, name)
		return
	}
	moveWindow(w, k)
}

func (w *window) SetFloating(floating bool) {
	if w.group == nil || w.floating == floating {
		return
	}
	k := w.group
	w.floating = floating
	if floating {
		if f := w.frame; f != nil {
			f.window, w.frame = nil, nil
			fillFrame(f, w)
		}
		if w.floatRect.Width == 0 || w.floatRect.Height == 0 {
			w.floatRect = defaultFloatRect(k.mainFrame.rect)
		}
	} else {
		f := k.focusedFrame
		if f.window != nil {
			f = k.mainFrame.firstEmptyFrame()
		}
		if f != nil {
			f.window, w.frame = w, f
		}
	}
	w.configure()
	makeLists()
}

// defaultFloatRect centers a window two thirds the size of r.
func defaultFloatRect(r xp.Rectangle) xp.Rectangle {
	width, height := r.Width*2/3, r.Height*2/3
	return xp.Rectangle{
		X:      int16((r.Width - width) / 2),
		Y:      int16((r.Height - height) / 2),
		Width:  width,
		Height: height,
	}
}

func (w *window) refreshName() {
	name, err := ewmh.WmNameGet(xUtil, w.xWin)
	if err != nil || name == "" {
		name, err = icccm.WmNameGet(xUtil, w.xWin)
	}
	if err != nil || name == "" {
		name = "?"
	}
	w.name = name
}

// moveWindow moves w to the end of k's window list, into k's focused frame
// if that is empty, else into k's first empty frame, else hidden.
func moveWindow(w *window, k *group) {
	k0 := w.group
	if k0 == k {
		return
	}
	if f := w.frame; f != nil {
		f.window, w.frame = nil, nil
		fillFrame(f, w)
	}
	w.unlink()
	w.insertAfter(k.dummyWindow.link[prev])
	w.group = k

	if !w.floating {
		f := k.focusedFrame
		if f.window != nil {
			f = k.mainFrame.firstEmptyFrame()
		}
		if f != nil {
			f.window, w.frame = w, f
		}
	}
	w.configure()

	if k0 != nil && k0.fullscreen && k0.focusedFrame.window == nil {
		if k0.screen != nil {
			doFullscreen(k0, nil)
		} else {
			k0.fullscreen = false
		}
	}
	if activeWindow == w && k.screen == nil && k0 != nil && k0.screen != nil {
		focus(k0.focusedFrame.window)
	}
	publishWindowDesktop(w)
	makeLists()
}

// fillFrame shows, in the now empty frame f, the hidden window that was
// most recently on screen. It prefers a window that exclude is transient
// for, and never picks exclude itself.
func fillFrame(f *frame, exclude *window) {
	k := f.group
	replacement := (*window)(nil)
	if exclude != nil && exclude.transientFor != nil && exclude.transientFor.frame == nil &&
		exclude.transientFor.group == k && !exclude.transientFor.floating {
		replacement = exclude.transientFor
	} else {
		bestOffscreenSeqNum := uint32(0)
		for w1 := k.dummyWindow.link[next]; w1 != &k.dummyWindow; w1 = w1.link[next] {
			if w1 == exclude || w1.floating || w1.offscreenSeqNum <= bestOffscreenSeqNum {
				continue
			}
			if k.fullscreen {
				if w1.frame == k.focusedFrame {
					continue
				}
			} else if w1.frame != nil {
				continue
			}
			replacement, bestOffscreenSeqNum = w1, w1.offscreenSeqNum
		}
	}
	if replacement == nil {
		if k.fullscreen && f == k.focusedFrame {
			doFullscreen(k, nil)
		}
		return
	}
	if f0 := replacement.frame; f0 != nil {
		f0.window, replacement.frame = nil, nil
	}
	f.window, replacement.frame = replacement, f
	replacement.configure()
	if p, err := xp.QueryPointer(xConn, rootXWin).Reply(); err != nil {
		log.Warnf("query pointer: %v", err)
	} else if contains(f.rect, p.RootX, p.RootY) {
		focus(replacement)
	}
}

var nextOffscreenSeqNum uint32 = 1

// visibleRect returns where w should be: on its group's screen, or
// offscreen.
func (w *window) visibleRect() xp.Rectangle {
	r := xp.Rectangle{X: offscreenXY, Y: offscreenXY, Width: w.rect.Width, Height: w.rect.Height}
	k := w.group
	if k == nil || k.screen == nil || k.listing == listGroups {
		return r
	}
	if w.floating {
		if k.listing == listNone {
			r = w.floatRect
			r.X += k.screen.rect.X
			r.Y += k.screen.rect.Y
		}
		return r
	}
	if w.frame == nil {
		return r
	}
	bw := uint16(borderWidth)
	switch {
	case k.listing == listWindows && k.focusedFrame == w.frame:
		// No-op; r is offscreen.
	case k.fullscreen:
		if k.focusedFrame == w.frame {
			r.X = k.mainFrame.rect.X
			r.Y = k.mainFrame.rect.Y
			r.Width = k.mainFrame.rect.Width + 1
			r.Height = k.mainFrame.rect.Height + 1
		}
	default:
		r.X = w.frame.rect.X + int16(bw)
		r.Y = w.frame.rect.Y + int16(bw)
		r.Width = w.frame.rect.Width - 2*bw + 1
		r.Height = w.frame.rect.Height - 2*bw + 1
	}
	return r
}

func (w *window) configure() {
	mask, values := uint16(0), []uint32(nil)
	r := w.visibleRect()
	if w.seen && w.rect == r {
		return
	}
	w.rect = r
	if r.X != offscreenXY {
		w.seen = true
		mask = xp.ConfigWindowX |
			xp.ConfigWindowY |
			xp.ConfigWindowWidth |
			xp.ConfigWindowHeight |
			xp.ConfigWindowBorderWidth
		values = []uint32{
			uint32(uint16(r.X)),
			uint32(uint16(r.Y)),
			uint32(r.Width),
			uint32(r.Height),
			0,
		}
		if w.floating {
			mask |= xp.ConfigWindowStackMode
			values = append(values, xp.StackModeAbove)
		}
	} else {
		w.offscreenSeqNum = nextOffscreenSeqNum
		nextOffscreenSeqNum++
		mask = xp.ConfigWindowX | xp.ConfigWindowY
		values = []uint32{
			uint32(uint16(r.X)),
			uint32(uint16(r.Y)),
		}
	}
	check(xp.ConfigureWindowChecked(xConn, w.xWin, mask, values))
}
