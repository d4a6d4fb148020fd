package main

import (
	"github.com/BurntSushi/xgb/xinerama"
	xp "github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/xprop"

	"github.com/groupwm/groupwm/log"
)

var (
	atomWMDeleteWindow    xp.Atom
	atomWMProtocols       xp.Atom
	atomWMTakeFocus       xp.Atom
	atomNetActiveWindow   xp.Atom
	atomNetCloseWindow    xp.Atom
	atomNetCurrentDesktop xp.Atom
	atomNetWMDesktop      xp.Atom

	desktopXWin   xp.Window
	desktopXGC    xp.Gcontext
	desktopWidth  uint16
	desktopHeight uint16
)

func becomeTheWM() {
	if err := xp.ChangeWindowAttributesChecked(xConn, rootXWin, xp.CwEventMask, []uint32{
		xp.EventMaskButtonPress |
			xp.EventMaskButtonRelease |
			xp.EventMaskPointerMotion |
			xp.EventMaskSubstructureRedirect,
	}).Check(); err != nil {
		if _, ok := err.(xp.AccessError); ok {
			log.Fatalf("could not become the window manager. Is another window manager running?")
		}
		log.Fatalf("%v", err)
	}
}

func initAtoms() {
	atomWMDeleteWindow = internAtom("WM_DELETE_WINDOW")
	atomWMProtocols = internAtom("WM_PROTOCOLS")
	atomWMTakeFocus = internAtom("WM_TAKE_FOCUS")
	atomNetActiveWindow = internAtom("_NET_ACTIVE_WINDOW")
	atomNetCloseWindow = internAtom("_NET_CLOSE_WINDOW")
	atomNetCurrentDesktop = internAtom("_NET_CURRENT_DESKTOP")
	atomNetWMDesktop = internAtom("_NET_WM_DESKTOP")
}

// internAtom goes through xprop so that the atom is also in xgbutil's cache,
// which its icccm and ewmh packages use.
func internAtom(name string) xp.Atom {
	a, err := xprop.Atm(xUtil, name)
	if err != nil {
		log.Fatalf("intern atom %s: %v", name, err)
	}
	return a
}

func initDesktop(xScreen *xp.ScreenInfo) {
	xFont, err := xp.NewFontId(xConn)
	if err != nil {
		log.Fatalf("%v", err)
	}
	xCursor, err := xp.NewCursorId(xConn)
	if err != nil {
		log.Fatalf("%v", err)
	}
	err = xp.OpenFontChecked(xConn, xFont, uint16(len("cursor")), "cursor").Check()
	if err != nil {
		log.Fatalf("open cursor font: %v", err)
	}
	const xcLeftPtr = 68 // XC_left_ptr from cursorfont.h.
	err = xp.CreateGlyphCursorChecked(
		xConn, xCursor, xFont, xFont, xcLeftPtr, xcLeftPtr+1,
		0xffff, 0xffff, 0xffff, 0, 0, 0).Check()
	if err != nil {
		log.Fatalf("create cursor: %v", err)
	}
	err = xp.CloseFontChecked(xConn, xFont).Check()
	if err != nil {
		log.Fatalf("%v", err)
	}

	desktopXWin, err = xp.NewWindowId(xConn)
	if err != nil {
		log.Fatalf("%v", err)
	}
	desktopXGC, err = xp.NewGcontextId(xConn)
	if err != nil {
		log.Fatalf("%v", err)
	}
	desktopWidth = xScreen.WidthInPixels
	desktopHeight = xScreen.HeightInPixels

	if err := xp.CreateWindowChecked(
		xConn, xScreen.RootDepth, desktopXWin, xScreen.Root,
		0, 0, desktopWidth, desktopHeight, 0,
		xp.WindowClassInputOutput,
		xScreen.RootVisual,
		xp.CwBackPixel|xp.CwOverrideRedirect|xp.CwEventMask|xp.CwCursor,
		[]uint32{
			xScreen.BlackPixel,
			1,
			xp.EventMaskExposure,
			uint32(xCursor),
		},
	).Check(); err != nil {
		log.Fatalf("create desktop window: %v", err)
	}

	if err := xp.ConfigureWindowChecked(
		xConn,
		desktopXWin,
		xp.ConfigWindowStackMode,
		[]uint32{
			xp.StackModeBelow,
		},
	).Check(); err != nil {
		log.Fatalf("%v", err)
	}

	lineWidth := uint32(1)
	if borderWidth > 2 {
		lineWidth = uint32(borderWidth - 1)
	}
	if err := xp.CreateGCChecked(
		xConn,
		desktopXGC,
		xp.Drawable(xScreen.Root),
		xp.GcForeground|xp.GcBackground|xp.GcLineWidth,
		[]uint32{
			palette.BorderNormal,
			xScreen.BlackPixel,
			lineWidth,
		},
	).Check(); err != nil {
		log.Fatalf("create gc: %v", err)
	}

	if err := xp.MapWindowChecked(xConn, desktopXWin).Check(); err != nil {
		log.Fatalf("%v", err)
	}
}

// initScreens finds the screens and shows the first groups on them, one each.
// Screens beyond the number of groups are ignored.
func initScreens() {
	xine, err := xinerama.QueryScreens(xConn).Reply()
	if err != nil {
		log.Fatalf("xinerama: %v", err)
	}
	if len(xine.ScreenInfo) > 0 {
		screens = make([]*screen, 0, len(xine.ScreenInfo))
		for _, si := range xine.ScreenInfo {
			screens = append(screens, &screen{
				rect: xp.Rectangle{
					X:      si.XOrg,
					Y:      si.YOrg,
					Width:  si.Width - 1,
					Height: si.Height - 1,
				},
			})
		}
	} else {
		screens = []*screen{{
			rect: xp.Rectangle{
				X:      0,
				Y:      0,
				Width:  desktopWidth - 1,
				Height: desktopHeight - 1,
			},
		}}
	}
	if len(screens) > len(groups) {
		log.Warnf("%d screens but only %d groups", len(screens), len(groups))
		screens = screens[:len(groups)]
	}
	for i, s := range screens {
		k := groups[i]
		s.group, k.screen = k, s
		k.layout()
	}
	log.Infof("%d screens, %d groups", len(screens), len(groups))
}
