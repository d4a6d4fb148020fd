package main

import (
	"fmt"

	xp "github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xevent"

	"github.com/groupwm/groupwm/config"
	"github.com/groupwm/groupwm/log"
)

type keyCombo struct {
	mods uint16
	code xp.Keycode
}

// binding is an action with its argument, ready to run on a key press.
type binding struct {
	name string
	desc string
	do   func(*group, interface{}) bool
	arg  interface{}
}

var bindings = map[keyCombo]binding{}

func (b binding) String() string {
	if b.desc == "" {
		return b.name
	}
	return b.name + ": " + b.desc
}

// keyModMask is the modifiers that a key binding can name.
const keyModMask = xp.ModMaskShift | xp.ModMaskLock | xp.ModMaskControl |
	xp.ModMask1 | xp.ModMask2 | xp.ModMask3 | xp.ModMask4 | xp.ModMask5

// cleanMods drops pointer buttons and the lock modifiers (Caps Lock, Num Lock)
// from a key event's state.
func cleanMods(state uint16) uint16 {
	state &= keyModMask
	for _, m := range xevent.IgnoreMods {
		state &^= m
	}
	return state
}

// newBinding resolves k's action by name. Non-empty Args replace the
// action's built-in argument.
func newBinding(k config.Key) (binding, error) {
	a, ok := actions[k.Action]
	if !ok {
		return binding{}, fmt.Errorf("unknown action %q", k.Action)
	}
	b := binding{name: k.Action, desc: k.Desc, do: a.do, arg: a.arg}
	if len(k.Args) != 0 {
		b.arg = k.Args
	}
	return b, nil
}

// grabKeys binds and grabs every key. Keys that the keyboard cannot type are
// logged and skipped.
func grabKeys(keys []config.Key) {
	bindings = map[keyCombo]binding{}
	check(xp.UngrabKeyChecked(xConn, xp.GrabAny, rootXWin, xp.ModMaskAny))
	for _, k := range keys {
		b, err := newBinding(k)
		if err != nil {
			log.Warnf("key %q: %v", k.Keys, err)
			continue
		}
		mods, codes, err := keybind.ParseString(xUtil, k.Keys)
		if err != nil {
			log.Warnf("key %q: %v", k.Keys, err)
			continue
		}
		for _, code := range codes {
			c := keyCombo{cleanMods(mods), code}
			if b0, ok := bindings[c]; ok {
				log.Warnf("key %q: already bound to %s", k.Keys, b0)
				continue
			}
			if log.Default().Enabled(log.LevelDebug) {
				log.Debugf("key %q: %s", k.Keys, b)
			}
			bindings[c] = b
			keybind.Grab(xUtil, rootXWin, c.mods, code)
		}
	}
	log.Debugf("%d key bindings", len(bindings))
}

func handleMappingNotify(e xp.MappingNotifyEvent) {
	if e.Request != xp.MappingKeyboard && e.Request != xp.MappingModifier {
		return
	}
	keyMap, modMap := keybind.MapsGet(xUtil)
	keybind.KeyMapSet(xUtil, keyMap)
	keybind.ModMapSet(xUtil, modMap)
	grabKeys(sess.cfg.Bindings())
}

func handleKeyPress(e xp.KeyPressEvent) {
	b, ok := bindings[keyCombo{cleanMods(e.State), e.Detail}]
	if !ok {
		return
	}
	log.Tracef("key %d: %s", e.Detail, b.name)
	if b.do(screenContaining(e.RootX, e.RootY).group, b.arg) {
		startPulse()
	}
}

func handleButtonPress(e xp.ButtonPressEvent) {
	s := screenContaining(e.RootX, e.RootY)
	button := e.Detail
	if e.State&xp.ModMaskControl != 0 {
		// Control-click is treated as a Middle Mouse Button.
		button = 2
	} else if e.State&xp.ModMask1 != 0 {
		// Alt-click is treated as a Right Mouse Button.
		button = 3
	}
	if button == 2 {
		// Middle Mouse Button is treated as Mouse-Wheel Up/Down.
		if e.State&xp.ModMaskShift != 0 {
			button = 4
		} else {
			button = 5
		}
	}
	k := s.group
	if k.listing != listNone && button > 3 {
		return
	}
	if k.listing == listWindows {
		button = 1
	} else if k.listing == listGroups {
		button = 3
	}

	switch button {
	case 1:
		if k.listIndex >= 0 {
			if iw, ok := k.list[k.listIndex].(*window); ok {
				k.listing, k.list, k.listIndex = listNone, nil, -1
				k.configure()
				changeWindow(k.focusedFrame, k.focusedFrame.window, iw)
			}
			s.repaint()
		} else {
			doList(k, listWindows)
		}
	case 3:
		if k.listIndex >= 0 {
			if ik, ok := k.list[k.listIndex].(*group); ok {
				k.listing, k.list, k.listIndex = listNone, nil, -1
				k.configure()
				changeGroup(s, k, ik)
			}
			s.repaint()
		} else {
			doList(k, listGroups)
		}
	case 4:
		doWindow(k, prev)
	case 5:
		doWindow(k, next)
	}

	if button <= 3 {
		k = s.group
		w := k.current()
		if k.listing != listNone {
			w = nil
		}
		focus(w)
	}
}

func handleEnterNotify(e xp.EnterNotifyEvent) {
	w := findXWin(e.Event)
	if w == nil || w.group == nil {
		return
	}
	if w.floating {
		focus(w)
		return
	}
	if w.frame == nil {
		return
	}
	k := w.group
	f0 := k.focusedFrame
	k.focusFrame(w.frame)
	if k.listing == listWindows && k.focusedFrame != f0 {
		k.makeList()
	}
}

func handleMotionNotify(e xp.MotionNotifyEvent) {
	s := screenContaining(e.RootX, e.RootY)
	k := s.group
	f0 := k.focusedFrame
	if !k.fullscreen && k.listing != listGroups {
		k.focusFrame(k.frameContaining(e.RootX, e.RootY))
	}
	if k.listing == listNone {
		return
	}
	i1, i0 := k.indexForPoint(e.RootX, e.RootY), k.listIndex
	k.listIndex = i1
	if k.listing == listWindows && k.focusedFrame != f0 {
		k.makeList()
		return
	}
	if i1 == i0 {
		return
	}

	x, y := k.clip()
	setForeground(colorFocused)
	y += fontHeight + fontHeight1
	if i0 != -1 {
		drawText(x+fontWidth, y+int16(i0)*fontHeight, " ")
	}
	if i1 != -1 {
		drawText(x+fontWidth, y+int16(i1)*fontHeight, ">")
	}
	unclip()
}
