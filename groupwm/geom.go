package main

import (
	xp "github.com/BurntSushi/xgb/xproto"

	"github.com/groupwm/groupwm/hook"
	"github.com/groupwm/groupwm/log"
)

type orientation int

const (
	noOrientation orientation = iota
	horizontal
	vertical
)

type traversal int

const (
	next traversal = iota
	prev
)

type listing int

const (
	listNone listing = iota
	listWindows
	listGroups
)

// offscreenXY is the most negative X/Y co-ordinate.
const offscreenXY = -1 << 15

func contains(r xp.Rectangle, x, y int16) bool {
	return r.X <= x && x <= r.X+int16(r.Width) &&
		r.Y <= y && y <= r.Y+int16(r.Height)
}

func screenContaining(x, y int16) *screen {
	for _, s := range screens {
		if contains(s.rect, x, y) {
			return s
		}
	}
	return screens[0]
}

var (
	screens []*screen
	groups  []*group // Fixed at startup, in configuration order.
)

func groupByName(name string) *group {
	for _, k := range groups {
		if k.name == name {
			return k
		}
	}
	return nil
}

// adjacentGroup returns the group after (or before) k, wrapping around.
func adjacentGroup(k *group, t traversal) *group {
	n := len(groups)
	if t == next {
		return groups[(k.index+1)%n]
	}
	return groups[(k.index+n-1)%n]
}

func findWindow(predicate func(*window) bool) *window {
	for _, k := range groups {
		for w := k.dummyWindow.link[next]; w != &k.dummyWindow; w = w.link[next] {
			if predicate(w) {
				return w
			}
		}
	}
	return nil
}

func findXWin(xWin xp.Window) *window {
	return findWindow(func(w *window) bool { return w.xWin == xWin })
}

type screen struct {
	group *group
	rect  xp.Rectangle
}

type group struct {
	name         string
	label        string
	index        int
	screen       *screen
	focusedFrame *frame
	mainFrame    frame
	dummyWindow  window // The anchor of a doubly-linked list of windows.
	fullscreen   bool
	listing      listing
	list         []interface{}
	listIndex    int
}

var _ hook.Group = (*group)(nil)

func (k *group) Name() string { return k.name }

func (k *group) Label() string {
	if k.label == "" {
		return k.name
	}
	return k.label
}

type frame struct {
	parent      *frame
	prevSibling *frame
	nextSibling *frame
	firstChild  *frame
	lastChild   *frame
	orientation orientation
	group       *group
	window      *window
	rect        xp.Rectangle
}

// window is a managed client. A floating window is not in any frame; its
// floatRect is relative to the origin of its group's screen.
type window struct {
	frame           *frame
	group           *group
	link            [2]*window
	transientFor    *window
	xWin            xp.Window
	rect            xp.Rectangle
	name            string
	class           hook.WMClass
	offscreenSeqNum uint32
	hasTransientFor bool
	seen            bool
	floating        bool
	floatRect       xp.Rectangle
	wmDeleteWindow  bool
	wmTakeFocus     bool
}

func (s *screen) repaint() {
	check(xp.ClearAreaChecked(xConn, true, desktopXWin,
		s.rect.X, s.rect.Y, s.rect.Width+1, s.rect.Height+1))
}

func newGroup(name, label string, index int) *group {
	k := &group{
		name:      name,
		label:     label,
		index:     index,
		listIndex: -1,
	}
	k.mainFrame.group = k
	k.dummyWindow.link[next] = &k.dummyWindow
	k.dummyWindow.link[prev] = &k.dummyWindow
	k.focusedFrame = &k.mainFrame
	k.layout()
	k.mainFrame.split(horizontal)
	return k
}

// insertAfter links w into the window list after previous.
func (w *window) insertAfter(previous *window) {
	w.link[next] = previous.link[next]
	w.link[prev] = previous
	w.link[next].link[prev] = w
	w.link[prev].link[next] = w
}

func (w *window) unlink() {
	w.link[next].link[prev] = w.link[prev]
	w.link[prev].link[next] = w.link[next]
	w.link[next], w.link[prev] = nil, nil
}

func (k *group) numWindows() (n int) {
	for w := k.dummyWindow.link[next]; w != &k.dummyWindow; w = w.link[next] {
		n++
	}
	return n
}

func makeLists() {
	for _, s := range screens {
		if s.group.listing != listNone {
			s.group.makeList()
		}
	}
}

func (k *group) makeList() {
	switch k.listing {
	case listWindows:
		k.list = k.makeWindowList()
	case listGroups:
		k.list = makeGroupList()
	default:
		k.list = nil
	}
	k.listIndex = -1
	if len(k.list) != 0 {
		if p, err := xp.QueryPointer(xConn, rootXWin).Reply(); err != nil {
			log.Warnf("query pointer: %v", err)
		} else {
			k.listIndex = k.indexForPoint(p.RootX, p.RootY)
		}
	}
	k.configure()
	k.screen.repaint()
}

func (k *group) makeWindowList() (list []interface{}) {
	for w := k.dummyWindow.link[next]; w != &k.dummyWindow; w = w.link[next] {
		w.refreshName()
		list = append(list, w)
	}
	return list
}

func makeGroupList() (list []interface{}) {
	for _, k := range groups {
		list = append(list, k)
		list = append(list, k.makeWindowList()...)
	}
	return list
}

func (k *group) listRect() xp.Rectangle {
	if k.fullscreen || k.listing == listGroups {
		return k.mainFrame.rect
	}
	return k.focusedFrame.rect
}

func (k *group) indexForPoint(rootX, rootY int16) int {
	r := k.listRect()
	x := int(rootX - r.X)
	y := int(rootY - r.Y)
	if x <= 0 || int(r.Width) <= x || y <= 0 || int(r.Height) <= y {
		return -1
	}
	i := int(y/fontHeight) - 1
	if i < 0 || len(k.list) <= i {
		return -1
	}
	if k.listing == listGroups {
		for ; i >= 0; i-- {
			if _, ok := k.list[i].(*group); ok {
				return i
			}
		}
	}
	return i
}

func (k *group) configure() {
	for w := k.dummyWindow.link[next]; w != &k.dummyWindow; w = w.link[next] {
		w.configure()
	}
}

func (k *group) drawFrameBorders() {
	if k.fullscreen || k.listing == listGroups {
		return
	}
	setForeground(colorUnfocused)
	rects := k.mainFrame.appendRectangles(nil)
	check(xp.PolyRectangleChecked(xConn, xp.Drawable(desktopXWin), desktopXGC, rects))
	setForeground(colorFocused)
	k.focusedFrame.drawBorder()
}

func (k *group) focusFrame(f *frame) {
	if f == nil {
		return
	}
	if k.focusedFrame != f {
		if !k.fullscreen && k.listing != listGroups {
			setForeground(colorUnfocused)
			k.focusedFrame.drawBorder()
			setForeground(colorFocused)
			f.drawBorder()
		}
		k.focusedFrame = f
	}
	focus(f.window)
}

func (k *group) frameContaining(x, y int16) *frame {
	if k.fullscreen || k.listing == listGroups || contains(k.focusedFrame.rect, x, y) {
		return k.focusedFrame
	}
	return k.mainFrame.frameContaining(x, y)
}

func (k *group) layout() {
	if k.screen != nil {
		k.mainFrame.rect = k.screen.rect
	} else {
		k.mainFrame.rect = xp.Rectangle{X: offscreenXY, Y: offscreenXY, Width: 256, Height: 256}
	}
	k.mainFrame.layout()
}

// current returns the window that actions apply to: the focused floating
// window if it belongs to k, else the window in k's focused frame.
func (k *group) current() *window {
	if w := activeWindow; w != nil && w.floating && w.group == k {
		return w
	}
	return k.focusedFrame.window
}

func (f *frame) frameContaining(x, y int16) *frame {
	if contains(f.rect, x, y) {
		if f.firstChild == nil {
			return f
		}
		for c := f.firstChild; c != nil; c = c.nextSibling {
			if g := c.frameContaining(x, y); g != nil {
				return g
			}
		}
	}
	return nil
}

func (f *frame) firstDescendent() *frame {
	for f.firstChild != nil {
		f = f.firstChild
	}
	return f
}

func (f *frame) lastDescendent() *frame {
	for f.lastChild != nil {
		f = f.lastChild
	}
	return f
}

func (f *frame) firstEmptyFrame() *frame {
	if f.firstChild != nil {
		for c := f.firstChild; c != nil; c = c.nextSibling {
			if ret := c.firstEmptyFrame(); ret != nil {
				return ret
			}
		}
	} else if f.window == nil {
		return f
	}
	return nil
}

func (f *frame) numChildren() (n int) {
	for c := f.firstChild; c != nil; c = c.nextSibling {
		n++
	}
	return n
}

func (f *frame) appendRectangles(r []xp.Rectangle) []xp.Rectangle {
	if f.firstChild != nil {
		for c := f.firstChild; c != nil; c = c.nextSibling {
			r = c.appendRectangles(r)
		}
		return r
	}
	return append(r, f.rect)
}

func (f *frame) split(o orientation) {
	if f.parent != nil && f.parent.orientation == o {
		g := &frame{
			parent:      f.parent,
			group:       f.group,
			prevSibling: f,
			nextSibling: f.nextSibling,
		}
		if f.nextSibling != nil {
			f.nextSibling.prevSibling = g
		} else {
			f.parent.lastChild = g
		}
		f.nextSibling = g
		if f.window != nil {
			f.group.focusedFrame = g
		}
		f.parent.layout()
		return
	}

	f.orientation = o
	f.firstChild = &frame{
		parent: f,
		group:  f.group,
	}
	f.lastChild = &frame{
		parent: f,
		group:  f.group,
	}
	f.firstChild.nextSibling = f.lastChild
	f.lastChild.prevSibling = f.firstChild
	if f.group.focusedFrame == f {
		f.group.focusedFrame = f.firstChild
	}
	if w := f.window; w != nil {
		f.window = nil
		f.firstChild.window = w
		w.frame = f.firstChild
	}
	f.layout()
}

// merge removes f from the tree, hoisting its only remaining sibling into
// the parent. It returns false if f is the main frame. f's window, if any,
// is detached and left for the caller to configure.
func (f *frame) merge() bool {
	if f.parent == nil {
		return false
	}
	k := f.group
	if w := f.window; w != nil {
		f.window, w.frame = nil, nil
	}

	if f.prevSibling != nil {
		f.prevSibling.nextSibling = f.nextSibling
		k.focusedFrame = f.prevSibling.lastDescendent()
	}
	if f.nextSibling != nil {
		f.nextSibling.prevSibling = f.prevSibling
		k.focusedFrame = f.nextSibling.firstDescendent()
	}
	parent := f.parent
	if parent.firstChild == f {
		parent.firstChild = f.nextSibling
	}
	if parent.lastChild == f {
		parent.lastChild = f.prevSibling
	}

	if parent.numChildren() == 1 {
		// Hoist the sibling frame into the parent frame.
		sibling := parent.firstChild
		parent.firstChild = sibling.firstChild
		parent.lastChild = sibling.lastChild
		for c := parent.firstChild; c != nil; c = c.nextSibling {
			c.parent = parent
		}
		parent.orientation = sibling.orientation
		if w := sibling.window; w != nil {
			parent.window, w.frame = w, parent
		}
		if k.focusedFrame == sibling {
			k.focusedFrame = parent.firstDescendent()
		}
		*f, *sibling = frame{}, frame{}
	}
	parent.layout()
	return true
}

func (f *frame) layout() {
	if f.orientation == noOrientation {
		if f.window != nil {
			f.window.configure()
		}
		return
	}
	i, n := 0, f.numChildren()
	for c := f.firstChild; c != nil; i, c = i+1, c.nextSibling {
		c.rect = f.rect
		switch f.orientation {
		case horizontal:
			i0 := (i + 0) * int(f.rect.Width) / n
			i1 := (i + 1) * int(f.rect.Width) / n
			c.rect.X += int16(i0)
			c.rect.Width = uint16(i1 - i0)
		case vertical:
			i0 := (i + 0) * int(f.rect.Height) / n
			i1 := (i + 1) * int(f.rect.Height) / n
			c.rect.Y += int16(i0)
			c.rect.Height = uint16(i1 - i0)
		}
		c.layout()
	}
}

func (f *frame) traverse(t traversal) *frame {
	if f.parent == nil {
		return f
	}
	if t == next && f.nextSibling != nil {
		return f.nextSibling.firstDescendent()
	}
	if t == prev && f.prevSibling != nil {
		return f.prevSibling.lastDescendent()
	}
	f, from := f.parent, f
	for {
		switch from {
		case f.parent:
			if f.firstChild == nil {
				return f
			}
			if t == next {
				f, from = f.firstChild, f
			} else {
				f, from = f.lastChild, f
			}
		case f.firstChild:
			if f.prevSibling != nil {
				f, from = f.prevSibling, f
			} else if f.parent != nil {
				f, from = f.parent, f
			} else {
				f, from = f.lastChild, f
			}
		case f.lastChild:
			if f.nextSibling != nil {
				f, from = f.nextSibling, f
			} else if f.parent != nil {
				f, from = f.parent, f
			} else {
				f, from = f.firstChild, f
			}
		case f.prevSibling:
			return f.firstDescendent()
		case f.nextSibling:
			return f.lastDescendent()
		}
	}
}

func (f *frame) drawBorder() {
	check(xp.PolyRectangleChecked(xConn, xp.Drawable(desktopXWin), desktopXGC,
		[]xp.Rectangle{f.rect}))
}
