package main

import (
	"testing"

	xp "github.com/BurntSushi/xgb/xproto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setGroups(t *testing.T, names ...string) {
	t.Helper()
	saved := groups
	t.Cleanup(func() { groups = saved })
	groups = nil
	for i, name := range names {
		groups = append(groups, newGroup(name, "", i))
	}
}

func TestNewGroup(t *testing.T) {
	k := newGroup("web", "W", 3)
	assert.Equal(t, "web", k.Name())
	assert.Equal(t, "W", k.Label())
	assert.Equal(t, 3, k.index)
	assert.Equal(t, 0, k.numWindows())

	// The main frame starts split in two, side by side.
	require.Equal(t, 2, k.mainFrame.numChildren())
	assert.Equal(t, horizontal, k.mainFrame.orientation)
	assert.Same(t, k.mainFrame.firstChild, k.focusedFrame)
	assert.Same(t, k, k.focusedFrame.group)

	assert.Equal(t, "x", newGroup("x", "", 0).Label())
}

func TestLayoutOffscreen(t *testing.T) {
	k := newGroup("1", "", 0)
	left, right := k.mainFrame.firstChild, k.mainFrame.lastChild
	assert.Equal(t, xp.Rectangle{X: offscreenXY, Y: offscreenXY, Width: 128, Height: 256}, left.rect)
	assert.Equal(t, xp.Rectangle{X: offscreenXY + 128, Y: offscreenXY, Width: 128, Height: 256}, right.rect)
}

func TestLayoutOnScreen(t *testing.T) {
	k := newGroup("1", "", 0)
	k.screen = &screen{group: k, rect: xp.Rectangle{X: 0, Y: 0, Width: 1919, Height: 1079}}
	k.layout()
	assert.Equal(t, xp.Rectangle{Width: 959, Height: 1079}, k.mainFrame.firstChild.rect)
	assert.Equal(t, xp.Rectangle{X: 959, Width: 960, Height: 1079}, k.mainFrame.lastChild.rect)
}

func TestSplitAndMerge(t *testing.T) {
	k := newGroup("1", "", 0)
	left := k.focusedFrame

	left.split(vertical)
	require.Equal(t, 2, left.numChildren())
	assert.Equal(t, vertical, left.orientation)
	assert.Same(t, left.firstChild, k.focusedFrame)
	assert.Len(t, k.mainFrame.appendRectangles(nil), 3)

	// Splitting in the parent's orientation adds a sibling.
	k.focusedFrame.split(vertical)
	assert.Equal(t, 3, left.numChildren())
	assert.Len(t, k.mainFrame.appendRectangles(nil), 4)

	require.True(t, k.focusedFrame.merge())
	assert.Equal(t, 2, left.numChildren())
	require.True(t, k.focusedFrame.merge())
	assert.Equal(t, 0, left.numChildren())
	assert.Same(t, left, k.focusedFrame)
	assert.Len(t, k.mainFrame.appendRectangles(nil), 2)

	assert.False(t, k.mainFrame.merge())
}

func TestTraverse(t *testing.T) {
	k := newGroup("1", "", 0)
	left, right := k.mainFrame.firstChild, k.mainFrame.lastChild
	left.split(vertical)
	top, bottom := left.firstChild, left.lastChild

	assert.Same(t, bottom, top.traverse(next))
	assert.Same(t, right, bottom.traverse(next))
	assert.Same(t, top, right.traverse(next))

	assert.Same(t, right, top.traverse(prev))
	assert.Same(t, bottom, right.traverse(prev))
	assert.Same(t, top, bottom.traverse(prev))

	assert.Same(t, &k.mainFrame, k.mainFrame.traverse(next))
}

func TestFirstEmptyFrame(t *testing.T) {
	k := newGroup("1", "", 0)
	left, right := k.mainFrame.firstChild, k.mainFrame.lastChild
	assert.Same(t, left, k.mainFrame.firstEmptyFrame())

	left.window = &window{}
	assert.Same(t, right, k.mainFrame.firstEmptyFrame())

	right.window = &window{}
	assert.Nil(t, k.mainFrame.firstEmptyFrame())
}

func TestWindowList(t *testing.T) {
	k := newGroup("1", "", 0)
	a, b, c := &window{name: "a"}, &window{name: "b"}, &window{name: "c"}
	a.insertAfter(k.dummyWindow.link[prev])
	b.insertAfter(k.dummyWindow.link[prev])
	c.insertAfter(a)
	assert.Equal(t, 3, k.numWindows())

	var names []string
	for w := k.dummyWindow.link[next]; w != &k.dummyWindow; w = w.link[next] {
		names = append(names, w.name)
	}
	assert.Equal(t, []string{"a", "c", "b"}, names)

	c.unlink()
	assert.Equal(t, 2, k.numWindows())
	assert.Nil(t, c.link[next])
	assert.Same(t, b, a.link[next])
}

func TestGroupByName(t *testing.T) {
	setGroups(t, "1", "2", "web")
	assert.Same(t, groups[2], groupByName("web"))
	assert.Nil(t, groupByName("mail"))
}

func TestAdjacentGroup(t *testing.T) {
	setGroups(t, "1", "2", "3")
	assert.Same(t, groups[1], adjacentGroup(groups[0], next))
	assert.Same(t, groups[0], adjacentGroup(groups[2], next))
	assert.Same(t, groups[2], adjacentGroup(groups[0], prev))
	assert.Same(t, groups[0], adjacentGroup(groups[1], prev))
}

func TestFindWindow(t *testing.T) {
	setGroups(t, "1", "2")
	w := &window{xWin: 42, group: groups[1]}
	w.insertAfter(&groups[1].dummyWindow)
	assert.Same(t, w, findXWin(42))
	assert.Nil(t, findXWin(43))
}

func TestScreenContaining(t *testing.T) {
	saved := screens
	t.Cleanup(func() { screens = saved })
	screens = []*screen{
		{rect: xp.Rectangle{X: 0, Y: 0, Width: 1919, Height: 1079}},
		{rect: xp.Rectangle{X: 1920, Y: 0, Width: 1279, Height: 1023}},
	}
	assert.Same(t, screens[0], screenContaining(10, 10))
	assert.Same(t, screens[1], screenContaining(2000, 500))
	assert.Same(t, screens[0], screenContaining(-5, -5))
}
