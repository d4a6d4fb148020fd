package main

import (
	"fmt"
	"time"

	xp "github.com/BurntSushi/xgb/xproto"

	"github.com/groupwm/groupwm/config"
)

const (
	// fontXxx are the font metrics for X11's default font (fixed).
	// fontHeight1 is the vertical offset for the first line of text.
	fontHeight  = 16
	fontHeight1 = 9
	fontWidth   = 6

	// pulseXxx are the animation durations.
	pulseFrameDuration = 50 * time.Millisecond
	pulseTotalDuration = 1000 * time.Millisecond

	// quitDuration is the grace period, when quitting, for programs to exit
	// cleanly.
	quitDuration = 60 * time.Second
)

var (
	palette     config.Palette
	borderWidth = 1

	// colorFocused and colorUnfocused are the border colors right now. They
	// move from the pulse colors to the border colors during a pulse.
	colorFocused   uint32
	colorUnfocused uint32

	// pulseChan starts (or restarts) the border pulse. See startPulse.
	pulseChan = make(chan time.Time, 1)
)

func initPalette(p config.Palette, width int) {
	palette = p
	colorFocused, colorUnfocused = p.BorderFocus, p.BorderNormal
	if width > 0 {
		borderWidth = width
	}
}

// startPulse acknowledges an action by pulsating the frame borders. It never
// blocks, so it is safe to call from the main goroutine.
func startPulse() {
	select {
	case pulseChan <- time.Now():
	default:
	}
}

// runPulse animates the frame borders. It runs on its own goroutine and
// draws via proactiveChan.
func runPulse() {
	ticker := time.NewTicker(pulseFrameDuration)
	ticker.Stop()
	start := time.Time{}
	for {
		select {
		case start = <-pulseChan:
			ticker.Reset(pulseFrameDuration)
			proactiveChan <- func() { drawPulse(0) }
		case now := <-ticker.C:
			t := float64(now.Sub(start)) / float64(pulseTotalDuration)
			if t >= 1 {
				t = 1
				ticker.Stop()
			}
			proactiveChan <- func() { drawPulse(t) }
		}
	}
}

func drawPulse(t float64) {
	if quitting {
		colorFocused, colorUnfocused = palette.QuitFocus, palette.QuitNormal
	} else {
		colorFocused = blend(palette.PulseFocus, palette.BorderFocus, t)
		colorUnfocused = blend(palette.PulseNormal, palette.BorderNormal, t)
	}
	for _, s := range screens {
		s.group.drawFrameBorders()
	}
}

// blend interpolates each 8-bit channel of two 24-bit RGB colors, returning
// c0 when t is 0 and c1 when t is 1.
func blend(c0, c1 uint32, t float64) uint32 {
	if t <= 0 {
		return c0
	}
	if t >= 1 {
		return c1
	}
	ret := uint32(0)
	for shift := uint(0); shift < 24; shift += 8 {
		a := float64((c0 >> shift) & 0xff)
		b := float64((c1 >> shift) & 0xff)
		ret |= uint32(a+(b-a)*t+0.5) << shift
	}
	return ret
}

func setForeground(c uint32) {
	check(xp.ChangeGCChecked(xConn, desktopXGC, xp.GcForeground, []uint32{c}))
}

func drawText(x, y int16, s string) {
	s = latin1(s)
	if len(s) > 255 {
		s = s[:255]
	}
	check(xp.ImageText8Checked(xConn, byte(len(s)), xp.Drawable(desktopXWin), desktopXGC,
		x, y, s))
}

// latin1 converts s to the Latin-1 bytes that the core X fonts draw.
// Characters outside Latin-1 become '?'.
func latin1(s string) string {
	b := make([]byte, 0, len(s))
	for _, r := range s {
		if r > 0xff {
			r = '?'
		}
		b = append(b, byte(r))
	}
	return string(b)
}

// clip restricts drawing to k's listing rectangle and returns its origin.
func (k *group) clip() (x, y int16) {
	r := k.listRect()
	check(xp.SetClipRectanglesChecked(xConn, xp.ClipOrderingUnsorted, desktopXGC, 0, 0,
		[]xp.Rectangle{r}))
	return r.X, r.Y
}

func unclip() {
	check(xp.ChangeGCChecked(xConn, desktopXGC, xp.GcClipMask, []uint32{xp.PixmapNone}))
}

func (k *group) drawList() {
	if k.listing == listNone {
		return
	}
	x, y := k.clip()
	defer unclip()

	setForeground(palette.Text)
	heading := fmt.Sprintf("group %s: %d windows", k.name, k.numWindows())
	if k.listing == listGroups {
		heading = "groups"
	}
	drawText(x+fontWidth, y+fontHeight1, heading)

	isSticky := func(w *window) bool { return sess.sticky.Contains(w) }
	y += fontHeight + fontHeight1
	for i, item := range k.list {
		drawText(x+3*fontWidth, y+int16(i)*fontHeight, listLine(item, isSticky))
	}
	if k.listIndex >= 0 {
		setForeground(colorFocused)
		drawText(x+fontWidth, y+int16(k.listIndex)*fontHeight, ">")
	}
}

// listLine formats one row of a listing. Sticky windows are marked '*' and
// floating windows '~'.
func listLine(item interface{}, isSticky func(*window) bool) string {
	switch item := item.(type) {
	case *group:
		shown := ""
		if item.screen != nil {
			shown = " (shown)"
		}
		return fmt.Sprintf("%s%s", item.name, shown)
	case *window:
		marks := []byte("   ")
		if isSticky != nil && isSticky(item) {
			marks[1] = '*'
		}
		if item.floating {
			marks[2] = '~'
		}
		return string(marks) + item.name
	}
	return ""
}

func handleExpose(e xp.ExposeEvent) {
	if e.Count != 0 {
		return
	}
	for _, s := range screens {
		k := s.group
		k.drawFrameBorders()
		k.drawList()
	}
}
