/*
Groupwm is a keyboard driven tiling window manager for X11 built around a fixed
set of named groups. Each screen shows one group at a time, windows are routed
to groups by rules, and sticky windows follow you from group to group.

# Installation

To install groupwm:

	go install github.com/groupwm/groupwm/groupwm@latest

Groupwm is designed to run from an Xsession session. Add this line to the end
of your ~/.xsession file:

	exec /path/to/your/groupwm

# Usage

Groupwm starts with each screen divided into two side-by-side frames. Frames can
frame windows, but they can also be empty: closing a frame's window will not
collapse that frame. The frame that contains the mouse pointer is the focused
frame, and its border is brighter than other frames. Its window (if it
contains one) will have the keyboard focus.

All keyboard shortcuts involve the mod key, which is the Super (Windows) key
unless configured otherwise. The defaults are:

	mod-Return          terminal
	mod-e               file manager
	mod-h, mod-l        previous or next frame
	mod-j, mod-k        next or previous hidden window in the focused frame
	mod-shift-j/k       shuffle the window through the window list
	mod-minus           split the focused frame horizontally
	mod-equal           split the focused frame vertically
	mod-shift-equal     merge the focused frame into its neighbours
	mod-f               toggle fullscreen
	mod-v               toggle floating
	mod-s               toggle sticky
	mod-g               hide the focused window
	mod-Tab             next screen
	mod-comma, mod-period
	                    previous or next group
	mod-a, mod-w        list windows, list groups
	mod-1 ... mod-0     show group 1 ... 0
	mod-shift-N         move the focused window to group N
	mod-control-N       move the focused window to group N and follow it
	mod-shift-q         close the focused window
	mod-control-r       restart in place
	mod-control-q       quit (press three times)

If there are more windows than frames, new windows stay hidden until there is
an empty frame or you cycle to them, and the frame borders pulsate to remind
you. Windows marked '*' in the window list are sticky, and windows marked '~'
are floating.

When a screen switches to a different group, every sticky window moves to that
group. A window becomes sticky with mod-s, or when it matches a sticky rule;
by default Firefox's Picture-in-Picture window is sticky. Closing a sticky
window forgets it.

Quitting asks every window that supports it to close, then waits up to 60
seconds for them to do so. Frame borders turn red in the meantime.

# Customization

Groupwm reads $XDG_CONFIG_HOME/groupwm/config.toml if it exists. Every setting
in it is optional. Run

	groupwm --sample-config

to see every setting with its built-in value, and

	groupwm --check

to validate a configuration file without starting the window manager.

	groupwm --list-keys

prints every key binding with its description.

On first start (but not after mod-control-r) groupwm runs
$XDG_CONFIG_HOME/groupwm/autostart_x11.sh, or autostart_wayland.sh in a Wayland
session, if it exists.

Groupwm publishes its groups and windows through EWMH, so external bars and
pagers can show them.

# Development

When working on groupwm, it can be run in a nested X server such as Xephyr:

	Xephyr :9 2>/dev/null &
	DISPLAY=:9 go run ./groupwm --debug
*/
package main
