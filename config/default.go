package config

import "github.com/groupwm/groupwm/rules"

// Default returns the compiled-in configuration. Each call returns a fresh
// copy that the caller may modify.
func Default() *Config {
	return &Config{
		ModKey:      "mod4",
		Terminal:    "terminator",
		FileManager: "thunar",
		WMName:      "LG3D",
		BorderWidth: 3,
		GroupKeys:   true,
		Colors: Colors{
			BorderFocus:  "#00DC6C",
			BorderNormal: "#1F1D2E",
			PulseFocus:   "#7FFF7F",
			PulseNormal:  "#3F7F3F",
			QuitFocus:    "#FF3F3F",
			QuitNormal:   "#7F1F1F",
			Text:         "#56D9C7",
		},
		Autostart: Autostart{
			X11Script:     "autostart_x11.sh",
			WaylandScript: "autostart_wayland.sh",
			Always: [][]string{
				{"xsetroot", "-cursor_name", "left_ptr"},
			},
		},
		Groups: []Group{
			{Name: "1", Label: "🏠"},
			{Name: "2", Label: "🌐", Matches: classes("firefox", "chromium", "google-chrome")},
			{Name: "3", Label: "💻", Matches: classes("code", "code-oss", "sublime_text",
				"jetbrains-pycharm-ce", "jetbrains-idea-ce")},
			{Name: "4", Label: "🗄️", Matches: classes("dbeaver", "mysql-workbench", "pgadmin4")},
			{Name: "5", Label: "🐳", Matches: []rules.Match{
				{Title: "Docker"},
				{Class: "docker-desktop"},
			}},
			{Name: "6", Label: "📧", Matches: classes("slack", "discord", "telegram-desktop", "zoom")},
			{Name: "7", Label: "📊", Matches: classes("htop", "btop", "system-monitor")},
			{Name: "8", Label: "🎵", Matches: classes("vlc", "mpv", "spotify")},
			{Name: "9", Label: "📁", Matches: classes("thunar", "nautilus", "pcmanfm")},
			{Name: "0", Label: "⚙️"},
		},
		ClassRoutes: []rules.ClassRoute{
			{Group: "3", Contains: []string{"code", "pycharm", "idea", "sublime"}},
			{Group: "2", Contains: []string{"firefox", "chromium", "chrome"}},
		},
		Float: defaultFloat(),
		Sticky: []rules.Match{
			{Class: "firefox", Title: "Picture-in-Picture"},
		},
		Keys: defaultKeys(),
	}
}

func classes(names ...string) []rules.Match {
	ms := make([]rules.Match, len(names))
	for i, n := range names {
		ms[i] = rules.Match{Class: n}
	}
	return ms
}

func defaultFloat() []rules.Match {
	ms := classes(
		// Dialogs that most tiling window managers float anyway.
		"confirm", "dialog", "download", "error", "file_progress",
		"notification", "splash", "toolbar",
		// gitk
		"confirmreset", "makebranch", "maketag",
		"ssh-askpass",
		// System settings.
		"Arandr", "Pavucontrol", "Nitrogen", "Lxappearance", "Blueman-manager",
		"VirtualBox Manager", "VirtualBox Machine", "jetbrains-toolbox",
		"galculator", "calculator",
	)
	return append(ms,
		rules.Match{Title: "branchdialog"},
		rules.Match{Title: "pinentry"},
		rules.Match{Class: "krita", Title: "New Image"},
		rules.Match{Class: "gimp-2.10", Title: "GNU Image Manipulation Program"},
		rules.Match{Title: "About PyCharm"},
		rules.Match{Title: "Preferences"},
		rules.Match{Title: "Settings"},
		rules.Match{Title: "Configure"},
	)
}

func spawn(keys, desc string, argv ...string) Key {
	return Key{Keys: keys, Action: "spawn", Args: argv, Desc: desc}
}

func defaultKeys() []Key {
	rofiTheme := []string{"-show-icons", "-theme", "rounded-green-dark"}
	return []Key{
		{"$mod-h", "prev-frame", nil, "Move focus to left"},
		{"$mod-l", "next-frame", nil, "Move focus to right"},
		{"$mod-j", "next-window", nil, "Move focus down"},
		{"$mod-k", "prev-window", nil, "Move focus up"},
		{"$mod-Left", "prev-frame", nil, "Move focus to left"},
		{"$mod-Right", "next-frame", nil, "Move focus to right"},
		{"$mod-Down", "next-window", nil, "Move focus down"},
		{"$mod-Up", "prev-window", nil, "Move focus up"},
		{"$mod-space", "next-window", nil, "Move window focus to other window"},

		{"$mod-shift-h", "shuffle-prev", nil, "Move window to the left"},
		{"$mod-shift-l", "shuffle-next", nil, "Move window to the right"},
		{"$mod-shift-j", "shuffle-next", nil, "Move window down"},
		{"$mod-shift-k", "shuffle-prev", nil, "Move window up"},
		{"$mod-shift-Left", "shuffle-prev", nil, "Move window to the left"},
		{"$mod-shift-Right", "shuffle-next", nil, "Move window to the right"},
		{"$mod-shift-Down", "shuffle-next", nil, "Move window down"},
		{"$mod-shift-Up", "shuffle-prev", nil, "Move window up"},

		{"$mod-minus", "split-horizontal", nil, "Split the focused frame side by side"},
		{"$mod-equal", "split-vertical", nil, "Split the focused frame top and bottom"},
		{"$mod-shift-equal", "merge", nil, "Merge the focused frame into its neighbour"},
		{"$mod-f", "toggle-fullscreen", nil, "Toggle focused window to fullscreen"},
		{"$mod-v", "toggle-floating", nil, "Toggle focused window to floating"},
		{"$mod-g", "hide", nil, "Hide the focused window"},
		{"$mod-s", "toggle-sticky", nil, "Toggle state of sticky for current window"},
		{"$mod-Tab", "next-screen", nil, "Move focus to the next screen"},
		{"$mod-a", "list-windows", nil, "List the windows of the current group"},
		{"$mod-w", "list-groups", nil, "List every group and its windows"},
		{"$mod-period", "next-group", nil, "Switch to the next group"},
		{"$mod-comma", "prev-group", nil, "Switch to the previous group"},
		{"$mod-shift-period", "to-next-group", nil, "Move window to the next group"},
		{"$mod-shift-comma", "to-prev-group", nil, "Move window to the previous group"},

		{"$mod-shift-q", "kill", nil, "Kill focused window"},
		{"$mod-control-r", "restart", nil, "Restart groupwm in place"},
		{"$mod-control-q", "quit", nil, "Quit groupwm (press three times)"},

		spawn("$mod-Return", "Launch terminal", "$terminal"),
		spawn("$mod-e", "Open file manager", "$file-manager"),
		spawn("$mod-mod1-d", "Spawn a command using a prompt widget",
			append([]string{"rofi"}, append(rofiTheme, "-show", "drun")...)...),
		spawn("$mod-mod1-Tab", "Show the open windows",
			append([]string{"rofi"}, append(rofiTheme, "-show", "window")...)...),
		spawn("$mod-shift-x", "Launch wlogout", "wlogout"),
		spawn("$mod-mod1-x", "Launch rofi power menu", "powermenu-total"),

		spawn("XF86AudioMute", "Mute", "wpctl", "set-mute", "@DEFAULT_AUDIO_SINK@", "toggle"),
		spawn("XF86AudioLowerVolume", "Volume down",
			"wpctl", "set-volume", "@DEFAULT_AUDIO_SINK@", "5%-", "-l", "1.0"),
		spawn("XF86AudioRaiseVolume", "Volume up",
			"wpctl", "set-volume", "@DEFAULT_AUDIO_SINK@", "5%+", "-l", "1.0"),
		spawn("XF86AudioPlay", "Play or pause", "playerctl", "play-pause"),
		spawn("XF86AudioPrev", "Previous track", "playerctl", "previous"),
		spawn("XF86AudioNext", "Next track", "playerctl", "next"),
		spawn("XF86MonBrightnessUp", "Brightness up", "brightnessctl", "s", "5%+"),
		spawn("XF86MonBrightnessDown", "Brightness down", "brightnessctl", "s", "5%-"),
		spawn("Print", "Screenshot", "xfce4-screenshooter"),
	}
}
