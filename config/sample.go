package config

import (
	"bytes"

	"github.com/pelletier/go-toml"
)

const sampleHeader = `# groupwm configuration.
#
# Copy this file to $XDG_CONFIG_HOME/groupwm/config.toml and edit it. Every
# key is optional: anything left out keeps its built-in value, and an array
# that is present (such as [[key]] or [[group]]) replaces the built-in one
# entirely.
#
# Key strings look like "$mod-shift-h": modifiers (shift, control, mod1 to
# mod5, or $mod for mod-key) and one key name as printed by xev, joined by
# '-'. In spawn arguments, $terminal and $file-manager expand to the values
# below.
#
# Match fields (class, instance, title) must equal the window's value; a
# "re:" prefix makes the field a regular expression. Run "xprop WM_CLASS
# WM_NAME" and click a window to see its values.

`

// Sample renders the built-in configuration as a TOML file.
func Sample() (string, error) {
	var b bytes.Buffer
	b.WriteString(sampleHeader)
	enc := toml.NewEncoder(&b).
		Order(toml.OrderPreserve).
		ArraysWithOneElementPerLine(true).
		Indentation("  ")
	if err := enc.Encode(Default()); err != nil {
		return "", err
	}
	return b.String(), nil
}
