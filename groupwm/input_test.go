package main

import (
	"strings"
	"testing"

	xp "github.com/BurntSushi/xgb/xproto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/groupwm/groupwm/config"
)

func TestActionsCoverConfig(t *testing.T) {
	names := make([]string, 0, len(actions))
	for name := range actions {
		names = append(names, name)
	}
	assert.ElementsMatch(t, config.Actions, names)
}

func TestNewBinding(t *testing.T) {
	b, err := newBinding(config.Key{Keys: "mod-l", Action: "next-frame", Desc: "next frame"})
	require.NoError(t, err)
	assert.Equal(t, "next-frame", b.name)
	assert.Equal(t, "next frame", b.desc)
	assert.Equal(t, next, b.arg)

	b, err = newBinding(config.Key{Keys: "mod-3", Action: "group", Args: []string{"3"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, b.arg)

	_, err = newBinding(config.Key{Keys: "mod-x", Action: "explode"})
	assert.EqualError(t, err, `unknown action "explode"`)
}

func TestDefaultBindingsResolve(t *testing.T) {
	for _, k := range config.Default().Bindings() {
		_, err := newBinding(k)
		assert.NoError(t, err, k.Keys)
	}
}

func TestCleanMods(t *testing.T) {
	assert.Equal(t, uint16(xp.ModMask4),
		cleanMods(xp.ModMask4|xp.ModMaskLock|xp.ModMask2))
	assert.Equal(t, uint16(xp.ModMaskShift|xp.ModMaskControl),
		cleanMods(xp.ModMaskShift|xp.ModMaskControl|xp.KeyButMaskButton1))
	assert.Equal(t, uint16(0), cleanMods(xp.ModMaskLock))
}

func TestRestartArgs(t *testing.T) {
	args := []string{"/usr/bin/groupwm", "-d"}
	assert.Equal(t, []string{"/usr/bin/groupwm", "-d", "--restarted"}, restartArgs(args))
	assert.Len(t, args, 2)

	again := []string{"groupwm", "--restarted"}
	assert.Equal(t, again, restartArgs(again))

	assert.Equal(t, []string{"groupwm", "--restarted"}, restartArgs(nil))
}

func TestBindingString(t *testing.T) {
	b, err := newBinding(config.Key{Keys: "mod4-s", Action: "toggle-sticky", Desc: "Toggle sticky"})
	require.NoError(t, err)
	assert.Equal(t, "toggle-sticky: Toggle sticky", b.String())

	b, err = newBinding(config.Key{Keys: "mod4-m", Action: "merge"})
	require.NoError(t, err)
	assert.Equal(t, "merge", b.String())
}

func TestPrintKeys(t *testing.T) {
	var out strings.Builder
	err := printKeys(&out, []config.Key{
		{Keys: "mod4-Return", Action: "spawn", Args: []string{"xterm"}, Desc: "Launch terminal"},
		{Keys: "mod4-l", Action: "next-frame"},
	})
	require.NoError(t, err)
	assert.Equal(t,
		"mod4-Return              spawn: Launch terminal\n"+
			"mod4-l                   next-frame\n",
		out.String())

	err = printKeys(&out, []config.Key{{Keys: "mod4-x", Action: "explode"}})
	assert.ErrorContains(t, err, `key "mod4-x": unknown action "explode"`)
}
