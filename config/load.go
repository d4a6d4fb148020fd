package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml"

	"github.com/groupwm/groupwm/log"
)

// relPath is the config file's location under the XDG config directories.
const relPath = "groupwm/config.toml"

// Dir returns groupwm's directory under $XDG_CONFIG_HOME. Autostart scripts
// are looked up there.
func Dir() string {
	return filepath.Join(xdg.ConfigHome, "groupwm")
}

// Path returns the config file to read. An explicit path wins; otherwise the
// XDG config directories are searched. It returns "" if there is no file.
func Path(explicit string) (string, error) {
	if explicit != "" {
		return homedir.Expand(explicit)
	}
	p, err := xdg.SearchConfigFile(relPath)
	if err != nil {
		// SearchConfigFile only fails when the file does not exist.
		log.Debugf("config: no %s: %v", relPath, err)
		return "", nil
	}
	return p, nil
}

// Load reads the file at path over the defaults. An empty path yields the
// defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Infof("config: loaded %s", path)
	return c, nil
}

// Decode reads TOML from r over the defaults. Tables and arrays present in
// r replace the default ones; keys that r does not mention keep their
// default values. Unknown keys are an error.
func Decode(r io.Reader) (*Config, error) {
	c := Default()
	if err := toml.NewDecoder(r).Strict(true).Decode(c); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadAndValidate is Path, Load and Validate in one.
func LoadAndValidate(explicit string) (*Config, string, error) {
	path, err := Path(explicit)
	if err != nil {
		return nil, "", err
	}
	c, err := Load(path)
	if err != nil {
		return nil, path, err
	}
	if err := c.Validate(); err != nil {
		where := path
		if where == "" {
			where = "built-in defaults"
		}
		return nil, path, fmt.Errorf("%s: %w", where, err)
	}
	return c, path, nil
}
