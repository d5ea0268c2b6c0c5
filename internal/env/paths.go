package env

import (
	"os"
	"path/filepath"
)

const (
	FRAMEINFO_CONFIG_DIR_NAME = "frameinfo"

	FRAMEINFO_CONFIG_DIR_ENV = "FRAMEINFO_CONFIG_DIR"
	FRAMEINFO_CWD_CONFIG_DIR = ".frameinfo"
)

// In increasing priority order, later files override earlier ones
//
// Check in these locations:
// /etc/frameinfo/
// $XDG_CONFIG_HOME/frameinfo/ OR $HOME/.config/frameinfo/
// ./.frameinfo/
// $FRAMEINFO_CONFIG_DIR/
func resolvePaths() []string {
	paths := []string{filepath.Join("/etc/", FRAMEINFO_CONFIG_DIR_NAME)}

	if cfgDir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(cfgDir, FRAMEINFO_CONFIG_DIR_NAME))
	}

	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, FRAMEINFO_CWD_CONFIG_DIR))
	}

	if p := os.Getenv(FRAMEINFO_CONFIG_DIR_ENV); p != "" {
		paths = append(paths, p)
	}

	return paths
}
