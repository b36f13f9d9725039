package configs

import (
	"os"
	"path/filepath"

	"github.com/reusee/dscope"
	"github.com/reusee/mm/modes"
)

type Module struct {
	dscope.Module
}

// Schema is the closed schema all config files must satisfy.
const Schema = `
buffer_capacity?: int & >0
source_path?: string
`

var configFileNames = []string{
	"mm.cue",
	".mm.cue",
}

func (Module) Loader(
	mode modes.Mode,
) Loader {
	var dirs []string

	if mode == modes.ModeProduction {
		dirs = append(dirs, "/etc")
		if configDir, err := os.UserConfigDir(); err == nil {
			dirs = append(dirs, configDir)
		}
	}

	// working directory last, so it wins for First
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}

	var paths []string
	for i := len(dirs) - 1; i >= 0; i-- {
		for _, filename := range configFileNames {
			path := filepath.Join(dirs[i], filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	return NewLoader(paths, Schema)
}
