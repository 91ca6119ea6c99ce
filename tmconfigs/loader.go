package tmconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/tmsim/configs"
	"github.com/reusee/tmsim/logs"
	"github.com/reusee/tmsim/modes"
)

//go:embed schema.cue
var schema string

// ConfigFiles lists the settings files to load, most specific first.
type ConfigFiles []string

// Outside production only explicitly given files are loaded.
func (Module) ConfigFiles(
	mode modes.Mode,
) ConfigFiles {
	var paths []string

	// explicit
	paths = append(paths, *configFileFlags...)
	if mode != modes.ModeProduction {
		return paths
	}

	filenames := []string{
		"tm.cue",
		".tm.cue",
	}

	// working directory
	workingDir, err := os.Getwd()
	if err == nil {
		for _, filename := range filenames {
			path := filepath.Join(workingDir, filename)
			_, err := os.Stat(path)
			if err == nil {
				paths = append(paths, path)
			}
		}
	}

	// user config dir
	configDir, err := os.UserConfigDir()
	if err == nil {
		for _, filename := range filenames {
			path := filepath.Join(configDir, "tmsim", filename)
			_, err := os.Stat(path)
			if err == nil {
				paths = append(paths, path)
			}
		}
	}

	// system wide dir
	for _, filename := range filenames {
		path := filepath.Join("/etc", filename)
		if _, err := os.Stat(path); err == nil {
			paths = append(paths, path)
		}
	}

	return paths
}

// EnvConfig names the environment variable holding inline CUE settings.
// They take precedence over every file.
const EnvConfig = "TM_CONFIG"

func (Module) ConfigsLoader(
	logger logs.Logger,
	files ConfigFiles,
) configs.Loader {
	var sources []configs.Source
	if inline := os.Getenv(EnvConfig); inline != "" {
		sources = append(sources, configs.Source{
			Path:    "$" + EnvConfig,
			Content: []byte(inline),
		})
	}
	for _, path := range files {
		sources = append(sources, configs.Source{
			Path: path,
		})
	}
	loader := configs.NewSourcesLoader(sources, schema)
	if len(sources) > 0 {
		paths, err := loader.Paths()
		if err != nil {
			logger.Error("load config", "error", err)
		} else {
			logger.Info("config", "sources", paths)
		}
	}
	return loader
}
