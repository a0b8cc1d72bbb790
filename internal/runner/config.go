package runner

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/projectdiscovery/gologger"
	fileutil "github.com/projectdiscovery/utils/file"
	"gopkg.in/yaml.v3"

	"github.com/caseforge/caseforge"
)

func getUserHomeDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	return homeDir
}

func init() {
	defaultScenarioCfg := filepath.Join(getUserHomeDir(), fmt.Sprintf(".config/caseforge/scenarios_%v.yaml", version))
	// create the default scenario library if it does not exist
	if fileutil.FileExists(defaultScenarioCfg) {
		// if it exists use that data as default
		if bin, err := os.ReadFile(defaultScenarioCfg); err == nil {
			var cfg caseforge.Config
			if errx := yaml.Unmarshal(bin, &cfg); errx == nil && len(cfg.Domains) > 0 {
				caseforge.DefaultConfig = cfg
				return
			}
		}
	}
	if err := os.MkdirAll(filepath.Dir(defaultScenarioCfg), 0755); err != nil {
		gologger.Error().Msgf("failed to create config dir for %v got: %v", defaultScenarioCfg, err)
		return
	}
	if err := os.WriteFile(defaultScenarioCfg, caseforge.DefaultScenariosBin, 0600); err != nil {
		gologger.Error().Msgf("failed to save default scenario library to %v got: %v", defaultScenarioCfg, err)
	}
}
