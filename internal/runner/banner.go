package runner

import (
	"github.com/projectdiscovery/gologger"
	updateutils "github.com/projectdiscovery/utils/update"
)

var banner = `
                         ____
  _________ _________  / __/___  _________ ____
 / ___/ __ '/ ___/ _ \/ /_/ __ \/ ___/ __ '/ _ \
/ /__/ /_/ (__  )  __/ __/ /_/ / /  / /_/ /  __/
\___/\__,_/____/\___/_/  \____/_/   \__, /\___/
                                   /____/
`

var version = "v0.1.0"

// showBanner is used to show the banner to the user
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
}

// GetUpdateCallback returns a callback function that updates caseforge
func GetUpdateCallback() func() {
	return func() {
		showBanner()
		updateutils.GetUpdateToolCallback("caseforge", version)()
	}
}
