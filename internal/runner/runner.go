package runner

import (
	"os"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
	updateutils "github.com/projectdiscovery/utils/update"
)

type Options struct {
	Scenario           string
	Platform           string
	TextFields         goflags.StringSlice
	BinaryFields       goflags.StringSlice
	Page               int
	PageSize           int
	MaxCases           int
	Estimate           bool
	ScenarioBased      bool
	JSON               bool
	Output             string
	ScenarioConfig     string
	Serve              bool
	Addr               string
	DisableUpdateCheck bool
	Verbose            bool
	Silent             bool
}

func ParseFlags() *Options {
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Combinational and scenario-based QA test case generator.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.Scenario, "scenario", "s", "", "scenario to generate test cases for (e.g. 'bluetooth pairing')"),
		flagSet.StringVarP(&opts.Platform, "platform", "pf", "web", "target platform (web/mobile/api/desktop/automotive/generic)"),
		flagSet.StringSliceVarP(&opts.TextFields, "text-fields", "tf", nil, "explicit text fields, bypassing scenario resolution (comma-separated)", goflags.CommaSeparatedStringSliceOptions),
		flagSet.StringSliceVarP(&opts.BinaryFields, "binary-fields", "bf", nil, "explicit binary fields, bypassing scenario resolution (comma-separated)", goflags.CommaSeparatedStringSliceOptions),
	)

	flagSet.CreateGroup("generation", "Generation",
		flagSet.IntVar(&opts.Page, "page", 1, "1-based page of the combination space to generate"),
		flagSet.IntVarP(&opts.PageSize, "page-size", "ps", 200, "number of combinations per page"),
		flagSet.IntVarP(&opts.MaxCases, "max-cases", "mc", 0, "cap on the reachable combinations (0 = no cap)"),
		flagSet.BoolVarP(&opts.Estimate, "estimate", "es", false, "print the total combination count without generating cases"),
		flagSet.BoolVarP(&opts.ScenarioBased, "scenario-based", "sb", false, "generate the four scenario-style cases instead of combinations"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.BoolVarP(&opts.JSON, "json", "j", false, "write output as json instead of markdown"),
		flagSet.StringVarP(&opts.Output, "output", "o", "", "output file to write generated test cases"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
		flagSet.CallbackVar(printVersion, "version", "display caseforge version"),
	)

	flagSet.CreateGroup("server", "Server",
		flagSet.BoolVar(&opts.Serve, "serve", false, "run the HTTP API instead of one-shot generation"),
		flagSet.StringVarP(&opts.Addr, "addr", "a", ":8080", "address for the HTTP API to listen on"),
	)

	flagSet.CreateGroup("config", "Config",
		flagSet.StringVarP(&opts.ScenarioConfig, "scenario-config", "sc", "", "custom scenario library file (default '$HOME/.config/caseforge/scenarios_"+version+".yaml')"),
	)

	flagSet.CreateGroup("update", "Update",
		flagSet.CallbackVarP(GetUpdateCallback(), "update", "up", "update caseforge to latest version"),
		flagSet.BoolVarP(&opts.DisableUpdateCheck, "disable-update-check", "duc", false, "disable automatic caseforge update check"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("Could not read flags: %s\n", err)
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	showBanner()

	if !opts.DisableUpdateCheck {
		latestVersion, err := updateutils.GetVersionCheckCallback("caseforge")()
		if err != nil {
			if opts.Verbose {
				gologger.Error().Msgf("caseforge version check failed: %v", err.Error())
			}
		} else {
			gologger.Info().Msgf("Current caseforge version %v %v", version, updateutils.GetVersionDescription(version, latestVersion))
		}
	}

	if !opts.Serve && opts.Scenario == "" {
		gologger.Fatal().Msgf("caseforge: no scenario provided")
	}

	return opts
}

func printVersion() {
	gologger.Info().Msgf("Current version: %s", version)
	os.Exit(0)
}
