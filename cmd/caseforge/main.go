package main

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/projectdiscovery/gologger"

	"github.com/caseforge/caseforge"
	"github.com/caseforge/caseforge/internal/runner"
	"github.com/caseforge/caseforge/internal/server"
)

func main() {
	cliOpts := runner.ParseFlags()

	var library *caseforge.Config
	if cliOpts.ScenarioConfig != "" {
		cfg, err := caseforge.NewConfig(cliOpts.ScenarioConfig)
		if err != nil {
			gologger.Fatal().Msgf("failed to read %v file got: %v", cliOpts.ScenarioConfig, err)
		}
		library = cfg
	}

	if cliOpts.Serve {
		var serverOpts []server.Options
		if library != nil {
			serverOpts = append(serverOpts, server.WithLibrary(library))
		}
		if err := server.New(serverOpts...).ListenAndServe(cliOpts.Addr); err != nil {
			gologger.Fatal().Msgf("http server failed: %v", err)
		}
		return
	}

	output := getOutputWriter(cliOpts.Output)
	defer closeOutput(output, cliOpts.Output)

	if cliOpts.ScenarioBased {
		cases, err := caseforge.GenerateScenarioCases(cliOpts.Scenario, cliOpts.Platform)
		if err != nil {
			gologger.Fatal().Msgf("failed to generate scenario cases got: %v", err)
		}
		if err := writeJSON(output, cases); err != nil {
			gologger.Error().Msgf("failed to write output got %v", err)
		}
		return
	}

	g, err := caseforge.New(&caseforge.Options{
		Scenario:     cliOpts.Scenario,
		Platform:     cliOpts.Platform,
		TextFields:   cliOpts.TextFields,
		BinaryFields: cliOpts.BinaryFields,
		Page:         cliOpts.Page,
		PageSize:     cliOpts.PageSize,
		MaxCases:     cliOpts.MaxCases,
		Library:      library,
	})
	if err != nil {
		gologger.Fatal().Msgf("failed to create generator got: %v", err)
	}

	if cliOpts.Estimate {
		gologger.Info().Msgf("Total combinations for domain %v: %v", g.Domain, g.TotalCombinations())
		return
	}

	if cliOpts.JSON {
		result, err := g.GenerateCombinations(context.Background())
		if err != nil {
			gologger.Fatal().Msgf("generation failed: %v", err)
		}
		if err := writeJSON(output, result); err != nil {
			gologger.Error().Msgf("failed to write output got %v", err)
		}
		return
	}

	if err := g.WriteMarkdown(context.Background(), output); err != nil {
		gologger.Fatal().Msgf("generation failed: %v", err)
	}
}

func writeJSON(writer io.Writer, body interface{}) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(body)
}

// getOutputWriter returns the appropriate output writer
func getOutputWriter(outputPath string) io.Writer {
	if outputPath != "" {
		fs, err := os.OpenFile(outputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			gologger.Fatal().Msgf("failed to open output file %v got %v", outputPath, err)
		}
		return fs
	}
	return os.Stdout
}

// closeOutput closes the output writer if it's a file
func closeOutput(output io.Writer, outputPath string) {
	if outputPath != "" {
		if closer, ok := output.(io.Closer); ok {
			closer.Close()
		}
	}
}
