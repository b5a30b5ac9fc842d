package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/extcopy/internal/config"
	"github.com/danieljhkim/extcopy/internal/engine"
	"github.com/danieljhkim/extcopy/internal/humanize"
	"github.com/danieljhkim/extcopy/internal/plog"
)

// runCopy is the RunE of the root command.
func runCopy(cmd *cobra.Command, args []string) error {
	applyColorMode(flagColor, cmd.OutOrStdout())
	plog.SetVerbose(flagVerbose)
	if jsonOutput {
		// stdout carries only the JSON document.
		plog.SetOutputs(cmd.ErrOrStderr(), cmd.ErrOrStderr())
	} else {
		plog.SetOutputs(cmd.OutOrStdout(), cmd.ErrOrStderr())
	}

	cfg, err := config.New(flagSource, flagDestination, flagExtension, flagFlatten)
	if err != nil {
		return err
	}

	p := newPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr())

	// JSON mode prints a single document, config included, at the end.
	var reporter engine.Reporter = engine.NopReporter{}
	if !jsonOutput {
		p.Info(cfg.String())
		reporter = newConsoleReporter(p)
	}

	result, err := newEngine(reporter).Run(context.Background(), &engine.RunRequest{
		Config: cfg,
		DryRun: flagDryRun,
	})
	if err != nil {
		return err
	}

	if jsonOutput {
		return outputJSON(cmd.OutOrStdout(), newRunReport(cfg, result))
	}

	if result.DryRun {
		printDryRun(p, cfg, result)
		return nil
	}

	printSummary(p, cfg, result)
	return nil
}

func printDryRun(p *printer, cfg *config.Config, result *engine.RunResult) {
	plan := result.Plan

	p.Section("Dry Run")
	p.LabelValue("Mode", string(plan.Mode))
	p.LabelValue("Destination", cfg.Destination)
	p.Info(fmt.Sprintf("Would copy %s", Count(len(plan.Tasks), "file", "files")))

	if len(plan.Tasks) > 0 {
		items := make([]string, 0, len(plan.Tasks))
		for _, task := range plan.Tasks {
			items = append(items, fmt.Sprintf("%s -> %s", task.SourcePath, task.DestPath))
		}
		p.List(items, 1)
	}

	if plan.HasCollisions() {
		fmt.Fprintln(p.out)
		for _, c := range plan.Collisions {
			p.Warning(fmt.Sprintf("%s is claimed by %s and %s; the later file will be skipped", c.DestPath, c.First, c.Later))
		}
	}

	fmt.Fprintln(p.out)
	p.Dim("Files that already exist in the destination are skipped at copy time.")
}

func printSummary(p *printer, cfg *config.Config, result *engine.RunResult) {
	summary := fmt.Sprintf("%d copied, %d skipped, %d failed (%s) in %s",
		result.Copied, result.Skipped, result.Failed,
		humanize.Bytes(uint64(result.Bytes)),
		result.Elapsed.Round(time.Millisecond))

	switch {
	case result.Failed > 0:
		p.Warning(summary)
	case len(result.Plan.Tasks) == 0:
		p.Dim(fmt.Sprintf("No .%s files found in %s", cfg.Extension, cfg.Source))
	default:
		p.Success(summary)
	}
}
