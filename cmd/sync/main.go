// Package main provides the gitlab-sync command line entry point.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"

	"gitlab-master-sync/config"
	"gitlab-master-sync/internal/bootstrap"
	"gitlab-master-sync/internal/estimate"
	"gitlab-master-sync/internal/mastersync"
)

var Version = "dev"

const appName = "gitlab-sync"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		dryRun     bool
		outPath    string
	)

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Reconcile a GitLab master issue checklist",
		Long: `gitlab-sync checks every checklist entry of the master issue against the
state of the issue it references and rewrites the boxes that disagree.

With --dry-run the mismatches are reported and nothing is written.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(cmd.Context(), configPath, dryRun, outPath)
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report mismatches without updating the master issue")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write the reconciled description to this file")

	cmd.AddCommand(estimatesCmd(&configPath))
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s\n", appName, Version)
		},
	})

	return cmd
}

func runSync(ctx context.Context, configPath string, dryRun bool, outPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := bootstrap.NewLogger(cfg)
	app, err := bootstrap.New(ctx, logger, cfg)
	if err != nil {
		return err
	}

	out, err := app.SyncUC.Sync(ctx, mastersync.SyncInput{
		DryRun:   dryRun,
		Reporter: mastersync.NewTextReporter(os.Stdout),
	})
	if err != nil {
		return err
	}

	if outPath == "" || out.Text == "" {
		return nil
	}
	if err := atomic.WriteFile(outPath, strings.NewReader(out.Text)); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	logger.Infof(ctx, "Reconciled description written to %s", outPath)
	return nil
}

func estimatesCmd(configPath *string) *cobra.Command {
	var input estimate.RunInput

	cmd := &cobra.Command{
		Use:   "estimates",
		Short: "Average estimate comments and update time tracking footers",
		Long: `estimates reads the "estimate: 2h 30m" comments of every open issue in the
milestone, writes the mean into a "## Time Tracking - Estimated:" footer and
optionally moves the milestone due date.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEstimates(cmd.Context(), *configPath, input)
		},
	}

	cmd.Flags().IntVarP(&input.MilestoneID, "milestone", "m", 0, "Milestone id (defaults to estimate.milestone_id)")
	cmd.Flags().BoolVar(&input.RecalculateDueDate, "recalculate-due-date", false, "Move the milestone due date from the total estimate")
	cmd.Flags().BoolVar(&input.DryRun, "dry-run", false, "Compute without writing to GitLab")

	return cmd
}

func runEstimates(ctx context.Context, configPath string, input estimate.RunInput) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	app, err := bootstrap.New(ctx, bootstrap.NewLogger(cfg), cfg)
	if err != nil {
		return err
	}

	out, err := app.EstimateUC.Run(ctx, input)
	if err != nil {
		return err
	}

	fmt.Printf("Milestone %d\n", out.MilestoneID)
	fmt.Println(strings.Repeat("=", 40))
	for _, issue := range out.Issues {
		marker := " "
		if issue.Changed {
			marker = "*"
		}
		fmt.Printf("%s #%-6d %8sh  (%d estimates)  %s\n",
			marker, issue.IID, estimate.FormatHours(issue.Hours), issue.Estimates, issue.Title)
	}
	fmt.Printf("\nTotal: %sh\n", estimate.FormatHours(out.TotalHours))
	if out.DueDate != "" {
		fmt.Printf("Due date: %s\n", out.DueDate)
	}
	return nil
}
