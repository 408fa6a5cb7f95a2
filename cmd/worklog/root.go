package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

const logsAnnotation = "logs"

func NewRootCmd(version string, a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "worklog",
		Short:         "A development diary for your projects",
		Long:          `Keep timestamped logs, tags, versions, a planning board and imported git commits per project.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if db, _ := cmd.Flags().GetString("db"); db != "" {
				a.cfg.DB.Path = db
			}
			return a.open(cmd.Context(), logWriter(cmd))
		},
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	addPersistentFlags(rootCmd)
	addSubcommands(rootCmd, a)

	return rootCmd
}

func addPersistentFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("db", "", "Path to the SQLite database")
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().StringP("project", "p", "", "Target project (defaults to the selected project)")
	cmd.PersistentFlags().BoolP("yes", "y", false, "Skip confirmation prompts")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Log to stderr")
}

func addSubcommands(root *cobra.Command, a *app) {
	root.AddCommand(
		NewProjectCmd(a),
		NewLogCmd(a),
		NewTagCmd(a),
		NewPlanCmd(a),
		NewGitCmd(a),
		NewDashboardCmd(a),
		NewExportCmd(a),
		NewImportCmd(a),
		NewNoticeCmd(a),
		NewServeCmd(a),
	)
}

// logWriter sends logs to stderr for long-running commands or with
// --verbose, and discards them otherwise.
func logWriter(cmd *cobra.Command) io.Writer {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose || cmd.Annotations[logsAnnotation] == "on" {
		return os.Stderr
	}
	return io.Discard
}

func jsonOutput(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("json")
	return v
}

func projectFlag(cmd *cobra.Command) string {
	v, _ := cmd.Flags().GetString("project")
	return v
}
