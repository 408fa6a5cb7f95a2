package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpggio/worklog/internal/domain/activity"
	"github.com/rpggio/worklog/internal/output"
)

func NewGitCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "git",
		Short: "Connect a repository and import its commits as logs",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "connect <url>",
			Short: "Connect a repository and import its history",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				name := a.target(projectFlag(cmd))
				n, err := a.projects.ConnectGitRepo(cmd.Context(), name, args[0])
				if err != nil {
					return fmt.Errorf("connect repository: %w", err)
				}
				output.Success(cmd.OutOrStdout(), "Connected %s, imported %d commits", args[0], n)
				return nil
			},
		},
		&cobra.Command{
			Use:   "import",
			Short: "Import new commits from the connected repository",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				name := a.target(projectFlag(cmd))
				n, err := a.projects.ImportCommitHistory(cmd.Context(), name)
				if err != nil {
					return fmt.Errorf("import commits: %w", err)
				}
				if n == 0 {
					output.Info(cmd.OutOrStdout(), "Already up to date")
					return nil
				}
				output.Success(cmd.OutOrStdout(), "Imported %d commits", n)
				return nil
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show the connected repository and recent commits",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				status, err := a.projects.GitStatus(a.target(projectFlag(cmd)))
				if err != nil {
					return fmt.Errorf("git status: %w", err)
				}
				w := cmd.OutOrStdout()
				if jsonOutput(cmd) {
					return output.JSON(w, status)
				}
				output.Title(w, status.Repo.Name)
				output.Stat(w, "URL", status.Repo.URL)
				output.Stat(w, "Branch", status.Repo.Branch)
				output.Stat(w, "Commits", status.TotalCommits)
				for _, l := range status.RecentCommits {
					output.Info(w, "%s %s  %s", output.FormatCommit(shortID(l.CommitHash)), l.CommitMessage,
						output.Subtle(activity.FormatTimestamp(l.Timestamp)))
				}
				return nil
			},
		},
	)
	return cmd
}
