package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpggio/worklog/internal/domain/activity"
	"github.com/rpggio/worklog/internal/output"
)

const noticeText = "Your data lives only in the local database. Export a backup now and then: worklog export"

func NewDashboardCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"dash", "status"},
		Short:   "Show stats, recent activity and progress across projects",
		Args:    cobra.NoArgs,
		RunE:    makeDashboardRunner(a),
	}
	cmd.Flags().IntP("limit", "n", activity.DefaultRecentLimit, "Number of recent logs to show")
	return cmd
}

func makeDashboardRunner(a *app) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		summary := a.activity.Summary(limit)
		w := cmd.OutOrStdout()
		if jsonOutput(cmd) {
			return output.JSON(w, summary)
		}

		if !a.projects.NoticeDismissed() {
			output.Warning(cmd.ErrOrStderr(), "%s (hide with: worklog notice dismiss)", noticeText)
		}

		output.Title(w, "Overview")
		output.Stat(w, "Projects", summary.Stats.Projects)
		output.Stat(w, "Total logs", summary.Stats.TotalLogs)
		output.Stat(w, "This week", summary.Stats.WeeklyLogs)
		output.Stat(w, "Tags", summary.Stats.Tags)

		output.Title(w, "Recent activity")
		if len(summary.Recent) == 0 {
			output.Info(w, "%s", output.Subtle("Nothing logged yet"))
		}
		for _, e := range summary.Recent {
			output.Info(w, "%s  %s  %s", e.Project, e.Log.Text, output.Subtle(a.activity.TimeAgo(e.Log.Timestamp)))
		}

		output.Title(w, "Progress")
		output.Stat(w, "Average logs per project", summary.Progress.AverageLogs)
		if summary.Progress.MostActive != "" {
			output.Stat(w, "Most active", fmt.Sprintf("%s (%d logs)", summary.Progress.MostActive, summary.Progress.MostActiveLogs))
		}
		return nil
	}
}
