package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rpggio/worklog/internal/domain/activity"
	"github.com/rpggio/worklog/internal/domain/project"
	"github.com/rpggio/worklog/internal/output"
)

func NewLogCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "log",
		Aliases: []string{"logs", "l"},
		Short:   "Write and search logs",
	}

	addCmd := &cobra.Command{
		Use:   "add <text...>",
		Short: "Add a log to the project",
		Args:  cobra.MinimumNArgs(1),
		RunE:  makeLogAddRunner(a),
	}
	addCmd.Flags().StringSliceP("tag", "t", nil, "Tag the log (repeatable, must be a project tag)")

	listCmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "search"},
		Short:   "List logs, newest first",
		Args:    cobra.NoArgs,
		RunE:    makeLogListRunner(a),
	}
	listCmd.Flags().StringP("keyword", "k", "", "Case-insensitive text match")
	listCmd.Flags().StringP("date", "d", "", "Timestamp prefix, e.g. 2025-06")
	listCmd.Flags().StringP("tag", "t", "", "Only logs with this tag")

	deleteCmd := &cobra.Command{
		Use:     "delete [id]",
		Aliases: []string{"rm"},
		Short:   "Delete a log by id, unique id prefix or position",
		Args:    cobra.MaximumNArgs(1),
		RunE:    makeLogDeleteRunner(a),
	}
	deleteCmd.Flags().IntP("index", "i", -1, "Position of the log in insertion order")

	cmd.AddCommand(addCmd, listCmd, deleteCmd)
	return cmd
}

func makeLogAddRunner(a *app) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		tags, _ := cmd.Flags().GetStringSlice("tag")
		name := a.target(projectFlag(cmd))
		l, err := a.projects.AddLog(cmd.Context(), name, strings.Join(args, " "), tags)
		if err != nil {
			return fmt.Errorf("add log: %w", err)
		}
		if jsonOutput(cmd) {
			return output.JSON(cmd.OutOrStdout(), l)
		}
		output.Success(cmd.OutOrStdout(), "Logged to %s %s", name, output.Subtle(l.ID))
		return nil
	}
}

func makeLogListRunner(a *app) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		var f activity.Filter
		f.Keyword, _ = cmd.Flags().GetString("keyword")
		f.Date, _ = cmd.Flags().GetString("date")
		f.Tag, _ = cmd.Flags().GetString("tag")

		name := a.target(projectFlag(cmd))
		logs, err := a.activity.Search(name, f)
		if err != nil {
			return fmt.Errorf("list logs: %w", err)
		}
		w := cmd.OutOrStdout()
		if jsonOutput(cmd) {
			return output.JSON(w, logs)
		}
		if len(logs) == 0 {
			output.Info(w, "No matching logs")
			return nil
		}
		for _, fl := range logs {
			printLog(w, a, fl.Index, fl.Log)
		}
		return nil
	}
}

// printLog prints one log line. The short id is accepted by log delete.
func printLog(w io.Writer, a *app, index int, l project.Log) {
	text := l.Text
	if l.IsCommit() {
		text = output.FormatCommit(shortID(l.CommitHash)) + " " + l.CommitMessage
	}
	line := fmt.Sprintf("%3d  %s  %s  %s", index, shortID(l.ID), output.Subtle(activity.FormatTimestamp(l.Timestamp)), text)
	if tags := output.FormatTags(l.Tags); tags != "" {
		line += "  " + tags
	}
	line += "  " + output.Subtle(a.activity.TimeAgo(l.Timestamp))
	output.Info(w, "%s", line)
}

func makeLogDeleteRunner(a *app) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		name := a.target(projectFlag(cmd))
		index, _ := cmd.Flags().GetInt("index")
		useIndex := cmd.Flags().Changed("index")
		if useIndex == (len(args) == 1) {
			return fmt.Errorf("delete log: give either a log id or --index")
		}

		ok, err := confirm(cmd, "Delete this log?")
		if err != nil || !ok {
			return err
		}
		if useIndex {
			err = a.projects.DeleteLogAt(cmd.Context(), name, index)
		} else {
			err = a.projects.DeleteLog(cmd.Context(), name, args[0])
		}
		if err != nil {
			return fmt.Errorf("delete log: %w", err)
		}
		output.Success(cmd.OutOrStdout(), "Deleted log from %s", name)
		return nil
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
