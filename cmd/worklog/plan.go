package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rpggio/worklog/internal/domain/activity"
	"github.com/rpggio/worklog/internal/domain/project"
	"github.com/rpggio/worklog/internal/output"
)

func NewPlanCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "plan",
		Aliases: []string{"planning"},
		Short:   "Manage the planning board (backlog, inProgress, completed)",
	}

	addCmd := &cobra.Command{
		Use:   "add <category> <title>",
		Short: "Add a planning item",
		Args:  cobra.ExactArgs(2),
		RunE:  makePlanAddRunner(a),
	}
	addCmd.Flags().String("description", "", "Item description")

	cmd.AddCommand(
		addCmd,
		&cobra.Command{
			Use:     "list",
			Aliases: []string{"ls"},
			Short:   "Show the planning board",
			Args:    cobra.NoArgs,
			RunE:    makePlanListRunner(a),
		},
		&cobra.Command{
			Use:     "delete <category> <index>",
			Aliases: []string{"rm"},
			Short:   "Delete a planning item",
			Args:    cobra.ExactArgs(2),
			RunE:    makePlanDeleteRunner(a),
		},
	)
	return cmd
}

func makePlanAddRunner(a *app) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		description, _ := cmd.Flags().GetString("description")
		name := a.target(projectFlag(cmd))
		item, err := a.projects.AddPlanningItem(cmd.Context(), name, project.Category(args[0]), args[1], description)
		if err != nil {
			return fmt.Errorf("add planning item: %w", err)
		}
		if jsonOutput(cmd) {
			return output.JSON(cmd.OutOrStdout(), item)
		}
		output.Success(cmd.OutOrStdout(), "Added %q to %s", item.Title, args[0])
		return nil
	}
}

func makePlanListRunner(a *app) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		planning, err := a.projects.Planning(a.target(projectFlag(cmd)))
		if err != nil {
			return fmt.Errorf("list planning: %w", err)
		}
		w := cmd.OutOrStdout()
		if jsonOutput(cmd) {
			return output.JSON(w, planning)
		}
		for _, c := range project.Categories {
			items := planning.Items(c)
			output.Title(w, fmt.Sprintf("%s (%d)", c, len(items)))
			for i, item := range items {
				output.Info(w, "%3d  %s  %s", i, item.Title, output.Subtle(activity.FormatTimestamp(item.CreatedAt)))
				if item.Description != "" {
					output.Info(w, "     %s", output.Subtle(item.Description))
				}
			}
		}
		return nil
	}
}

func makePlanDeleteRunner(a *app) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("delete planning item: invalid index %q", args[1])
		}
		ok, err := confirm(cmd, "Delete this planning item?")
		if err != nil || !ok {
			return err
		}
		name := a.target(projectFlag(cmd))
		if err := a.projects.DeletePlanningItem(cmd.Context(), name, project.Category(args[0]), index); err != nil {
			return fmt.Errorf("delete planning item: %w", err)
		}
		output.Success(cmd.OutOrStdout(), "Deleted item %d from %s", index, args[0])
		return nil
	}
}
