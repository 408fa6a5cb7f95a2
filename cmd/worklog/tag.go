package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpggio/worklog/internal/output"
)

func NewTagCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tag",
		Aliases: []string{"tags"},
		Short:   "Manage project tags",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <tag>",
			Short: "Define a tag on the project",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				name := a.target(projectFlag(cmd))
				if err := a.projects.AddTag(cmd.Context(), name, args[0]); err != nil {
					return fmt.Errorf("add tag: %w", err)
				}
				output.Success(cmd.OutOrStdout(), "Added %s to %s", output.FormatTags(args), name)
				return nil
			},
		},
		&cobra.Command{
			Use:     "list",
			Aliases: []string{"ls"},
			Short:   "List project tags",
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				tags, err := a.projects.Tags(a.target(projectFlag(cmd)))
				if err != nil {
					return fmt.Errorf("list tags: %w", err)
				}
				w := cmd.OutOrStdout()
				if jsonOutput(cmd) {
					return output.JSON(w, tags)
				}
				if len(tags) == 0 {
					output.Info(w, "No tags")
					return nil
				}
				output.Info(w, "%s", output.FormatTags(tags))
				return nil
			},
		},
		&cobra.Command{
			Use:     "delete <tag>",
			Aliases: []string{"rm"},
			Short:   "Remove a tag from the project and its logs",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ok, err := confirm(cmd, fmt.Sprintf("Remove tag %q from the project and all logs?", args[0]))
				if err != nil || !ok {
					return err
				}
				name := a.target(projectFlag(cmd))
				if err := a.projects.DeleteTag(cmd.Context(), name, args[0]); err != nil {
					return fmt.Errorf("delete tag: %w", err)
				}
				output.Success(cmd.OutOrStdout(), "Removed %s from %s", output.FormatTags(args), name)
				return nil
			},
		},
	)
	return cmd
}
