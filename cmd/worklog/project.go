package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpggio/worklog/internal/domain/activity"
	"github.com/rpggio/worklog/internal/domain/project"
	"github.com/rpggio/worklog/internal/output"
)

func NewProjectCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "project",
		Aliases: []string{"projects", "p"},
		Short:   "Manage projects",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <name>",
			Short: "Create a project and select it",
			Args:  cobra.ExactArgs(1),
			RunE:  makeProjectAddRunner(a),
		},
		&cobra.Command{
			Use:     "list",
			Aliases: []string{"ls"},
			Short:   "List projects",
			Args:    cobra.NoArgs,
			RunE:    makeProjectListRunner(a),
		},
		&cobra.Command{
			Use:   "show [name]",
			Short: "Show a project",
			Args:  cobra.MaximumNArgs(1),
			RunE:  makeProjectShowRunner(a),
		},
		&cobra.Command{
			Use:     "delete <name>",
			Aliases: []string{"rm"},
			Short:   "Delete a project and everything in it",
			Args:    cobra.ExactArgs(1),
			RunE:    makeProjectDeleteRunner(a),
		},
		&cobra.Command{
			Use:   "select <name>",
			Short: "Select the current project",
			Args:  cobra.ExactArgs(1),
			RunE:  makeProjectSelectRunner(a),
		},
		&cobra.Command{
			Use:   "deselect",
			Short: "Clear the current project selection",
			Args:  cobra.NoArgs,
			RunE:  makeProjectDeselectRunner(a),
		},
		&cobra.Command{
			Use:   "version <semver>",
			Short: "Set the project version",
			Args:  cobra.ExactArgs(1),
			RunE:  makeProjectVersionRunner(a),
		},
	)
	return cmd
}

func makeProjectAddRunner(a *app) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		p, err := a.projects.AddProject(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("add project: %w", err)
		}
		if jsonOutput(cmd) {
			return output.JSON(cmd.OutOrStdout(), projectView{Name: a.projects.CurrentProject(), Project: p})
		}
		output.Success(cmd.OutOrStdout(), "Created project %s", a.projects.CurrentProject())
		return nil
	}
}

func makeProjectListRunner(a *app) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		summaries := a.projects.List()
		w := cmd.OutOrStdout()
		if jsonOutput(cmd) {
			return output.JSON(w, summaries)
		}
		if len(summaries) == 0 {
			output.Info(w, "No projects yet. Create one with: worklog project add <name>")
			return nil
		}
		for _, s := range summaries {
			marker := " "
			if s.Selected {
				marker = "*"
			}
			line := fmt.Sprintf("%s %s  v%s  %d logs  %d tags", marker, s.Name, s.Version, s.LogCount, s.TagCount)
			if s.GitRepo != "" {
				line += "  " + output.Subtle("git:"+s.GitRepo)
			}
			output.Info(w, "%s", line)
		}
		return nil
	}
}

type projectView struct {
	Name string `json:"name"`
	*project.Project
}

func makeProjectShowRunner(a *app) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		name := projectFlag(cmd)
		if len(args) == 1 {
			name = args[0]
		}
		name = a.target(name)
		p, err := a.projects.Project(name)
		if err != nil {
			return fmt.Errorf("show project: %w", err)
		}
		w := cmd.OutOrStdout()
		if jsonOutput(cmd) {
			return output.JSON(w, projectView{Name: name, Project: p})
		}

		output.Title(w, fmt.Sprintf("%s v%s", name, p.Version))
		output.Stat(w, "Created", activity.FormatTimestamp(p.CreatedAt))
		output.Stat(w, "Logs", len(p.Logs))
		if len(p.Tags) > 0 {
			output.Info(w, "%s %s", output.Subtle("Tags:"), output.FormatTags(p.Tags))
		}
		if p.GitRepo != nil {
			output.Stat(w, "Repository", fmt.Sprintf("%s (%s)", p.GitRepo.Name, p.GitRepo.URL))
		}
		for _, c := range project.Categories {
			output.Stat(w, string(c), len(p.Planning.Items(c)))
		}
		return nil
	}
}

func makeProjectDeleteRunner(a *app) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ok, err := confirm(cmd, fmt.Sprintf("Delete project %q with all of its logs?", args[0]))
		if err != nil || !ok {
			return err
		}
		if err := a.projects.DeleteProject(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("delete project: %w", err)
		}
		output.Success(cmd.OutOrStdout(), "Deleted project %s", args[0])
		return nil
	}
}

func makeProjectSelectRunner(a *app) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := a.projects.SelectProject(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("select project: %w", err)
		}
		output.Success(cmd.OutOrStdout(), "Selected %s", args[0])
		return nil
	}
}

func makeProjectDeselectRunner(a *app) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		if err := a.projects.ClearSelection(cmd.Context()); err != nil {
			return fmt.Errorf("deselect project: %w", err)
		}
		output.Success(cmd.OutOrStdout(), "No project selected")
		return nil
	}
}

func makeProjectVersionRunner(a *app) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		name := a.target(projectFlag(cmd))
		if err := a.projects.SetVersion(cmd.Context(), name, args[0]); err != nil {
			return fmt.Errorf("set version: %w", err)
		}
		output.Success(cmd.OutOrStdout(), "%s is now v%s", name, project.NormalizeVersion(args[0]))
		return nil
	}
}
