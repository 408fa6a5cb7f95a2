package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/rpggio/worklog/internal/backup"
	"github.com/rpggio/worklog/internal/output"
)

func NewExportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a zip backup of all projects, or of --project",
		Args:  cobra.NoArgs,
		RunE:  makeExportRunner(a),
	}
	cmd.Flags().StringP("out", "o", ".", "Directory to write the archive to")
	return cmd
}

func makeExportRunner(a *app) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		dir, _ := cmd.Flags().GetString("out")
		set := a.projects.Snapshot()

		var (
			archive *backup.Archive
			err     error
		)
		if name := projectFlag(cmd); name != "" {
			archive, err = backup.ExportProject(set, name, time.Now())
		} else {
			archive, err = backup.ExportAll(set, time.Now())
		}
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}

		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("export: %w", err)
		}
		path := filepath.Join(dir, archive.FileName)
		if err := os.WriteFile(path, archive.Data, 0o644); err != nil {
			return fmt.Errorf("export: %w", err)
		}
		a.logger.Info("backup exported", "path", path, "projects", set.Len())
		output.Success(cmd.OutOrStdout(), "Wrote %s", path)
		return nil
	}
}

func NewImportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file.zip>",
		Short: "Import projects from a zip backup",
		Long: `Import projects from a zip backup. Projects with the same name are replaced;
others are kept. Use --replace to discard every existing project first.`,
		Args: cobra.ExactArgs(1),
		RunE: makeImportRunner(a),
	}
	cmd.Flags().Bool("replace", false, "Replace all existing projects")
	return cmd
}

func makeImportRunner(a *app) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("import: %w", err)
		}
		defer f.Close()
		info, err := f.Stat()
		if err != nil {
			return fmt.Errorf("import: %w", err)
		}

		set, err := backup.Import(f, info.Size())
		if err != nil {
			return fmt.Errorf("import %s: %w", args[0], err)
		}

		replace, _ := cmd.Flags().GetBool("replace")
		if replace {
			ok, err := confirm(cmd, "Replace all existing projects with the backup?")
			if err != nil || !ok {
				return err
			}
			err = a.projects.ReplaceAll(cmd.Context(), set)
		} else {
			err = a.projects.Merge(cmd.Context(), set)
		}
		if err != nil {
			return fmt.Errorf("import: %w", err)
		}
		output.Success(cmd.OutOrStdout(), "Imported %d projects", set.Len())
		return nil
	}
}
