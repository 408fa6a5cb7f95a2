package main

import (
	"github.com/spf13/cobra"

	"github.com/rpggio/worklog/internal/output"
)

func NewNoticeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notice",
		Short: "Show or dismiss the local storage notice",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.projects.NoticeDismissed() {
				output.Info(cmd.OutOrStdout(), "%s", output.Subtle("Notice dismissed"))
				return nil
			}
			output.Warning(cmd.OutOrStdout(), "%s", noticeText)
			return nil
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "dismiss",
		Short: "Stop showing the notice",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.projects.DismissNotice(cmd.Context()); err != nil {
				return err
			}
			output.Success(cmd.OutOrStdout(), "Notice dismissed")
			return nil
		},
	})
	return cmd
}
