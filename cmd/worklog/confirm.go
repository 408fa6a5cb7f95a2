package main

import (
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// confirm asks before destructive commands. --yes answers for the user.
func confirm(cmd *cobra.Command, title string) (bool, error) {
	if yes, _ := cmd.Flags().GetBool("yes"); yes {
		return true, nil
	}
	var ok bool
	err := huh.NewConfirm().
		Title(title).
		Affirmative("Delete").
		Negative("Cancel").
		Value(&ok).
		Run()
	if err != nil {
		return false, err
	}
	return ok, nil
}
