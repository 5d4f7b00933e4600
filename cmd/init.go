package cmd

import (
	"github.com/spf13/cobra"

	"github.com/partchat/partchat/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize partchat configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure partchat and generates a .partchat.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
