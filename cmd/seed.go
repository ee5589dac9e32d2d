package cmd

import (
	"dressify/condb"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load demo users, products and posts",
	RunE: func(cmd *cobra.Command, args []string) error {
		stores, closeStores, err := openStores(cmd.Context())
		if err != nil {
			return err
		}
		defer closeStores()
		return condb.Seed(cmd.Context(), stores, newLogger())
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
