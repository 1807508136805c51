package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the mkpdf release version.
const Version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the mkpdf version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("mkpdf v%s\n", Version)
	},
}
