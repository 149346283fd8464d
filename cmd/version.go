package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the module's release version, set by the build (ldflags)
// in a real release; "dev" otherwise.
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the lotto version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(Version)
	},
}
