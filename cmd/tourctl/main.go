// tourctl is the terminal console for managing tours: fetch and edit records
// as files, preview the sparse diff, and dispatch create/update calls.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "tourctl",
		Short:         "Tour management console",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		loginCmd(),
		getCmd(),
		listCmd(),
		createCmd(),
		editCmd(),
		publishCmd(),
		deleteCmd(),
		exportCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
