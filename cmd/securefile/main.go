package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rootCmd := newRootCommand()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "securefile: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "securefile",
		Short: "SecureFile Edu server and client",
		Long: `SecureFile Edu is a simulated secure file manager for teaching file security basics.
Sign-in, encryption and threat detection are all simulated: nothing here protects real data.`,
		SilenceUsage: true,
	}
	cmd.AddCommand(
		newServeCmd(),
		newFeedCmd(),
		newFilesCmd(),
		newVersionCmd(),
	)
	return cmd
}
