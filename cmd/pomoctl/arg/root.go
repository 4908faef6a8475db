// Package arg holds the pomoctl commands.
package arg

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pomodoro/internal/ipc"
)

var rootCmd = &cobra.Command{
	Use:   "pomoctl",
	Short: "pomoctl controls a running pomodoro timer",
	Long: `pomoctl talks to the pomodoro desktop app over the session bus.
Use it to start focus or break sessions, silence the alarm and inspect the counters.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func withClient(fn func(client *ipc.Client) error) error {
	client, err := ipc.Dial()
	if err != nil {
		return err
	}
	defer client.Close()
	return fn(client)
}
