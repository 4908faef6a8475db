package arg

import (
	"fmt"

	"github.com/spf13/cobra"

	"pomodoro/internal/ipc"
)

type action struct {
	use     string
	aliases []string
	short   string
	method  string
	done    string
}

var actions = []action{
	{use: "focus", aliases: []string{"f"}, short: "Start a focus session", method: "Focus", done: "Focus started"},
	{use: "break", aliases: []string{"b"}, short: "Start a break", method: "Break", done: "Break started"},
	{use: "reset", short: "Return the timer to pre-focus", method: "Reset", done: "Timer reset"},
	{use: "stop-alarm", aliases: []string{"s"}, short: "Silence a ringing alarm", method: "StopAlarm", done: "Alarm stopped"},
	{use: "reset-focus", short: "Zero the focus time counter", method: "ResetFocusTime", done: "Focus time reset"},
	{use: "reset-total", short: "Zero the total time counter", method: "ResetTotalTime", done: "Total time reset"},
}

func newActionCmd(a action) *cobra.Command {
	return &cobra.Command{
		Use:     a.use,
		Aliases: a.aliases,
		Short:   a.short,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(func(client *ipc.Client) error {
				if err := client.Call(a.method); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), a.done)
				return nil
			})
		},
	}
}

func init() {
	for _, a := range actions {
		rootCmd.AddCommand(newActionCmd(a))
	}
}
