package arg

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"pomodoro/internal/core/pomodoro"
	"pomodoro/internal/ipc"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow timer signals until interrupted",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		return withClient(func(client *ipc.Client) error {
			return client.Watch(ctx, func(event ipc.Event) {
				printEvent(color.Output, event)
			})
		})
	},
}

func printEvent(out io.Writer, event ipc.Event) {
	switch event.Member {
	case ipc.SignalStateChanged:
		state := pomodoro.State(event.State)
		_, _ = fmt.Fprintln(out, stateColor(state).Sprint(state.Title()))
	case ipc.SignalTick:
		_, _ = fmt.Fprintln(out, pomodoro.FormatClock(event.Seconds))
	case ipc.SignalAlarmChanged:
		if event.Playing {
			_, _ = fmt.Fprintln(out, color.New(color.FgHiRed, color.Bold).Sprint("alarm ringing"))
		} else {
			_, _ = fmt.Fprintln(out, color.New(color.Faint).Sprint("alarm stopped"))
		}
	}
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
