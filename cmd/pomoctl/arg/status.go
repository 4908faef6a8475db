package arg

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"pomodoro/internal/core/pomodoro"
	"pomodoro/internal/ipc"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the timer state and counters",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(client *ipc.Client) error {
			status, err := client.Status()
			if err != nil {
				return err
			}
			printStatus(color.Output, status)
			return nil
		})
	},
}

func printStatus(out io.Writer, status ipc.Status) {
	bold := color.New(color.Bold)
	state := pomodoro.State(status.State)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("State"), stateColor(state).Sprint(state.Title()))
	tbl.AddRow(bold.Sprint("Remaining"), pomodoro.FormatClock(status.Remaining))
	tbl.AddRow(bold.Sprint("Focus time"), pomodoro.FormatElapsed(status.FocusTime))
	tbl.AddRow(bold.Sprint("Total time"), pomodoro.FormatElapsed(status.TotalTime))
	tbl.AddRow(bold.Sprint("Running"), yesNo(status.Running))
	alarm := yesNo(status.AlarmPlaying)
	if status.AlarmPlaying {
		alarm = color.New(color.FgHiRed, color.Bold).Sprint(alarm)
	}
	tbl.AddRow(bold.Sprint("Alarm"), alarm)
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(out, tbl)
}

func stateColor(state pomodoro.State) *color.Color {
	switch state {
	case pomodoro.StateFocus:
		return color.New(color.FgRed)
	case pomodoro.StateBreak:
		return color.New(color.FgGreen)
	default:
		return color.New(color.Faint)
	}
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
