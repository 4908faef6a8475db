package main

import "pomodoro/cmd/pomoctl/arg"

func main() {
	arg.Execute()
}
