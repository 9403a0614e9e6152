package main

import "github.com/oshokin/alarm-scheduler/cmd/alarm-watch/cmd"

func main() {
	cmd.Execute()
}
