package main

import "github.com/oshokin/alarm-scheduler/cmd/alarm-submit/cmd"

func main() {
	cmd.Execute()
}
