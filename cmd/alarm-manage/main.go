package main

import "github.com/oshokin/alarm-scheduler/cmd/alarm-manage/cmd"

func main() {
	cmd.Execute()
}
