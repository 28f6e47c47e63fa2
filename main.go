package main

import "worklog-system.com/worklog-system/cmd"

func main() {
	cmd.Execute()
}
