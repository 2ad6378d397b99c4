package main

import "recentf/cmd/recentf/cmd"

func main() {
	cmd.Execute()
}
