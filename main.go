package main

import "github.com/aceteam-ai/bikeshare-cli/cmd"

func main() {
	cmd.Execute()
}
