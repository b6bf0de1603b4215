package main

import "github.com/storelens/storelens/cmd"

func main() {
	cmd.Execute()
}
