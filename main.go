package main

import "record-merger/cmd"

func main() {
	cmd.Execute()
}
