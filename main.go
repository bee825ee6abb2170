package main

import "github.com/calladine/tidewatch/cmd"

func main() {
	cmd.Execute()
}
