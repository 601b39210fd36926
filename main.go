/*
	Copyright 2023 Markus Papenbrock
*/

package main

import "github.com/mpapenbr/ghostreplay/cmd"

func main() {
	cmd.Execute()
}
