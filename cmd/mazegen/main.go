// SPDX-License-Identifier: MIT
// Command mazegen carves and solves perfect mazes from the command line.
package main

import "github.com/katalvlaran/lvmaze/cmd/mazegen/commands"

func main() {
	commands.Execute()
}
