// Command downtown-busy checks venue event pages and records whether downtown is busy today.
package main

import "github.com/pfrederiksen/downtown-busy/internal/cli"

func main() {
	cli.Execute()
}
