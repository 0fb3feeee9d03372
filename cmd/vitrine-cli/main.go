package main

import "vitrine/cmd/vitrine-cli/cmd"

func main() {
	cmd.Execute()
}
