package main

import "github.com/KaramelBytes/dataspot-cli/cmd"

func main() {
	cmd.Execute()
}
