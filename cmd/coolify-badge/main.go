package main

import "github.com/davarch/coolify-badge/cmd/coolify-badge/cli"

func main() {
	cli.Execute()
}
