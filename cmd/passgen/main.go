package main

import "github.com/vaultpass/passgen/internal/cli"

func main() {
	cli.Execute()
}
