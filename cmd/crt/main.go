package main

import "github.com/pranay0703/pranay0703.github.io/internal/cli"

func main() {
	cli.Execute()
}
