package main

import "github.com/estatewatch/estate-digest/internal/cli"

func main() {
	cli.Execute()
}
