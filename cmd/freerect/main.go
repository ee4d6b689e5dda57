package main

import "github.com/sheetlab/freerect/internal/cli"

func main() {
	cli.Execute()
}
