package main

import (
	cmd "github.com/kerbaras/mkpdf/cmd/mkpdf"
)

func main() {
	cmd.Execute()
}
