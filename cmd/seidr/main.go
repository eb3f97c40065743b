/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"github.com/skaldic/seidr/cmd/seidr/cmd"
)

func main() {
	cmd.Execute()
}
