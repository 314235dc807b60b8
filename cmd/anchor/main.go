// Command anchor builds AST documents into screen trees and prints them.
package main

import (
	"os"

	"github.com/go-drift/anchor/cmd/anchor/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
