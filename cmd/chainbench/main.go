package main

import (
	"fmt"
	"os"

	"github.com/harmony-one/linkedqueue/internal/cli"
)

func main() {
	rootCmd.AddCommand(dumpConfigCmd)

	cli.SetParseErrorHandle(func(err error) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(128)
	})
	if err := registerRootCmdFlags(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
