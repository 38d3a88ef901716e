/*
File    : viperc/cmd/viperc/repl.go
Package : main
*/

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/viperlang/viperc/repl"
)

const banner = `                    _
 __   _(_)_ __   ___ _ __ ___
 \ \ / / | '_ \ / _ \ '__/ __|
  \ V /| | |_) |  __/ |  \__ \
   \_/ |_| .__/ \___|_|  |___/
         |_|
`

var cmdRepl = &cobra.Command{
	Use:   "repl",
	Short: "start the interactive parse shell",
	Long:  `Repl reads one line at a time, parses it against a fresh compiler.Context, and prints either diagnostics or a dump of the parsed AST.`,
	Run: func(cmd *cobra.Command, args []string) {
		startRepl()
	},
}

func startRepl() {
	r := repl.New(banner, version.Short(), "viperlang", "----------------------------------------------------------------", "MIT", "viper >>> ")
	r.Start(os.Stdout)
}
