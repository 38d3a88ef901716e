/*
File    : viperc/cmd/viperc/main.go
Package : main
*/

// Command viperc is the Viper front-end driver: a REPL by default, plus a
// `check` subcommand for batch use over source files.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/maloquacious/semver"
	"github.com/spf13/cobra"
)

var version = semver.Version{
	Major: 0,
	Minor: 1,
	Patch: 0,
	Build: semver.Commit(),
}

var showVersionFlag bool

// checkWarnings collects `-W<name>`/`-Wno-<name>` settings, prescanned out
// of os.Args before cobra sees the rest of the command line (cobra/pflag
// has no syntax for a bare `-Wfoo` shorthand flag).
var checkWarnings = map[string]bool{}

var cmdRoot = &cobra.Command{
	Use:   "viperc",
	Short: "viperc is the Viper language front-end",
	Long:  `viperc lexes and parses Viper source, reporting diagnostics and an AST — no codegen backend is wired in this build.`,
	Run: func(cmd *cobra.Command, args []string) {
		if showVersionFlag {
			fmt.Printf("viperc %s\n", version.Short())
			return
		}
		startRepl()
	},
}

// prescanWarnings strips `-W<name>`/`-Wno-<name>` arguments out of args,
// recording each as a warning toggle, and returns what's left for cobra to
// parse normally. Mirrors the `-version`/`--version` prescan in
// ottomap's main.go, which checks os.Args by hand before Execute runs.
func prescanWarnings(args []string) (map[string]bool, []string) {
	warnings := make(map[string]bool)
	rest := make([]string, 0, len(args))
	for _, arg := range args {
		switch {
		case strings.HasPrefix(arg, "-Wno-"):
			warnings[strings.TrimPrefix(arg, "-Wno-")] = false
		case strings.HasPrefix(arg, "-W"):
			warnings[strings.TrimPrefix(arg, "-W")] = true
		default:
			rest = append(rest, arg)
		}
	}
	return warnings, rest
}

func main() {
	var rest []string
	checkWarnings, rest = prescanWarnings(os.Args[1:])
	os.Args = append(os.Args[:1], rest...)

	cmdRoot.PersistentFlags().BoolVar(&showVersionFlag, "show-version", false, "show version and exit")

	cmdRoot.AddCommand(cmdCheck)
	cmdRoot.AddCommand(cmdRepl)

	if err := cmdRoot.Execute(); err != nil {
		log.Fatal(err)
	}
}
