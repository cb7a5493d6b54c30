package main

import (
	"fmt"
	"os"

	"github.com/agiangrant/nucleus"
	"github.com/agiangrant/nucleus/cmd/nucleus/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "init":
		err = commands.Init(args)
	case "run":
		err = commands.Run(args)
	case "layout":
		err = commands.Layout(args)
	case "resolve":
		err = commands.Resolve(args)
	case "version", "-v", "--version":
		fmt.Printf("nucleus version %s\n", nucleus.Version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`nucleus - retained UI shell

Usage: nucleus <command> [options]

Commands:
  init            Write a default nucleus.toml and theme.toml
  run             Run the screen stack (logo, then menu or boot target)
  layout          Print the draw commands of one screen
  resolve         Resolve a length against the configured surface
  version         Print version information
  help            Show this help message

Examples:
  nucleus init                       Create nucleus.toml in the current folder
  nucleus run --frames 300           Tick 300 frames without waiting
  nucleus layout --screen main       Dump the main menu layout
  nucleus resolve 2in --axis y       Print 2in as a fraction of the height

Configuration:
  nucleus.toml (or nucleus.yaml) is read from --dir, then from the user
  config folder. Run 'nucleus init' to create one.`)
}
