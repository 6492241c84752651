package main

import (
	"fmt"
	"os"

	"github.com/mrlokans/katalog/internal/cli"
	"github.com/mrlokans/katalog/internal/config"
	"github.com/mrlokans/katalog/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

// subcommand is implemented by every CLI command.
type subcommand interface {
	ParseFlags(args []string) error
	Run() error
}

func main() {
	if err := config.LoadEnvFile(config.DefaultEnvFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load %s: %v\n", config.DefaultEnvFile, err)
		os.Exit(1)
	}

	// If no arguments or "serve" command, run the HTTP server
	if len(os.Args) < 2 || os.Args[1] == "serve" {
		cfg := config.NewConfig()
		if err := entrypoint.Run(cfg, Version); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	command := os.Args[1]
	args := os.Args[2:]

	var cmd subcommand
	switch command {
	case "list":
		cmd = cli.NewListCommand()
	case "add":
		cmd = cli.NewAddCommand()
	case "update":
		cmd = cli.NewUpdateCommand()
	case "search":
		cmd = cli.NewSearchCommand()
	case "delete":
		cmd = cli.NewDeleteCommand()
	case "export":
		cmd = cli.NewExportCommand()

	case "version", "-v", "--version":
		fmt.Printf("katalog %s (commit: %s)\n", Version, Commit)
		return

	case "help", "-h", "--help":
		printUsage()
		return

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}

	if err := cmd.ParseFlags(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  serve     Start the web UI (default)\n")
	fmt.Fprintf(os.Stderr, "  list      Print all books\n")
	fmt.Fprintf(os.Stderr, "  add       Add a book\n")
	fmt.Fprintf(os.Stderr, "  update    Change a book\n")
	fmt.Fprintf(os.Stderr, "  search    Print books whose title contains a keyword\n")
	fmt.Fprintf(os.Stderr, "  delete    Delete a book\n")
	fmt.Fprintf(os.Stderr, "  export    Write books to a CSV file\n")
	fmt.Fprintf(os.Stderr, "  version   Show version information\n")
	fmt.Fprintf(os.Stderr, "  help      Show this help message\n\n")
	fmt.Fprintf(os.Stderr, "Run '%s <command> -h' for command-specific options.\n", os.Args[0])
}
