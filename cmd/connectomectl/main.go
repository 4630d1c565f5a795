// Command connectomectl is a debugging inspector for the connections
// store: it creates named layers, feeds them synthetic activations and
// prints overlap counts. It is not a spatial-pooler or temporal-memory
// harness; those learning policies stay out of this binary, which only
// drives the documented operations of the connections package.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	switch args[0] {
	case "create":
		return runCreate(ctx, args[1:])
	case "list":
		return runList(ctx, args[1:])
	case "describe":
		return runDescribe(ctx, args[1:])
	case "delete":
		return runDelete(ctx, args[1:])
	case "activity":
		return runActivity(ctx, args[1:])
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		return usageError(fmt.Sprintf("unknown command: %s", args[0]))
	}
}

func usageError(msg string) error {
	printUsage()
	return errors.New(msg)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `connectomectl <command> [flags]

Commands:
  create    [--id ID] --cells N [--db-path PATH]   create a new named layer
  list      [--db-path PATH]                       list persisted layer ids
  describe  --id ID [--db-path PATH]               show layer metadata
  delete    --id ID [--db-path PATH]               delete a layer snapshot
  activity  --id ID --input CELLS [--threshold T] [--db-path PATH]
            feed a comma-separated activation and print overlap counts`)
}
