// Command console is the operational entry point: it processes credit
// transactions and produces daily reports against a shared PostgreSQL
// ledger and Redis aggregate cache.
package main

import (
	"fmt"
	"os"

	"creditledger/internal/config"
	"creditledger/internal/logging"
)

// Exit statuses. Invalid input is reported distinctly from runtime
// failures so callers can tell a bad argument from a broken backend.
const (
	exitOK      = 0
	exitFailure = 1
	exitInvalid = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	config.LoadEnv()
	log := logging.Setup()

	if len(args) == 0 {
		usage()
		return exitInvalid
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "process":
		return runProcess(log, rest)
	case "user-report":
		return runUserReport(log, rest)
	case "system-report":
		return runSystemReport(log, rest)
	case "populate":
		return runPopulate(log, rest)
	case "flush-cache":
		return runFlushCache(log)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", cmd)
		usage()
		return exitInvalid
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `Usage: console <command> [arguments]

Commands:
  process <userId> <amount>      process a credit (positive) or debit (negative) transaction
  user-report <userId> <date>    daily report for one user (date as YYYY-MM-DD)
  system-report <date>           system-wide daily report (date as YYYY-MM-DD)
  populate [-count N]            populate the store with N random users (default 10)
  flush-cache                    drop every cached report aggregate
`)
}

func fail(err error) int {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return exitFailure
}

func invalid(err error) int {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return exitInvalid
}
