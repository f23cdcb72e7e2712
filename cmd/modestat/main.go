package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/mwantia/posixmode"
	"github.com/mwantia/posixmode/log"
	"github.com/mwantia/posixmode/stat"
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: modestat [flags] <mode|path>...

Decodes POSIX file modes. Numeric arguments are decoded directly:
octal by convention (e.g. 0755, 040755), with decimal (16877) and
hex (0x41ed) accepted too. Anything else is stat'ed.

Flags:
`)
	flag.PrintDefaults()
}

func main() {
	var (
		asJSON   = flag.Bool("json", false, "print decoded modes as JSON")
		follow   = flag.Bool("L", false, "follow symbolic links when statting paths")
		level    = flag.String("log-level", "warn", "minimum log level (debug, info, warn, error)")
		logFile  = flag.String("log-file", "", "optional rotating log file")
		noColor  = flag.Bool("no-color", false, "disable colored log output")
		jsonLogs = flag.Bool("json-logs", false, "write log entries as JSON")
	)
	flag.Usage = usage
	flag.Parse()

	lvl, err := log.ParseLevel(*level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := log.New(log.Options{
		Level:   lvl,
		File:    *logFile,
		NoColor: *noColor,
		JSON:    *jsonLogs,
	})

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	failed := false
	for _, arg := range flag.Args() {
		mode, err := decodeArg(arg, *follow)
		if err != nil {
			logger.Warn("skipping %s: %v", arg, err)
			failed = true
			continue
		}

		logger.Debug("decoded %s as raw %#o", arg, mode.Raw)

		if *asJSON {
			line, err := mode.Marshal()
			if err != nil {
				logger.Error("encoding %s: %v", arg, err)
				failed = true
				continue
			}
			fmt.Println(string(line))
		} else {
			fmt.Printf("%s  %s  %-16s %s\n", mode.Octal(), mode, mode.Type, arg)
		}
	}

	if failed {
		os.Exit(1)
	}
}

// decodeArg treats numeric arguments as raw mode words and everything
// else as a filesystem path. Plain digits parse as octal, matching the
// chmod convention; decimal and 0x-prefixed hex are accepted as well.
func decodeArg(arg string, follow bool) (posixmode.Mode, error) {
	if raw, err := strconv.ParseUint(arg, 8, 32); err == nil {
		return posixmode.Decode(uint32(raw)), nil
	}
	if raw, err := strconv.ParseUint(arg, 0, 32); err == nil {
		return posixmode.Decode(uint32(raw)), nil
	}

	if follow {
		return stat.Mode(arg)
	}

	return stat.LinkMode(arg)
}
