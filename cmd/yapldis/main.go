package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/wippyai/yapl-disasm/disasm"
	"github.com/wippyai/yapl-disasm/yapl"
)

func main() {
	var (
		list        = flag.Bool("list", false, "List the function table and exit")
		check       = flag.Bool("check", false, "Validate every instruction stream and exit")
		interactive = flag.Bool("i", false, "Interactive browser")
		noColor     = flag.Bool("no-color", false, "Disable colorized output")
		verbose     = flag.Bool("v", false, "Log load-time integrity warnings to stderr")
	)
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 || len(args) > 2 {
		fmt.Fprintln(os.Stderr, "Usage: yapldis [flags] <file> [function]")
		fmt.Fprintln(os.Stderr, "       yapldis -list <file>")
		fmt.Fprintln(os.Stderr, "       yapldis -i <file>  (interactive mode)")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		yapl.SetLogger(logger)
	}

	if *interactive {
		if err := runInteractive(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	funcName := ""
	if len(args) == 2 {
		funcName = args[1]
	}

	if err := run(args[0], funcName, *list, *check, *noColor); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(file, funcName string, listOnly, checkOnly, noColor bool) error {
	l, err := yapl.Open(file)
	if err != nil {
		return err
	}
	defer l.Close()

	if err := l.Load(); err != nil {
		return err
	}

	if checkOnly {
		return l.Validate()
	}

	// Output is buffered and flushed only on success; an error anywhere
	// produces no partial listing.
	var buf bytes.Buffer

	switch {
	case listOnly:
		if err := writeTable(l, &buf); err != nil {
			return err
		}
	case funcName != "":
		fmt.Fprintln(&buf, disasm.Banner(funcName))
		if err := disasm.New(l).Function(funcName, &buf); err != nil {
			return err
		}
	default:
		if err := disasm.New(l).All(&buf); err != nil {
			return err
		}
	}

	out := buf.String()
	if colorEnabled(noColor) {
		out = colorizeListing(out)
	}
	_, err = os.Stdout.WriteString(out)
	return err
}

func writeTable(l *yapl.Loader, buf *bytes.Buffer) error {
	if l.Mixed() {
		fmt.Fprintf(buf, "%4d  %-24s  offset %8d  length %8d\n", 0, "<template body>", 0, l.CodeSize())
		return nil
	}
	for i, name := range l.Functions() {
		span, err := l.ResolveSpan(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(buf, "%4d  %-24s  offset %8d  length %8d\n", i, name, span.Offset, span.Length)
	}
	return nil
}
