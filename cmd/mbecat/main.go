// Command mbecat loads an MBE container and either prints a summary
// of its sheets or re-emits it unchanged, behind a small flag-based
// front end.
package main

import (
	"flag"
	"fmt"
	"os"

	mbe "github.com/ahtheerr/mbego"
)

func main() {
	var (
		filePath   string
		action     string
		outputPath string
		encoding   string
	)

	flag.StringVar(&filePath, "file", "", "MBE container path (required)")
	flag.StringVar(&action, "action", "info", "action: info (print sheet summary) or copy (re-emit unchanged)")
	flag.StringVar(&outputPath, "output", "", "output path (required for -action=copy)")
	flag.StringVar(&encoding, "encoding", "utf-8", "string decoding: utf-8 or latin1")
	flag.Parse()

	if filePath == "" {
		fmt.Fprintln(os.Stderr, "usage: mbecat -file=<path> [-action=info|copy] [-output=<path>] [-encoding=utf-8|latin1]")
		os.Exit(1)
	}

	container, err := mbe.Open(filePath, mbe.WithEncoding(encoding))
	if err != nil {
		fmt.Fprintf(os.Stderr, "mbecat: %v\n", err)
		os.Exit(1)
	}

	switch action {
	case "info":
		fmt.Println(container.String())
	case "copy":
		if outputPath == "" {
			fmt.Fprintln(os.Stderr, "mbecat: -output is required for -action=copy")
			os.Exit(1)
		}
		if err := container.Save(outputPath); err != nil {
			fmt.Fprintf(os.Stderr, "mbecat: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "mbecat: unknown action %q\n", action)
		os.Exit(1)
	}
}
