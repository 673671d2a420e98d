package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Gunvolt24/holidays/pkg/validate"
)

// CLI-приложение для проверки файла праздников (data/holidays.json или JSONL-выгрузки).
func main() {
	inputPath := flag.String("in", "", "path to input (.json or .jsonl). If empty, reads JSONL from stdin.")
	formatStr := flag.String("format", "auto", "input format: auto|json|jsonl")
	outPath := flag.String("out", "", "write valid records to file instead of stdout")
	strict := flag.Bool("strict", false, "exit with code 2 if any record was rejected")
	flag.Parse()

	ctx := context.Background()
	holidayValidator := validate.NewHolidayValidator()

	format := validate.InputFormat(*formatStr)

	var out io.Writer = os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "create output: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	path := *inputPath
	// stdin вариант: считаем, что jsonl
	if path == "" {
		path = "/dev/stdin"
		if format == validate.FormatAuto {
			format = validate.FormatJSONL
		}
	}

	summary, err := validate.ValidateFile(ctx, holidayValidator, path, format, out)
	for _, reason := range summary.Errors {
		fmt.Fprintf(os.Stderr, "rejected: %s\n", reason)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "validation: %v (%s)\n", err, summary)
		os.Exit(1)
	}
	if *strict && !summary.OK() {
		fmt.Fprintf(os.Stderr, "validation failed (%s)\n", summary)
		os.Exit(2)
	}
	fmt.Fprintf(os.Stderr, "validation ok (%s)\n", summary)
}
