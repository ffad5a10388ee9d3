package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ferrovia/trackpath/internal/config"
	"github.com/ferrovia/trackpath/internal/organize"
	"github.com/ferrovia/trackpath/internal/scan"
)

func main() {
	formatFlag := flag.String("f", "", "Naming format, e.g. \"%albumartist/%album/%track - %title\"")
	flag.StringVar(formatFlag, "format", "", "Naming format")

	configPath := flag.String("config", "", "Config file (default: XDG config dir, then ./trackpath.toml)")
	ext := flag.String("ext", "", "Force this extension on rendered paths")
	check := flag.Bool("check", false, "Validate the format and exit")

	removeProblematic := flag.Bool("remove-problematic", false, "Strip characters that are unsafe on some OSes")
	removeNonFAT := flag.Bool("remove-non-fat", false, "Strip characters invalid on FAT filesystems")
	removeNonASCII := flag.Bool("remove-non-ascii", false, "Strip non-ASCII characters")
	asciiExt := flag.Bool("ascii-ext", false, "Allow extended ASCII (128-255) when stripping non-ASCII")
	keepSpaces := flag.Bool("keep-spaces", false, "Keep spaces instead of replacing them with underscores")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <audio-file>...\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Preview destination paths for audio files using a naming format.\n\n")
		fmt.Fprintf(os.Stderr, "Format strings mix literal text, %%tag placeholders and {...}\n")
		fmt.Fprintf(os.Stderr, "sections that disappear when a tag inside them is empty.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	formatStr := cfg.Format
	if *formatFlag != "" {
		formatStr = *formatFlag
	}

	format := organize.New(formatStr)
	format.RemoveProblematic = cfg.RemoveProblematic || *removeProblematic
	format.RemoveNonFAT = cfg.RemoveNonFAT || *removeNonFAT
	format.RemoveNonASCII = cfg.RemoveNonASCII || *removeNonASCII
	format.AllowASCIIExt = cfg.AllowASCIIExt || *asciiExt
	format.ReplaceSpaces = cfg.ReplaceSpacesValue() && !*keepSpaces

	if *check {
		state := organize.Validate(format.String())
		fmt.Printf("%s: %s\n", format.String(), state)
		if state != organize.Accepted {
			os.Exit(1)
		}
		return
	}

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	if !format.IsValid() {
		fmt.Fprintf(os.Stderr, "Error: invalid format: %s\n", format.String())
		os.Exit(1)
	}

	failed := 0
	for _, path := range flag.Args() {
		t, err := scan.ReadTrack(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			failed++
			continue
		}

		result, ok := format.FilenameForTrack(t, *ext)
		if !ok {
			fmt.Fprintf(os.Stderr, "%s: format produced no usable name, keeping %s\n", path, t.BaseFilename)
			failed++
			continue
		}

		marker := ""
		if !result.Unique {
			marker = "  (not unique)"
		}
		fmt.Printf("%s -> %s%s\n", path, result.Path, marker)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
