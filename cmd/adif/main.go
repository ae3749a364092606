// adif - ADI contact-log codec CLI tool
//
// Usage:
//
//	adif cat [file]        Parse a log and re-emit it canonically
//	adif to-json [file]    Convert a log to JSON
//	adif from-json [file]  Convert the JSON form back to ADI
//	adif check [file]      Parse only; report counts or the error
//	adif version           Print version info
//
// If no file is given, reads from stdin. Files ending in .gz are
// decompressed transparently.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/rs/zerolog"

	"github.com/hamlog/adif/adif"
)

const version = "0.2.0"

var log zerolog.Logger

func main() {
	log = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Str("app", "adif").Logger()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	cmd := os.Args[1]

	cfg, fileArg, err := parseArgs(os.Args[2:])
	if err != nil {
		fatal("load config: %v", err)
	}

	switch cmd {
	case "cat":
		cmdCat(readInput(fileArg), cfg)
	case "to-json":
		cmdToJSON(readInput(fileArg), cfg)
	case "from-json":
		cmdFromJSON(readInput(fileArg), cfg)
	case "check":
		cmdCheck(readInput(fileArg), fileArg)
	case "version", "-v", "--version":
		fmt.Printf("adif %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

// parseArgs resolves the output config and file argument. The config file
// is applied before the flags, so a flag overrides the file regardless of
// where --config appears on the command line.
func parseArgs(args []string) (Config, string, error) {
	cfg := defaultConfig()
	for _, arg := range args {
		if strings.HasPrefix(arg, "--config=") {
			loaded, err := loadConfig(strings.TrimPrefix(arg, "--config="))
			if err != nil {
				return Config{}, "", err
			}
			cfg = loaded
		}
	}

	fileArg := ""
	for _, arg := range args {
		switch {
		case arg == "--compact":
			cfg.Pretty = false
		case arg == "--pretty":
			cfg.Pretty = true
		case arg == "--lowercase":
			cfg.LowercaseMarkers = true
		case strings.HasPrefix(arg, "--config="):
			// applied above
		default:
			if !strings.HasPrefix(arg, "-") && arg != "-" {
				fileArg = arg
			}
		}
	}
	return cfg, fileArg, nil
}

func printUsage() {
	fmt.Fprint(os.Stderr, `adif - ADI contact-log codec tool

Usage:
  adif cat [options] [file]        Parse a log and re-emit it canonically
  adif to-json [options] [file]    Convert a log to JSON
  adif from-json [options] [file]  Convert the JSON form back to ADI
  adif check [file]                Parse only; report counts or the error
  adif version                     Print version info

Options:
  --pretty          One field per line, blank line between records (default)
  --compact         No layout text between fields
  --lowercase       Emit <eoh>/<eor> instead of <EOH>/<EOR>
  --config=FILE     Load output defaults from a TOML file

If no file is given, reads from stdin. Files ending in .gz are
decompressed transparently.

Examples:
  adif cat log.adi
  adif check contest.adi.gz
  adif to-json log.adi | jq '.records | length'
`)
}

// readInput slurps the whole source: the codec operates on complete
// in-memory documents, not streams.
func readInput(fileArg string) string {
	var r io.Reader = os.Stdin
	if fileArg != "" {
		f, err := os.Open(fileArg)
		if err != nil {
			fatal("open file: %v", err)
		}
		defer f.Close()
		r = f

		if strings.HasSuffix(fileArg, ".gz") {
			zr, err := gzip.NewReader(f)
			if err != nil {
				fatal("open gzip: %v", err)
			}
			defer zr.Close()
			r = zr
		}
	}

	data, err := io.ReadAll(r)
	if err != nil {
		fatal("read input: %v", err)
	}
	return string(data)
}

// cmdCat: parse and re-emit canonically.
func cmdCat(input string, cfg Config) {
	doc, err := adif.Parse(input)
	if err != nil {
		fatalParse(err)
	}
	fmt.Print(adif.EmitWithOptions(doc, cfg.emitOptions()))
	if !cfg.Pretty {
		fmt.Println()
	}
}

// cmdToJSON: ADI -> JSON.
func cmdToJSON(input string, cfg Config) {
	doc, err := adif.Parse(input)
	if err != nil {
		fatalParse(err)
	}
	data, err := adif.ToJSON(doc, cfg.JSONIndent)
	if err != nil {
		fatal("encode json: %v", err)
	}
	os.Stdout.Write(data)
	fmt.Println()
}

// cmdFromJSON: JSON -> ADI.
func cmdFromJSON(input string, cfg Config) {
	doc, err := adif.FromJSON([]byte(input))
	if err != nil {
		fatal("%v", err)
	}
	fmt.Print(adif.EmitWithOptions(doc, cfg.emitOptions()))
	if !cfg.Pretty {
		fmt.Println()
	}
}

// cmdCheck: parse only, report what was found.
func cmdCheck(input, name string) {
	if name == "" {
		name = "stdin"
	}
	doc, err := adif.Parse(input)
	if err != nil {
		var perr *adif.ParseError
		if errors.As(err, &perr) {
			log.Error().
				Str("file", name).
				Str("kind", perr.Kind.String()).
				Int("offset", perr.Offset).
				Msg(perr.Message)
		} else {
			log.Error().Str("file", name).Err(err).Msg("parse failed")
		}
		os.Exit(1)
	}

	fields := doc.Header.Len()
	for i := range doc.Records {
		fields += doc.Records[i].Len()
	}
	log.Info().
		Str("file", name).
		Int("header_fields", doc.Header.Len()).
		Int("records", len(doc.Records)).
		Int("fields", fields).
		Msg("ok")
}

func fatalParse(err error) {
	var perr *adif.ParseError
	if errors.As(err, &perr) {
		log.Error().
			Str("kind", perr.Kind.String()).
			Int("offset", perr.Offset).
			Msg(perr.Message)
		os.Exit(1)
	}
	fatal("%v", err)
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "adif: "+format+"\n", args...)
	os.Exit(1)
}
