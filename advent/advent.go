package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/felixge/fgprof"
	"github.com/kr/pretty"
)

func main() {
	log.SetFlags(0)
	var (
		configFile  = flag.String("config", "", "INI `file` with a [dial] section overriding size and start")
		interact    = flag.Bool("i", false, "Read rotations interactively instead of from a file")
		verbose     = flag.Bool("v", false, "Print a summary of the run to stderr")
		trace       = flag.Bool("trace", false, "Print every rotation to stderr as it is applied")
		profileFile = flag.String("fgprof", "", "Write a wall-clock profile of the run to `file`")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] [inputFile]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(1)
	}

	conf := defaultConfig()
	if *configFile != "" {
		var err error
		conf, err = loadConfig(*configFile)
		if err != nil {
			log.Fatal(err)
		}
	}
	d := newDial(conf.size, conf.start)

	if *interact {
		if flag.NArg() > 0 {
			flag.Usage()
			os.Exit(1)
		}
		historyFile := filepath.Join(os.TempDir(), "advent-dial-history")
		if err := interactive(d, historyFile); err != nil {
			log.Fatal(err)
		}
		return
	}

	inputFile := "input.txt"
	if flag.NArg() == 1 {
		inputFile = flag.Arg(0)
	}
	f, err := os.Open(inputFile)
	if err != nil {
		log.Fatalf("Error: Could not open file %s", inputFile)
	}
	defer f.Close()

	var onStep func(step)
	if *trace {
		onStep = func(s step) {
			pretty.Fprintf(os.Stderr, "%# v\n", s)
		}
	}
	var stopProfile func() error
	if *profileFile != "" {
		stopProfile, err = startProfile(*profileFile)
		if err != nil {
			log.Fatal(err)
		}
	}
	stats, err := simulate(f, d, onStep)
	if stopProfile != nil {
		if err := stopProfile(); err != nil {
			log.Fatal(err)
		}
	}
	if err != nil {
		log.Fatalf("Error reading %s: %s", inputFile, err)
	}

	printResults(os.Stdout, d)
	if *verbose {
		log.Printf(
			"%s: %s rotations (%s), dial size %d, final position %d",
			inputFile,
			humanize.Comma(stats.instructions),
			humanize.Bytes(uint64(stats.bytes)),
			d.size,
			d.pos,
		)
	}
}

func printResults(w io.Writer, d *dial) {
	fmt.Fprintf(w, "Part 1 - The actual password is: %d\n", d.landed)
	fmt.Fprintf(w, "Part 2 - The actual password is: %s\n", d.crossed.String())
}

// startProfile starts an fgprof profile written to filename. The returned
// function stops the profile and closes the file.
func startProfile(filename string) (func() error, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, err
	}
	stop := fgprof.Start(f, fgprof.FormatPprof)
	return func() error {
		if err := stop(); err != nil {
			f.Close()
			return fmt.Errorf("error writing profile: %s", err)
		}
		return f.Close()
	}, nil
}
