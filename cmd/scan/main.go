package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Garik-/smf/config"
	"github.com/Garik-/smf/pkg/midi"
	"go.uber.org/zap"
)

var (
	listFlag  = flag.String("l", "", "The path to the list of midi files,\nfind . -type f -name \"*.mid\" > midi_list.txt")
	maxFlag   = flag.Int("p", config.MaxGoroutines, "Number of files processed in parallel, must be > 0")
	outFlag   = flag.String("o", "", "Output json report, stdout if empty")
	debugFlag = flag.Bool("debug", false, "Enable debug logging")
)

func readList(file io.Reader) <-chan string {
	out := make(chan string)

	scanner := bufio.NewScanner(file)
	scanner.Split(bufio.ScanLines)

	go func() {
		for scanner.Scan() {
			if line := scanner.Text(); line != "" {
				out <- line
			}
		}
		close(out)
	}()

	return out
}

func writeReport(name string, rep *report) error {
	var w io.Writer = os.Stdout
	if name != "" {
		f, err := os.Create(name)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s \n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *listFlag == "" {
		flag.Usage()
		return
	}

	if *maxFlag <= 0 {
		flag.Usage()
		return
	}

	logger, err := zap.NewProduction()
	if *debugFlag {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *debugFlag {
		enableDebugLogging(logger)
		midi.SetLogger(logger)
	}

	f, err := os.Open(*listFlag)
	if err != nil {
		logger.Fatal("open list", zap.Error(err))
	}
	defer f.Close()

	paths := readList(f)
	rep := newReport(context.Background(), paths, *maxFlag)

	if err := writeReport(*outFlag, rep); err != nil {
		logger.Fatal("write report", zap.Error(err))
	}

	logger.Info("scan finished", zap.Int("files", len(rep.Files)), zap.Int("failed", rep.Failed))
}
