package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Garik-/smf/pkg/midi"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	inFlag       = flag.String("i", "", "Input midi file")
	timelineFlag = flag.Bool("t", false, "Print the merged timeline instead of the raw chunks")
	debugFlag    = flag.Bool("debug", false, "Enable debug logging")
)

// dumpChunks prints every chunk of the stream, including the ones a
// header-driven decode would leave unread.
func dumpChunks(w io.Writer, r io.Reader) error {
	decoder := midi.NewDecoder(r)
	for {
		c, err := decoder.NextChunk()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(w, c)
	}
}

func dumpTimeline(w io.Writer, r io.Reader) error {
	f, err := midi.Decode(r)
	if err != nil {
		return err
	}

	tl, err := midi.NewTimeline(f)
	if err != nil {
		return errors.Wrap(err, "timeline")
	}

	for {
		e, ok := tl.Next()
		if !ok {
			return nil
		}
		fmt.Fprintf(w, "%10d %12s track=%d beat=%d %s\n", e.Tick, e.Time, e.Track, e.Quarter, e.Event)
	}
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s \n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *inFlag == "" {
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
		midi.SetLogger(logger)
	}

	in, err := os.Open(*inFlag)
	if err != nil {
		logger.Fatal("open input", zap.Error(err))
	}
	defer in.Close()

	if *timelineFlag {
		err = dumpTimeline(os.Stdout, in)
	} else {
		err = dumpChunks(os.Stdout, in)
	}

	if err != nil {
		logger.Fatal("decode", zap.String("file", *inFlag), zap.Error(err))
	}
}
