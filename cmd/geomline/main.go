// Command geomline is the toolkit's interactive front end: a polyline
// REPL by default, or the rotating-star demo with -animate / -tty.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/katalvlaran/geomline/command"
)

func main() {
	animate := flag.Bool("animate", false, "Run the rotating star demo instead of the REPL")
	tty := flag.Bool("tty", false, "Draw the demo on a full terminal screen (implies -animate)")
	frames := flag.Int("frames", 36, "Number of demo frames per revolution")
	delay := flag.Duration("delay", 50*time.Millisecond, "Delay between demo frames")
	flag.Parse()

	if *tty {
		if err := runScreenDemo(*frames, *delay); err != nil {
			fmt.Fprintf(os.Stderr, "geomline: %v\n", err)
			os.Exit(1)
		}

		return
	}
	if *animate {
		if err := runConsoleDemo(os.Stdout, *frames, *delay); err != nil {
			fmt.Fprintf(os.Stderr, "geomline: %v\n", err)
			os.Exit(1)
		}

		return
	}

	if err := command.New().Run(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "geomline: %v\n", err)
		os.Exit(1)
	}
}
