// Command tilepaint opens the tile-map editor on an asset directory.
//
//	tilepaint -assets ./assets -layout level.json -load
//
// Click a thumbnail to select it, click tiles to paint them, R rotates and F
// flips the hovered tile, S saves, F12 takes a screenshot, Escape quits.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/phanxgames/tilepaint"
)

func main() {
	opts, err := LoadArgs(os.Args[1:], os.Environ())
	if errors.Is(err, flag.ErrHelp) {
		fmt.Fprintln(os.Stderr, "usage: tilepaint [-assets dir] [-layout file] [-load] [-rows n] [-cols n] [-tile px] [-script file]")
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}

	editor, err := tilepaint.NewEditor(opts.Editor)
	if err != nil {
		log.Fatal(err)
	}

	if opts.Script != "" {
		data, err := os.ReadFile(opts.Script)
		if err != nil {
			log.Fatalf("read script: %v", err)
		}
		runner, err := tilepaint.LoadScript(data)
		if err != nil {
			log.Fatal(err)
		}
		editor.SetTestRunner(runner)
	}

	if err := tilepaint.Run(editor); err != nil {
		log.Fatal(err)
	}
}
