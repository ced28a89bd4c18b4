package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	flag "github.com/spf13/pflag"

	"github.com/jmoiron/nbtkit/internal/app"
	"github.com/jmoiron/nbtkit/nbt"
	"github.com/jmoiron/nbtkit/snbt"
)

// version is set at build time via -ldflags; defaults to dev.
var version = "dev"

func main() {
	var (
		serve       bool
		listen      string
		asJSON      bool
		asSNBT      bool
		space       int
		showVersion bool
		verbose     int
	)

	flag.BoolVar(&serve, "serve", false, "serve the web UI instead of dumping to stdout")
	flag.StringVar(&listen, "addr", "0.0.0.0:8223", "listen address for the web UI (host:port)")
	flag.BoolVar(&asJSON, "json", false, "dump as JSON")
	flag.BoolVar(&asSNBT, "snbt", false, "dump as SNBT text")
	flag.IntVar(&space, "space", nbt.DefaultIndent, "indent width for the pretty printer")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.CountVarP(&verbose, "verbose", "v", "increase verbosity; repeat for more detail")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: nbtkit [options] <file-or-dir>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showVersion {
		fmt.Println(version)
		return
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	root, err := filepath.Abs(flag.Arg(0))
	if err != nil {
		log.Fatalf("resolve path: %v", err)
	}
	info, err := os.Stat(root)
	if err != nil {
		log.Fatalf("invalid path: %v", err)
	}

	if serve {
		if !info.IsDir() {
			root = filepath.Dir(root)
		}
		a, err := app.New(root, verbose)
		if err != nil {
			log.Fatalf("init: %v", err)
		}
		log.Printf("nbtkit %s listening on http://%s (root %s)", version, listen, root)
		if err := httpListenAndServe(listen, a.Router()); err != nil {
			log.Fatalf("server: %v", err)
		}
		return
	}

	var files []string
	if info.IsDir() {
		err := filepath.WalkDir(root, func(p string, d os.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return err
			}
			switch filepath.Ext(p) {
			case ".dat", ".dat_old", ".nbt":
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			log.Fatalf("walk: %v", err)
		}
	} else {
		files = []string{root}
	}

	for _, f := range files {
		if len(files) > 1 {
			fmt.Printf("== %s\n", f)
		}
		if err := dump(f, asJSON, asSNBT, space); err != nil {
			log.Fatalf("%s: %v", f, err)
		}
	}
}

func dump(path string, asJSON, asSNBT bool, space int) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	// .dat files are usually a gzip envelope around the NBT document
	if len(b) >= 2 && b[0] == 0x1f && b[1] == 0x8b {
		zr, err := gzip.NewReader(bytes.NewReader(b))
		if err != nil {
			return err
		}
		defer zr.Close()
		if b, err = io.ReadAll(zr); err != nil {
			return err
		}
	}
	t, err := nbt.Decode(b)
	if err != nil {
		return err
	}
	switch {
	case asJSON:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "    ")
		return enc.Encode(nbt.Generic(t))
	case asSNBT:
		if err := snbt.Encode(os.Stdout, t); err != nil {
			return err
		}
		fmt.Println()
	default:
		fmt.Println(nbt.PrintIndent(t, space))
	}
	return nil
}

// httpListenAndServe exists to facilitate testing/mocking if desired.
var httpListenAndServe = func(addr string, h http.Handler) error {
	return http.ListenAndServe(addr, h)
}
