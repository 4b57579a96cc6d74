// Copyright 2012 Google Inc. All Rights Reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the COPYING file in the root of the source
// tree. An additional intellectual property rights grant can be found
// in the file PATENTS. All contributing project authors may
// be found in the AUTHORS file in the root of the source tree.

// vp8linfo displays the entropy coding structure of VP8L lossless bitstreams.
//
// Usage:
//
//	vp8linfo [-v|--verbose] [--max-pixels N] [--remap-threshold N] <filename> [<filename> ...]
//
// Use '-' as filename to read from stdin. Input compressed with zstd is
// decompressed transparently:
//
//	zstd -c image.vp8l | vp8linfo -
//
// Options:
//
//	-v, --verbose          Print every code of every group
//	    --max-pixels       Largest image to decode
//	    --remap-threshold  Group count above which group indices are compacted
//	-h, -?, --help         Print help message
//	    --version          Print version information
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	webp "github.com/daanv2/go-webp-huffman"
	"github.com/daanv2/go-webp-huffman/pkg/config"
	"github.com/daanv2/go-webp-huffman/pkg/huffman"
	"github.com/daanv2/go-webp-huffman/pkg/vp8l"
)

const version = "0.1.0"

var (
	verbose        bool
	maxPixels      int
	remapThreshold int
	showHelp       bool
	showVer        bool
)

func init() {
	defaults := config.Default()
	flag.BoolVar(&verbose, "v", false, "verbose mode")
	flag.BoolVar(&verbose, "verbose", false, "verbose mode")
	flag.IntVar(&maxPixels, "max-pixels", defaults.MaxPixels, "largest image to decode")
	flag.IntVar(&remapThreshold, "remap-threshold", defaults.GroupRemapThreshold, "group count above which group indices are compacted")
	flag.BoolVar(&showHelp, "h", false, "print help message")
	flag.BoolVar(&showHelp, "help", false, "print help message")
	flag.BoolVar(&showHelp, "?", false, "print help message")
	flag.BoolVar(&showVer, "version", false, "print version information")
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [-v|--verbose] [--max-pixels N] [--remap-threshold N] <filename> [<filename> ...]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Decode VP8L bitstreams and print their Huffman code structure\n\n")
	fmt.Fprintf(os.Stderr, "Use '-' as filename to read from stdin.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	fmt.Fprintf(os.Stderr, "  -v, --verbose          verbose mode\n")
	fmt.Fprintf(os.Stderr, "      --max-pixels       largest image to decode\n")
	fmt.Fprintf(os.Stderr, "      --remap-threshold  group count above which group indices are compacted\n")
	fmt.Fprintf(os.Stderr, "  -h, -?, --help         print this message\n")
	fmt.Fprintf(os.Stderr, "      --version          print version information\n")
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("vp8linfo: ")
	flag.Usage = usage
	flag.Parse()

	if showHelp {
		usage()
		os.Exit(0)
	}

	if showVer {
		fmt.Printf("vp8linfo (go-webp-huffman) %s\n", version)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	conf := config.Default()
	conf.MaxPixels = maxPixels
	conf.GroupRemapThreshold = remapThreshold
	if err := conf.Validate(); err != nil {
		log.Fatal(err)
	}

	failCount := 0
	for i, filename := range args {
		if i > 0 {
			fmt.Println() // Separate multiple file outputs
		}
		if err := processFile(os.Stdout, filename, conf); err != nil {
			log.Printf("ERROR '%s': %v", filename, err)
			failCount++
		}
	}

	os.Exit(failCount)
}

func processFile(w io.Writer, filename string, conf *config.Config) error {
	var r io.Reader
	displayName := filename

	if filename == "-" {
		r = os.Stdin
		displayName = "<stdin>"
	} else {
		f, err := os.Open(filename)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	img, err := webp.DecodeLossless(r, conf)
	if err != nil {
		return err
	}
	printImage(w, displayName, img, verbose)
	return nil
}

func printImage(w io.Writer, name string, img *vp8l.Image, verbose bool) {
	fmt.Fprintf(w, "File '%s':\n", name)
	fmt.Fprintf(w, "  size: %d x %d\n", img.Width, img.Height)
	fmt.Fprintf(w, "  alpha hint: %t\n", img.HasAlpha)
	if img.ColorCacheBits > 0 {
		fmt.Fprintf(w, "  color cache: %d bits (%d entries)\n", img.ColorCacheBits, 1<<img.ColorCacheBits)
	} else {
		fmt.Fprintf(w, "  color cache: none\n")
	}

	codes := img.Codes
	if codes.Bits() > 0 {
		fmt.Fprintf(w, "  meta codes: %d x %d blocks\n", 1<<codes.Bits(), 1<<codes.Bits())
	} else {
		fmt.Fprintf(w, "  meta codes: none\n")
	}
	fmt.Fprintf(w, "  groups: %d\n", codes.NumGroups())

	trivialLiteral, trivialCode := 0, 0
	for i := 0; i < codes.NumGroups(); i++ {
		group := codes.Group(i)
		if group.IsTrivialLiteral {
			trivialLiteral++
		}
		if group.IsTrivialCode {
			trivialCode++
		}
	}
	fmt.Fprintf(w, "  trivial literal groups: %d\n", trivialLiteral)
	fmt.Fprintf(w, "  trivial code groups: %d\n", trivialCode)

	if !verbose {
		return
	}
	for i := 0; i < codes.NumGroups(); i++ {
		fmt.Fprintf(w, "  group %d:\n", i)
		for index, table := range codes.Group(i).Tables() {
			printTable(w, huffman.HuffIndex(index), table)
		}
	}
}

func printTable(w io.Writer, index huffman.HuffIndex, table *huffman.Table) {
	if table.IsTrivial() {
		fmt.Fprintf(w, "    %-8s alphabet %4d, single symbol %d\n", index, table.AlphabetSize(), table.TrivialSymbol())
		return
	}
	fmt.Fprintf(w, "    %-8s alphabet %4d, %4d symbols, max length %2d, %d second level tables\n",
		index, table.AlphabetSize(), table.NumSymbols(), table.MaxCodeLength(), table.Level2Tables())
}
