// Command gunzip decompresses a single gzip member, writing the payload
// next to it: stripping ".gz" if present, otherwise appending ".out".
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/JoshVarga/mingzip"
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: gunzip <file>")
		os.Exit(1)
	}
	in := flag.Arg(0)

	if err := run(in); err != nil {
		fmt.Fprintln(os.Stderr, "gunzip:", err)
		os.Exit(1)
	}
}

func run(in string) error {
	src, err := os.Open(in)
	if err != nil {
		return err
	}
	defer src.Close()

	out := outputName(in)
	dst, err := os.Create(out)
	if err != nil {
		return err
	}
	defer dst.Close()

	return mingzip.Decompress(dst, src)
}

func outputName(in string) string {
	if strings.HasSuffix(in, ".gz") {
		return strings.TrimSuffix(in, ".gz")
	}
	return in + ".out"
}
