// Command gzip compresses a single file to gzip format, writing
// <input>.gz next to it.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/JoshVarga/mingzip"
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: gzip <file>")
		os.Exit(1)
	}
	in := flag.Arg(0)

	if err := run(in); err != nil {
		fmt.Fprintln(os.Stderr, "gzip:", err)
		os.Exit(1)
	}
}

func run(in string) error {
	src, err := os.Open(in)
	if err != nil {
		return err
	}
	defer src.Close()

	out := in + ".gz"
	dst, err := os.Create(out)
	if err != nil {
		return err
	}
	defer dst.Close()

	return mingzip.Compress(dst, src, basenameOf(in))
}

func basenameOf(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[i+1:]
		}
	}
	return path
}
