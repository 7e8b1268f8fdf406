package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/zephyrtronium/arith"
	"github.com/zephyrtronium/arith/display"
)

func main() {
	log.SetFlags(0)
	var (
		inname            string
		nl, echo, verbose bool
		dump              bool
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.BoolVar(&nl, "n", false, "evaluate separate input lines as separate expressions")
	flag.BoolVar(&echo, "echo", false, "print postfix forms")
	flag.BoolVar(&dump, "tokens", false, "dump token sequences")
	flag.BoolVar(&verbose, "v", false, "log the reason for each failure")
	flag.Parse()

	var srcs []string
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		in, err := readExprs(f, nl)
		if err != nil {
			log.Fatal(err)
		}
		srcs = append(srcs, in...)
	}
	srcs = append(srcs, flag.Args()...)

	var d display.Display
	for _, src := range srcs {
		if dump {
			tokens, err := arith.Tokenize(src)
			if err != nil {
				log.Printf("%q: %v", src, err)
			}
			spew.Fdump(os.Stderr, tokens)
		}
		if echo {
			fmt.Printf("%s : ", postfix(src))
		}
		d.Clear()
		d.Append(src)
		fmt.Println(d.Calculate())
		if verbose && d.Err() != nil {
			log.Printf("%q: %v", src, d.Err())
		}
	}
}

// postfix renders the postfix form of an expression, or ? if it cannot be
// converted.
func postfix(src string) string {
	tokens, err := arith.Tokenize(src)
	if err != nil {
		return "?"
	}
	seq, err := arith.ToPostfix(tokens)
	if err != nil {
		return "?"
	}
	return arith.Postfix(seq)
}

// readExprs reads the whole input as one expression, or each non-empty line as
// its own expression if lines is true.
func readExprs(r io.Reader, lines bool) ([]string, error) {
	if !lines {
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return []string{string(b)}, nil
	}
	var v []string
	scan := bufio.NewScanner(r)
	for scan.Scan() {
		if scan.Text() == "" {
			continue
		}
		v = append(v, scan.Text())
	}
	return v, scan.Err()
}

func infile(inname string, std bool) (io.Reader, error) {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		return f, nil
	case inname == "-", std:
		return os.Stdin, nil
	}
	return nil, nil
}
