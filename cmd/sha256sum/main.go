package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/zeebo/sha256"
)

var errFailed = errors.New("one or more inputs could not be hashed")

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var quiet bool

	flagSet := pflag.NewFlagSet("sha256sum", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.BoolVarP(&quiet, "quiet", "q", false, "print only the digest")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			printHelp(stderr, flagSet)
			return nil
		}
		return err
	}

	if help, _ := flagSet.GetBool("help"); help {
		printHelp(stderr, flagSet)
		return nil
	}

	names := flagSet.Args()
	if len(names) == 0 {
		names = []string{"-"}
	}

	failed := false
	for _, name := range names {
		digest, err := sumFile(name, stdin)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			failed = true
			continue
		}

		if quiet {
			fmt.Fprintf(stdout, "%x\n", digest[:])
		} else {
			fmt.Fprintf(stdout, "%x  %s\n", digest[:], name)
		}
	}

	if failed {
		return errFailed
	}
	return nil
}

func sumFile(name string, stdin io.Reader) (digest [sha256.Size]byte, err error) {
	var data []byte
	if name == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return digest, errors.Wrapf(err, "reading %s", name)
	}

	digest, err = sha256.Sum256(data)
	if err != nil {
		return digest, errors.Wrapf(err, "hashing %s", name)
	}
	return digest, nil
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `Print SHA-256 digests.

Usage:
  sha256sum [flags] [file...]

With no file, or when file is -, read standard input.

Flags:
%s`, flagSet.FlagUsages())
}
