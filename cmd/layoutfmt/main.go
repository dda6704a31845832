package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/pflag"

	"oss.terrastruct.com/util-go/xdefer"
	"oss.terrastruct.com/util-go/xmain"

	"oss.terrastruct.com/layout"
)

func main() {
	xmain.Main(run)
}

func run(ctx context.Context, ms *xmain.State) (err error) {
	defer xdefer.Errorf(&err, "failed to fmt")

	checkFlag, err := ms.Opts.Bool("LAYOUTFMT_CHECK", "check", "c", false, "exit non-zero if any file is not normalized, without rewriting it")
	if err != nil {
		return err
	}

	err = ms.Opts.Flags.Parse(ms.Opts.Args)
	if !errors.Is(err, pflag.ErrHelp) && err != nil {
		return xmain.UsageErrorf("failed to parse flags: %v", err)
	}
	if errors.Is(err, pflag.ErrHelp) {
		help(ms)
		return nil
	}

	if len(ms.Opts.Flags.Args()) == 0 {
		return xmain.UsageErrorf("must be passed at least one file to be formatted")
	}

	var unformatted []string
	for _, inputPath := range ms.Opts.Flags.Args() {
		input, err := ms.ReadPath(inputPath)
		if err != nil {
			return err
		}

		output, err := layout.Fmt(input)
		if err != nil {
			return fmt.Errorf("%s: %w", inputPath, err)
		}

		if bytes.Equal(output, input) {
			continue
		}
		if *checkFlag {
			unformatted = append(unformatted, inputPath)
			continue
		}
		if err := ms.WritePath(inputPath, output); err != nil {
			return err
		}
	}

	if len(unformatted) > 0 {
		return fmt.Errorf("found unformatted files: %v", unformatted)
	}
	return nil
}

func help(ms *xmain.State) {
	fmt.Fprintf(ms.Stdout, `Usage:
  %[1]s [--check] file ...

%[1]s rewrites files of stored layout strings, one "x y w h" rectangle per
line, into their canonical form. Files already in canonical form are left
untouched.

Use - to have %[1]s read from stdin and write to stdout.

Flags:
%[2]s
`, filepath.Base(ms.Name), ms.Opts.Defaults())
}
