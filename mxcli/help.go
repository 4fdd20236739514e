package mxcli

import (
	"fmt"
	"path/filepath"

	"oss.mustex.org/mustex/lib/version"
	"oss.mustex.org/mustex/lib/xmain"
)

func help(ms *xmain.State) {
	fmt.Fprintf(ms.Stdout, `%[1]s %[2]s
Usage:
  %[1]s [--watch] [--scale=1.5] figure.yaml [-o figure.tex]
  %[1]s --example tresillo -o tresillo.tex
  %[1]s version

%[1]s compiles figure.yaml | figure.toml | figure.json to TikZ source.
It defaults to the input path with a .tex extension when no output path
is given.

Use - to have %[1]s read from stdin or write to stdout.

Flags:
%[3]s
`, filepath.Base(ms.Name), version.Version, ms.Opts.Help())
}
