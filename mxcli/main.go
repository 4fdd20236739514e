// Package mxcli is the mustex command: read a diagram description (or pick a
// built-in example), run the pipeline, and write TikZ source.
package mxcli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"cdr.dev/slog"
	"github.com/spf13/pflag"
	"oss.terrastruct.com/xdefer"

	"oss.mustex.org/mustex/lib/log"
	"oss.mustex.org/mustex/lib/version"
	"oss.mustex.org/mustex/lib/xmain"
	"oss.mustex.org/mustex/mxdesc"
	"oss.mustex.org/mustex/mxgraph"
	"oss.mustex.org/mustex/mxlib"
	"oss.mustex.org/mustex/mxmusic"
	"oss.mustex.org/mustex/mxrenderers/mxtikz"
)

func Run(ctx context.Context, ms *xmain.State) (err error) {
	ctx = log.WithDefault(ctx)

	watchFlag, err := ms.Opts.Bool("MUSTEX_WATCH", "watch", "w", false, "watch the input file and regenerate the output on every change.")
	if err != nil {
		return err
	}
	outputFlag := ms.Opts.String("MUSTEX_OUTPUT", "output", "o", "", "output path. Defaults to the input path with a .tex extension, or - when reading stdin.")
	preambleFlag, err := ms.Opts.Bool("MUSTEX_PREAMBLE", "preamble", "p", true, "wrap the picture in a standalone LaTeX document. Disable to \\input the output into a larger document.")
	if err != nil {
		return err
	}
	scaleFlag, err := ms.Opts.Float64("MUSTEX_SCALE", "scale", "s", -1, "tikzpicture scale factor. Default -1 picks a readable scale per figure family.")
	if err != nil {
		return err
	}
	exampleFlag := ms.Opts.String("", "example", "e", "", "generate a built-in example figure instead of reading an input file. Pass an unknown name to list the options.")
	debugFlag, err := ms.Opts.Bool("DEBUG", "debug", "d", false, "print debug logs.")
	if err != nil {
		return err
	}
	versionFlag, err := ms.Opts.Bool("", "version", "v", false, "get the version")
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

	if *debugFlag {
		ms.Env.Setenv("DEBUG", "1")
	}

	args := ms.Opts.Flags.Args()
	if len(args) == 1 && args[0] == "version" {
		fmt.Fprintln(ms.Stdout, version.Version)
		return nil
	}
	if *versionFlag {
		fmt.Fprintln(ms.Stdout, version.Version)
		return nil
	}

	var inputPath string
	switch {
	case *exampleFlag != "":
		if len(args) > 0 {
			return xmain.UsageErrorf("--example and an input path are mutually exclusive")
		}
	case len(args) == 0:
		help(ms)
		return nil
	case len(args) > 1:
		return xmain.UsageErrorf("too many arguments passed")
	default:
		inputPath = args[0]
	}

	outputPath := *outputFlag
	if outputPath == "" {
		if inputPath == "" || inputPath == "-" {
			outputPath = "-"
		} else {
			outputPath = renameExt(inputPath, ".tex")
		}
	}

	if *watchFlag {
		if inputPath == "" {
			return xmain.UsageErrorf("--watch needs an input file to watch")
		}
		if inputPath == "-" {
			return xmain.UsageErrorf("-w[atch] cannot be combined with reading input from stdin")
		}
		if outputPath == "-" {
			return xmain.UsageErrorf("-w[atch] cannot be combined with writing output to stdout")
		}
		ms.Log.SetTS(true)
		return watch(ctx, ms, watchJob{
			inputPath:  inputPath,
			outputPath: outputPath,
			preamble:   *preambleFlag,
			scale:      *scaleFlag,
		})
	}

	return generate(ctx, ms, *exampleFlag, inputPath, outputPath, *preambleFlag, *scaleFlag)
}

func generate(ctx context.Context, ms *xmain.State, example, inputPath, outputPath string, preamble bool, scale float64) (err error) {
	defer xdefer.Errorf(&err, "failed to generate %s", outputPath)

	var diagram *mxgraph.Diagram
	if example != "" {
		builder, ok := mxmusic.Examples[example]
		if !ok {
			return xmain.UsageErrorf("unknown example %q. Available examples: %s",
				example, strings.Join(mxmusic.ExampleNames(), ", "))
		}
		diagram, err = builder()
		if err != nil {
			return err
		}
	} else {
		diagram, err = readDiagram(ms, inputPath)
		if err != nil {
			return err
		}
	}

	out, err := render(ctx, diagram, preamble, scale)
	if err != nil {
		return err
	}

	// the output file is only touched once rendering has fully succeeded
	err = ms.WritePath(outputPath, []byte(out))
	if err != nil {
		return err
	}
	if outputPath != "-" {
		ms.Log.Success.Printf("successfully generated %s", outputPath)
	}
	return nil
}

func readDiagram(ms *xmain.State, inputPath string) (*mxgraph.Diagram, error) {
	input, err := ms.ReadPath(inputPath)
	if err != nil {
		return nil, err
	}
	diagram, err := mxdesc.Decode(input, mxdesc.FormatForPath(inputPath))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", inputPath, err)
	}
	return diagram, nil
}

// render picks the scale and runs the pipeline. Negative scale means auto:
// cycles grow with their length, everything else stays at 1.
func render(ctx context.Context, diagram *mxgraph.Diagram, preamble bool, scale float64) (string, error) {
	if scale < 0 {
		scale = 1
		if diagram.Family == mxgraph.FamilyCycle || diagram.Family == mxgraph.FamilyDoubleCycle {
			scale = mxmusic.CycleScale(len(diagram.Elements))
		}
	}
	log.Debug(ctx, "rendering", slog.F("family", diagram.Family), slog.F("scale", scale))
	return mxlib.Render(ctx, diagram, &mxtikz.RenderOpts{
		IncludePreamble: preamble,
		Scale:           scale,
	})
}

func renameExt(fp string, ext string) string {
	return strings.TrimSuffix(fp, filepath.Ext(fp)) + ext
}
