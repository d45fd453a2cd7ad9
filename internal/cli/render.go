package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wordcloud/pkg/errors"
	"github.com/matzehuels/wordcloud/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command that are
// not pipeline options.
type renderOpts struct {
	output string // output file, base path for several formats, or "-" for stdout
}

// renderCommand creates the render command for generating word clouds.
// Every pipeline option is available as a flag; flags override values
// loaded with --config.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		opts  renderOpts
		flags pipeline.Options
	)

	cmd := &cobra.Command{
		Use:   "render [file|-]",
		Short: "Render text to an animated word cloud",
		Long: `Render counts the words of a text file (or standard input with "-") and
writes an animated SVG word cloud. Use --static for a single frame and
--format to also export JSON, PNG or PDF.`,
		Example: `  wordcloud render speech.txt
  cat notes.md | wordcloud render - -o cloud.svg
  wordcloud render speech.txt --symbols --palette Turbo -f svg,png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			popts, err := c.resolveOptions(cmd.Flags(), &flags)
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts, popts, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", `output file (single format), base path (several formats), or "-" for stdout`)
	addOptionFlags(cmd.Flags(), &flags)

	return cmd
}

// runRender reads the input, runs the pipeline and writes every artifact.
// Status goes to errw so that stdout can carry the document.
func (c *CLI) runRender(ctx context.Context, input string, opts renderOpts, popts pipeline.Options, stdin io.Reader, stdout, errw io.Writer) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	text, err := readInput(input, stdin)
	if err != nil {
		return err
	}
	if err := popts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	toStdout := opts.output == stdinArg || (opts.output == "" && input == stdinArg)
	if toStdout && len(popts.Formats) > 1 {
		return errors.New(errors.ErrCodeInvalidOption, "cannot write %d formats to standard output", len(popts.Formats))
	}

	spinner := newSpinnerWithContext(ctx, errw, "Rendering word cloud...")
	spinner.Start()
	result, err := c.newRunner().Execute(ctx, text, popts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()
	defer result.Cloud.Dispose()

	if result.Stats.Placed < result.Stats.Words {
		printWarning(errw, "%d of %d words did not fit on the canvas", result.Stats.Words-result.Stats.Placed, result.Stats.Words)
	}

	if toStdout {
		if _, err := stdout.Write(result.Artifacts[popts.Formats[0]]); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "failed to write output")
		}
		prog.done("Rendered to standard output")
		return nil
	}

	paths := outputPaths(opts.output, input, popts.Formats)
	for _, format := range popts.Formats {
		path := paths[format]
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "failed to write %s", path)
		}
		logger.Debug("wrote artifact", "format", format, "path", path, "bytes", len(result.Artifacts[format]))
	}

	printSuccess(errw, "Rendered word cloud")
	for _, format := range popts.Formats {
		printFile(errw, paths[format])
	}
	printStats(errw, result.Stats.Words, result.Stats.Placed, result.Stats.Layers)
	prog.done(fmt.Sprintf("Rendered %d words", result.Stats.Placed))
	return nil
}

// outputPaths maps each format to the file it is written to.
//
// With a single format an explicit output is used as is. Otherwise the
// output (or the input stem) is a base path and each format appends its
// extension, e.g. "speech.svg" and "speech.png".
func outputPaths(output, input string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if output != "" && len(formats) == 1 {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output, input)
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}

// basePath derives the base output path from the output and input paths.
// If output is empty, the input stem is used. A known format extension on
// output is stripped.
func basePath(output, input string) string {
	if output == "" {
		return outputBase(input)
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
