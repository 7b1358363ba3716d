package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	cli "github.com/urfave/cli/v2"

	"github.com/bwdtool/bwd"
)

// NewApp declares the bwd command-line surface. The flag declarations here
// feed the generated help text only; argument interpretation is done by
// bwd.ParseArgs, whose required semantics (unknown flags dropped silently,
// everything after "--" taken literally, flags still recognized after the
// target) urfave's own parser rejects.
func NewApp() *cli.App {
	app := cli.NewApp()
	app.Name = "bwd"
	app.HelpName = "bwd"
	app.Usage = "better working directory"
	app.ArgsUsage = "[target]"
	app.Description = `The bwd utility resolves the current directory, or a target relative
to it, into an absolute path and prints it. The path can instead be
rendered with a leading home directory shortened to $HOME, relative to
the nearest project root (an ancestor containing .git or .bwd-root), or
as a JSON document carrying all three forms. The rendered text can also
be copied to the system clipboard.`
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "copy",
			Aliases: []string{"c"},
			Usage:   "Copy the rendered output to the clipboard",
		},
		&cli.BoolFlag{
			Name:    "short",
			Aliases: []string{"s"},
			Usage:   "Shorten a leading home directory to $HOME",
		},
		&cli.BoolFlag{
			Name:    "json",
			Aliases: []string{"j"},
			Usage:   "Emit a JSON document with the path, short and root forms",
		},
		&cli.BoolFlag{
			Name:    "root",
			Aliases: []string{"r"},
			Usage:   "Render the path relative to the nearest project root",
		},
		&cli.BoolFlag{
			Name:  "slashes",
			Usage: "Rewrite separators to forward slashes in plain-text output",
		},
	}
	return app
}

// Run executes one bwd invocation against the raw argument list. Help and
// version requests short-circuit the pipeline; otherwise the arguments are
// parsed, the target resolved, the output rendered, printed, and optionally
// copied to the clipboard. Output already on stdout is not retracted when
// the clipboard write fails afterwards.
func Run(app *cli.App, args []string) error {
	app.Setup()
	ctx := cli.NewContext(app, nil, nil)

	if bwd.WantsHelp(args) {
		return cli.ShowAppHelp(ctx)
	}
	if bwd.WantsVersion(args) {
		cli.ShowVersion(ctx)
		return nil
	}

	cfg := bwd.ParseArgs(args)
	logrus.WithFields(logrus.Fields{
		"target":    cfg.Target,
		"targetSet": cfg.TargetSet,
		"copy":      cfg.Copy,
		"short":     cfg.ShortForm,
		"json":      cfg.JSONOutput,
		"root":      cfg.RootRelative,
	}).Debug("parsed arguments")

	cwd, err := os.Getwd()
	if err != nil {
		return bwd.IOError(err)
	}
	resolved, err := bwd.Resolve(cfg, cwd, nil)
	if err != nil {
		return err
	}

	home, _ := bwd.HomeDir()
	out, err := bwd.Render(resolved, cfg, home, nil)
	if err != nil {
		return err
	}

	fmt.Println(out)
	if cfg.Copy {
		return bwd.WriteClipboard(out)
	}
	return nil
}
