// Command loxslicer exposes the scanner, parser, and evaluator of the
// internal/lox package as three debug sub-commands.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/AndreiKhon/LoxSlicer/internal/lox"
)

func main() {
	os.Exit(doMain(os.Args, os.Stdout, os.Stderr))
}

// doMain is separated out from main for unit testing.
func doMain(args []string, stdout, stderr io.Writer) int {
	errColor := color.New(color.FgRed)

	app := &cli.App{
		Name:      "loxslicer",
		Usage:     "tokenize, parse, or evaluate a Lox source file",
		Writer:    stderr, // usage/help text is diagnostic output, not a stage's result (spec §6)
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "log stage-by-stage pipeline detail to stderr",
			},
		},
		// An unrecognised or missing sub-command is not a fatal error here:
		// print usage to stderr and exit 0.
		Action: func(c *cli.Context) error {
			cli.ShowAppHelp(c)
			return nil
		},
		Commands: []*cli.Command{
			stageCommand("tokenize", lox.StageScan, stdout, errColor),
			stageCommand("parse", lox.StageParse, stdout, errColor),
			stageCommand("evaluate", lox.StageEvaluate, stdout, errColor),
		},
	}

	// The library default ExitErrHandler calls os.Exit directly, which would
	// make this function untestable; override it to just record the code.
	exitCode := 0
	app.ExitErrHandler = func(c *cli.Context, err error) {
		if code, ok := err.(cli.ExitCoder); ok {
			exitCode = code.ExitCode()
			return
		}
		exitCode = 65
	}

	if err := app.Run(args); err != nil {
		return 65
	}
	return exitCode
}

// stageCommand builds the tokenize/parse/evaluate sub-command: each reads a
// file, runs the pipeline up to stage, prints whatever that stage produced,
// and exits 65 if any error occurred along the way (spec §6).
func stageCommand(name string, stage lox.Stage, stdout io.Writer, errColor *color.Color) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     fmt.Sprintf("run the pipeline through the %s stage", name),
		ArgsUsage: "<file>",
		Action: func(c *cli.Context) error {
			lox.SetDebug(c.Bool("debug"))

			if c.NArg() != 1 {
				cli.ShowCommandHelp(c, name)
				return nil
			}

			file := c.Args().First()
			src, err := lox.ReadSource(file)
			if err != nil {
				errColor.Fprintf(c.App.ErrWriter, "Failed to read file %s\n", file)
				src = ""
			}

			result := lox.Run(src, stage)
			printResult(stdout, result, stage)

			if !result.Ok() {
				for _, e := range result.Errs {
					errColor.Fprintln(c.App.ErrWriter, e.Report())
				}
				return cli.Exit("", 65)
			}
			return nil
		},
	}
}

func printResult(w io.Writer, result lox.Result, stage lox.Stage) {
	switch stage {
	case lox.StageScan:
		for _, tok := range result.Tokens {
			fmt.Fprintln(w, lox.PrintToken(tok))
		}
	case lox.StageParse:
		if result.Expr != nil {
			fmt.Fprintln(w, lox.PrintExpr(result.Expr))
		}
	case lox.StageEvaluate:
		if result.Ok() {
			fmt.Fprintln(w, result.Value.String())
		}
	}
}
