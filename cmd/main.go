package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	brio "go.brio.dev/pkg"
)

func main() {
	app := &cli.App{
		Name:  "brio",
		Usage: "run brio programs",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to a YAML options file",
			},
			&cli.IntFlag{
				Name:  "max-steps",
				Usage: "evaluation step budget, 0 for unlimited",
			},
		},
		Commands: []*cli.Command{
			runCommand(),
			replCommand(),
		},
	}
	app.RunAndExitOnError()
}

func runCommand() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "evaluate a program file and print its value",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "expr",
				Aliases: []string{"e"},
				Usage:   "evaluate the given source instead of a file",
			},
		},
		Action: runAction,
	}
}

func runAction(c *cli.Context) error {
	interp, err := newInterpreter(c)
	if err != nil {
		return err
	}

	var result brio.Value
	if src := c.String("expr"); src != "" {
		result, err = interp.RunString(src)
	} else {
		if c.NArg() != 1 {
			return cli.Exit("expected exactly one program file, or -e EXPR", 2)
		}

		result, err = interp.Run(c.Args().First())
	}

	if err != nil {
		printError(err)
		return cli.Exit("", 1)
	}

	if result.Kind() != brio.KindNoValue {
		fmt.Println(result)
	}

	return nil
}

func replCommand() *cli.Command {
	return &cli.Command{
		Name:   "repl",
		Usage:  "evaluate statements interactively against one store",
		Action: replAction,
	}
}

func replAction(c *cli.Context) error {
	interp, err := newInterpreter(c)
	if err != nil {
		return err
	}

	store := brio.NewStore()
	prompt := color.New(color.FgGreen)
	scanner := bufio.NewScanner(os.Stdin)

	for {
		prompt.Print("brio> ")
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		result, err := interp.EvalString(line, store)
		if err != nil {
			printError(err)
			continue
		}

		if result.Kind() != brio.KindNoValue {
			color.Cyan("%s", result)
		}
	}
}

func newInterpreter(c *cli.Context) (*brio.Interpreter, error) {
	cfg, err := loadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}

	if c.IsSet("max-steps") {
		cfg.MaxSteps = c.Int("max-steps")
	}

	if cfg.NoColor {
		color.NoColor = true
	}

	interp := brio.NewInterpreter()
	interp.SetStepLimit(cfg.MaxSteps)

	return interp, nil
}

func printError(err error) {
	switch e := err.(type) {
	case *brio.MalformedNumberError:
		color.Red("lex error: %s", e)
	case *brio.UnexpectedCharacterError:
		color.Red("lex error: %s", e)
	case *brio.UnexpectedTokenError:
		color.Red("parse error: %s", e)
	case *brio.UndefinedVariableError:
		color.Red("eval error: %s", e)
	case *brio.TypeMismatchError:
		color.Red("eval error: %s", e)
	case *brio.UnknownFunctionError:
		color.Red("eval error: %s", e)
	case *brio.StepLimitError:
		color.Red("eval error: %s", e)
	default:
		color.Red("%s", err)
	}
}
