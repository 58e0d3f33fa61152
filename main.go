package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"furiganagen/config"
	"furiganagen/furigana"
	"furiganagen/logger"
	"furiganagen/model"
	"furiganagen/tokenize"
)

// env carries state prepared before command execution. The CLI is a single
// short-lived process, one env per run.
type env struct {
	cfg config.Settings
	log *zap.Logger
}

var appEnv env

func initializeApp(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	var err error
	if appEnv.cfg, err = config.Load(cmd.String("config")); err != nil {
		return ctx, err
	}
	level := appEnv.cfg.LogLevel
	if cmd.IsSet("log-level") {
		level = cmd.String("log-level")
	}
	if appEnv.log, err = logger.Prepare(level); err != nil {
		return ctx, err
	}
	return ctx, nil
}

func finalizeApp(ctx context.Context, cmd *cli.Command) error {
	if appEnv.log != nil {
		_ = appEnv.log.Sync()
	}
	return nil
}

// settingsForRun layers command line overrides over the loaded settings.
func settingsForRun(cmd *cli.Command) (config.Settings, error) {
	s := appEnv.cfg
	if cmd.IsSet("scope") {
		s.Scope = cmd.String("scope")
	}
	if cmd.IsSet("syntax") {
		s.Syntax = cmd.String("syntax")
	}
	if cmd.IsSet("exclude-headings") {
		s.ExcludeHeadings = cmd.Bool("exclude-headings")
	}
	if cmd.IsSet("exclusion-list") {
		s.ExclusionList = cmd.String("exclusion-list")
	}
	if cmd.IsSet("dict") {
		s.Dict = cmd.String("dict")
	}
	if _, err := model.ParseScope(s.Scope); err != nil {
		return s, err
	}
	if _, err := model.ParseSyntax(s.Syntax); err != nil {
		return s, err
	}
	return s, nil
}

// newEngine loads the analyzer dictionary and builds the engine. A failed
// dictionary load degrades to an engine without analyzer instead of
// aborting, so pass-through still works. The analyzer is also returned for
// debug dumps; it is nil when degraded.
func newEngine(dict string) (*furigana.Engine, *tokenize.Analyzer) {
	an, err := tokenize.New(tokenize.Dict(dict))
	if err != nil {
		appEnv.log.Warn("Analyzer dictionary unavailable, text will pass through unchanged", zap.Error(err))
		return furigana.New(nil), nil
	}
	return furigana.New(an), an
}

func readInput(cmd *cli.Command) (string, error) {
	name := cmd.Args().Get(0)
	if name == "" || name == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", name, err)
	}
	return string(data), nil
}

func writeOutput(cmd *cli.Command, text string) error {
	name := cmd.String("output")
	if name == "" || name == "-" {
		_, err := io.WriteString(os.Stdout, text)
		return err
	}
	return os.WriteFile(name, []byte(text), 0o644)
}

func runGenerate(ctx context.Context, cmd *cli.Command) error {
	s, err := settingsForRun(cmd)
	if err != nil {
		return err
	}
	custom, err := config.LoadExclusionList(s.ExclusionList)
	if err != nil {
		return err
	}
	text, err := readInput(cmd)
	if err != nil {
		return err
	}

	eng, an := newEngine(s.Dict)
	out, err := eng.Generate(text, s.Options(custom))
	if err != nil {
		// Degraded, not fatal: the unchanged input is still written out.
		appEnv.log.Warn("Generating furigana degraded", zap.Error(err))
	}

	err = writeOutput(cmd, out)
	if dir := cmd.String("dump-dir"); dir != "" {
		if er := logger.ResetDir(dir); er != nil {
			err = multierr.Append(err, er)
		} else {
			if er := logger.DumpJSON(dir, "settings", s); er != nil {
				err = multierr.Append(err, er)
			}
			if an != nil {
				if er := logger.DumpJSON(dir, "tokens", an.Tokenize(text)); er != nil {
					err = multierr.Append(err, er)
				}
			}
		}
	}
	return err
}

func runRemove(ctx context.Context, cmd *cli.Command) error {
	text, err := readInput(cmd)
	if err != nil {
		return err
	}
	// Removal is a pure text transform, no analyzer involved.
	eng := furigana.New(nil)
	return writeOutput(cmd, eng.Remove(text))
}

func runExtract(ctx context.Context, cmd *cli.Command) error {
	s, err := settingsForRun(cmd)
	if err != nil {
		return err
	}
	text, err := readInput(cmd)
	if err != nil {
		return err
	}

	eng, _ := newEngine(s.Dict)
	words, err := eng.ExtractKanji(text)
	if err != nil {
		return err
	}
	// The engine keeps duplicates; de-duplicate here, preserving order.
	var unique []string
	for _, w := range words {
		if !slices.Contains(unique, w) {
			unique = append(unique, w)
		}
	}

	if path := cmd.String("append-to"); path != "" {
		existing, err := config.LoadExclusionList(path)
		if err != nil {
			return err
		}
		merged := existing
		for _, w := range unique {
			if !slices.Contains(merged, w) {
				merged = append(merged, w)
			}
		}
		if err := config.SaveExclusionList(path, merged); err != nil {
			return err
		}
		appEnv.log.Info("Exclusion list updated",
			zap.String("path", path), zap.Int("added", len(merged)-len(existing)))
	}

	if cmd.Bool("strip") {
		return writeOutput(cmd, eng.Remove(text))
	}
	return writeOutput(cmd, strings.Join(unique, "\n")+"\n")
}

func main() {
	app := &cli.Command{
		Name:            "furiganagen",
		Usage:           "annotate Japanese text with furigana reading guides",
		HideHelpCommand: true,
		Before:          initializeApp,
		After:           finalizeApp,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "load settings from `FILE` (YAML)"},
			&cli.StringFlag{Name: "log-level", Usage: "logging verbosity (none, normal, debug)"},
		},
		Commands: []*cli.Command{
			{
				Name:      "generate",
				Usage:     "Annotate kanji in the input with reading guides",
				Action:    runGenerate,
				ArgsUsage: "[FILE]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "scope", Usage: "dedup `SCOPE` (" + strings.Join(model.ScopeNames(), ", ") + ")"},
					&cli.StringFlag{Name: "syntax", Usage: "annotation `SYNTAX` (" + strings.Join(model.SyntaxNames(), ", ") + ")"},
					&cli.BoolFlag{Name: "exclude-headings", Usage: "leave markdown heading lines unannotated"},
					&cli.StringFlag{Name: "exclusion-list", Usage: "custom exclusion list `FILE`, one word per line"},
					&cli.StringFlag{Name: "dict", Usage: "analyzer `DICT` (" + strings.Join(tokenize.DictNames(), ", ") + ")"},
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "write result to `FILE` instead of stdout"},
					&cli.StringFlag{Name: "dump-dir", Usage: "write JSON debug dumps to `DIR`"},
				},
			},
			{
				Name:      "remove",
				Usage:     "Strip reading guides in any of the three syntaxes",
				Action:    runRemove,
				ArgsUsage: "[FILE]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "write result to `FILE` instead of stdout"},
				},
			},
			{
				Name:      "extract",
				Usage:     "List dictionary-form kanji words found in the input",
				Action:    runExtract,
				ArgsUsage: "[FILE]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "append-to", Usage: "append new words to exclusion list `FILE`"},
					&cli.BoolFlag{Name: "strip", Usage: "output the input with furigana removed instead of the word list"},
					&cli.StringFlag{Name: "dict", Usage: "analyzer `DICT` (" + strings.Join(tokenize.DictNames(), ", ") + ")"},
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "write result to `FILE` instead of stdout"},
				},
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
		os.Exit(1)
	}
}
