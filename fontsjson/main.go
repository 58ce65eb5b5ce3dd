package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/presbrey/fontsjson/fontsjson/lib"
	"github.com/presbrey/fontsjson/internal/config"
	"github.com/urfave/cli/v2"
)

func init() {
	log.SetFlags(0)
	log.SetPrefix("fontsjson: ")
}

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// newApp builds the command with its output going to stdout and stderr
func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Writer:    stdout,
		ErrWriter: stderr,
		Name:      "fontsjson",
		Usage:     "generate a JSON manifest of the font files in a folder",
		Description: "Each file becomes {key, name, url}: a unique camelCase key, the file name\n" +
			"without its extension, and the base URL joined with the file name.\n\n" +
			"Settings are read from --config (TOML or YAML), then .env and FONTSJSON_*\n" +
			"environment variables, then flags.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "TOML or YAML config file"},
			&cli.StringFlag{Name: "env-file", Usage: "dotenv file to load (default: .env if present)"},
			&cli.StringFlag{Name: "folder", Aliases: []string{"f"}, Usage: "folder containing the font files (default: ./fonts)"},
			&cli.StringFlag{Name: "base-url", Aliases: []string{"u"}, Usage: "URL prefix for every file"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "output JSON file, - for stdout (default: fonts.json)"},
			&cli.StringSliceFlag{Name: "ext", Usage: "only include files with this extension (repeatable)"},
			&cli.StringFlag{Name: "on-degenerate", Usage: "what to do with names that yield no key or are not UTF-8: abort or skip (default: abort)"},
		},
		Action: generate,
		Commands: []*cli.Command{
			{
				Name:   "schema",
				Usage:  "print the JSON Schema of the manifest",
				Action: printSchema,
			},
		},
	}
}

// loadConfig layers defaults, config file, environment and flags
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Default()

	if path := c.String("config"); path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return cfg, err
		}
	}
	if err := cfg.LoadEnv(c.String("env-file")); err != nil {
		return cfg, err
	}

	// CLI flags override everything else
	if c.IsSet("folder") {
		cfg.FolderPath = c.String("folder")
	}
	if c.IsSet("base-url") {
		cfg.BaseURL = c.String("base-url")
	}
	if c.IsSet("output") {
		cfg.OutputFile = c.String("output")
	}
	if c.IsSet("ext") {
		cfg.Extensions = c.StringSlice("ext")
	}
	if c.IsSet("on-degenerate") {
		cfg.OnDegenerate = c.String("on-degenerate")
	}

	cfg.Normalize()
	return cfg, cfg.Validate()
}

func generate(c *cli.Context) error {
	if c.NArg() > 0 {
		return cli.Exit(fmt.Sprintf("fontsjson: unexpected argument %q", c.Args().First()), 2)
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return fail(err)
	}

	report, err := lib.Generate(cfg.FolderPath, cfg.OutputFile, lib.Options{
		BaseURL:        cfg.BaseURL,
		Extensions:     cfg.Extensions,
		SkipDegenerate: cfg.OnDegenerate == config.PolicySkip,
	}, c.App.Writer)
	if err != nil {
		return fail(err)
	}

	for _, skipped := range report.Skipped {
		fmt.Fprintf(c.App.ErrWriter, "fontsjson: warning: skipped %q: %v\n", skipped.Name, skipped.Err)
	}

	if !report.Changed {
		fmt.Fprintf(c.App.ErrWriter, "fontsjson: %s already up to date\n", cfg.OutputFile)
	}

	// Keep stdout clean when it carries the manifest
	out := c.App.Writer
	if cfg.OutputFile == lib.Stdout {
		out = c.App.ErrWriter
	}
	fmt.Fprintf(out, "JSON file generated successfully: %s\n", cfg.OutputFile)
	return nil
}

func printSchema(c *cli.Context) error {
	data, err := lib.MarshalSchema()
	if err != nil {
		return fail(err)
	}
	fmt.Fprintln(c.App.Writer, string(data))
	return nil
}

func fail(err error) error {
	return cli.Exit("fontsjson: "+err.Error(), 1)
}
