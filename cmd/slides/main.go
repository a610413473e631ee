// Command slides builds worship-service slide outlines from the command line.
//
// Usage:
//
//	slides build --passage "John 3:16-18" -s "Amazing Grace" -t "Be Thou My Vision"
//	slides passage "Psalm 23" [--version kjv]
//	slides song "Amazing Grace" [--translate] [--target Korean]
//	slides songs [term]
//	slides add-song <title> <file> [--license "CCLI ..."]
//	slides config show|init
//	slides check
//	slides sundays [--count 5] [--past]
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"service-slides/internal/logger"
	"service-slides/models"
	"service-slides/services"
)

const version = "0.1.0"

// Globals are flags shared by every command.
type Globals struct {
	EnvFile  []string `name:"env-file" help:"Dotenv files loaded before the config" default:".env"`
	LogLevel string   `name:"log-level" help:"Override log level (debug, info, warn, error)"`
	SongsDir string   `name:"songs-dir" help:"Override the song library directory" type:"path"`
}

// CLI defines the command-line interface for slides.
type CLI struct {
	Globals

	Build   BuildCmd   `cmd:"" help:"Build the outline for a whole service"`
	Passage PassageCmd `cmd:"" help:"Render a scripture passage"`
	Song    SongCmd    `cmd:"" help:"Render a single song"`
	Songs   SongsCmd   `cmd:"" help:"List or search the song library"`
	AddSong AddSongCmd `cmd:"" name:"add-song" help:"Add lyrics to the song library"`
	Config  ConfigCmd  `cmd:"" help:"Show or create the config file"`
	Check   CheckCmd   `cmd:"" help:"Check configured backends"`
	Sundays SundaysCmd `cmd:"" help:"List upcoming Sundays"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// config loads dotenv files, the config file and environment overrides, in that order.
func (g *Globals) config() (*models.Config, error) {
	if err := models.LoadEnv(g.EnvFile...); err != nil {
		return nil, err
	}

	cfg, err := models.LoadConfig()
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()

	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	if g.SongsDir != "" {
		cfg.SongsDirectory = g.SongsDir
	}
	logger.SetLevel(logger.ParseLevel(cfg.LogLevel))
	return cfg, nil
}

func (g *Globals) builder() (*services.DeckBuilder, error) {
	cfg, err := g.config()
	if err != nil {
		return nil, err
	}
	return services.NewDeckBuilderFromConfig(cfg)
}

// BuildCmd builds a full service deck.
type BuildCmd struct {
	Passage   string   `help:"Scripture reference, e.g. \"John 3:16-18\""`
	Songs     []string `name:"song" short:"s" sep:"none" help:"Song to include, in order"`
	Translate []string `short:"t" sep:"none" help:"Song to include with translated lines"`
	Target    string   `help:"Target language for translated songs"`
	Version   string   `help:"Bible version code"`
	Date      string   `help:"Service date as YYYY-MM-DD (default: next Sunday)"`
	Out       string   `short:"o" help:"Write the outline to a file instead of stdout" type:"path"`
}

func (c *BuildCmd) Run(ctx *kong.Context, g *Globals) error {
	if c.Passage == "" && len(c.Songs) == 0 && len(c.Translate) == 0 {
		return errors.New("nothing to build: give --passage or at least one song")
	}

	date := models.NextSunday(time.Now(), 1)
	if c.Date != "" {
		d, err := time.ParseInLocation("2006-01-02", c.Date, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --date: %w", err)
		}
		date = d
	}

	cfg, err := g.config()
	if err != nil {
		return err
	}
	if c.Target != "" {
		cfg.TargetLanguage = c.Target
	}
	b, err := services.NewDeckBuilderFromConfig(cfg)
	if err != nil {
		return err
	}
	b.SetProgressCallback(func(stage string, percent int, message string) {
		logger.Debug("[%3d%%] %s: %s", percent, stage, message)
	})

	songs := append([]string(nil), c.Songs...)
	for _, t := range c.Translate {
		if !contains(songs, t) {
			songs = append(songs, t)
		}
	}

	deck := models.NewServiceDeck(date, c.Passage, songs)
	deck.BibleVersion = c.Version
	for _, t := range c.Translate {
		deck.TranslateSong(t)
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	out, err := b.Build(runCtx, deck)
	if err != nil {
		return err
	}

	if c.Out == "" {
		_, err = io.WriteString(ctx.Stdout, out)
		return err
	}
	if err := os.WriteFile(c.Out, []byte(out), 0644); err != nil {
		return fmt.Errorf("failed to write outline: %w", err)
	}
	fmt.Fprintf(ctx.Stdout, "Wrote %s\n", c.Out)
	return nil
}

// PassageCmd renders one scripture passage.
type PassageCmd struct {
	Reference string `arg:"" help:"Scripture reference"`
	Version   string `help:"Bible version code"`
}

func (c *PassageCmd) Run(ctx *kong.Context, g *Globals) error {
	b, err := g.builder()
	if err != nil {
		return err
	}
	return b.BuildPassage(context.Background(), c.Reference, c.Version, services.NewOutlineRenderer(ctx.Stdout))
}

// SongCmd renders one song.
type SongCmd struct {
	Name      string `arg:"" help:"Song title"`
	Translate bool   `help:"Add a translated line under each line"`
	Target    string `help:"Target language for --translate"`
}

func (c *SongCmd) Run(ctx *kong.Context, g *Globals) error {
	cfg, err := g.config()
	if err != nil {
		return err
	}
	if c.Target != "" {
		cfg.TargetLanguage = c.Target
	}
	b, err := services.NewDeckBuilderFromConfig(cfg)
	if err != nil {
		return err
	}
	return b.BuildSong(context.Background(), c.Name, c.Translate, services.NewOutlineRenderer(ctx.Stdout))
}

// SongsCmd lists the library, or the titles matching a term.
type SongsCmd struct {
	Term string `arg:"" optional:"" help:"Case-insensitive search term"`
}

func (c *SongsCmd) Run(ctx *kong.Context, g *Globals) error {
	cfg, err := g.config()
	if err != nil {
		return err
	}
	lib := services.NewSongLibrary(cfg.SongsDirectory)

	var titles []string
	if c.Term == "" {
		titles, err = lib.List()
	} else {
		titles, err = lib.Search(c.Term)
	}
	if err != nil {
		return err
	}

	if len(titles) == 0 {
		fmt.Fprintf(ctx.Stdout, "No songs found in %s\n", lib.Dir())
		return nil
	}
	for _, t := range titles {
		fmt.Fprintln(ctx.Stdout, t)
	}
	return nil
}

// AddSongCmd stores a lyric body in the library.
type AddSongCmd struct {
	Title   string `arg:"" help:"Song title"`
	File    string `arg:"" help:"File with bracket-labelled lyrics, or - for stdin"`
	License string `help:"Licence line stored under the title"`
}

func (c *AddSongCmd) Run(ctx *kong.Context, g *Globals) error {
	cfg, err := g.config()
	if err != nil {
		return err
	}

	var body []byte
	if c.File == "-" {
		body, err = io.ReadAll(os.Stdin)
	} else {
		body, err = os.ReadFile(c.File)
	}
	if err != nil {
		return fmt.Errorf("failed to read lyrics: %w", err)
	}

	path, err := services.NewSongLibrary(cfg.SongsDirectory).Save(c.Title, c.License, string(body))
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.Stdout, "Saved %s\n", path)
	return nil
}

// ConfigCmd groups config file operations.
type ConfigCmd struct {
	Show ConfigShowCmd `cmd:"" help:"Print the effective config with keys masked"`
	Init ConfigInitCmd `cmd:"" help:"Write a default config file"`
}

type ConfigShowCmd struct{}

func (c *ConfigShowCmd) Run(ctx *kong.Context, g *Globals) error {
	cfg, err := g.config()
	if err != nil {
		return err
	}

	shown := *cfg
	shown.GeminiKey = maskKey(shown.GeminiKey)
	shown.DeepSeekKey = maskKey(shown.DeepSeekKey)

	data, err := json.MarshalIndent(&shown, "", "    ")
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.Stdout, "# %s\n%s\n", cfg.ConfigPath(), data)
	return nil
}

type ConfigInitCmd struct {
	Force bool `help:"Overwrite an existing config file"`
}

func (c *ConfigInitCmd) Run(ctx *kong.Context) error {
	cfg := models.DefaultConfig()
	if _, err := os.Stat(cfg.ConfigPath()); err == nil && !c.Force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", cfg.ConfigPath())
	}
	if err := cfg.Save(); err != nil {
		return err
	}
	fmt.Fprintf(ctx.Stdout, "Wrote %s\n", cfg.ConfigPath())
	return nil
}

// CheckCmd reports which configured backends are usable.
type CheckCmd struct{}

func (c *CheckCmd) Run(ctx *kong.Context, g *Globals) error {
	cfg, err := g.config()
	if err != nil {
		return err
	}

	results := services.CheckDependencies(cfg)
	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	failed := 0
	for _, name := range names {
		if err := results[name]; err != nil {
			failed++
			fmt.Fprintf(ctx.Stdout, "  %s: %v\n", name, err)
		} else {
			fmt.Fprintf(ctx.Stdout, "  %s: OK\n", name)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(names))
	}
	return nil
}

// SundaysCmd lists upcoming service dates.
type SundaysCmd struct {
	Count int  `short:"n" help:"Number of Sundays to list" default:"5"`
	Past  bool `help:"List past Sundays instead, most recent first"`
}

func (c *SundaysCmd) Run(ctx *kong.Context) error {
	now := time.Now()
	for n := 1; n <= c.Count; n++ {
		d := models.NextSunday(now, n)
		if c.Past {
			d = models.PreviousSunday(now, n)
		}
		fmt.Fprintf(ctx.Stdout, "%d. %s\n", n, d.Format("2006-01-02"))
	}
	return nil
}

type VersionCmd struct{}

func (c *VersionCmd) Run(ctx *kong.Context) error {
	fmt.Fprintf(ctx.Stdout, "slides %s\n", version)
	return nil
}

func maskKey(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 4 {
		return "****"
	}
	return "****" + key[len(key)-4:]
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}

func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("slides"),
		kong.Description("Build scripture and song slide outlines for a worship service"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Bind(&cli.Globals),
	}, options...)
	return kong.New(cli, options...)
}

func main() {
	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}
