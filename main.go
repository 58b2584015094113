package main

import (
	"fmt"
	"os"

	"github.com/araddon/dateparse"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/urfave/cli"

	"github.com/yawnoc/mahjong-scorer/internal/scorelog"
	"github.com/yawnoc/mahjong-scorer/internal/scoring"
	"github.com/yawnoc/mahjong-scorer/internal/stats"
	"github.com/yawnoc/mahjong-scorer/internal/tabular"
	"github.com/yawnoc/mahjong-scorer/internal/web"
	"github.com/yawnoc/mahjong-scorer/pkg/errutil"
)

func main() {
	app := cli.NewApp()

	app.Name = "mahjong-scorer"
	app.Author = "Conway"
	app.Version = "0.3.0"
	app.Usage = "score some games of Mahjong (HK rules)"
	app.ArgsUsage = "scores.txt"

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Value: "./configs/config.toml",
			Usage: "load configuration from `FILE`",
		},
		cli.StringFlag{
			Name:  "from",
			Usage: "start `DATE` for scoring (inclusive)",
		},
		cli.StringFlag{
			Name:  "to",
			Usage: "end `DATE` for scoring (exclusive)",
		},
		cli.StringFlag{
			Name:  "output, o",
			Usage: "write the TSV to `FILE` (default: <scores.txt>.tsv)",
		},
		cli.BoolFlag{
			Name:  "empty-nan",
			Usage: "render undefined ratios as empty instead of nan",
		},
		cli.StringFlag{
			Name:  "listen",
			Usage: "serve stats over http on `ADDR` instead of writing a TSV",
		},
	}

	app.Action = run
	app.Run(os.Args)
}

func run(c *cli.Context) error {
	viper.SetConfigType("toml")
	viper.SetConfigFile(c.String("config"))
	viper.ReadInConfig() // a missing config file just means defaults

	log.SetFormatter(&log.TextFormatter{DisableColors: true})
	if viper.GetBool("core.debug") {
		log.SetLevel(log.DebugLevel)
	}

	if c.NArg() != 1 {
		return cli.NewExitError("Error: expected exactly one scores file; see --help", 1)
	}
	scoresFileName := c.Args().First()

	text, err := readScoresText(scoresFileName)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("Error: %v", err), 1)
	}

	opts, err := resolveOptions(c)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("Error: %v", err), 1)
	}

	set, err := scorelog.Parse(text, opts)
	if err != nil {
		if le, ok := errutil.AsLineError(err); ok {
			return cli.NewExitError(
				fmt.Sprintf("Error (`%s`, line %d): %s", scoresFileName, le.Line, le.Message), 1)
		}
		return cli.NewExitError(fmt.Sprintf("Error (`%s`): %v", scoresFileName, err), 1)
	}

	players := stats.Aggregate(set)
	stats.Rank(players)

	emptyNaN := c.Bool("empty-nan") || viper.GetBool("output.empty_nan")

	if addr := listenAddr(c); addr != "" {
		snap := web.NewSnapshot(scoresFileName, len(set.Games), players)
		snap.StartDate = opts.StartDate
		snap.EndDate = opts.EndDate
		snap.EmptyNaN = emptyNaN
		if err := web.Serve(addr, snap); err != nil {
			return cli.NewExitError(fmt.Sprintf("Error: %v", err), 1)
		}
		return nil
	}

	outputFileName := c.String("output")
	if outputFileName == "" {
		outputFileName = scoresFileName + ".tsv"
	}
	file, err := os.Create(outputFileName)
	if err != nil {
		return cli.NewExitError(
			fmt.Sprintf("Error: %v", errors.Wrap(err, "create output file")), 1)
	}
	defer file.Close()

	if err := tabular.Write(file, players, tabular.Options{EmptyNaN: emptyNaN}); err != nil {
		return cli.NewExitError(
			fmt.Sprintf("Error: %v", errors.Wrap(err, "write output file")), 1)
	}

	log.Debugf("wrote %s (%d games, %d players)",
		outputFileName, len(set.Games), len(set.Names))
	return nil
}

func readScoresText(name string) (string, error) {
	info, err := os.Stat(name)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.Errorf("file `%s` not found", name)
		}
		return "", errors.Wrap(err, "stat scores file")
	}
	if info.IsDir() {
		return "", errors.Errorf("`%s` is a directory, not a file", name)
	}

	text, err := os.ReadFile(name)
	if err != nil {
		return "", errors.Wrap(err, "read scores file")
	}
	return string(text), nil
}

// resolveOptions layers the config file over the table defaults, then the
// date-window flags over that.
func resolveOptions(c *cli.Context) (scorelog.Options, error) {
	opts := scorelog.DefaultOptions()

	if viper.IsSet("scoring.base") {
		opts.Base = viper.GetFloat64("scoring.base")
	}
	if viper.IsSet("scoring.maximum_faan") {
		opts.MaximumFaan = viper.GetInt("scoring.maximum_faan")
	}
	if viper.IsSet("scoring.responsibility") {
		r, err := scoring.ParseResponsibility(viper.GetString("scoring.responsibility"))
		if err != nil {
			return opts, err
		}
		opts.Responsibility = r
	}
	if viper.IsSet("scoring.spiciness") {
		s, err := scoring.ParseSpiciness(viper.GetString("scoring.spiciness"))
		if err != nil {
			return opts, err
		}
		opts.Spiciness = s
	}

	var err error
	if from := c.String("from"); from != "" {
		if opts.StartDate, err = normalizeDate(from); err != nil {
			return opts, err
		}
	}
	if to := c.String("to"); to != "" {
		if opts.EndDate, err = normalizeDate(to); err != nil {
			return opts, err
		}
	}
	return opts, nil
}

// normalizeDate accepts any common date format and yields the zero-padded
// yyyy-mm-dd form the chronology comparisons rely on.
func normalizeDate(s string) (string, error) {
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return "", errors.Wrapf(err, "bad date `%s`", s)
	}
	return t.Format("2006-01-02"), nil
}

func listenAddr(c *cli.Context) string {
	if addr := c.String("listen"); addr != "" {
		return addr
	}
	if viper.GetBool("webserver.enable") {
		return viper.GetString("webserver.addr")
	}
	return ""
}
