package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/StudioSol/set"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"

	"ringcalc/report"
	"ringcalc/sampler"
	"ringcalc/service"
	"ringcalc/tools/config"
	"ringcalc/types"
	ringlog "ringcalc/utils/log"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:     "ringcalc",
		HelpName: "ringcalc",
		Usage:    "Numerical integral and derivative of a sampled function",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "configuration directory",
				Value:   config.ConfigPath,
			},
		},
		Before: func(c *cli.Context) error {
			config.ConfigPath = c.String("config")
			return config.LoadConf()
		},
		Commands: []*cli.Command{
			{
				Name:     "run",
				HelpName: "run",
				Usage:    "Sample a function and print its integral and derivatives",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "samples",
						Aliases: []string{"n"},
						Usage:   "eg. 10 (whole samples, x = 1..n)",
					},
					&cli.IntFlag{
						Name:    "resolution",
						Aliases: []string{"r"},
						Usage:   "eg. 1000 (sub-samples per whole sample)",
					},
					&cli.StringFlag{
						Name:    "interval",
						Aliases: []string{"i"},
						Usage:   "eg. 1ms (overrides resolution, must divide 1s)",
					},
					&cli.StringSliceFlag{
						Name:    "function",
						Aliases: []string{"f"},
						Usage:   "eg. cube (repeatable)",
					},
					&cli.BoolFlag{Name: "histogram", Usage: "plot derivative distribution"},
					&cli.BoolFlag{Name: "progress", Usage: "show sampling progress"},
					&cli.BoolFlag{Name: "dump", Usage: "print every buffer slot"},
					&cli.BoolFlag{Name: "watch", Usage: "rerun when the configuration changes"},
				},
				Action: runAction,
			},
			{
				Name:     "functions",
				HelpName: "functions",
				Usage:    "List the functions that can be sampled",
				Action: func(c *cli.Context) error {
					for _, name := range sampler.Names() {
						fn, err := sampler.Lookup(name)
						if err != nil {
							return err
						}
						fmt.Fprintf(c.App.Writer, "%-8s %s\n", name, fn.Expression)
					}
					return nil
				},
			},
		},
	}
}

func runAction(c *cli.Context) error {
	logger, err := ringlog.NewLogger(c.App.ErrWriter)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runOnce(ctx, c, logger); err != nil {
		return err
	}
	if !c.Bool("watch") {
		return nil
	}

	if viper.ConfigFileUsed() == "" {
		return errors.New("watch needs a configuration file")
	}
	changed := make(chan string, 1)
	config.WatchConfig(func(name string) {
		select {
		case changed <- name:
		default:
		}
	})
	logger.Infof("watching %s", viper.ConfigFileUsed())

	for {
		select {
		case <-ctx.Done():
			return nil
		case name := <-changed:
			logger.Infof("配置文件修改更新: %s", name)
			if err := config.LoadConf(); err != nil {
				logger.Error(err)
				continue
			}
			if err := runOnce(ctx, c, logger); err != nil {
				logger.Error(err)
			}
		}
	}
}

func runOnce(ctx context.Context, c *cli.Context, logger *logrus.Logger) error {
	setting := applyFlags(c, config.Setting())

	for _, name := range functionNames(c, setting.Function) {
		s := setting
		s.Function = name

		runner := service.NewRunner(s, logger)
		if s.Progress {
			runner.WithProgress(c.App.ErrWriter)
		}
		result, err := runner.Run(ctx)
		if err != nil {
			return errors.Wrapf(err, "run %s", name)
		}
		if err := printResult(c.App.Writer, result); err != nil {
			return err
		}
	}
	return nil
}

func printResult(w io.Writer, result *service.Result) error {
	if err := report.Summary(w, result); err != nil {
		return err
	}
	if err := report.Derivatives(w, result); err != nil {
		return err
	}
	if result.Setting.Dump {
		if err := report.Buffer(w, result.Slots); err != nil {
			return err
		}
	}
	if result.Setting.Histogram {
		fmt.Fprintln(w, "------ DERIVATIVE -------")
		if err := report.Histogram(w, result.Derivatives, result.Setting.Bins); err != nil {
			return err
		}
	}
	return nil
}

// applyFlags 命令行参数覆盖配置文件
func applyFlags(c *cli.Context, s types.SamplerSetting) types.SamplerSetting {
	if c.IsSet("samples") {
		s.SampleCount = c.Int("samples")
	}
	if c.IsSet("resolution") {
		s.ResolutionFactor = c.Int("resolution")
		s.Interval = ""
	}
	if c.IsSet("interval") {
		s.Interval = c.String("interval")
	}
	if c.IsSet("histogram") {
		s.Histogram = c.Bool("histogram")
	}
	if c.IsSet("progress") {
		s.Progress = c.Bool("progress")
	}
	if c.IsSet("dump") {
		s.Dump = c.Bool("dump")
	}
	return s
}

// functionNames keeps the order the functions were given in and drops repeats.
func functionNames(c *cli.Context, fallback string) []string {
	if !c.IsSet("function") {
		return []string{fallback}
	}
	names := set.NewLinkedHashSetString()
	for _, name := range c.StringSlice("function") {
		names.Add(name)
	}
	var out []string
	for name := range names.Iter() {
		out = append(out, name)
	}
	return out
}
