// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"dsa/internal/cli"
	"dsa/internal/config"
	"dsa/internal/version"
)

func main() {
	setupFlagsAndEnvParser()

	if viper.GetBool("version") {
		fmt.Println(version.Print())
		if viper.GetBool("debug") {
			if info, ok := debug.ReadBuildInfo(); ok {
				fmt.Print(version.FormatBuildInfo(info))
			}
		}
		return
	}

	setupLogger()

	if viper.GetBool("no-color") {
		color.NoColor = true
	}

	cfg := mustParseConfig()

	app := cli.App{
		Config: cfg,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		JSON:   viper.GetBool("json"),
	}

	if err := app.Run(pflag.Args()); err != nil {
		if errors.Is(err, cli.ErrUsage) || errors.Is(err, cli.ErrUnknownCommand) {
			_, _ = fmt.Fprint(os.Stderr, cli.Usage)
		}

		errExit(err)
	}
}

func setupFlagsAndEnvParser() {
	pflag.String("config-file", "dsa.toml", "path to config file")

	pflag.Bool("log-json", false, "log as json format")
	pflag.String("log-level", "warn", "log level")
	pflag.String("log-file", "", "also write log to this file, rotated")

	pflag.Bool("json", false, "print command output as json")
	pflag.Bool("no-color", false, "disable colored output")
	pflag.Bool("debug", false, "enable debug mode")
	pflag.Bool("version", false, "print version and exit")

	// this avoids 'pflag: help requested' error when calling for help message.
	if slices.Contains(os.Args[1:], "--help") || slices.Contains(os.Args[1:], "-h") {
		_, _ = fmt.Fprint(os.Stderr, cli.Usage, "\nflags:\n")
		pflag.PrintDefaults()
		_, _ = fmt.Fprintln(os.Stderr, "\nNote: every flag can also be set with a DSA_ prefixed env, e.g. DSA_LOG_LEVEL.")
		os.Exit(0)
		return
	}

	// flags stop at the command name, so `heap-sort -3 1` is not parsed as a flag.
	pflag.CommandLine.SetInterspersed(false)
	pflag.Parse()

	viper.SetEnvPrefix("DSA")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	lo.Must0(viper.BindPFlags(pflag.CommandLine), "failed to parse combine argument with env")
}

func errExit(msg ...any) {
	_, _ = fmt.Fprintln(os.Stderr, msg...)
	os.Exit(1)
}

func parseLogLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	}

	errExit(fmt.Sprintf("unknown log level %q, only trace/debug/info/warn/error is allowed", s))

	return zerolog.NoLevel
}

// setupLogger writes logs to stderr, stdout is reserved for command output.
func setupLogger() {
	jsonLog := viper.GetBool("log-json")
	logFile := viper.GetString("log-file")
	logLevel := parseLogLevel(viper.GetString("log-level"))

	if viper.GetBool("debug") {
		logLevel = min(logLevel, zerolog.DebugLevel)
	}

	var w io.Writer = os.Stderr

	if !jsonLog {
		w = zerolog.ConsoleWriter{Out: os.Stderr, NoColor: viper.GetBool("no-color")}
	}

	if logFile != "" {
		rotation := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, //days
		}
		w = zerolog.MultiLevelWriter(rotation, w)
	}

	log.Logger = log.Output(w).Level(logLevel)
}

func mustParseConfig() config.Config {
	cfg, err := config.LoadFromFile(viper.GetString("config-file"))
	if err != nil {
		errExit("failed to load config", err)
	}

	log.Debug().
		Int("heap", cfg.Heap.InitialCapacity).
		Int("stack", cfg.Stack.InitialCapacity).
		Msg("config loaded")

	return cfg
}
