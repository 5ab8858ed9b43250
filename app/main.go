package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	log "github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
)

type options struct {
	Server ServerCmd `command:"server" description:"run the web ui and api server"`
	Get    GetCmd    `command:"get" description:"print the current theme"`
	Set    SetCmd    `command:"set" description:"set the theme: light, dark or system"`
	Toggle ToggleCmd `command:"toggle" description:"flip between light and dark"`
	Watch  WatchCmd  `command:"watch" description:"follow system color scheme changes and print every change"`
	Export ExportCmd `command:"export" description:"export stored client preferences"`
	Import ImportCmd `command:"import" description:"import client preferences from an export file"`

	Version bool `short:"V" long:"version" description:"show version and exit"`
}

var revision = "unknown"

func main() {
	var opts options
	p := flags.NewParser(&opts, flags.PassDoubleDash|flags.HelpFlag)
	p.SubcommandsOptional = true
	if _, err := p.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			p.WriteHelp(os.Stderr)
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("dusk %s\n", revision)
		os.Exit(0)
	}

	if p.Active == nil {
		p.WriteHelp(os.Stderr)
		os.Exit(2)
	}
}

// setupLogs configures lgr to write to out, with caller info in debug mode.
func setupLogs(debug bool, out io.Writer) {
	logOpts := []log.Option{log.Msec, log.Out(out), log.Err(out)}
	if debug {
		logOpts = append(logOpts, log.Debug, log.CallerFunc, log.CallerPkg, log.CallerFile)
	}
	log.Setup(logOpts...)
}

// signals cancels the context on SIGTERM/SIGINT and dumps goroutines on SIGQUIT.
func signals(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	go func() {
		stacktrace := make([]byte, 8192)
		for sig := range sigChan {
			switch sig {
			case syscall.SIGQUIT:
				length := runtime.Stack(stacktrace, true)
				fmt.Println(string(stacktrace[:length]))
			case syscall.SIGTERM, syscall.SIGINT:
				cancel()
			}
		}
	}()
	signal.Notify(sigChan, syscall.SIGQUIT, syscall.SIGTERM, syscall.SIGINT)
}

// validateBaseURL normalizes the base URL: leading slash required, trailing slash dropped, "/" means none.
func validateBaseURL(baseURL string) (string, error) {
	if baseURL == "" {
		return "", nil
	}
	if !strings.HasPrefix(baseURL, "/") {
		return "", fmt.Errorf("base URL must start with /, got %q", baseURL)
	}
	return strings.TrimRight(baseURL, "/"), nil
}
