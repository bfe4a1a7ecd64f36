// This file is part of b93 - https://github.com/derrickturk/b93
//
// Copyright 2023 The b93 Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/derrickturk/b93/vm"
	"github.com/pkg/errors"
)

type options struct {
	debug   bool
	dump    bool
	raw     bool
	trace   bool
	seed    int64
	seedSet bool
	steps   int64
}

var errUsage = errors.New("usage error")

func parseFlags(args []string, stderr io.Writer) (*options, []string, error) {
	var o options
	fs := flag.NewFlagSet("b93", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: b93 [flags] [program file]\n")
		fs.PrintDefaults()
	}
	cfgFile := fs.String("config", "", "read default flag values from TOML file `filename`")
	fs.BoolVar(&o.debug, "debug", false, "enable debug diagnostics")
	fs.BoolVar(&o.dump, "dump", false, "dump stack, instruction pointer and playfield to stderr upon exit")
	fs.BoolVar(&o.raw, "raw", false, "switch the terminal to raw mode")
	fs.BoolVar(&o.trace, "trace", false, "log every step to stderr")
	fs.Int64Var(&o.seed, "seed", 0, "`seed` for the '?' instruction (default: time based)")
	fs.Int64Var(&o.steps, "steps", 0, "abort after `n` steps (default: no limit)")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, nil, err
		}
		// the flag package has already reported the error
		return nil, nil, errUsage
	}
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if *cfgFile != "" {
		c, err := loadConfig(*cfgFile)
		if err != nil {
			return nil, nil, err
		}
		for name, v := range c.flags() {
			if set[name] {
				continue
			}
			if err = fs.Set(name, v); err != nil {
				return nil, nil, errors.Wrapf(err, "%s: bad value for %s", *cfgFile, name)
			}
			set[name] = true
		}
	}
	o.seedSet = set["seed"]
	if fs.NArg() > 1 {
		fs.Usage()
		return nil, nil, errUsage
	}
	return &o, fs.Args(), nil
}

// promptReader flushes pending output before blocking on input, so that
// prompts written by the program are visible.
type promptReader struct {
	*bufio.Reader
	w *bufio.Writer
}

func (r *promptReader) flush() {
	if r.Buffered() == 0 {
		r.w.Flush()
	}
}

func (r *promptReader) ReadByte() (byte, error) {
	r.flush()
	return r.Reader.ReadByte()
}

func (r *promptReader) ReadString(delim byte) (string, error) {
	r.flush()
	return r.Reader.ReadString(delim)
}

func newTraceLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// traceRun runs the program one step at a time, logging each step.
func traceRun(i *vm.Instance, in vm.Reader, out io.Writer, rnd vm.Rand, limit int64, log *slog.Logger) error {
	ctx := context.Background()
	for {
		if limit > 0 && i.StepCount() >= limit {
			return errors.Wrapf(vm.ErrStepLimit, "after %d steps @(%d,%d)", i.StepCount(), i.Row, i.Col)
		}
		if log.Enabled(ctx, slog.LevelDebug) {
			log.Debug("step",
				"row", i.Row,
				"col", i.Col,
				"op", string(rune(i.Next())),
				"dir", i.Dir,
				"depth", i.Depth())
		}
		st, err := i.Step(in, out, rnd)
		if err != nil {
			return errors.Wrapf(err, "fault @(%d,%d)", i.Row, i.Col)
		}
		if st == vm.Halted {
			log.Debug("halt", "steps", i.StepCount())
			return nil
		}
	}
}

func atExit(i *vm.Instance, err error, debug bool, stderr io.Writer) int {
	if err == nil {
		return 0
	}
	if !debug {
		fmt.Fprintf(stderr, "\n%v\n", err)
		return 1
	}
	fmt.Fprintf(stderr, "\n%+v\n", err)
	if i != nil {
		fmt.Fprintf(stderr, "IP: (%d,%d) %v, Stack: %v\n", i.Row, i.Col, i.Dir, i.Data())
	}
	return 1
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	o, files, err := parseFlags(args, stderr)
	switch {
	case err == flag.ErrHelp:
		return 0
	case err == errUsage:
		return 2
	case err != nil:
		fmt.Fprintf(stderr, "%v\n", err)
		return 2
	}

	if o.raw {
		if f, ok := stdin.(*os.File); ok {
			if tearDown, err := setRawIO(f.Fd()); err == nil {
				defer tearDown()
			}
		}
	}

	seed := o.seed
	if !o.seedSet {
		seed = time.Now().UnixNano()
	}
	rnd := rand.New(rand.NewSource(seed))
	out := bufio.NewWriter(stdout)
	in := &promptReader{bufio.NewReader(stdin), out}

	opts := []vm.Option{
		vm.Input(in),
		vm.Output(out),
		vm.WithRand(rnd),
		vm.StepLimit(o.steps),
	}
	var i *vm.Instance
	if len(files) > 0 {
		i, err = vm.LoadFile(files[0], opts...)
	} else {
		i, err = vm.Load(stdin, opts...)
	}
	if err == nil {
		if o.trace {
			err = traceRun(i, in, out, rnd, o.steps, newTraceLogger(stderr))
		} else {
			err = i.Run()
		}
	}
	if ferr := out.Flush(); err == nil && ferr != nil {
		err = errors.Wrap(ferr, "flush failed")
	}
	if o.dump && i != nil {
		i.Dump(stderr)
		fmt.Fprintln(stderr)
	}
	return atExit(i, err, o.debug, stderr)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
