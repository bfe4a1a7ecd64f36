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

// The b93 command runs Befunge-93 programs using the package
// github.com/derrickturk/b93/vm.
//
// Usage:
//
//	b93 [flags] [program file]
//
// If no program file is given, the program is read from standard input. At run
// time, the '&' and '~' instructions read from standard input and the '.' and
// ',' instructions write to standard output.
//
// Flags:
//
//	-config filename
//		  read default flag values from a TOML file
//	-debug
//		  enable debug diagnostics
//	-dump
//		  dump the stack, instruction pointer and playfield to stderr upon exit
//	-raw
//		  switch the terminal to raw mode
//	-seed int
//		  seed for the '?' instruction (default: time based)
//	-steps int
//		  abort after that many steps (default: no limit)
//	-trace
//		  log every step to stderr
//
// -config: the configuration file may contain any of the following keys. Flags
// given on the command line take precedence.
//
//	seed = 42
//	max_steps = 1000000
//	raw = false
//	dump = false
//	trace = false
//
// -debug: on error, print the full error stack trace.
//
// -raw: upon startup, b93 switches the terminal to raw mode so that the '~'
// instruction gets key presses as soon as they are typed. This has no effect
// if stdin is not a terminal. Note that in raw mode, the '&' instruction still
// reads a full line, without any line editing facilities.
//
// -trace: each step is logged to stderr with the instruction pointer position,
// the instruction, direction and stack depth.
//
// b93 exits with status 1 if the program fails and 2 on usage errors.
package main
