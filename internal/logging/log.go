//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package logging provides a single shared, pre-configured logger used by
// every other package. All callers get the same backend and level; there is
// no per-package logger name, unlike the teacher's franky_logging package.
package logging

import (
	"os"
	"sync"

	gologging "github.com/op/go-logging"
)

var (
	once sync.Once
	log  *gologging.Logger
)

// GetLog returns the engine's shared logger, creating and configuring its
// backend on first use.
func GetLog() *gologging.Logger {
	once.Do(func() {
		log = gologging.MustGetLogger("corvid")
		backend := gologging.NewLogBackend(os.Stderr, "", 0)
		format := gologging.MustStringFormatter(
			`%{time:15:04:05.000} %{shortfile}:%{shortfunc} %{level:7s}:  %{message}`,
		)
		backendFormatter := gologging.NewBackendFormatter(backend, format)
		leveled := gologging.AddModuleLevel(backendFormatter)
		leveled.SetLevel(gologging.INFO, "")
		gologging.SetBackend(leveled)
	})
	return log
}

// GetTestLog returns the shared logger for use in tests.
func GetTestLog() *gologging.Logger {
	return GetLog()
}

// SetLevel adjusts the shared logger's verbosity at runtime, used by the
// UCI "setoption name LogLevel" handler.
func SetLevel(level gologging.Level) {
	GetLog()
	gologging.SetLevel(level, "corvid")
}
