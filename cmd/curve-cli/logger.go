// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"io"
	"path"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ava-labs/avalanchego/utils/logging"
)

// factory builds loggers whose console output can be muted, which the
// avalanchego factory does not allow.
type factory struct {
	config  logging.Config
	console io.Writer

	lock    sync.Mutex
	loggers map[string]logging.Logger
}

func newFactory(config logging.Config, console io.Writer) *factory {
	return &factory{
		config:  config,
		console: console,
		loggers: make(map[string]logging.Logger),
	}
}

// Assumes [f.lock] is held
func (f *factory) makeLogger(config logging.Config) (logging.Logger, error) {
	if _, ok := f.loggers[config.LoggerName]; ok {
		return nil, fmt.Errorf("logger with name %q already exists", config.LoggerName)
	}

	var consoleWriter io.WriteCloser
	if config.DisableWriterDisplaying {
		consoleWriter = newDiscardWriteCloser(io.Discard)
	} else {
		consoleWriter = newDiscardWriteCloser(f.console)
	}
	consoleCore := logging.NewWrappedCore(config.DisplayLevel, consoleWriter, logging.Colors.ConsoleEncoder())
	consoleCore.WriterDisabled = config.DisableWriterDisplaying
	cores := []logging.WrappedCore{consoleCore}

	if config.Directory != "" {
		rw := &lumberjack.Logger{
			Filename:   path.Join(config.Directory, config.LoggerName+".log"),
			MaxSize:    config.MaxSize,  // megabytes
			MaxAge:     config.MaxAge,   // days
			MaxBackups: config.MaxFiles, // files
			Compress:   config.Compress,
		}
		fileCore := logging.NewWrappedCore(config.LogLevel, rw, config.LogFormat.FileEncoder())
		cores = append(cores, fileCore)
	}

	prefix := config.LogFormat.WrapPrefix(config.MsgPrefix)
	l := logging.NewLogger(prefix, cores...)
	f.loggers[config.LoggerName] = l
	return l, nil
}

func (f *factory) Make(name string) (logging.Logger, error) {
	f.lock.Lock()
	defer f.lock.Unlock()

	config := f.config
	config.LoggerName = name
	return f.makeLogger(config)
}

func (f *factory) Close() {
	f.lock.Lock()
	defer f.lock.Unlock()

	for _, l := range f.loggers {
		l.Stop()
	}
	f.loggers = nil
}

// discardWriteCloser never closes the underlying writer, which is shared
// with the rest of the process.
type discardWriteCloser struct {
	io.Writer
}

func newDiscardWriteCloser(w io.Writer) *discardWriteCloser {
	return &discardWriteCloser{w}
}

// Close implements the io.Closer interface.
func (*discardWriteCloser) Close() error {
	return nil
}
