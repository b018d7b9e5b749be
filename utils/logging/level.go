// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Level aliases the zap level numbering so a Level can be handed directly to
// a zapcore.Core as its enabler threshold.
type Level int8

const (
	Debug Level = Level(zapcore.DebugLevel)
	Info  Level = Level(zapcore.InfoLevel)
	Warn  Level = Level(zapcore.WarnLevel)
	Error Level = Level(zapcore.ErrorLevel)
	Fatal Level = Level(zapcore.FatalLevel)
	Off   Level = Fatal + 1
)

const (
	debugStr = "DEBUG"
	infoStr  = "INFO"
	warnStr  = "WARN"
	errorStr = "ERROR"
	fatalStr = "FATAL"
	offStr   = "OFF"
)

// Inverse of Level.String()
func ToLevel(l string) (Level, error) {
	switch strings.ToUpper(l) {
	case debugStr:
		return Debug, nil
	case infoStr:
		return Info, nil
	case warnStr:
		return Warn, nil
	case errorStr:
		return Error, nil
	case fatalStr:
		return Fatal, nil
	case offStr:
		return Off, nil
	default:
		return Off, fmt.Errorf("unknown log level: %q", l)
	}
}

func (l Level) String() string {
	switch l {
	case Debug:
		return debugStr
	case Info:
		return infoStr
	case Warn:
		return warnStr
	case Error:
		return errorStr
	case Fatal:
		return fatalStr
	case Off:
		return offStr
	default:
		return "UNKNO"
	}
}
