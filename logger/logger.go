// Package logger builds the CLI's zap logger and writes JSON debug dumps
// of intermediate token streams.
package logger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Prepare returns the configured console logger. Level is one of none,
// normal, debug; everything goes to stderr so annotated text on stdout
// stays clean for piping.
func Prepare(level string) (*zap.Logger, error) {
	var enab zapcore.LevelEnabler
	switch level {
	case "none":
		return zap.NewNop(), nil
	case "normal":
		enab = zapcore.InfoLevel
	case "debug":
		enab = zapcore.DebugLevel
	default:
		return nil, fmt.Errorf("unknown log level %q", level)
	}
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(os.Stderr), enab)
	return zap.New(core), nil
}

// ResetDir ensures the dump directory exists and removes stale .json dumps
// so a run starts clean.
func ResetDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return err
	}
	for _, f := range files {
		// ignore individual remove errors but keep cleaning the rest
		_ = os.Remove(f)
	}
	return nil
}

// DumpJSON writes v as pretty JSON to dir/<name>.json. It writes to a
// temporary file first and renames to the final path to avoid partial
// files.
func DumpJSON(dir, name string, v any) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	final := filepath.Join(dir, filepath.Base(name)+".json")
	tmp := final + ".tmp"
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, final); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
