// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func TestRun_WritesFile(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "sine.wav")
	core, logs := observer.New(zapcore.InfoLevel)

	stderr := new(bytes.Buffer)
	if code := run([]string{"sine", out, "44100", "1.0", "440", "0.5"}, stderr, zap.New(core)); code != 0 {
		t.Fatalf("run() = %d, want 0; stderr: %s", code, stderr)
	}

	st, err := os.Stat(out)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if st.Size() != 44144 {
		t.Errorf("size = %d, want 44144", st.Size())
	}

	entries := logs.FilterMessage("wrote file").All()
	if len(entries) != 1 {
		t.Fatalf("got %d 'wrote file' entries, want 1", len(entries))
	}
	if got := entries[0].ContextMap()["samples"]; got != int64(44100) {
		t.Errorf("logged samples = %v, want 44100", got)
	}
}

func TestRun_Failures(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	tests := []struct {
		name      string
		args      []string
		wantUsage bool
	}{
		{name: "no arguments", args: nil, wantUsage: true},
		{name: "too few", args: []string{"sine", "x.wav", "44100"}, wantUsage: true},
		{name: "unknown mode", args: []string{"square", "x.wav", "44100", "1", "440", "1"}, wantUsage: true},
		{name: "chirp without f2", args: []string{"chirp", "x.wav", "44100", "1", "440", "1"}, wantUsage: true},
		{name: "rate too low", args: []string{"sine", "x.wav", "4000", "1", "440", "1"}},
		{name: "negative duration", args: []string{"sine", "x.wav", "44100", "-1", "440", "1"}},
		{name: "non-positive chirp frequency", args: []string{"chirp", "x.wav", "44100", "1", "0", "1", "2000"}},
		{name: "not a number", args: []string{"sine", "x.wav", "44100", "1", "abc", "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			args := append([]string(nil), tt.args...)
			var out string
			if len(args) > 1 {
				out = filepath.Join(dir, strings.ReplaceAll(tt.name, " ", "_")+".wav")
				args[1] = out
			}

			stderr := new(bytes.Buffer)
			if code := run(args, stderr, zaptest.NewLogger(t)); code != 1 {
				t.Errorf("run() = %d, want 1", code)
			}

			if hasUsage := strings.Contains(stderr.String(), "Usage:"); hasUsage != tt.wantUsage {
				t.Errorf("usage printed = %v, want %v", hasUsage, tt.wantUsage)
			}

			if out != "" {
				if _, err := os.Stat(out); !os.IsNotExist(err) {
					t.Errorf("output file exists after failure")
				}
			}
		})
	}
}

func TestRun_UnwritablePath(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "missing", "dir", "x.wav")
	if code := run([]string{"silence", out, "8000", "1", "0", "1"}, new(bytes.Buffer), zaptest.NewLogger(t)); code != 1 {
		t.Errorf("run() = %d, want 1", code)
	}
}

func TestRun_AcceptedEdgeArguments(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	tests := []struct {
		name string
		args []string
	}{
		{name: "huge sine frequency", args: []string{"sine", "", "8000", "1", "1e30", "0.5"}},
		{name: "placeholder f1 for noise", args: []string{"noise", "", "8000", "0.1", "-", "0.5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			args := append([]string(nil), tt.args...)
			args[1] = filepath.Join(dir, strings.ReplaceAll(tt.name, " ", "_")+".wav")

			if code := run(args, new(bytes.Buffer), zaptest.NewLogger(t)); code != 0 {
				t.Fatalf("run() = %d, want 0", code)
			}
			if _, err := os.Stat(args[1]); err != nil {
				t.Errorf("Stat() error = %v", err)
			}
		})
	}
}
