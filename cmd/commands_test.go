package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"testing"
)

// captureStdout captures stdout while the root command runs with the
// given arguments.
func captureStdout(t *testing.T, args ...string) string {
	t.Helper()

	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	rootCmd.SetArgs(args)
	err := rootCmd.Execute()

	w.Close()
	os.Stdout = old

	if err != nil {
		t.Fatalf("Execute(%v) error = %v", args, err)
	}

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

// writeToolConfig writes an ftlconf.yml pointing every path into dir.
func writeToolConfig(t *testing.T, dir, binary string) string {
	t.Helper()
	content := fmt.Sprintf("ftl_binary: %s\nftl_config_file: %s\npid_file: %s\n",
		binary,
		filepath.Join(dir, "pihole-FTL.conf"),
		filepath.Join(dir, "fallback.pid"))

	path := filepath.Join(dir, "ftlconf.yml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFileSetCommand(t *testing.T) {
	target := filepath.Join(t.TempDir(), "setupVars.conf")

	captureStdout(t, "file", "set", target, "BLOCKING_ENABLED", "true")

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "BLOCKING_ENABLED=true\n" {
		t.Errorf("file content = %q, want %q", data, "BLOCKING_ENABLED=true\n")
	}
}

func TestFileAddKeyAndRemoveCommands(t *testing.T) {
	target := filepath.Join(t.TempDir(), "setupVars.conf")

	captureStdout(t, "file", "add-key", target, "QUERY_LOGGING")
	captureStdout(t, "file", "add-key", target, "QUERY_LOGGING")

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "QUERY_LOGGING\n" {
		t.Errorf("after add-key twice: %q, want single line", data)
	}

	captureStdout(t, "file", "remove", target, "QUERY_LOGGING")

	data, err = os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "" {
		t.Errorf("after remove: %q, want empty", data)
	}
}

func TestPIDCommand(t *testing.T) {
	dir := t.TempDir()

	pidFile := filepath.Join(dir, "ftl.pid")
	if err := os.WriteFile(pidFile, []byte(strconv.Itoa(os.Getpid())+"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	confFile := filepath.Join(dir, "pihole-FTL.conf")
	if err := os.WriteFile(confFile, []byte("PIDFILE="+pidFile+"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfgPath := writeToolConfig(t, dir, "pihole-FTL")

	output := captureStdout(t, "--config", cfgPath, "pid")
	if got := strings.TrimSpace(output); got != strconv.Itoa(os.Getpid()) {
		t.Errorf("pid output = %q, want own PID %d", got, os.Getpid())
	}
}

func TestPIDFileCommand(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeToolConfig(t, dir, "pihole-FTL")

	// No daemon config file: the fallback path wins.
	output := captureStdout(t, "--config", cfgPath, "pidfile")
	want := filepath.Join(dir, "fallback.pid")
	if got := strings.TrimSpace(output); got != want {
		t.Errorf("pidfile output = %q, want %q", got, want)
	}
}

func TestGetAndSetCommands(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("stub daemon binary is a shell script")
	}

	dir := t.TempDir()
	store := filepath.Join(dir, "store")
	binary := filepath.Join(dir, "ftl-stub")

	script := fmt.Sprintf(`#!/bin/sh
if [ "$2" = "-q" ]; then
	cat %q 2>/dev/null
else
	printf '%%s' "$3" > %q
fi
`, store, store)
	if err := os.WriteFile(binary, []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	cfgPath := writeToolConfig(t, dir, binary)

	output := captureStdout(t, "--config", cfgPath, "set", "dns.port", "5353")
	if output != "" {
		t.Errorf("set printed %q, want nothing on success", output)
	}

	output = captureStdout(t, "--config", cfgPath, "get", "dns.port")
	if got := strings.TrimSpace(output); got != "5353" {
		t.Errorf("get output = %q, want %q", got, "5353")
	}
}
