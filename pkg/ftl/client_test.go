package ftl

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// stubRun replaces the client's exec hook and records the arguments of
// every invocation.
func stubRun(c *Client, output string, err error) *[][]string {
	var calls [][]string
	c.run = func(args ...string) ([]byte, error) {
		calls = append(calls, args)
		return []byte(output), err
	}
	return &calls
}

func TestGet(t *testing.T) {
	c := NewClient("pihole-FTL", "/etc/pihole/pihole-FTL.conf", "/run/pihole-FTL.pid")
	calls := stubRun(c, "8.8.8.8\n", nil)

	value, err := c.Get("dns.upstreams")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if value != "8.8.8.8" {
		t.Errorf("Get() = %q, want %q", value, "8.8.8.8")
	}

	want := []string{"--config", "-q", "dns.upstreams"}
	if len(*calls) != 1 || strings.Join((*calls)[0], " ") != strings.Join(want, " ") {
		t.Errorf("binary invoked with %v, want %v", *calls, want)
	}
}

func TestGetError(t *testing.T) {
	c := NewClient("pihole-FTL", "", "")
	stubRun(c, "", fmt.Errorf("exit status 5"))

	if _, err := c.Get("bad.key"); err == nil {
		t.Error("Get() with failing binary, want error, got nil")
	}
}

func TestSet(t *testing.T) {
	c := NewClient("pihole-FTL", "", "")
	calls := stubRun(c, "ignored output", nil)

	if err := c.Set("dns.blockESNI", "false"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	want := []string{"--config", "dns.blockESNI", "false"}
	if len(*calls) != 1 || strings.Join((*calls)[0], " ") != strings.Join(want, " ") {
		t.Errorf("binary invoked with %v, want %v", *calls, want)
	}
}

func TestSetError(t *testing.T) {
	c := NewClient("pihole-FTL", "", "")
	stubRun(c, "", fmt.Errorf("exit status 2"))

	if err := c.Set("k", "v"); err == nil {
		t.Error("Set() with failing binary, want error, got nil")
	}
}

// TestSetGetRoundTrip exercises the real exec path against a stub daemon
// binary that persists values to a file.
func TestSetGetRoundTrip(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("stub daemon binary is a shell script")
	}

	dir := t.TempDir()
	store := filepath.Join(dir, "store")
	binary := filepath.Join(dir, "ftl-stub")

	script := fmt.Sprintf(`#!/bin/sh
# --config -q <key> prints the stored value; --config <key> <value> stores it.
if [ "$2" = "-q" ]; then
	cat %q 2>/dev/null
else
	printf '%%s' "$3" > %q
	echo "set $2"
fi
`, store, store)
	if err := os.WriteFile(binary, []byte(script), 0755); err != nil {
		t.Fatal(err)
	}

	c := NewClient(binary, filepath.Join(dir, "none.conf"), filepath.Join(dir, "none.pid"))

	if err := c.Set("dns.port", "5353"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	value, err := c.Get("dns.port")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if value != "5353" {
		t.Errorf("round trip = %q, want %q", value, "5353")
	}
}
