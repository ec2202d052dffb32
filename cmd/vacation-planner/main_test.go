package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTestConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	content := "storage:\n  type: file\n  favorites_file: \"" + filepath.Join(dir, "favorites.json") + "\"\n" +
		"log:\n  file: \"" + filepath.Join(dir, "planner.log") + "\"\n"
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		t.Fatalf("%v: %v\n%s", args, err, out.String())
	}
	return out.String()
}

func TestBalanceCommand(t *testing.T) {
	cfg := writeTestConfig(t)

	out := run(t, "balance", "-c", cfg, "-u", "1")
	if !strings.Contains(out, "Used:      5 days") || !strings.Contains(out, "Remaining: 21 days") {
		t.Errorf("balance output:\n%s", out)
	}
}

func TestHolidaysCommand(t *testing.T) {
	cfg := writeTestConfig(t)

	out := run(t, "holidays", "2025", "-c", cfg)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 13 || !strings.HasPrefix(lines[0], "2025-01-01") {
		t.Errorf("holidays output:\n%s", out)
	}
}

func TestFavoritesPersistAcrossRuns(t *testing.T) {
	cfg := writeTestConfig(t)

	if out := run(t, "favorites", "toggle", "4", "-c", cfg, "-u", "1"); !strings.Contains(out, "Added 4") {
		t.Errorf("toggle output: %s", out)
	}
	if out := run(t, "favorites", "-c", cfg, "-u", "1"); !strings.HasPrefix(out, "4 ") {
		t.Errorf("favorites output: %s", out)
	}
}

func TestCalendarCommand(t *testing.T) {
	cfg := writeTestConfig(t)

	out := run(t, "calendar", "2024-07", "-c", cfg, "-u", "1")
	if !strings.HasPrefix(out, "July 2024") {
		t.Errorf("calendar header:\n%s", out)
	}
	// v1 UW 22..26 and v2 HO on the 15th
	for _, want := range []string{"22UW", "26UW", "15HO"} {
		if !strings.Contains(out, want) {
			t.Errorf("calendar output missing %q:\n%s", want, out)
		}
	}
}

func TestMatrixCommand(t *testing.T) {
	cfg := writeTestConfig(t)

	out := run(t, "matrix", "2024-08", "--favorites", "-c", cfg, "-u", "1")
	if !strings.Contains(out, "(you)") || !strings.Contains(out, "BL") {
		t.Errorf("matrix output:\n%s", out)
	}
}
