package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"

	"github.com/KaramelBytes/dataspot-cli/models"
)

func runCmd(t *testing.T, args ...string) {
	t.Helper()
	// Reset sticky slice flags that keep their Changed state across invocations
	for _, name := range []string{"fields", "query", "exclude"} {
		if fl := findCmd.Flags().Lookup(name); fl != nil {
			if sv, ok := fl.Value.(pflag.SliceValue); ok {
				_ = sv.Replace(nil)
			}
			fl.Changed = false
		}
	}
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("command %v: %v", args, err)
	}
}

func TestFindCommandWritesEnvelope(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	dataPath := filepath.Join(dir, "visits.json")
	dataset := `[
		{"country": "US", "device": "mobile"},
		{"country": "US", "device": "mobile"},
		{"country": "US", "device": "desktop"},
		{"country": "EU", "device": "mobile"}
	]`
	if err := os.WriteFile(dataPath, []byte(dataset), 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}

	outPath := filepath.Join(dir, "result.json")
	runCmd(t, "find", dataPath, "--fields", "country,device", "--output", outPath)

	raw, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var env struct {
		AnalysisID  string            `json:"analysis_id"`
		GeneratedAt string            `json:"generated_at"`
		Command     string            `json:"command"`
		Sources     []string          `json:"sources"`
		Result      models.FindOutput `json:"result"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.AnalysisID == "" || env.GeneratedAt == "" {
		t.Fatalf("envelope metadata missing: %+v", env)
	}
	if env.Command != "find" {
		t.Fatalf("command = %q", env.Command)
	}
	if env.Result.TotalRecords != 4 {
		t.Fatalf("total records = %d, want 4", env.Result.TotalRecords)
	}
	if len(env.Result.Patterns) == 0 || env.Result.Patterns[0].Path != "country=US" {
		t.Fatalf("patterns = %+v", env.Result.Patterns)
	}
}

func TestFindCommandQueryFilter(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	dataPath := filepath.Join(dir, "visits.json")
	dataset := `[
		{"country": "US"}, {"country": "US"}, {"country": "EU"}
	]`
	if err := os.WriteFile(dataPath, []byte(dataset), 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}

	outPath := filepath.Join(dir, "result.json")
	runCmd(t, "find", dataPath, "--fields", "country", "--query", "country=US", "--output", outPath)

	raw, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var env struct {
		Result models.FindOutput `json:"result"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.Result.TotalRecords != 2 {
		t.Fatalf("total records = %d, want 2", env.Result.TotalRecords)
	}
}

func TestParseQuery(t *testing.T) {
	q, err := parseQuery([]string{"country=US", "device=mobile", "device=desktop"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if q["country"] != "US" {
		t.Fatalf("country = %v", q["country"])
	}
	devices, ok := q["device"].([]string)
	if !ok || len(devices) != 2 {
		t.Fatalf("device = %v", q["device"])
	}

	if _, err := parseQuery([]string{"no-equals"}); err == nil {
		t.Fatal("expected error for malformed pair")
	}
	if _, err := parseQuery([]string{"=value"}); err == nil {
		t.Fatal("expected error for empty field")
	}
}
