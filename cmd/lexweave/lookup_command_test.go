package main

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"lexweave/internal/libran"
)

func TestLookupMiss(t *testing.T) {
	env := setupCLITestEnv(t)
	promotePassingRun(t, env)

	_, _, err := runCLI(t, []string{"lookup", "dragon"}, env.configPath)
	if err == nil || !strings.Contains(err.Error(), `no entry for "dragon"`) {
		t.Fatalf("expected miss error, got %v", err)
	}
}

func TestLookupNoArtifact(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"lookup", "hello"}, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "no unified artifact found") {
		t.Fatalf("expected missing artifact error, got %v", err)
	}
}

func TestLookupExplicitArtifact(t *testing.T) {
	env := setupCLITestEnv(t)

	dict := &libran.UnifiedDictionary{
		Metadata: libran.Metadata{Version: "1.6.0", TotalEntries: 1, Sources: []string{"release"}},
		Entries: []libran.Entry{
			{
				English: "star",
				Ancient: libran.StringForm("stellor"),
				Modern:  libran.StringForm("stellë"),
				POS:     "n",
				Notes:   "Lat. stella",
			},
		},
	}
	path := filepath.Join(env.baseDir, "prior.json")
	if err := dict.WriteFile(path); err != nil {
		t.Fatalf("write artifact: %v", err)
	}

	out, _, err := runCLI(t, []string{"lookup", "STAR", "--artifact", path}, env.configPath)
	if err != nil {
		t.Fatalf("lookup --artifact: %v", err)
	}
	requireContains(t, out, "stellor")
	requireContains(t, out, "stellë")
	requireContains(t, out, "v1.6.0, 1 headwords")
}

func TestLookupJSON(t *testing.T) {
	env := setupCLITestEnv(t)
	promotePassingRun(t, env)

	out, _, err := runCLI(t, []string{"lookup", "hello", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("lookup --json: %v", err)
	}
	var translation map[string]any
	if err := json.Unmarshal([]byte(out), &translation); err != nil {
		t.Fatalf("invalid JSON: %v\noutput: %s", err, out)
	}
	if translation["english"] != "hello" {
		t.Fatalf("expected english hello, got %v", translation["english"])
	}
	if translation["modern"] != "salaë" {
		t.Fatalf("expected modern salaë, got %v", translation["modern"])
	}
}
