package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lexweave/internal/merge"
	"lexweave/internal/testsupport"
)

func TestMergeCommandPreviewLeavesPendingUntouched(t *testing.T) {
	env := setupCLITestEnv(t)
	fragment := testsupport.WriteFragment(t, env.cfg.Paths.PendingDir, "tranche_01.json", testsupport.EssentialEntries())
	testsupport.WriteFile(t, filepath.Join(env.cfg.Paths.PendingDir, "tranche_bad.json"), "{not json")

	out, _, err := runCLI(t, []string{"merge"}, env.configPath)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	requireContains(t, out, "tranche_01.json")
	requireContains(t, out, "Merged 1 fragments into 16 entries (0 duplicates removed)")
	requireContains(t, out, "warn: unreadable fragment tranche_bad.json skipped")

	if _, err := os.Stat(fragment); err != nil {
		t.Fatalf("expected fragment untouched in pending: %v", err)
	}

	out, _, err = runCLI(t, []string{"history"}, env.configPath)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	requireContains(t, out, "No runs recorded")
}

func TestMergeCommandEmptyPending(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"merge"}, env.configPath)
	if !errors.Is(err, merge.ErrNoValidFragments) {
		t.Fatalf("expected ErrNoValidFragments, got %v", err)
	}
}

func TestMergeWriteThenQAAndAudit(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteFragment(t, env.cfg.Paths.PendingDir, "tranche_01.json", testsupport.EssentialEntries())

	out, _, err := runCLI(t, []string{"merge", "--write"}, env.configPath)
	if err != nil {
		t.Fatalf("merge --write: %v", err)
	}
	requireContains(t, out, "Artifact written to")

	out, _, err = runCLI(t, []string{"qa"}, env.configPath)
	if err != nil {
		t.Fatalf("qa: %v", err)
	}
	requireContains(t, out, "Scoring ")
	requireContains(t, out, "PASS:")

	out, _, err = runCLI(t, []string{"audit"}, env.configPath)
	if err != nil {
		t.Fatalf("audit: %v", err)
	}
	requireContains(t, out, "Auditing ")
	requireContains(t, out, "Audit score")
	requireContains(t, out, "advisory, never gates")

	out, _, err = runCLI(t, []string{"audit", "--prose"}, env.configPath)
	if err != nil {
		t.Fatalf("audit --prose: %v", err)
	}
	if strings.TrimSpace(out) == "" {
		t.Fatalf("expected prose output")
	}
}

func TestQACommandGateFailure(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteFragment(t, env.cfg.Paths.PendingDir, "tranche_10.json", testsupport.NounOnlyEntries())

	if _, _, err := runCLI(t, []string{"merge", "--write"}, env.configPath); err != nil {
		t.Fatalf("merge --write: %v", err)
	}

	out, _, err := runCLI(t, []string{"qa"}, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "quality gate failed") {
		t.Fatalf("expected gate failure error, got %v", err)
	}
	requireContains(t, out, "FAIL:")
	requireContains(t, out, "Remediation priorities:")
}

func TestAuditCommandNeverGates(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteFragment(t, env.cfg.Paths.PendingDir, "tranche_10.json", testsupport.NounOnlyEntries())

	if _, _, err := runCLI(t, []string{"merge", "--write"}, env.configPath); err != nil {
		t.Fatalf("merge --write: %v", err)
	}

	if _, _, err := runCLI(t, []string{"audit"}, env.configPath); err != nil {
		t.Fatalf("expected audit to exit clean on a failing set, got %v", err)
	}
}

func TestQACommandNoArtifact(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"qa"}, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "no unified artifact found") {
		t.Fatalf("expected missing artifact error, got %v", err)
	}
}
