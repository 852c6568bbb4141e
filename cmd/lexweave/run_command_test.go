package main

import (
	"encoding/json"
	"strings"
	"testing"

	"lexweave/internal/testsupport"
)

func TestRunCommandPromotesPassingSet(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteFragment(t, env.cfg.Paths.PendingDir, "tranche_01.json", testsupport.EssentialEntries())

	out, _, err := runCLI(t, []string{"run", "--quiet"}, env.configPath)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	requireContains(t, out, "PASS:")
	requireContains(t, out, "complete, artifact at")

	out, _, err = runCLI(t, []string{"history"}, env.configPath)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	requireContains(t, out, "Deleted")

	out, _, err = runCLI(t, []string{"lookup", "hello"}, env.configPath)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	requireContains(t, out, "salaë")
}

func TestRunCommandGateFailure(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteFragment(t, env.cfg.Paths.PendingDir, "tranche_10.json", testsupport.NounOnlyEntries())

	out, _, err := runCLI(t, []string{"run", "--quiet"}, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "quality gate failed") {
		t.Fatalf("expected gate failure error, got %v", err)
	}
	requireContains(t, out, "FAIL:")
	requireContains(t, out, "Remediation priorities:")

	out, _, err = runCLI(t, []string{"history"}, env.configPath)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	requireContains(t, out, "Qa Failed")
}

func TestRunCommandJSON(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteFragment(t, env.cfg.Paths.PendingDir, "tranche_01.json", testsupport.EssentialEntries())

	out, _, err := runCLI(t, []string{"run", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("run --json: %v", err)
	}

	var view map[string]any
	if err := json.Unmarshal([]byte(out), &view); err != nil {
		t.Fatalf("invalid JSON: %v\noutput: %s", err, out)
	}
	run, ok := view["run"].(map[string]any)
	if !ok {
		t.Fatalf("missing run object in JSON: %v", view)
	}
	if run["state"] != "deleted" {
		t.Fatalf("expected deleted state, got %v", run["state"])
	}
	report, ok := view["qa_report"].(map[string]any)
	if !ok {
		t.Fatalf("missing qa_report in JSON: %v", view)
	}
	if report["passed"] != true {
		t.Fatalf("expected passed=true, got %v", report["passed"])
	}
	if _, ok := view["audit_report"]; !ok {
		t.Fatalf("expected audit_report for a passing run")
	}
}

func TestRunCommandJSONGateFailureStillEmitsOutcome(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteFragment(t, env.cfg.Paths.PendingDir, "tranche_10.json", testsupport.NounOnlyEntries())

	out, _, err := runCLI(t, []string{"run", "--json"}, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "quality gate failed") {
		t.Fatalf("expected gate failure error, got %v", err)
	}

	var view map[string]any
	if err := json.Unmarshal([]byte(out), &view); err != nil {
		t.Fatalf("invalid JSON: %v\noutput: %s", err, out)
	}
	if _, ok := view["audit_report"]; ok {
		t.Fatalf("audit_report must be absent when the gate fails")
	}
	if _, ok := view["remediation"]; !ok {
		t.Fatalf("expected remediation list for a failing run")
	}
}

func TestRunCommandEmptyPending(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"run", "--quiet"}, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "pending area empty") {
		t.Fatalf("expected empty pending error, got %v", err)
	}
}
