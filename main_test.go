package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/atomicstack/fzmenu/internal/app"
	"github.com/atomicstack/fzmenu/internal/config"
	"github.com/atomicstack/fzmenu/internal/menu"
	"github.com/atomicstack/fzmenu/internal/session"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			MenuPath: "menu.yaml",
			Limit:    5,
			Driver:   app.DriverTea,
			Matcher:  "substring",
			Verbose:  true,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"menu":    "menu.yaml",
			"limit":   "5",
			"driver":  "tea",
			"verbose": "true",
		},
		Args: []string{"--menu", "menu.yaml"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["menu"] != "menu.yaml" {
		t.Fatalf("expected menu flag %q, got %v", "menu.yaml", flagsValue["menu"])
	}
	if flagsValue["limit"] != "5" {
		t.Fatalf("expected limit 5, got %v", flagsValue["limit"])
	}
	if flagsValue["driver"] != "tea" {
		t.Fatalf("expected driver tea, got %v", flagsValue["driver"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}

	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}

func TestExitCode(t *testing.T) {
	cases := []struct {
		err        error
		code       int
		reportable bool
	}{
		{nil, exitOK, false},
		{menu.ErrInterrupted, exitInterrupt, false},
		{fmt.Errorf("pick: %w", session.ErrInterrupted), exitInterrupt, false},
		{session.ErrCanceled, exitError, false},
		{errors.New("boom"), exitError, true},
	}
	for _, tc := range cases {
		if got := exitCode(tc.err); got != tc.code {
			t.Fatalf("%v: expected exit %d, got %d", tc.err, tc.code, got)
		}
		if got := reportable(tc.err); got != tc.reportable {
			t.Fatalf("%v: expected reportable=%v", tc.err, tc.reportable)
		}
	}
}
