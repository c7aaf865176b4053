package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	engineinput "blackout/pkg/engine/input"
	"blackout/pkg/game/i18n"
	"blackout/pkg/game/probe"
)

func writePrefs(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Frontend != FrontendTUI {
		t.Errorf("Frontend = %q, want %q", cfg.Frontend, FrontendTUI)
	}
	if cfg.TickInterval() != time.Second/30 {
		t.Errorf("TickInterval = %v, want %v", cfg.TickInterval(), time.Second/30)
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := writePrefs(t, "locale: fr\nfrontend: headless\nshort_message: 1500ms\ntick_rate: 60\n")
	t.Setenv("BLACKOUT_TICK_RATE", "20")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Locale != "fr" {
		t.Errorf("Locale = %q, want fr", cfg.Locale)
	}
	if cfg.Frontend != FrontendHeadless {
		t.Errorf("Frontend = %q, want headless", cfg.Frontend)
	}
	if cfg.ShortMessage != 1500*time.Millisecond {
		t.Errorf("ShortMessage = %v, want 1.5s", cfg.ShortMessage)
	}
	if cfg.TickRate != 20 {
		t.Errorf("TickRate = %d, want 20 from the environment", cfg.TickRate)
	}
	if cfg.LongMessage != 3*time.Second {
		t.Errorf("LongMessage = %v, want default 3s", cfg.LongMessage)
	}
}

func TestLoad_Rejects(t *testing.T) {
	cases := map[string]string{
		"frontend": "frontend: vr\n",
		"tick":     "tick_rate: 0\n",
		"binding":  "bindings:\n  jump: space\n",
		"yaml":     "locale: [\n",
	}
	for name, body := range cases {
		if _, err := Load(writePrefs(t, body)); err == nil {
			t.Errorf("%s: Load succeeded, want error", name)
		}
	}
}

func TestLoad_BadEnv(t *testing.T) {
	t.Setenv("BLACKOUT_TICK_RATE", "fast")
	if _, err := Load(""); err == nil {
		t.Error("Load succeeded with a non-numeric tick rate")
	}
}

func TestApply(t *testing.T) {
	short, long := probe.ShortMessage, probe.LongMessage
	t.Cleanup(func() {
		engineinput.ResetBindings()
		_ = i18n.SetLocale(i18n.DefaultLocale)
		probe.ShortMessage, probe.LongMessage = short, long
		current = Default()
	})

	cfg := Default()
	cfg.Locale = "fr"
	cfg.ShortMessage = time.Second
	cfg.Bindings = map[string]string{"flashlight": "l"}
	if err := Apply(cfg); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if i18n.Locale() != "fr" {
		t.Errorf("Locale = %q, want fr", i18n.Locale())
	}
	if probe.ShortMessage != time.Second {
		t.Errorf("ShortMessage = %v, want 1s", probe.ShortMessage)
	}
	if probe.LongMessage != long {
		t.Errorf("LongMessage = %v, want unchanged %v", probe.LongMessage, long)
	}
	codes := engineinput.GetBindingsByAction()[engineinput.ActionToggleFlashlight]
	if len(codes) != 1 || codes[0] != "l" {
		t.Errorf("flashlight bindings = %v, want [l]", codes)
	}
	if Current().Locale != "fr" {
		t.Error("Current does not reflect the applied config")
	}
}

func TestApply_RejectsOverriddenFrontend(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg.Frontend = "vr"
	if err := Apply(cfg); err == nil {
		t.Fatal("Apply accepted an unknown frontend")
	}
	if Current().Frontend == "vr" {
		t.Error("rejected config became current")
	}
}

func TestApply_UnknownLocale(t *testing.T) {
	cfg := Default()
	cfg.Locale = "xx"
	if err := Apply(cfg); err == nil {
		t.Error("Apply succeeded with an unknown locale")
	}
}
