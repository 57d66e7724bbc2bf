package domain

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Paths.DataFile != "data/mall.yaml" {
		t.Fatalf("expected data file default, got %q", cfg.Paths.DataFile)
	}
	if cfg.Paths.ReportsDir != "reports" {
		t.Fatalf("expected reports dir default, got %q", cfg.Paths.ReportsDir)
	}
	if cfg.Policy.AreaPerGuard != 200 || cfg.Policy.RaiseThresholdHours != 10 || cfg.Policy.AdjustmentRate != 0.10 {
		t.Fatalf("unexpected policy defaults: %+v", cfg.Policy)
	}
	if cfg.Output.Format != "pretty" {
		t.Fatalf("expected pretty output, got %q", cfg.Output.Format)
	}
}

func TestPolicyConfigWithDefaults(t *testing.T) {
	got := PolicyConfig{AreaPerGuard: 250}.WithDefaults()

	if got.AreaPerGuard != 250 {
		t.Fatalf("expected explicit value to survive, got %d", got.AreaPerGuard)
	}
	if got.RaiseThresholdHours != DefaultRaiseThresholdHours {
		t.Fatalf("expected default threshold, got %d", got.RaiseThresholdHours)
	}
	if got.AdjustmentRate != DefaultAdjustmentRate {
		t.Fatalf("expected default rate, got %v", got.AdjustmentRate)
	}
}
