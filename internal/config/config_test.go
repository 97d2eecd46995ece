package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.BaseURL == "" {
		t.Error("BaseURL deveria ter default")
	}
	if cfg.MetricsPort != "9090" {
		t.Errorf("MetricsPort = %q, esperado default 9090", cfg.MetricsPort)
	}
	if cfg.ItemDelaySeconds != 1 || cfg.PublishDelaySeconds != 2 {
		t.Errorf("delays = %d/%d, esperados defaults 1/2", cfg.ItemDelaySeconds, cfg.PublishDelaySeconds)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("REVERB_BASE_URL", "http://localhost:8080/api")
	t.Setenv("SHIPPING_PROFILE_ID", "123456")
	t.Setenv("ITEM_DELAY_SECONDS", "0")

	cfg := Load()
	if cfg.BaseURL != "http://localhost:8080/api" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.ShippingProfileID != 123456 {
		t.Errorf("ShippingProfileID = %d, esperado 123456", cfg.ShippingProfileID)
	}
	if cfg.ItemDelaySeconds != 0 {
		t.Errorf("ItemDelaySeconds = %d, esperado 0", cfg.ItemDelaySeconds)
	}

	t.Setenv("SHIPPING_PROFILE_ID", "nao-numérico")
	if cfg := Load(); cfg.ShippingProfileID != 0 {
		t.Errorf("valor não numérico deveria cair no default, obtido %d", cfg.ShippingProfileID)
	}
}
