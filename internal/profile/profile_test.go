package profile

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateDefaults(t *testing.T) {
	p := &Profile{Mode: "bogus", Driver: "sqlite", Data: t.TempDir()}
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if p.Mode != "dev" {
		t.Errorf("unknown mode should fall back to dev, got %q", p.Mode)
	}
	if filepath.Base(p.DSN) != "mrtfood_dev.db" {
		t.Errorf("default sqlite DSN = %q", p.DSN)
	}
	if !p.IsDev() {
		t.Errorf("dev mode should report IsDev")
	}
}

func TestValidateDriver(t *testing.T) {
	p := &Profile{Mode: "dev", Driver: "mysql", Data: t.TempDir()}
	if err := p.Validate(); err == nil || !strings.Contains(err.Error(), "unsupported driver") {
		t.Errorf("Validate() error = %v, want unsupported driver", err)
	}

	p = &Profile{Mode: "dev", Driver: "postgres", Data: t.TempDir()}
	if err := p.Validate(); err == nil {
		t.Errorf("postgres without DSN should be rejected")
	}
}
