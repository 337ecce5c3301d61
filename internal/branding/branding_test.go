package branding

import (
	"testing"
)

func TestLoadEmbedded(t *testing.T) {
	id, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if id.Name != "classgen" {
		t.Errorf("Name = %q, want %q", id.Name, "classgen")
	}
	if got := id.Tag(); got != "v0.1.0" {
		t.Errorf("Tag() = %q, want %q", got, "v0.1.0")
	}
}

func TestParseOverlaysDefaults(t *testing.T) {
	id, err := Parse([]byte("version: 2.3.4-rc.1\n"))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if got := id.Tag(); got != "v2.3.4" {
		t.Errorf("Tag() = %q, want %q", got, "v2.3.4")
	}
	if id.Author != "Richard Marks" {
		t.Errorf("Author = %q, want default", id.Author)
	}
}

func TestParseEmpty(t *testing.T) {
	id, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) error: %v", err)
	}
	d := Defaults()
	if id.Name != d.Name || id.Version != d.Version || id.Contact != d.Contact {
		t.Errorf("Parse(nil) = %+v, want defaults %+v", id, d)
	}
}

func TestParseInvalidVersion(t *testing.T) {
	if _, err := Parse([]byte("version: not-a-version\n")); err == nil {
		t.Fatal("expected error for invalid version")
	}
}

func TestParseInvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("name: [unterminated\n")); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestTagWithoutParse(t *testing.T) {
	id := Defaults()
	if got := id.Tag(); got != "v0.1.0" {
		t.Errorf("Tag() = %q, want %q", got, "v0.1.0")
	}
}

func TestBanner(t *testing.T) {
	id, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	want := "classgen v0.1.0\nMIT license (C) Copyright 2018 Richard Marks <ccpsceo@gmail.com>\n\n"
	if got := id.Banner(); got != want {
		t.Errorf("Banner() = %q, want %q", got, want)
	}
}

func TestCredits(t *testing.T) {
	id := Defaults()
	want := "classgen v0.1.0 :: MIT license (C) Copyright 2018, Richard Marks <ccpsceo@gmail.com>"
	if got := id.Credits(); got != want {
		t.Errorf("Credits() = %q, want %q", got, want)
	}
}
