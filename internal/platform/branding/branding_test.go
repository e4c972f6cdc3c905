package branding

import "testing"

func TestAppName(t *testing.T) {
	if AppName == "" {
		t.Fatal("expected AppName to be non-empty")
	}
	if AppName != "Developer DAO School of Code" {
		t.Fatalf("AppName = %q, want %q", AppName, "Developer DAO School of Code")
	}
}

func TestDescription(t *testing.T) {
	if Description != "Developer DAO's school of code" {
		t.Fatalf("Description = %q, want %q", Description, "Developer DAO's school of code")
	}
}

func TestFaviconPath(t *testing.T) {
	if FaviconPath != "/favicon.ico" {
		t.Fatalf("FaviconPath = %q, want %q", FaviconPath, "/favicon.ico")
	}
}
