package cliconfig

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadRecord_JSON(t *testing.T) {
	path := writeFile(t, "req.json", `{"amount": 1234.5, "currency": "USD", "beneficiaryName": "Acme"}`)

	rec, err := LoadRecord(path)
	if err != nil {
		t.Fatalf("LoadRecord() error = %v", err)
	}
	if n, ok := rec["amount"].(json.Number); !ok || n.String() != "1234.5" {
		t.Errorf("amount = %#v", rec["amount"])
	}
	if rec["currency"] != "USD" {
		t.Errorf("currency = %v", rec["currency"])
	}
}

func TestLoadRecord_YAML(t *testing.T) {
	path := writeFile(t, "req.yaml", "amount: 1234.5\ncurrency: EUR\ndate: 2024-03-15\nbeneficiaryAddress: |\n  Line 1\n  Line 2\n")

	rec, err := LoadRecord(path)
	if err != nil {
		t.Fatalf("LoadRecord() error = %v", err)
	}
	if rec["amount"] != 1234.5 {
		t.Errorf("amount = %#v", rec["amount"])
	}
	if rec["date"] != "2024-03-15" {
		t.Errorf("date = %#v, want 2024-03-15", rec["date"])
	}
	if rec["beneficiaryAddress"] != "Line 1\nLine 2\n" {
		t.Errorf("beneficiaryAddress = %q", rec["beneficiaryAddress"])
	}
}

func TestLoadRecord_Errors(t *testing.T) {
	if _, err := LoadRecord(writeFile(t, "req.txt", "x")); err == nil {
		t.Error("expected error for unsupported extension")
	}
	if _, err := LoadRecord(writeFile(t, "req.json", "{")); err == nil {
		t.Error("expected error for invalid JSON")
	}
	if _, err := LoadRecord(filepath.Join(t.TempDir(), "none.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
