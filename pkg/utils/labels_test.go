package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func writeLabelsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "labels.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadLabelsMissingFile(t *testing.T) {
	if _, err := LoadLabels(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("LoadLabels() accepted a missing dictionary")
	}
}

func TestLoadLabelsInvalidJSON(t *testing.T) {
	path := writeLabelsFile(t, "{not json")
	if _, err := LoadLabels(path); err != nil {
		return
	}
	t.Error("LoadLabels() accepted malformed JSON")
}

func TestLoadLabelsMissingSection(t *testing.T) {
	// A whole missing section is a configuration error, not a fallback case.
	path := writeLabelsFile(t, `{"notifications": {"item_removed": "gone"}}`)
	if _, err := LoadLabels(path); err == nil {
		t.Error("LoadLabels() accepted a dictionary without bid and proposal sections")
	}
}

func TestLoadLabelsEmptySectionsFallBack(t *testing.T) {
	// Present-but-empty sections are not an error; every key falls back.
	path := writeLabelsFile(t, `{"notifications": {}, "bid": {}, "proposal": {}}`)

	labels, err := LoadLabels(path)
	if err != nil {
		t.Fatalf("LoadLabels() error = %v", err)
	}
	if labels.Bid.Submitted != DefaultLabels().Bid.Submitted {
		t.Errorf("Bid.Submitted = %q, want default", labels.Bid.Submitted)
	}
}

func TestLoadLabelsMissingKeyFallsBack(t *testing.T) {
	path := writeLabelsFile(t, `{
		"notifications": {"item_removed": "Removed %s from your stay"},
		"bid": {"submitted": "Offer sent: %.2f"},
		"proposal": {"accepted": "Done"}
	}`)

	labels, err := LoadLabels(path)
	if err != nil {
		t.Fatalf("LoadLabels() error = %v", err)
	}

	// Present keys win.
	if labels.Notifications.ItemRemoved != "Removed %s from your stay" {
		t.Errorf("ItemRemoved = %q, want file value", labels.Notifications.ItemRemoved)
	}
	// Absent keys fall back to the defaults per key.
	defaults := DefaultLabels()
	if labels.Notifications.ConfirmSuccess != defaults.Notifications.ConfirmSuccess {
		t.Errorf("ConfirmSuccess = %q, want default", labels.Notifications.ConfirmSuccess)
	}
	if labels.Proposal.Expired != defaults.Proposal.Expired {
		t.Errorf("Proposal.Expired = %q, want default", labels.Proposal.Expired)
	}
}
