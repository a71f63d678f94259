package db

import "testing"

func TestConfig_SetGetDelete(t *testing.T) {
	s := newTestStore(t)

	value, err := s.GetConfig("log_channel_id")
	if err != nil {
		t.Fatalf("GetConfig() failed: %v", err)
	}
	if value != "" {
		t.Errorf("expected empty value for absent key, got %q", value)
	}

	if err := s.SetConfig("log_channel_id", "123"); err != nil {
		t.Fatalf("SetConfig() failed: %v", err)
	}
	if err := s.SetConfig("log_channel_id", "456"); err != nil {
		t.Fatalf("SetConfig() overwrite failed: %v", err)
	}

	value, err = s.GetConfig("log_channel_id")
	if err != nil {
		t.Fatalf("GetConfig() failed: %v", err)
	}
	if value != "456" {
		t.Errorf("expected overwritten value, got %q", value)
	}

	if err := s.DeleteConfig("log_channel_id"); err != nil {
		t.Fatalf("DeleteConfig() failed: %v", err)
	}
	value, err = s.GetConfig("log_channel_id")
	if err != nil {
		t.Fatalf("GetConfig() failed: %v", err)
	}
	if value != "" {
		t.Errorf("expected empty value after delete, got %q", value)
	}
}
