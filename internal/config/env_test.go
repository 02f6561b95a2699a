package config

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("PONG_TEST_VALUE", "set")
	if got := GetEnv("PONG_TEST_VALUE", "fallback"); got != "set" {
		t.Errorf("GetEnv = %q, want %q", got, "set")
	}
	if got := GetEnv("PONG_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("GetEnv = %q, want fallback", got)
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		fallback bool
		want     bool
	}{
		{"True", "true", false, true},
		{"Numeric true", "1", false, true},
		{"False", "false", true, false},
		{"Garbage falls back", "yeah", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PONG_TEST_BOOL", tt.value)
			if got := GetEnvBool("PONG_TEST_BOOL", tt.fallback); got != tt.want {
				t.Errorf("GetEnvBool(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}

	if got := GetEnvBool("PONG_TEST_BOOL_MISSING", true); got != true {
		t.Error("GetEnvBool fallback not used for missing variable")
	}
}
