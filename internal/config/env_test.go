package config

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("YARD_TEST_STRING", "hello")

	if got := GetEnv("YARD_TEST_STRING", "fallback"); got != "hello" {
		t.Errorf("Expected 'hello', got '%s'", got)
	}
	if got := GetEnv("YARD_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("Expected 'fallback', got '%s'", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"Valid", "42", 42},
		{"Negative", "-3", -3},
		{"Garbage", "forty", 7},
		{"Empty", "", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("YARD_TEST_INT", tt.value)
			if got := GetEnvInt("YARD_TEST_INT", 7); got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}

	if got := GetEnvInt("YARD_TEST_INT_MISSING", 7); got != 7 {
		t.Errorf("Expected fallback 7, got %d", got)
	}
}

func TestGetEnvFloat(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  float64
	}{
		{"Valid", "2.5", 2.5},
		{"Integer", "3", 3},
		{"Garbage", "fast", 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("YARD_TEST_FLOAT", tt.value)
			if got := GetEnvFloat("YARD_TEST_FLOAT", 1.5); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}
