package core

import (
	"testing"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
		tag   string
	}{
		{DebugLevel, "DEBUG", "DBG"},
		{InfoLevel, "INFO", "INF"},
		{WarnLevel, "WARNING", "WRN"},
		{ErrorLevel, "ERROR", "ERR"},
		{ExceptionLevel, "EXCEPTION", "EXC"},
		{FatalLevel, "FATAL", "FTL"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("Level.String() = %v, want %v", got, tt.want)
			}
			if got := tt.level.Tag(); got != tt.tag {
				t.Errorf("Level.Tag() = %v, want %v", got, tt.tag)
			}
			if !tt.level.Valid() {
				t.Errorf("Level(%d).Valid() = false", tt.level)
			}
		})
	}
}

func TestLevel_Invalid(t *testing.T) {
	for _, l := range []Level{-1, 6, 42} {
		if l.Valid() {
			t.Errorf("Level(%d).Valid() = true", l)
		}
		if got := l.Tag(); got != "???" {
			t.Errorf("Level(%d).Tag() = %v, want ???", l, got)
		}
		if got := l.String(); got != "UNKNOWN" {
			t.Errorf("Level(%d).String() = %v, want UNKNOWN", l, got)
		}
	}
}

func TestLevel_InfoTier(t *testing.T) {
	tests := []struct {
		level Level
		want  bool
	}{
		{DebugLevel, true},
		{InfoLevel, true},
		{WarnLevel, true},
		{ErrorLevel, false},
		{ExceptionLevel, false},
		{FatalLevel, false},
	}

	for _, tt := range tests {
		if got := tt.level.InfoTier(); got != tt.want {
			t.Errorf("%v.InfoTier() = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
		ok   bool
	}{
		{"debug", DebugLevel, true},
		{"DBG", DebugLevel, true},
		{"Info", InfoLevel, true},
		{"warn", WarnLevel, true},
		{"warning", WarnLevel, true},
		{"WRN", WarnLevel, true},
		{"error", ErrorLevel, true},
		{"exc", ExceptionLevel, true},
		{" fatal ", FatalLevel, true},
		{"ftl", FatalLevel, true},
		{"verbose", InfoLevel, false},
		{"", InfoLevel, false},
	}

	for _, tt := range tests {
		got, ok := ParseLevel(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
