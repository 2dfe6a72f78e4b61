package model

import "testing"

func TestParseLabel(t *testing.T) {
	tests := []struct {
		in      string
		want    Label
		matched bool
	}{
		{"True", LabelTrue, true},
		{"true", LabelTrue, true},
		{"REAL", LabelTrue, true},
		{"real news", LabelTrue, true},
		{"Fake", LabelFake, true},
		{"false", LabelFake, true},
		{"Fake News", LabelFake, true},
		{"misinformation", LabelFake, true},
		{"Unverifiable", LabelUnverifiable, true},
		{"unknown", LabelUnverifiable, true},
		{"  uncertain  ", LabelUnverifiable, true},
		{"banana", LabelUnverifiable, false},
		{"", LabelUnverifiable, false},
	}

	for _, tt := range tests {
		got, matched := ParseLabel(tt.in)
		if got != tt.want || matched != tt.matched {
			t.Errorf("ParseLabel(%q) = (%v, %v), want (%v, %v)", tt.in, got, matched, tt.want, tt.matched)
		}
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0.5, 0.5},
		{0, 0},
		{1, 1},
		{1.5, 1},
		{-0.3, 0},
		{150, 1},
	}

	for _, tt := range tests {
		if got := Clamp01(tt.in); got != tt.want {
			t.Errorf("Clamp01(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
