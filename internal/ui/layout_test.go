package ui

import (
	"reflect"
	"testing"

	"github.com/ytget/storefront/internal/locale"
)

func TestGridOrder(t *testing.T) {
	tests := []struct {
		name     string
		n, cols  int
		dir      locale.Direction
		expected []int
	}{
		{"empty", 0, 2, locale.LeftToRight, []int{}},
		{"ltr full rows", 4, 2, locale.LeftToRight, []int{0, 1, 2, 3}},
		{"ltr short row", 3, 2, locale.LeftToRight, []int{0, 1, 2}},
		{"rtl full rows", 4, 2, locale.RightToLeft, []int{1, 0, 3, 2}},
		{"rtl short row", 3, 2, locale.RightToLeft, []int{1, 0, -1, 2}},
		{"rtl three columns", 5, 3, locale.RightToLeft, []int{2, 1, 0, -1, 4, 3}},
		{"zero columns", 2, 0, locale.LeftToRight, []int{0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GridOrder(tt.n, tt.cols, tt.dir)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestNearEnd(t *testing.T) {
	tests := []struct {
		offset, viewport, content float32
		expected                  bool
	}{
		{0, 800, 2000, false},
		{1080, 800, 2000, true},
		{1200, 800, 2000, true},
		{1079, 800, 2000, false},
		{0, 800, 600, true},
	}

	for _, tt := range tests {
		got := NearEnd(tt.offset, tt.viewport, tt.content, EndReachedThreshold)
		if got != tt.expected {
			t.Errorf("NearEnd(%v, %v, %v) = %v, expected %v", tt.offset, tt.viewport, tt.content, got, tt.expected)
		}
	}
}

func TestBadgeLabel(t *testing.T) {
	tests := []struct {
		count    int
		expected string
	}{
		{1, "1"},
		{42, "42"},
		{99, "99"},
		{100, "99+"},
	}

	for _, tt := range tests {
		if got := BadgeLabel(tt.count); got != tt.expected {
			t.Errorf("BadgeLabel(%d) = %q, expected %q", tt.count, got, tt.expected)
		}
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"", false},
		{"https://catalog.example/api/", false},
		{"http://localhost:8080/", false},
		{"ftp://catalog.example/", true},
		{"catalog.example/api", true},
		{"://bad", true},
	}

	for _, tt := range tests {
		err := validateURL(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("validateURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}
