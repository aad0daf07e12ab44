package watch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatches(t *testing.T) {
	// Test: excludes take precedence and "**/" patterns match by base name
	fw := &FileWatcher{
		patterns: []string{"*.go", "**/*.go"},
		exclude:  []string{"*_test.go", "*.g.go"},
	}

	tests := []struct {
		path string
		want bool
	}{
		{"vm.go", true},
		{"internal/app/vm.go", true},
		{"vm_test.go", false},
		{"MainViewModel.Save.g.go", false},
		{"internal/app/MainViewModel.State.g.go", false},
		{"notes.txt", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, fw.matches(tt.path))
		})
	}
}
