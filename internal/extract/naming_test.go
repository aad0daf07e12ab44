package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandPropertyName(t *testing.T) {
	// Test: derivation rules from method names, async suffix handling
	tests := []struct {
		method  string
		isAsync bool
		want    string
	}{
		{"LoadDataAsync", true, "LoadDataCommand"},
		{"LoadDataAsync", false, "LoadDataAsyncCommand"}, // Async stripped only for async shapes
		{"OnSave", false, "SaveCommand"},
		{"Onboard", false, "OnboardCommand"}, // leading On kept: third rune is lower-case
		{"On", false, "OnCommand"},           // nothing left to strip
		{"Save", false, "SaveCommand"},
		{"OnLoadAsync", true, "LoadCommand"},
		{"Async", true, "AsyncCommand"}, // suffix equals the whole name
	}
	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			assert.Equal(t, tt.want, CommandPropertyName(tt.method, tt.isAsync))
		})
	}
}

func TestCommandFieldName(t *testing.T) {
	// Test: first rune lowered when it has a distinct lower-case form,
	// underscore prefix otherwise
	tests := []struct {
		property string
		want     string
	}{
		{"LoadDataCommand", "loadDataCommand"},
		{"SaveCommand", "saveCommand"},
		{"OnboardCommand", "onboardCommand"},
		{"保Command", "_保Command"}, // CJK rune has no lower-case form
	}
	for _, tt := range tests {
		t.Run(tt.property, func(t *testing.T) {
			assert.Equal(t, tt.want, CommandFieldName(tt.property))
		})
	}
}

func TestGeneratedPropertyName(t *testing.T) {
	// Test: the observable naming oracle strips backing-field prefixes
	tests := []struct {
		field string
		want  string
	}{
		{"canSave", "CanSave"},
		{"_canSave", "CanSave"},
		{"m_canSave", "CanSave"},
		{"name", "Name"},
		{"_", ""},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			assert.Equal(t, tt.want, GeneratedPropertyName(tt.field))
		})
	}
}
