package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var manifestFields = []string{
	"id", "version", "name", "description", "logo", "background",
	"contactEmail", "types", "idPrefixes", "resources", "catalogs",
	"addonCatalogs", "behaviorHints", "config",
}

func TestSuggestField(t *testing.T) {
	tests := []struct {
		name    string
		unknown string
		want    string
	}{
		{"case typo", "Id", "id"},
		{"british spelling", "behaviourHints", "behaviorHints"},
		{"transposition", "verison", "version"},
		{"word split match", "idPrefix", "idPrefixes"},
		{"unrelated", "fanartUrl", ""},
		{"totally custom", "myExtensionData", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SuggestField(tt.unknown, manifestFields))
		})
	}
}

func TestEditDistance(t *testing.T) {
	assert.Equal(t, 0, editDistance("abc", "abc"))
	assert.Equal(t, 1, editDistance("abc", "abd"))
	assert.Equal(t, 3, editDistance("", "abc"))
}
