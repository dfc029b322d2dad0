package utils_test

import (
	// Go Internal Packages
	"testing"

	// Local Packages
	utils "debt-ledger/utils"

	// External Packages
	"github.com/stretchr/testify/assert"
)

func TestContainsFold(t *testing.T) {
	tests := []struct {
		name   string
		s      string
		substr string
		want   bool
	}{
		{"exact match", "John Doe", "John Doe", true},
		{"case folded", "John Doe", "john", true},
		{"upper query", "john doe", "JOHN", true},
		{"empty query matches everything", "Mary Smith", "", true},
		{"no match", "Mary Smith", "john", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.ContainsFold(tt.s, tt.substr))
		})
	}
}
