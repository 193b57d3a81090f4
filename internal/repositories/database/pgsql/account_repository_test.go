package pgsql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywordMatchClause(t *testing.T) {
	testCases := []struct {
		name           string
		keywords       []string
		expectedClause string
		expectedArgs   []interface{}
	}{
		{
			name:           "Single keyword matches code or name",
			keywords:       []string{"receivable"},
			expectedClause: "(code ILIKE $3 OR name ILIKE $3)",
			expectedArgs:   []interface{}{"org-1", "Asset", "%receivable%"},
		},
		{
			name:           "Multiple keywords OR-ed together",
			keywords:       []string{"cash", "bank"},
			expectedClause: "(code ILIKE $3 OR name ILIKE $3) OR (code ILIKE $4 OR name ILIKE $4)",
			expectedArgs:   []interface{}{"org-1", "Asset", "%cash%", "%bank%"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clause, args := keywordMatchClause([]interface{}{"org-1", "Asset"}, tc.keywords)
			assert.Equal(t, tc.expectedClause, clause)
			assert.Equal(t, tc.expectedArgs, args)
		})
	}
}
