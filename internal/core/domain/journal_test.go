package domain_test

import (
	"testing"

	"github.com/AhmedMohamed005/erp-sys/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestJournalEntry_IsBalanced(t *testing.T) {
	tests := []struct {
		name  string
		lines []domain.JournalEntryLine
		want  bool
	}{
		{
			name: "simple balanced entry",
			lines: []domain.JournalEntryLine{
				{Debit: decimal.NewFromInt(100)},
				{Credit: decimal.NewFromInt(100)},
			},
			want: true,
		},
		{
			name: "unbalanced entry",
			lines: []domain.JournalEntryLine{
				{Debit: decimal.NewFromInt(100)},
				{Credit: decimal.NewFromInt(90)},
			},
			want: false,
		},
		{
			name: "balanced after rounding to two places",
			lines: []domain.JournalEntryLine{
				{Debit: decimal.RequireFromString("33.333")},
				{Debit: decimal.RequireFromString("66.667")},
				{Credit: decimal.RequireFromString("100.001")},
			},
			want: true,
		},
		{
			name: "multiple lines on each side",
			lines: []domain.JournalEntryLine{
				{Debit: decimal.NewFromInt(60)},
				{Debit: decimal.NewFromInt(40)},
				{Credit: decimal.NewFromInt(25)},
				{Credit: decimal.NewFromInt(75)},
			},
			want: true,
		},
		{
			name:  "empty entry balances trivially",
			lines: nil,
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := domain.JournalEntry{Lines: tt.lines}
			assert.Equal(t, tt.want, entry.IsBalanced())
		})
	}
}

func TestJournalEntry_Totals(t *testing.T) {
	entry := domain.JournalEntry{
		Lines: []domain.JournalEntryLine{
			{Debit: decimal.NewFromInt(150)},
			{Debit: decimal.NewFromInt(50)},
			{Credit: decimal.NewFromInt(200)},
		},
	}

	assert.True(t, entry.TotalDebits().Equal(decimal.NewFromInt(200)))
	assert.True(t, entry.TotalCredits().Equal(decimal.NewFromInt(200)))
}
