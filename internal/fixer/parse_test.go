package fixer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Artem819/StackTrack/internal/domain"
)

func TestParseFix(t *testing.T) {
	rec := domain.ExceptionRecord{ExceptionType: "NullPointerException"}

	testCases := []struct {
		name    string
		raw     string
		want    domain.CodeFix
		wantErr bool
	}{
		{
			name: "plain json",
			raw: `{"root_cause":"user is nil","fix_description":"add a nil check",` +
				`"code_suggestions":[{"file":"UserService.java","description":"guard","code":"if (user == null) return;"}],` +
				`"prevention_tips":["validate input"],"confidence_score":0.9}`,
			want: domain.CodeFix{
				ExceptionType:  "NullPointerException",
				RootCause:      "user is nil",
				FixDescription: "add a nil check",
				CodeSuggestions: []domain.CodeSuggestion{
					{File: "UserService.java", Description: "guard", Code: "if (user == null) return;"},
				},
				PreventionTips:  []string{"validate input"},
				ConfidenceScore: 0.9,
			},
		},
		{
			name: "fenced json",
			raw:  "```json\n{\"root_cause\":\"x\",\"fix_description\":\"y\",\"confidence_score\":0.5}\n```",
			want: domain.CodeFix{
				ExceptionType:   "NullPointerException",
				RootCause:       "x",
				FixDescription:  "y",
				ConfidenceScore: 0.5,
			},
		},
		{
			name: "confidence clamped high",
			raw:  `{"root_cause":"x","confidence_score":3.5}`,
			want: domain.CodeFix{
				ExceptionType:   "NullPointerException",
				RootCause:       "x",
				ConfidenceScore: 1,
			},
		},
		{
			name: "confidence clamped low",
			raw:  `{"root_cause":"x","confidence_score":-0.3}`,
			want: domain.CodeFix{
				ExceptionType:   "NullPointerException",
				RootCause:       "x",
				ConfidenceScore: 0,
			},
		},
		{
			name:    "not json",
			raw:     "I think the problem is a null pointer.",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseFix(tc.raw, rec)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFallbackFix(t *testing.T) {
	fix := fallbackFix(domain.ExceptionRecord{
		ExceptionType: "SQLException",
		FilePath:      "UserRepo.java",
	})

	assert.Equal(t, "SQLException", fix.ExceptionType)
	assert.Contains(t, fix.FixDescription, "UserRepo.java")
	assert.GreaterOrEqual(t, fix.ConfidenceScore, 0.0)
	assert.LessOrEqual(t, fix.ConfidenceScore, 1.0)
}
