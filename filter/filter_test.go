package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func volumeEnv(name string, startYear, issueCount int) map[string]any {
	return map[string]any{
		"Name":       name,
		"StartYear":  startYear,
		"IssueCount": issueCount,
	}
}

func TestCompile(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		wantErr    bool
	}{
		{name: "comparison", expression: `StartYear >= 1980`},
		{name: "boolean logic", expression: `StartYear >= 1980 and IssueCount > 10`},
		{name: "helper call", expression: `contains(Name, "batman")`},
		{name: "empty", expression: "", wantErr: true},
		{name: "whitespace only", expression: "   ", wantErr: true},
		{name: "syntax error", expression: `StartYear >=`, wantErr: true},
		{name: "non-boolean result", expression: `1 + 2`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expression, f.String())
		})
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		env        map[string]any
		want       bool
	}{
		{
			name:       "year match",
			expression: `StartYear == 2003`,
			env:        volumeEnv("Invincible", 2003, 144),
			want:       true,
		},
		{
			name:       "year mismatch",
			expression: `StartYear == 2003`,
			env:        volumeEnv("Saga", 2012, 66),
			want:       false,
		},
		{
			name:       "contains is case-insensitive",
			expression: `contains(Name, "INVINCIBLE")`,
			env:        volumeEnv("Invincible", 2003, 144),
			want:       true,
		},
		{
			name:       "hasPrefix",
			expression: `hasPrefix(Name, "inv")`,
			env:        volumeEnv("Invincible", 2003, 144),
			want:       true,
		},
		{
			name:       "hasSuffix",
			expression: `hasSuffix(Name, "cible")`,
			env:        volumeEnv("Invincible", 2003, 144),
			want:       true,
		},
		{
			name:       "lower",
			expression: `lower(Name) == "saga"`,
			env:        volumeEnv("Saga", 2012, 66),
			want:       true,
		},
		{
			name:       "combined",
			expression: `StartYear >= 2000 and IssueCount > 100`,
			env:        volumeEnv("Invincible", 2003, 144),
			want:       true,
		},
		{
			name:       "undefined variable is nil",
			expression: `Publisher == nil`,
			env:        volumeEnv("Invincible", 2003, 144),
			want:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			require.NoError(t, err)

			got, err := f.Match(tt.env)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchDoesNotMutateEnv(t *testing.T) {
	f, err := Compile(`contains(Name, "saga")`)
	require.NoError(t, err)

	env := volumeEnv("Saga", 2012, 66)
	_, err = f.Match(env)
	require.NoError(t, err)

	// Helpers are merged into a copy, not the caller's map.
	assert.Len(t, env, 3)
}
