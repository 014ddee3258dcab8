package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSettingsRoundLocked(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		round    RoundType
		want     bool
	}{
		{
			name:     "qualification open by default",
			settings: Settings{},
			round:    RoundQualification,
			want:     false,
		},
		{
			name:     "qualification locked by flag",
			settings: Settings{QualificationLocked: true},
			round:    RoundQualification,
			want:     true,
		},
		{
			name:     "finals locked until enabled",
			settings: Settings{},
			round:    RoundFinals,
			want:     true,
		},
		{
			name:     "finals open when enabled",
			settings: Settings{FinalsEnabled: true, QualificationLocked: true},
			round:    RoundFinals,
			want:     false,
		},
		{
			name:     "unknown round always locked",
			settings: Settings{FinalsEnabled: true},
			round:    RoundType("semis"),
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.settings.RoundLocked(tt.round))
		})
	}
}

func TestCriterionAppliesTo(t *testing.T) {
	both := Criterion{Rounds: []RoundType{RoundQualification, RoundFinals}}
	finalsOnly := Criterion{Rounds: []RoundType{RoundFinals}}
	untagged := Criterion{}

	assert.True(t, both.AppliesTo(RoundQualification))
	assert.True(t, both.AppliesTo(RoundFinals))
	assert.False(t, finalsOnly.AppliesTo(RoundQualification))
	assert.True(t, finalsOnly.AppliesTo(RoundFinals))

	// Untagged criteria apply everywhere for backwards compatibility with
	// rows created before round tagging existed.
	assert.True(t, untagged.AppliesTo(RoundQualification))
	assert.True(t, untagged.AppliesTo(RoundFinals))
}
