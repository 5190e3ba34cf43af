package generation

import (
	"context"
	"errors"
	"testing"
	"time"

	"astgym/gym-ai/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleStats = domain.UserPhysicalStats{Age: 30, Gender: domain.GenderMale, Height: 180, Weight: 80, Waist: 85, Neck: 38}

func TestAnalyze(t *testing.T) {
	gen := &fakeGenerator{text: "```json\n" + `{"bmi":24.7,"bodyFatEstimate":"%15-18","bodyType":"Mezomorf","status":"Normal","feedback":"İyi gidiyorsun."}` + "\n```"}

	got, err := NewAnalyzer(gen, time.Second, nil).Analyze(context.Background(), sampleStats)
	require.NoError(t, err)

	assert.Equal(t, &domain.HealthAnalysis{
		BMI:             24.7,
		BodyFatEstimate: "%15-18",
		BodyType:        "Mezomorf",
		Status:          "Normal",
		Feedback:        "İyi gidiyorsun.",
	}, got)
	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "Boyun: 38 cm")
}

func TestAnalyze_Errors(t *testing.T) {
	tests := []struct {
		name string
		gen  *fakeGenerator
		want error
	}{
		{"generator error", &fakeGenerator{err: errors.New("down")}, ErrAnalysis},
		{"empty", &fakeGenerator{text: " "}, ErrAnalysisEmptyResponse},
		{"malformed", &fakeGenerator{text: "{bmi:"}, ErrAnalysisParse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewAnalyzer(tt.gen, time.Second, nil).Analyze(context.Background(), sampleStats)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, ErrAnalysis)
		})
	}
}
