package sentiment

import (
	"testing"
)

func TestAnalyzer_Polarity(t *testing.T) {
	analyzer := NewAnalyzer()

	tests := []struct {
		name     string
		text     string
		expected string // positive, negative, or neutral
	}{
		{
			name:     "pro climate text",
			text:     "Renewable energy breakthrough, solar and wind progress gives hope",
			expected: "positive",
		},
		{
			name:     "alarmed text",
			text:     "Climate crisis is a disaster, wildfires and drought destroy everything",
			expected: "negative",
		},
		{
			name:     "denial text",
			text:     "Global warming is a hoax and a scam, all lies",
			expected: "negative",
		},
		{
			name:     "neutral text",
			text:     "The report was published on Tuesday by the panel",
			expected: "neutral",
		},
		{
			name:     "empty text",
			text:     "",
			expected: "neutral",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := analyzer.Polarity(tt.text)

			var got string
			if score > 0.05 {
				got = "positive"
			} else if score < -0.05 {
				got = "negative"
			} else {
				got = "neutral"
			}

			if got != tt.expected {
				t.Errorf("Expected %s sentiment, got %s (score: %.3f)",
					tt.expected, got, score)
			}
		})
	}
}

func TestAnalyzer_ScoreRange(t *testing.T) {
	analyzer := NewAnalyzer()

	texts := []string{
		"renewable clean sustainable breakthrough hope progress",
		"disaster catastrophe extinction collapse hoax fraud",
		"the panel met on tuesday",
		"",
	}

	for _, text := range texts {
		score := analyzer.Analyze(text)

		if score.Polarity < -1.0 || score.Polarity > 1.0 {
			t.Errorf("Polarity should be between -1.0 and 1.0, got %.3f for: %s",
				score.Polarity, text)
		}
		if score.Subjectivity < 0.0 || score.Subjectivity > 1.0 {
			t.Errorf("Subjectivity should be between 0.0 and 1.0, got %.3f for: %s",
				score.Subjectivity, text)
		}
	}
}

func TestAnalyzer_PunctuationStripped(t *testing.T) {
	analyzer := NewAnalyzer()

	plain := analyzer.Polarity("renewable energy hope")
	punct := analyzer.Polarity("renewable, energy... hope!")

	if plain != punct {
		t.Errorf("Punctuation should not change the score: %.3f != %.3f", plain, punct)
	}
}
