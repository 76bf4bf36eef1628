package analyzer

import "testing"

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
}

func TestValidateRejectsBadWeights(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Weights.Rule = 0.5 // 합이 1.0을 벗어남
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for weight sum != 1.0")
	}
}

func TestValidateRejectsBadThresholds(t *testing.T) {
	tests := []struct {
		name        string
		low, medium float64
	}{
		{"zero low", 0, 70},
		{"medium below low", 40, 30},
		{"medium equals low", 40, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Thresholds = Thresholds{Low: tt.low, Medium: tt.medium}
			if err := cfg.Validate(); err == nil {
				t.Error("expected threshold validation error")
			}
		})
	}
}

func TestNewDetectorRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Weights.LLM = 0.9
	if _, err := NewDetector(cfg, NewLocalJudge()); err == nil {
		t.Error("expected NewDetector to reject invalid config")
	}
}

func TestDefaultConfigKnowledgeTables(t *testing.T) {
	cfg := DefaultConfig()

	if len(cfg.Emojis) != 10 {
		t.Errorf("emoji table size = %d, want 10", len(cfg.Emojis))
	}
	if len(cfg.Keywords) != 15 {
		t.Errorf("keyword table size = %d, want 15", len(cfg.Keywords))
	}
	if len(cfg.CoOccurrenceRules) != 4 {
		t.Errorf("co-occurrence rules = %d, want 4", len(cfg.CoOccurrenceRules))
	}
	if len(cfg.EmotionCategories) != 5 {
		t.Errorf("emotion categories = %d, want 5", len(cfg.EmotionCategories))
	}
	for _, rec := range cfg.Recommendations {
		if len(rec.Immediate) == 0 {
			t.Error("every risk level needs immediate recommendations")
		}
	}
}
