package analyzer

import "testing"

func TestEmotionAnalyze(t *testing.T) {
	p := NewPreprocessor()
	s := NewEmotionScorer(DefaultConfig())

	tests := []struct {
		name         string
		input        string
		wantScore    float64
		wantDominant string
	}{
		{
			name:         "empty input is neutral",
			input:        "",
			wantScore:    0,
			wantDominant: "neutrality",
		},
		{
			name:         "no emotion keywords",
			input:        "내일 회의 일정 공유합니다",
			wantScore:    0,
			wantDominant: "neutrality",
		},
		{
			// 단일 카테고리 매칭은 정규화로 100이 되고 합산은 100/4 = 25
			name:         "single depression keyword",
			input:        "요즘 너무 우울",
			wantScore:    25,
			wantDominant: "depression",
		},
		{
			// 화나다는 anxiety와 anger 양쪽 키워드라 둘 다 100,
			// 동률이면 카테고리 순서상 먼저인 anxiety가 우세
			name:         "tie resolved by category order",
			input:        "진짜 화나다",
			wantScore:    50,
			wantDominant: "anxiety",
		},
		{
			name:         "neutral keywords do not raise composite",
			input:        "그냥 괜찮다",
			wantScore:    0,
			wantDominant: "neutrality",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := s.Analyze(p.Process(tt.input))
			if result.Score != tt.wantScore {
				t.Errorf("score = %v, want %v", result.Score, tt.wantScore)
			}
			if result.DominantEmotion != tt.wantDominant {
				t.Errorf("dominant = %q, want %q", result.DominantEmotion, tt.wantDominant)
			}
		})
	}
}

func TestEmotionNormalizationByMax(t *testing.T) {
	p := NewPreprocessor()
	s := NewEmotionScorer(DefaultConfig())

	// depression 2회(우울, 힘들다) vs despair 1회(포기)
	// 최대값(depression=20) 기준으로 depression 100, despair 50
	result := s.Analyze(p.Process("우울 힘들다 포기"))

	if result.Emotions.Depression != 100 {
		t.Errorf("depression = %v, want 100", result.Emotions.Depression)
	}
	if result.Emotions.Despair != 50 {
		t.Errorf("despair = %v, want 50", result.Emotions.Despair)
	}
	if result.DominantEmotion != "depression" {
		t.Errorf("dominant = %q, want depression", result.DominantEmotion)
	}
	// composite = (100 + 0 + 50 + 0) / 4
	if result.Score != 37.5 {
		t.Errorf("score = %v, want 37.5", result.Score)
	}
}

func TestEmotionScoreNeverExceeds100(t *testing.T) {
	p := NewPreprocessor()
	s := NewEmotionScorer(DefaultConfig())

	result := s.Analyze(p.Process("우울 불안 포기 화나다 열받다 절망 걱정 끝"))
	if result.Score > 100 {
		t.Errorf("score = %v, exceeds 100", result.Score)
	}
	for _, v := range []float64{
		result.Emotions.Depression, result.Emotions.Anxiety,
		result.Emotions.Despair, result.Emotions.Anger, result.Emotions.Neutrality,
	} {
		if v < 0 || v > 100 {
			t.Errorf("category score %v out of [0,100]", v)
		}
	}
}
