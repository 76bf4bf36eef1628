package analyzer

import "strings"

const emotionPointsPerMatch = 10

// EmotionScorer 다섯 감정 카테고리의 부정 정서 키워드 밀도를 점수화한다
type EmotionScorer struct {
	categories []EmotionCategory
}

// NewEmotionScorer creates a new EmotionScorer
func NewEmotionScorer(cfg *Config) *EmotionScorer {
	return &EmotionScorer{categories: cfg.EmotionCategories}
}

// Analyze 감정 분석 실행.
// 카테고리별 키워드 출현 횟수(건당 10점)를 센 뒤 최대값 기준으로 0-100 정규화한다.
// 합산 점수는 부정 카테고리 4개(neutrality 제외)의 평균이며 100을 넘지 않는다.
func (s *EmotionScorer) Analyze(pre *Preprocessed) *EmotionResult {
	raw := make([]float64, len(s.categories))
	for i, cat := range s.categories {
		for _, keyword := range cat.Keywords {
			if n := strings.Count(pre.Normalized, keyword); n > 0 {
				raw[i] += float64(n * emotionPointsPerMatch)
			}
		}
	}

	// 최대값 기준 정규화 (전부 0이면 그대로 0)
	maxRaw := 0.0
	for _, v := range raw {
		if v > maxRaw {
			maxRaw = v
		}
	}
	if maxRaw > 0 {
		for i := range raw {
			raw[i] = raw[i] / maxRaw * 100
			if raw[i] > 100 {
				raw[i] = 100
			}
		}
	}

	scores := EmotionScores{}
	var negativeSum float64
	dominant := "neutrality"
	maxNorm := 0.0
	for i, cat := range s.categories {
		switch cat.Name {
		case "depression":
			scores.Depression = raw[i]
			negativeSum += raw[i]
		case "anxiety":
			scores.Anxiety = raw[i]
			negativeSum += raw[i]
		case "despair":
			scores.Despair = raw[i]
			negativeSum += raw[i]
		case "anger":
			scores.Anger = raw[i]
			negativeSum += raw[i]
		case "neutrality":
			scores.Neutrality = raw[i]
		}
		// 동률은 카테고리 목록 순서상 먼저 최대에 도달한 쪽이 우세
		if raw[i] > maxNorm {
			maxNorm = raw[i]
			dominant = cat.Name
		}
	}

	composite := negativeSum / 4
	if composite > 100 {
		composite = 100
	}

	return &EmotionResult{
		Score:           composite,
		Emotions:        scores,
		DominantEmotion: dominant,
	}
}
