package analyzer

import (
	"fmt"
	"math"
)

// Weights 모듈별 융합 가중치. 합은 1.0이어야 한다
type Weights struct {
	Rule    float64
	Emotion float64
	Clip    float64
	LLM     float64
}

// Thresholds 위험 등급 경계. score < Low → low, < Medium → medium, 이상 → high
type Thresholds struct {
	Low    float64
	Medium float64
}

// EmojiEntry 위험 이모지 테이블 항목
type EmojiEntry struct {
	Emoji      string
	Substance  string
	RiskWeight int
	Aliases    []string
}

// KeywordEntry 위험 키워드 테이블 항목
type KeywordEntry struct {
	Keyword    string
	Category   string
	RiskWeight int
}

// CoOccurrenceRule 동시 출현 규칙.
// Pattern의 모든 항목(이모지/키워드)이 독립적으로 탐지되면 Bonus 가산
type CoOccurrenceRule struct {
	Pattern     []string
	Bonus       int
	Description string
}

// EmotionCategory 감정 카테고리와 키워드 목록
type EmotionCategory struct {
	Name     string
	Keywords []string
}

// EmojiSimilarity 이모지별 사전 계산 유사도 값 ([-1,1])
type EmojiSimilarity struct {
	Emoji string
	Value float64
}

// SimilarityPattern 문맥 패턴별 이모지 유사도 테이블 항목
type SimilarityPattern struct {
	Pattern string
	Emojis  []EmojiSimilarity
}

// Config 파이프라인 정적 설정. 생성 후 읽기 전용이며
// 변경이 필요하면 새 Detector를 만들어 교체한다.
type Config struct {
	Weights    Weights
	Thresholds Thresholds

	// 등급별 권고 조치 테이블 (외부 설정으로 교체 가능)
	Recommendations map[RiskLevel]Recommendations

	// 룰 모듈 지식 테이블 (순서 보존, 증거 출력 순서가 안정적이어야 함)
	Emojis            []EmojiEntry
	Keywords          []KeywordEntry
	CoOccurrenceRules []CoOccurrenceRule

	// 감정 모듈 (카테고리 순서가 동률 해소 순서)
	EmotionCategories []EmotionCategory

	// 유사도 모듈
	SimilarityPatterns     []SimilarityPattern
	TransactionBase        []EmojiSimilarity
	TransactionBaseDefault float64
}

// Validate 가중치 합 등 설정 불변식 검사
func (c *Config) Validate() error {
	sum := c.Weights.Rule + c.Weights.Emotion + c.Weights.Clip + c.Weights.LLM
	if math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("융합 가중치 합이 1.0이 아닙니다: %v", sum)
	}
	if c.Thresholds.Low <= 0 || c.Thresholds.Medium <= c.Thresholds.Low {
		return fmt.Errorf("위험 등급 경계가 유효하지 않습니다: low=%v medium=%v", c.Thresholds.Low, c.Thresholds.Medium)
	}
	return nil
}

// DefaultConfig 기본 지식 테이블과 가중치로 설정 생성
func DefaultConfig() *Config {
	return &Config{
		Weights:    Weights{Rule: 0.45, Emotion: 0.25, Clip: 0.10, LLM: 0.20},
		Thresholds: Thresholds{Low: 40, Medium: 70},

		Recommendations: map[RiskLevel]Recommendations{
			RiskLow: {
				Immediate:  []string{"로그 저장 (익명화)", "별도 조치 없음"},
				FollowUp:   []string{},
				Escalation: []string{},
			},
			RiskMedium: {
				Immediate:  []string{"사용자에게 경고 알림 제공", "예방 교육 자료 링크 제공"},
				FollowUp:   []string{},
				Escalation: []string{},
			},
			RiskHigh: {
				Immediate:  []string{"모더레이터에게 즉시 알림", "옵트인 환경에서 보호자/상담사 연계"},
				FollowUp:   []string{},
				Escalation: []string{},
			},
		},

		Emojis: []EmojiEntry{
			{Emoji: "🍁", Substance: "cannabis", RiskWeight: 28, Aliases: []string{"대마", "마리화나"}},
			{Emoji: "🍄", Substance: "psilocybin", RiskWeight: 28, Aliases: []string{"환각버섯", "매직머시룸"}},
			{Emoji: "💊", Substance: "pills", RiskWeight: 25, Aliases: []string{"알약", "약"}},
			{Emoji: "❄️", Substance: "cocaine", RiskWeight: 30, Aliases: []string{"코카인", "스노우"}},
			{Emoji: "🌿", Substance: "herbs", RiskWeight: 20, Aliases: []string{"허브", "대마"}},
			{Emoji: "🔥", Substance: "crack", RiskWeight: 25, Aliases: []string{"크랙"}},
			{Emoji: "💉", Substance: "injection", RiskWeight: 35, Aliases: []string{"주사", "인젝션"}},
			{Emoji: "💨", Substance: "smoke", RiskWeight: 15, Aliases: []string{"연기", "흡연"}},
			{Emoji: "🥤", Substance: "lean", RiskWeight: 20, Aliases: []string{"린", "시럽"}},
			{Emoji: "🍃", Substance: "marijuana", RiskWeight: 22, Aliases: []string{"대마초"}},
		},

		Keywords: []KeywordEntry{
			{Keyword: "dm", Category: "communication", RiskWeight: 9},
			{Keyword: "가격", Category: "transaction", RiskWeight: 9},
			{Keyword: "배송", Category: "transaction", RiskWeight: 9},
			{Keyword: "거래", Category: "transaction", RiskWeight: 12},
			{Keyword: "판매", Category: "transaction", RiskWeight: 12},
			{Keyword: "구매", Category: "transaction", RiskWeight: 12},
			{Keyword: "파티", Category: "context", RiskWeight: 8},
			{Keyword: "야간", Category: "context", RiskWeight: 6},
			{Keyword: "클럽", Category: "context", RiskWeight: 8},
			{Keyword: "고객", Category: "transaction", RiskWeight: 7},
			{Keyword: "문의", Category: "communication", RiskWeight: 6},
			{Keyword: "연락", Category: "communication", RiskWeight: 6},
			{Keyword: "계좌", Category: "transaction", RiskWeight: 10},
			{Keyword: "입금", Category: "transaction", RiskWeight: 10},
			{Keyword: "현금", Category: "transaction", RiskWeight: 8},
		},

		CoOccurrenceRules: []CoOccurrenceRule{
			{Pattern: []string{"🍁", "dm", "가격"}, Bonus: 18, Description: "대마 + DM + 가격"},
			{Pattern: []string{"💊", "파티", "야간"}, Bonus: 15, Description: "알약 + 파티 + 야간"},
			{Pattern: []string{"❄️", "거래", "배송"}, Bonus: 20, Description: "코카인 + 거래 + 배송"},
			{Pattern: []string{"🍄", "환각", "트립"}, Bonus: 16, Description: "환각버섯 + 환각 + 트립"},
		},

		EmotionCategories: []EmotionCategory{
			{Name: "depression", Keywords: []string{"힘들다", "우울", "절망", "무기력", "피곤", "지치다", "싫다", "미치겠다"}},
			{Name: "anxiety", Keywords: []string{"불안", "걱정", "긴장", "스트레스", "짜증", "화나다", "분하다"}},
			{Name: "despair", Keywords: []string{"포기", "끝", "더이상", "안되겠다", "그만", "죽고싶다"}},
			{Name: "anger", Keywords: []string{"화나다", "짜증", "열받다", "빡치다", "개빡치다", "미치겠다"}},
			{Name: "neutrality", Keywords: []string{"그냥", "보통", "평범", "괜찮다", "좋다", "행복"}},
		},

		SimilarityPatterns: []SimilarityPattern{
			// 거래 패턴
			{Pattern: "dm price", Emojis: []EmojiSimilarity{{"🍁", 0.85}, {"💊", 0.75}, {"❄️", 0.80}, {"🍄", 0.70}}},
			{Pattern: "buy sell", Emojis: []EmojiSimilarity{{"🍁", 0.90}, {"💊", 0.85}, {"❄️", 0.90}, {"🍄", 0.80}}},
			{Pattern: "transaction", Emojis: []EmojiSimilarity{{"🍁", 0.80}, {"💊", 0.75}, {"❄️", 0.85}, {"🍄", 0.70}}},
			// 파티 패턴
			{Pattern: "party pill", Emojis: []EmojiSimilarity{{"💊", 0.90}, {"❄️", 0.85}, {"🍄", 0.75}}},
			{Pattern: "night club", Emojis: []EmojiSimilarity{{"💊", 0.80}, {"❄️", 0.85}, {"🍄", 0.70}}},
			// 정서 패턴
			{Pattern: "depress lonely", Emojis: []EmojiSimilarity{{"🍁", 0.60}, {"💊", 0.70}, {"🍄", 0.65}}},
			{Pattern: "stress anxiety", Emojis: []EmojiSimilarity{{"💊", 0.75}, {"🍄", 0.70}}},
			// 무해 패턴 (음수 유사도로 오탐 감점)
			{Pattern: "recipe food", Emojis: []EmojiSimilarity{{"🍄", -0.80}, {"🍁", -0.70}}},
			{Pattern: "cook kitchen", Emojis: []EmojiSimilarity{{"🍄", -0.85}, {"🍁", -0.75}}},
			{Pattern: "restaurant meal", Emojis: []EmojiSimilarity{{"🍄", -0.80}, {"🍁", -0.70}}},
		},

		TransactionBase: []EmojiSimilarity{
			{"🍁", 0.75}, {"💊", 0.70}, {"❄️", 0.80}, {"🍄", 0.65}, {"🌿", 0.60},
			{"🔥", 0.70}, {"💉", 0.85}, {"💨", 0.50}, {"🥤", 0.60}, {"🍃", 0.65},
		},
		TransactionBaseDefault: 0.50,
	}
}
