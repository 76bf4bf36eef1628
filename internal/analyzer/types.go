package analyzer

import "time"

// RiskLevel 위험 등급
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// EmojiOccurrence 원문에서 발견된 이모지 1건
// Position은 원문(normalized 아님)의 룬 인덱스 기준
type EmojiOccurrence struct {
	Emoji    string `json:"emoji"`
	Position int    `json:"position"`
	Context  string `json:"context"`
}

// Token 스크립트 종류별 토큰 (korean | english | number)
type Token struct {
	Token  string `json:"token"`
	Type   string `json:"type"`
	Length int    `json:"length"`
}

// Preprocessed 전처리 결과. 요청마다 새로 생성되며 이후 변경되지 않음
type Preprocessed struct {
	Original   string            `json:"original"`
	Normalized string            `json:"normalized"`
	Emojis     []EmojiOccurrence `json:"emojis"`
	Tokens     []Token           `json:"tokens"`
	Context    []EmojiOccurrence `json:"context"`
}

// DetectedEmoji 룰 모듈이 탐지한 위험 이모지
type DetectedEmoji struct {
	Emoji      string   `json:"emoji"`
	Substance  string   `json:"substance"`
	RiskWeight int      `json:"riskWeight"`
	Aliases    []string `json:"aliases"`
}

// DetectedKeyword 룰 모듈이 탐지한 위험 키워드
type DetectedKeyword struct {
	Keyword    string `json:"keyword"`
	Category   string `json:"category"`
	RiskWeight int    `json:"riskWeight"`
}

// CoOccurrenceBonus 동시 출현 규칙 가산점
type CoOccurrenceBonus struct {
	Pattern     []string `json:"pattern"`
	Bonus       int      `json:"bonus"`
	Description string   `json:"description"`
}

// RuleBreakdown 룰 점수 구성 내역
type RuleBreakdown struct {
	EmojiScore        int `json:"emojiScore"`
	KeywordScore      int `json:"keywordScore"`
	CoOccurrenceScore int `json:"coOccurrenceScore"`
}

// RuleResult 룰 기반 모듈 결과. 점수는 상한 없는 누적값
type RuleResult struct {
	Score               int                 `json:"score"`
	DetectedEmojis      []DetectedEmoji     `json:"detectedEmojis"`
	DetectedKeywords    []DetectedKeyword   `json:"detectedKeywords"`
	CoOccurrenceBonuses []CoOccurrenceBonus `json:"coOccurrenceBonuses"`
	Breakdown           RuleBreakdown       `json:"breakdown"`
}

// EmotionScores 감정 카테고리별 정규화 점수 (0-100)
type EmotionScores struct {
	Depression float64 `json:"depression"`
	Anxiety    float64 `json:"anxiety"`
	Despair    float64 `json:"despair"`
	Anger      float64 `json:"anger"`
	Neutrality float64 `json:"neutrality"`
}

// EmotionResult 감정 모듈 결과 (0-100)
type EmotionResult struct {
	Score           float64       `json:"score"`
	Emotions        EmotionScores `json:"emotions"`
	DominantEmotion string        `json:"dominantEmotion"`
}

// Similarity 이모지-문맥 유사도 1건. similarity ∈ [-1,1], score ∈ [-15,15]
type Similarity struct {
	Emoji      string  `json:"emoji"`
	Pattern    string  `json:"pattern"`
	Similarity float64 `json:"similarity"`
	Score      float64 `json:"score"`
}

// ClipBreakdown 유사도 점수 구성 내역
type ClipBreakdown struct {
	SimilarityScore float64 `json:"similarityScore"`
	ContextScore    int     `json:"contextScore"`
}

// ClipResult 유사도 모듈 결과 (0-30)
type ClipResult struct {
	Score                float64       `json:"score"`
	Similarities         []Similarity  `json:"similarities"`
	ContextReinforcement int           `json:"contextReinforcement"`
	Breakdown            ClipBreakdown `json:"breakdown"`
}

// LLMResult 판단 모듈 결과 (0-100).
// Used=false면 트리거되지 않았거나 원격 호출이 실패한 경우이며
// 융합 단계에서 가중치가 재조정된다.
type LLMResult struct {
	Score      float64  `json:"score"`
	Used       bool     `json:"used"`
	Reason     string   `json:"reason"`
	Flags      []string `json:"flags"`
	Confidence float64  `json:"confidence,omitempty"`
	Error      string   `json:"error,omitempty"`
}

// Analysis 네 모듈의 결과 묶음
type Analysis struct {
	Rule    *RuleResult    `json:"rule"`
	Emotion *EmotionResult `json:"emotion"`
	Clip    *ClipResult    `json:"clip"`
	LLM     *LLMResult     `json:"llm"`
}

// Recommendations 등급별 권고 조치
type Recommendations struct {
	Immediate  []string `json:"immediate"`
	FollowUp   []string `json:"followUp"`
	Escalation []string `json:"escalation"`
}

// Result 최종 분석 결과. 생성 후 변경되지 않음
type Result struct {
	Input           string          `json:"input"`
	Preprocessed    *Preprocessed   `json:"preprocessed"`
	Analysis        Analysis        `json:"analysis"`
	FinalScore      int             `json:"finalScore"`
	RiskLevel       RiskLevel       `json:"riskLevel"`
	Recommendations Recommendations `json:"recommendations"`
	Timestamp       time.Time       `json:"timestamp"`
}
