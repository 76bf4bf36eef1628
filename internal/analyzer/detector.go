// Package analyzer implements the multi-signal risk fusion pipeline:
// preprocessing, four independent scoring modules (rule, emotion,
// similarity, judgment) and weighted fusion into a final risk tier.
package analyzer

import (
	"context"
	"math"
	"time"
)

// 융합 단계 조건부 보너스.
// high_risk_case는 항상 +40, buy_sell_intent는 항상 +20을 가산한다.
const (
	highRiskBonus      = 40
	buySellIntentBonus = 20
)

// Detector 전체 분석 파이프라인.
// 요청 간 공유 가변 상태가 없으며 설정 테이블은 생성 후 읽기 전용이다.
// 판단 백엔드를 바꾸려면 새 Detector를 만들어 교체한다.
type Detector struct {
	cfg     *Config
	pre     *Preprocessor
	rule    *RuleScorer
	emotion *EmotionScorer
	clip    *ClipScorer
	judge   Judge
}

// NewDetector creates a new Detector with the given config and judgment backend.
func NewDetector(cfg *Config, judge Judge) (*Detector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Detector{
		cfg:     cfg,
		pre:     NewPreprocessor(),
		rule:    NewRuleScorer(cfg),
		emotion: NewEmotionScorer(cfg),
		clip:    NewClipScorer(cfg),
		judge:   judge,
	}, nil
}

// JudgeName 현재 판단 백엔드 이름
func (d *Detector) JudgeName() string {
	return d.judge.Name()
}

// Analyze 분석 파이프라인 실행.
// 정상적인 문자열 입력에서는 실패하지 않는다. 네 모듈은 서로 의존성이 없어
// 동시에 실행되며, 순차 실행과 동일한 결과를 낸다.
func (d *Detector) Analyze(ctx context.Context, text string) *Result {
	pre := d.pre.Process(text)

	var (
		ruleResult    *RuleResult
		emotionResult *EmotionResult
		clipResult    *ClipResult
		llmResult     *LLMResult
	)

	done := make(chan struct{}, 4)
	go func() { ruleResult = d.rule.Detect(pre); done <- struct{}{} }()
	go func() { emotionResult = d.emotion.Analyze(pre); done <- struct{}{} }()
	go func() { clipResult = d.clip.Analyze(pre); done <- struct{}{} }()
	go func() { llmResult = d.judge.Analyze(ctx, pre); done <- struct{}{} }()
	for i := 0; i < 4; i++ {
		<-done
	}

	finalScore := d.fuse(ruleResult, emotionResult, clipResult, llmResult)
	riskLevel := d.classifyRisk(finalScore)

	return &Result{
		Input:        text,
		Preprocessed: pre,
		Analysis: Analysis{
			Rule:    ruleResult,
			Emotion: emotionResult,
			Clip:    clipResult,
			LLM:     llmResult,
		},
		FinalScore:      int(math.Round(finalScore)),
		RiskLevel:       riskLevel,
		Recommendations: d.recommendations(riskLevel),
		Timestamp:       time.Now().UTC(),
	}
}

// fuse 가중 합산 + 조건부 보너스.
// 판단 모듈이 미사용이거나 점수가 0이거나 실패하면 나머지 세 가중치를
// 비례 재조정해 합산하고, 판단 모듈은 기여하지 않는다.
func (d *Detector) fuse(rule *RuleResult, emotion *EmotionResult, clip *ClipResult, llm *LLMResult) float64 {
	w := d.cfg.Weights

	if !llm.Used || llm.Score == 0 || llm.Error != "" {
		total := w.Rule + w.Emotion + w.Clip
		return (w.Rule/total)*float64(rule.Score) +
			(w.Emotion/total)*emotion.Score +
			(w.Clip/total)*clip.Score
	}

	finalScore := w.Rule*float64(rule.Score) +
		w.Emotion*emotion.Score +
		w.Clip*clip.Score +
		w.LLM*llm.Score

	if hasFlag(llm.Flags, FlagHighRiskCase) {
		finalScore += highRiskBonus
	}
	if hasFlag(llm.Flags, FlagBuySellIntent) {
		finalScore += buySellIntentBonus
	}

	if finalScore > 100 {
		finalScore = 100
	}
	return finalScore
}

// classifyRisk 반올림 전 값으로 등급을 판정한다 (경계는 각 등급의 하한 포함)
func (d *Detector) classifyRisk(score float64) RiskLevel {
	switch {
	case score < d.cfg.Thresholds.Low:
		return RiskLow
	case score < d.cfg.Thresholds.Medium:
		return RiskMedium
	default:
		return RiskHigh
	}
}

// recommendations 등급별 권고 조치 조회. 빈 버킷도 빈 리스트로 직렬화한다
func (d *Detector) recommendations(level RiskLevel) Recommendations {
	rec, ok := d.cfg.Recommendations[level]
	if !ok {
		return Recommendations{Immediate: []string{}, FollowUp: []string{}, Escalation: []string{}}
	}
	out := Recommendations{
		Immediate:  append([]string{}, rec.Immediate...),
		FollowUp:   append([]string{}, rec.FollowUp...),
		Escalation: append([]string{}, rec.Escalation...),
	}
	return out
}

func hasFlag(flags []string, flag string) bool {
	for _, f := range flags {
		if f == flag {
			return true
		}
	}
	return false
}
