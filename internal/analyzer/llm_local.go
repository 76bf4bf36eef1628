package analyzer

import (
	"context"
	"strings"
)

// LocalJudge 결정적 로컬 판단 모듈.
// 언어모델 판단 호출의 시뮬레이션으로, 플래그 규칙의 가산 점수로 동작한다.
type LocalJudge struct{}

// NewLocalJudge creates a new LocalJudge
func NewLocalJudge() *LocalJudge {
	return &LocalJudge{}
}

// Name 백엔드 식별자
func (j *LocalJudge) Name() string {
	return "simulated"
}

// Analyze 트리거 판정 후 플래그 규칙 평가
func (j *LocalJudge) Analyze(_ context.Context, pre *Preprocessed) *LLMResult {
	if !shouldTrigger(pre) {
		return notTriggeredResult()
	}

	score := 0.0
	flags := []string{}
	var reason strings.Builder

	if isHighRiskCase(pre) {
		score += 50
		flags = append(flags, FlagHighRiskCase)
		reason.WriteString("고위험 케이스 감지. ")
	}

	if containsAny(pre.Normalized, intentWords) {
		score += 30
		flags = append(flags, FlagBuySellIntent)
		reason.WriteString("거래 의도 감지. ")
	}

	if containsAny(pre.Normalized, partyWords) {
		score += 30
		flags = append(flags, FlagPartyContext)
		reason.WriteString("파티 맥락 감지. ")
	}

	if hasAnyEmoji(pre.Emojis, stimulantEmojis) || containsAny(pre.Normalized, stimulantWords) {
		score += 35
		flags = append(flags, FlagStimulantHint)
		reason.WriteString("흥분제 암시 감지. ")
	}

	if containsAny(pre.Normalized, vulnerableWords) {
		score += 15
		flags = append(flags, FlagVulnerableEmotion)
		reason.WriteString("취약한 정서 상태 감지. ")
	}

	if containsAny(pre.Normalized, minorWords) {
		score += 20
		flags = append(flags, FlagMinorTargeting)
		reason.WriteString("미성년자 타겟팅 의심. ")
	}

	// 무해 문맥은 점수를 깎는다 (0 미만으로는 내려가지 않음)
	if containsAny(pre.Normalized, benignWords) {
		score -= 20
		if score < 0 {
			score = 0
		}
		flags = append(flags, FlagBenignContext)
		reason.WriteString("무해한 맥락으로 점수 감소. ")
	}

	if len(pre.Emojis) > 0 && isNewSlangCombination(pre) {
		score += 10
		flags = append(flags, FlagNewSlang)
		reason.WriteString("새로운 은어 패턴 감지. ")
	}

	if score > 100 {
		score = 100
	}

	confidence := 0.5 + 0.1*float64(len(flags))
	if confidence > 0.9 {
		confidence = 0.9
	}

	reasonText := strings.TrimSpace(reason.String())
	if reasonText == "" {
		reasonText = "일반적인 분석"
	}

	return &LLMResult{
		Score:      score,
		Used:       true,
		Reason:     reasonText,
		Flags:      flags,
		Confidence: confidence,
	}
}
