package analyzer

import "strings"

// RuleScorer 위험 이모지/키워드 존재와 동시 출현을 점수화한다.
// 점수는 상한 없는 누적값이며 융합 단계에서 가중치로 조정된다.
type RuleScorer struct {
	emojiIndex   map[string]EmojiEntry
	keywordIndex map[string]KeywordEntry
	rules        []CoOccurrenceRule
}

// NewRuleScorer creates a new RuleScorer
func NewRuleScorer(cfg *Config) *RuleScorer {
	emojiIndex := make(map[string]EmojiEntry, len(cfg.Emojis))
	for _, e := range cfg.Emojis {
		emojiIndex[e.Emoji] = e
	}
	keywordIndex := make(map[string]KeywordEntry, len(cfg.Keywords))
	for _, k := range cfg.Keywords {
		keywordIndex[k.Keyword] = k
	}
	return &RuleScorer{
		emojiIndex:   emojiIndex,
		keywordIndex: keywordIndex,
		rules:        cfg.CoOccurrenceRules,
	}
}

// Detect 룰 기반 탐지 실행. 동일 입력은 항상 동일한 순서의 증거를 만든다
// (이모지는 원문 출현 순, 키워드는 정규화 텍스트 어절 순, 규칙은 테이블 순).
func (s *RuleScorer) Detect(pre *Preprocessed) *RuleResult {
	result := &RuleResult{
		DetectedEmojis:      []DetectedEmoji{},
		DetectedKeywords:    []DetectedKeyword{},
		CoOccurrenceBonuses: []CoOccurrenceBonus{},
	}

	// 이모지 탐지
	for _, occ := range pre.Emojis {
		entry, ok := s.emojiIndex[occ.Emoji]
		if !ok {
			continue
		}
		result.Score += entry.RiskWeight
		result.Breakdown.EmojiScore += entry.RiskWeight
		result.DetectedEmojis = append(result.DetectedEmojis, DetectedEmoji{
			Emoji:      entry.Emoji,
			Substance:  entry.Substance,
			RiskWeight: entry.RiskWeight,
			Aliases:    entry.Aliases,
		})
	}

	// 키워드 탐지 (어절 단위 완전 일치, 부분 문자열 매칭 아님)
	for _, word := range strings.Fields(pre.Normalized) {
		entry, ok := s.keywordIndex[word]
		if !ok {
			continue
		}
		result.Score += entry.RiskWeight
		result.Breakdown.KeywordScore += entry.RiskWeight
		result.DetectedKeywords = append(result.DetectedKeywords, DetectedKeyword{
			Keyword:    word,
			Category:   entry.Category,
			RiskWeight: entry.RiskWeight,
		})
	}

	// 동시 출현 가산점: 규칙의 모든 항목이 위에서 독립적으로 탐지되면 적용.
	// 규칙끼리는 서로 독립이라 한 입력에 여러 규칙이 동시에 발화할 수 있다.
	detected := make(map[string]bool, len(result.DetectedEmojis)+len(result.DetectedKeywords))
	for _, e := range result.DetectedEmojis {
		detected[e.Emoji] = true
	}
	for _, k := range result.DetectedKeywords {
		detected[k.Keyword] = true
	}

	for _, rule := range s.rules {
		if !containsAll(detected, rule.Pattern) {
			continue
		}
		result.Score += rule.Bonus
		result.Breakdown.CoOccurrenceScore += rule.Bonus
		result.CoOccurrenceBonuses = append(result.CoOccurrenceBonuses, CoOccurrenceBonus{
			Pattern:     rule.Pattern,
			Bonus:       rule.Bonus,
			Description: rule.Description,
		})
	}

	return result
}

func containsAll(set map[string]bool, items []string) bool {
	for _, item := range items {
		if !set[item] {
			return false
		}
	}
	return true
}
