package analyzer

import (
	"context"
	"strings"
)

// 판단 모듈 플래그
const (
	FlagHighRiskCase      = "high_risk_case"
	FlagBuySellIntent     = "buy_sell_intent"
	FlagPartyContext      = "party_context"
	FlagStimulantHint     = "stimulant_hint"
	FlagVulnerableEmotion = "vulnerable_emotion"
	FlagMinorTargeting    = "minor_targeting"
	FlagBenignContext     = "benign_context"
	FlagNewSlang          = "new_slang"
)

// Judge 판단 모듈 인터페이스.
// 로컬 시뮬레이션과 원격 언어모델 위임이 같은 계약을 구현하며
// 어느 쪽을 쓸지는 조립 시점에 결정된다.
type Judge interface {
	// Analyze는 실패하지 않는다. 원격 호출 실패는 Used=false + Error 마커로
	// 변환되어 파이프라인은 세 모듈 가중치 재조정으로 계속 진행된다.
	Analyze(ctx context.Context, pre *Preprocessed) *LLMResult

	// Name 백엔드 식별자 (simulated | openai | claude)
	Name() string
}

// knownPattern 알려진 은어 조합 (이모지 + 키워드)
type knownPattern struct {
	emojis   []string
	keywords []string
}

var knownPatterns = []knownPattern{
	{emojis: []string{"🍁"}, keywords: []string{"dm", "가격"}},
	{emojis: []string{"💊"}, keywords: []string{"파티", "야간"}},
	{emojis: []string{"❄️"}, keywords: []string{"거래", "배송"}},
	{emojis: []string{"🍄"}, keywords: []string{"환각", "트립"}},
	{emojis: []string{"🔥"}, keywords: []string{"크랙", "거래"}},
	{emojis: []string{"💉"}, keywords: []string{"주사", "마약"}},
}

// 트리거/플래그 판정용 키워드 목록
var (
	highRiskEmojis          = []string{"🍁", "💊", "❄️", "💉", "🔥", "🍄"}
	triggerTransactionWords = []string{"dm", "가격", "배송", "거래", "판매", "구매"}
	triggerContextWords     = []string{"파티", "야간", "클럽", "춤", "흥분", "각성", "해보고 싶어", "시도"}
	triggerVulnerableWords  = []string{"우울", "힘들다", "절망", "외로움", "불안"}
	complexRiskWords        = []string{"dm", "가격", "배송", "거래", "파티", "야간", "클럽", "계좌", "입금"}
	ruleMissEmojis          = []string{"🍁", "🍄", "💊", "❄️", "🌿", "🔥", "💉", "💨", "🥤", "🍃"}
	ruleMissKeywords        = []string{"dm", "가격", "배송", "거래", "판매", "구매", "파티", "야간", "클럽"}
	ambiguousBenignWords    = []string{"레시피", "요리", "음식", "맛", "식당", "크림", "파스타"}

	intentWords     = []string{"dm", "가격", "배송", "거래", "판매", "구매", "계좌", "입금", "현금"}
	partyWords      = []string{"파티", "야간", "클럽", "밤", "축제"}
	stimulantEmojis = []string{"💊", "❄️", "🔥"}
	stimulantWords  = []string{"흥분", "각성", "에너지", "활력"}
	vulnerableWords = []string{"힘들다", "우울", "절망", "외로움", "불안", "스트레스"}
	minorWords      = []string{"학생", "청소년", "미성년", "고등학생", "중학생"}
	benignWords     = []string{"레시피", "요리", "음식", "맛", "식당", "크림", "파스타", "요리법"}
)

// shouldTrigger 판단 모듈 실행 여부.
// 다음 중 하나라도 성립하면 실행한다:
// 고위험 단축 경로 / 미지의 이모지 조합 / 단어 반복 / 위험 키워드 3종 이상 / 모호한 무해 문맥
func shouldTrigger(pre *Preprocessed) bool {
	if isHighRiskCase(pre) {
		return true
	}
	return hasUnusualPattern(pre) ||
		hasRepeatedWords(pre.Normalized) ||
		hasComplexContext(pre.Normalized) ||
		wouldRuleMiss(pre)
}

// isHighRiskCase 위험 이모지 + (거래 키워드 OR 맥락 키워드 OR 취약 감정 키워드)
func isHighRiskCase(pre *Preprocessed) bool {
	if !hasAnyEmoji(pre.Emojis, highRiskEmojis) {
		return false
	}
	return containsAny(pre.Normalized, triggerTransactionWords) ||
		containsAny(pre.Normalized, triggerContextWords) ||
		containsAny(pre.Normalized, triggerVulnerableWords)
}

// hasUnusualPattern 이모지 조합이 알려진 패턴 목록에 없으면 참
func hasUnusualPattern(pre *Preprocessed) bool {
	if len(pre.Emojis) == 0 {
		return false
	}
	combination := emojiCombination(pre.Emojis)
	words := longWords(pre.Normalized)
	for _, p := range knownPatterns {
		if strings.Join(p.emojis, " ") != combination {
			continue
		}
		for _, kw := range p.keywords {
			if words[kw] {
				return false
			}
		}
	}
	return true
}

// hasRepeatedWords 같은 단어가 2회를 초과해 반복되면 참
func hasRepeatedWords(normalized string) bool {
	counts := map[string]int{}
	for _, word := range strings.Fields(normalized) {
		counts[word]++
		if counts[word] > 2 {
			return true
		}
	}
	return false
}

// hasComplexContext 위험 키워드가 3종 이상 출현하면 참
func hasComplexContext(normalized string) bool {
	found := 0
	for _, kw := range complexRiskWords {
		if strings.Contains(normalized, kw) {
			found++
		}
	}
	return found >= 3
}

// wouldRuleMiss 위험 요소가 있지만 무해 문맥이 섞여
// 단순 룰이 오분류할 수 있는 케이스
func wouldRuleMiss(pre *Preprocessed) bool {
	hasDangerous := hasAnyEmoji(pre.Emojis, ruleMissEmojis) ||
		containsAny(pre.Normalized, ruleMissKeywords)
	return hasDangerous && containsAny(pre.Normalized, ambiguousBenignWords)
}

// isNewSlangCombination 이모지 조합이 알려진 패턴 테이블에 없으면 참
func isNewSlangCombination(pre *Preprocessed) bool {
	combination := emojiCombination(pre.Emojis)
	for _, p := range knownPatterns {
		if strings.Join(p.emojis, " ") == combination {
			return false
		}
	}
	return true
}

func emojiCombination(emojis []EmojiOccurrence) string {
	parts := make([]string, len(emojis))
	for i, e := range emojis {
		parts[i] = e.Emoji
	}
	return strings.Join(parts, " ")
}

func hasAnyEmoji(occurrences []EmojiOccurrence, symbols []string) bool {
	for _, occ := range occurrences {
		for _, s := range symbols {
			if occ.Emoji == s {
				return true
			}
		}
	}
	return false
}

// longWords 두 글자 이상 어절 집합
func longWords(normalized string) map[string]bool {
	words := map[string]bool{}
	for _, w := range strings.Fields(normalized) {
		if len([]rune(w)) > 1 {
			words[w] = true
		}
	}
	return words
}

func notTriggeredResult() *LLMResult {
	return &LLMResult{
		Score:  0,
		Used:   false,
		Reason: "LLM analysis not triggered",
		Flags:  []string{},
	}
}
