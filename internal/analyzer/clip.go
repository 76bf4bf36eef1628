package analyzer

import "strings"

const (
	clipScoreMax        = 30
	similarityPointsMax = 15
	reinforcementCap    = 30
)

// 문맥 보강 키워드 (이모지 문맥 창 안에서만 계산)
var (
	clipTransactionKeywords = []string{"dm", "가격", "배송", "거래", "판매", "구매"}
	reinforceTransaction    = []string{"dm", "가격", "배송", "거래", "판매", "구매", "계좌", "입금"}
	reinforceParty          = []string{"파티", "야간", "클럽", "밤"}
)

// ClipScorer 이모지-문맥 쌍을 사전 계산 유사도 테이블과 대조해 점수화한다.
// 임베딩 유사도 모델의 시뮬레이션이며 결과는 [0,30]으로 제한된다.
type ClipScorer struct {
	patterns    []SimilarityPattern
	txBase      map[string]float64
	txBaseOther float64
}

// NewClipScorer creates a new ClipScorer
func NewClipScorer(cfg *Config) *ClipScorer {
	txBase := make(map[string]float64, len(cfg.TransactionBase))
	for _, e := range cfg.TransactionBase {
		txBase[e.Emoji] = e.Value
	}
	return &ClipScorer{
		patterns:    cfg.SimilarityPatterns,
		txBase:      txBase,
		txBaseOther: cfg.TransactionBaseDefault,
	}
}

// Analyze 유사도 분석 실행
func (s *ClipScorer) Analyze(pre *Preprocessed) *ClipResult {
	result := &ClipResult{Similarities: []Similarity{}}

	for _, occ := range pre.Emojis {
		result.Similarities = append(result.Similarities,
			s.emojiSimilarities(occ.Emoji, pre.Normalized, occ.Context)...)
		result.ContextReinforcement += s.contextReinforcement(occ.Context)
	}

	var similaritySum float64
	for _, sim := range result.Similarities {
		similaritySum += sim.Score
	}
	result.Breakdown = ClipBreakdown{
		SimilarityScore: similaritySum,
		ContextScore:    result.ContextReinforcement,
	}

	total := similaritySum + float64(result.ContextReinforcement)
	if total < 0 {
		total = 0
	}
	if total > clipScoreMax {
		total = clipScoreMax
	}
	result.Score = total

	return result
}

// emojiSimilarities 패턴 테이블 대조 + 거래 문맥 기본 유사도
func (s *ClipScorer) emojiSimilarities(emoji, text, context string) []Similarity {
	var sims []Similarity

	for _, p := range s.patterns {
		if !strings.Contains(text, p.Pattern) && !strings.Contains(context, p.Pattern) {
			continue
		}
		for _, es := range p.Emojis {
			if es.Emoji != emoji {
				continue
			}
			sims = append(sims, Similarity{
				Emoji:      emoji,
				Pattern:    p.Pattern,
				Similarity: es.Value,
				Score:      similarityToScore(es.Value),
			})
		}
	}

	if containsAny(text, clipTransactionKeywords) || containsAny(context, clipTransactionKeywords) {
		base, ok := s.txBase[emoji]
		if !ok {
			base = s.txBaseOther
		}
		sims = append(sims, Similarity{
			Emoji:      emoji,
			Pattern:    "transaction_context",
			Similarity: base,
			Score:      similarityToScore(base),
		})
	}

	return sims
}

// contextReinforcement 문맥 창 내 거래(×3)/파티(×2) 키워드 보강 점수. 30점 상한
func (s *ClipScorer) contextReinforcement(context string) int {
	reinforcement := 0
	for _, kw := range reinforceTransaction {
		if strings.Contains(context, kw) {
			reinforcement += 3
		}
	}
	for _, kw := range reinforceParty {
		if strings.Contains(context, kw) {
			reinforcement += 2
		}
	}
	if reinforcement > reinforcementCap {
		reinforcement = reinforcementCap
	}
	return reinforcement
}

// similarityToScore 유사도 [-1,1]을 점수로 변환.
// 음수는 무해 문맥 감점으로 [-15,0], 양수는 위험 보강으로 [0,15]에 선형 대응
func similarityToScore(similarity float64) float64 {
	score := similarity * similarityPointsMax
	if score < -similarityPointsMax {
		score = -similarityPointsMax
	}
	return score
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
