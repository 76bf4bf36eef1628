package analyzer

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const contextRadius = 20

// emojiTable 탐지 대상 이모지 코드포인트 범위
var emojiTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x2600, Hi: 0x26FF, Stride: 1}, // Miscellaneous Symbols
		{Lo: 0x2700, Hi: 0x27BF, Stride: 1}, // Dingbats
	},
	R32: []unicode.Range32{
		{Lo: 0x1F1E0, Hi: 0x1F1FF, Stride: 1}, // Regional Indicators
		{Lo: 0x1F300, Hi: 0x1F5FF, Stride: 1}, // Misc Symbols and Pictographs
		{Lo: 0x1F600, Hi: 0x1F64F, Stride: 1}, // Emoticons
		{Lo: 0x1F680, Hi: 0x1F6FF, Stride: 1}, // Transport and Map
	},
}

func isEmojiRune(r rune) bool {
	return unicode.Is(emojiTable, r)
}

func isHangul(r rune) bool {
	return r >= 0xAC00 && r <= 0xD7A3
}

// Preprocessor 원문을 정규화하고 구조화된 특징을 추출한다.
// 실패하지 않으며 빈 문자열도 유효한 입력이다.
type Preprocessor struct{}

// NewPreprocessor creates a new Preprocessor
func NewPreprocessor() *Preprocessor {
	return &Preprocessor{}
}

// Process 전처리 실행
func (p *Preprocessor) Process(text string) *Preprocessed {
	emojis := p.extractEmojis(text)
	return &Preprocessed{
		Original:   text,
		Normalized: p.Normalize(text),
		Emojis:     emojis,
		Tokens:     p.Tokenize(text),
		Context:    emojis,
	}
}

// Normalize NFKC 정규화 + 소문자화 후
// 단어문자/공백/한글/이모지 이외의 문자를 공백으로 치환하고 공백을 정리한다
func (p *Preprocessor) Normalize(text string) string {
	lowered := strings.ToLower(norm.NFKC.String(text))

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(r)
		case isHangul(r):
			b.WriteRune(r)
		case isEmojiRune(r):
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// extractEmojis 원문을 스캔해 이모지 발생 위치와 전후 20자 문맥 창을 추출한다.
// 위치는 원문의 룬 인덱스이며, 뒤따르는 U+FE0F(variation selector)는
// 이모지의 일부로 취급한다.
func (p *Preprocessor) extractEmojis(text string) []EmojiOccurrence {
	runes := []rune(text)
	occurrences := []EmojiOccurrence{}

	for i := 0; i < len(runes); i++ {
		if !isEmojiRune(runes[i]) {
			continue
		}
		symbol := string(runes[i])
		if i+1 < len(runes) && runes[i+1] == 0xFE0F {
			symbol += string(rune(0xFE0F))
		}

		start := i - contextRadius
		if start < 0 {
			start = 0
		}
		end := i + contextRadius
		if end > len(runes) {
			end = len(runes)
		}

		occurrences = append(occurrences, EmojiOccurrence{
			Emoji:    symbol,
			Position: i,
			Context:  string(runes[start:end]),
		})
	}

	return occurrences
}

// Tokenize 스크립트 종류별 최대 연속 구간을 토큰으로 추출한다.
// 한글/영문/숫자 구간은 서로 합쳐지지 않으며 구두점과 이모지는 토큰이 아니다.
func (p *Preprocessor) Tokenize(text string) []Token {
	tokens := []Token{}
	tokens = append(tokens, runsOf(text, isHangul, "korean")...)
	tokens = append(tokens, runsOf(text, func(r rune) bool {
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
	}, "english")...)
	tokens = append(tokens, runsOf(text, func(r rune) bool {
		return r >= '0' && r <= '9'
	}, "number")...)
	return tokens
}

// runsOf pred를 만족하는 최대 연속 룬 구간들을 수집
func runsOf(text string, pred func(rune) bool, class string) []Token {
	var tokens []Token
	var run []rune
	flush := func() {
		if len(run) > 0 {
			tokens = append(tokens, Token{Token: string(run), Type: class, Length: len(run)})
			run = nil
		}
	}
	for _, r := range text {
		if pred(r) {
			run = append(run, r)
		} else {
			flush()
		}
	}
	flush()
	return tokens
}
