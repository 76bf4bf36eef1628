package analyzer

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	p := NewPreprocessor()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "lowercase and punctuation removal",
			input: "DM 가능? 🍁 가격!!",
			want:  "dm 가능 🍁 가격",
		},
		{
			name:  "whitespace collapse",
			input: "  거래   배송 \t 문의  ",
			want:  "거래 배송 문의",
		},
		{
			name:  "fullwidth compatibility characters",
			input: "ＤＭ 주세요",
			want:  "dm 주세요",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "punctuation only",
			input: "?!.,~",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExtractEmojis(t *testing.T) {
	p := NewPreprocessor()

	t.Run("variation selector attached to symbol", func(t *testing.T) {
		pre := p.Process("❄️ 배송")
		if len(pre.Emojis) != 1 {
			t.Fatalf("expected 1 emoji, got %d", len(pre.Emojis))
		}
		if pre.Emojis[0].Emoji != "❄️" {
			t.Errorf("emoji = %q, want %q", pre.Emojis[0].Emoji, "❄️")
		}
		if pre.Emojis[0].Position != 0 {
			t.Errorf("position = %d, want 0", pre.Emojis[0].Position)
		}
	})

	t.Run("rune index position", func(t *testing.T) {
		pre := p.Process("아 🍁 봐")
		if len(pre.Emojis) != 1 {
			t.Fatalf("expected 1 emoji, got %d", len(pre.Emojis))
		}
		if pre.Emojis[0].Position != 2 {
			t.Errorf("position = %d, want 2", pre.Emojis[0].Position)
		}
	})

	t.Run("context window clamped to text bounds", func(t *testing.T) {
		prefix := strings.Repeat("가", 30)
		pre := p.Process(prefix + "🍁")
		if len(pre.Emojis) != 1 {
			t.Fatalf("expected 1 emoji, got %d", len(pre.Emojis))
		}
		ctx := []rune(pre.Emojis[0].Context)
		// 20 runes before + the emoji itself
		if len(ctx) != 21 {
			t.Errorf("context length = %d, want 21", len(ctx))
		}
	})

	t.Run("multiple occurrences in order", func(t *testing.T) {
		pre := p.Process("🍁 그리고 💊")
		if len(pre.Emojis) != 2 {
			t.Fatalf("expected 2 emojis, got %d", len(pre.Emojis))
		}
		if pre.Emojis[0].Emoji != "🍁" || pre.Emojis[1].Emoji != "💊" {
			t.Errorf("emojis = %v, want [🍁 💊]", pre.Emojis)
		}
	})

	t.Run("no emojis", func(t *testing.T) {
		pre := p.Process("그냥 평범한 문장")
		if len(pre.Emojis) != 0 {
			t.Errorf("expected no emojis, got %v", pre.Emojis)
		}
	})
}

func TestTokenize(t *testing.T) {
	p := NewPreprocessor()

	tokens := p.Tokenize("가자 dm 123")

	want := []Token{
		{Token: "가자", Type: "korean", Length: 2},
		{Token: "dm", Type: "english", Length: 2},
		{Token: "123", Type: "number", Length: 3},
	}
	if len(tokens) != len(want) {
		t.Fatalf("token count = %d, want %d: %v", len(tokens), len(want), tokens)
	}
	for i, w := range want {
		if tokens[i] != w {
			t.Errorf("token[%d] = %+v, want %+v", i, tokens[i], w)
		}
	}
}

func TestTokenizeScriptBoundaries(t *testing.T) {
	p := NewPreprocessor()

	// 혼합 문자열은 스크립트 경계에서 분리된다
	tokens := p.Tokenize("약1개dm")

	byType := map[string][]string{}
	for _, tok := range tokens {
		byType[tok.Type] = append(byType[tok.Type], tok.Token)
	}

	if got := byType["korean"]; len(got) != 2 || got[0] != "약" || got[1] != "개" {
		t.Errorf("korean tokens = %v, want [약 개]", got)
	}
	if got := byType["english"]; len(got) != 1 || got[0] != "dm" {
		t.Errorf("english tokens = %v, want [dm]", got)
	}
	if got := byType["number"]; len(got) != 1 || got[0] != "1" {
		t.Errorf("number tokens = %v, want [1]", got)
	}
}
