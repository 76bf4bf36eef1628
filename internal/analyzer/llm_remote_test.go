package analyzer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

const triggeringText = "dm 가능? 🍁 가격 말해줘"

func chatCompletionBody(content string) []byte {
	body := map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"role": "assistant", "content": content}},
		},
	}
	data, _ := json.Marshal(body)
	return data
}

func newRemoteJudge(baseURL string) *RemoteJudge {
	return NewRemoteJudge(RemoteJudgeConfig{
		Backend: "openai",
		BaseURL: baseURL,
		APIKey:  "test-key",
		Model:   "gpt-4",
		Timeout: 5 * time.Second,
	})
}

func TestRemoteJudgeParsesCodeBlockResponse(t *testing.T) {
	var gotAuth, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		content := "```json\n{\"risk_score\": 75, \"risk_level\": \"high\", \"flags\": [\"buy_sell_intent\"], \"reason\": \"거래 정황\", \"confidence\": 0.8}\n```"
		w.Header().Set("Content-Type", "application/json")
		w.Write(chatCompletionBody(content))
	}))
	defer srv.Close()

	p := NewPreprocessor()
	result := newRemoteJudge(srv.URL).Analyze(context.Background(), p.Process(triggeringText))

	if gotPath != "/chat/completions" {
		t.Errorf("path = %q, want /chat/completions", gotPath)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("authorization = %q", gotAuth)
	}
	if !result.Used {
		t.Fatal("expected Used=true")
	}
	if result.Score != 75 {
		t.Errorf("score = %v, want 75", result.Score)
	}
	if len(result.Flags) != 1 || result.Flags[0] != "buy_sell_intent" {
		t.Errorf("flags = %v", result.Flags)
	}
	if result.Reason != "거래 정황" {
		t.Errorf("reason = %q", result.Reason)
	}
	if result.Confidence != 0.8 {
		t.Errorf("confidence = %v, want 0.8", result.Confidence)
	}
}

func TestRemoteJudgeTextFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(chatCompletionBody("위험도는 high 수준으로 판단됩니다"))
	}))
	defer srv.Close()

	p := NewPreprocessor()
	result := newRemoteJudge(srv.URL).Analyze(context.Background(), p.Process(triggeringText))

	if !result.Used {
		t.Fatal("expected Used=true")
	}
	if result.Score != 80 {
		t.Errorf("score = %v, want 80 (high fallback)", result.Score)
	}
	if result.Confidence != 0.5 {
		t.Errorf("confidence = %v, want 0.5", result.Confidence)
	}
}

func TestRemoteJudgeScoreClamped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(chatCompletionBody(`{"risk_score": 250, "risk_level": "high", "reason": "x"}`))
	}))
	defer srv.Close()

	p := NewPreprocessor()
	result := newRemoteJudge(srv.URL).Analyze(context.Background(), p.Process(triggeringText))

	if result.Score != 100 {
		t.Errorf("score = %v, want 100 (clamped)", result.Score)
	}
	if result.Flags == nil {
		t.Error("flags must be non-nil")
	}
}

func TestRemoteJudgeAPIErrorContinuesUnused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	p := NewPreprocessor()
	result := newRemoteJudge(srv.URL).Analyze(context.Background(), p.Process(triggeringText))

	if result.Used {
		t.Error("expected Used=false after API failure")
	}
	if result.Error == "" {
		t.Error("expected error marker to be set")
	}
	if result.Reason != "LLM API 호출 실패" {
		t.Errorf("reason = %q", result.Reason)
	}
	if result.Score != 0 {
		t.Errorf("score = %v, want 0", result.Score)
	}
}

func TestRemoteJudgeNotTriggeredSkipsCall(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write(chatCompletionBody(`{"risk_score": 10}`))
	}))
	defer srv.Close()

	p := NewPreprocessor()
	result := newRemoteJudge(srv.URL).Analyze(context.Background(), p.Process("안녕하세요 오늘 날씨 좋네요"))

	if calls.Load() != 0 {
		t.Errorf("provider called %d times, want 0", calls.Load())
	}
	if result.Used {
		t.Error("expected Used=false when not triggered")
	}
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "fenced code block",
			input: "분석 결과:\n```json\n{\"risk_score\": 10}\n```\n끝",
			want:  `{"risk_score": 10}`,
		},
		{
			name:  "braces in plain text",
			input: `결과는 {"risk_score": 20} 입니다`,
			want:  `{"risk_score": 20}`,
		},
		{
			name:  "no json returns input",
			input: "위험하지 않습니다",
			want:  "위험하지 않습니다",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractJSON(tt.input); got != tt.want {
				t.Errorf("extractJSON(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseTextResponse(t *testing.T) {
	tests := []struct {
		text      string
		wantScore float64
		wantLevel string
	}{
		{"risk is high", 80, "high"},
		{"medium risk detected", 50, "medium"},
		{"nothing suspicious", 20, "low"},
	}
	for _, tt := range tests {
		got := parseTextResponse(tt.text)
		if got.RiskScore != tt.wantScore || got.RiskLevel != tt.wantLevel {
			t.Errorf("parseTextResponse(%q) = (%v, %q), want (%v, %q)",
				tt.text, got.RiskScore, got.RiskLevel, tt.wantScore, tt.wantLevel)
		}
	}
}
