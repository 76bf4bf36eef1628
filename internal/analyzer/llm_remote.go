package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/drmoti/moti-backend/pkg/logger"
)

const remoteSystemPrompt = `당신은 한국어 텍스트에서 마약 관련 은어와 위험한 패턴을 탐지하는 전문 AI입니다.

다음 기준으로 분석해주세요:
1. 이모지와 텍스트의 조합이 마약 거래를 암시하는지
2. 감정적 취약성을 이용한 타겟팅이 있는지
3. 새로운 은어나 패턴이 사용되었는지
4. 거래 의도가 명확한지

JSON 형태로 응답해주세요:
{
  "risk_score": 0-100,
  "risk_level": "low|medium|high",
  "flags": ["flag1", "flag2"],
  "reason": "분석 근거",
  "confidence": 0.0-1.0
}`

// RemoteJudgeConfig 원격 판단 백엔드 설정
type RemoteJudgeConfig struct {
	Backend string // openai | claude
	BaseURL string // OpenAI 호환 chat completions 엔드포인트
	APIKey  string
	Model   string
	Timeout time.Duration
}

// RemoteJudge 원격 언어모델 위임 판단 모듈.
// OpenAI 호환 chat completions 포맷으로 호출하며, 타임아웃/실패 시
// 파이프라인을 실패시키지 않고 Used=false로 계속 진행한다.
type RemoteJudge struct {
	cfg        RemoteJudgeConfig
	httpClient *http.Client
}

// NewRemoteJudge creates a new RemoteJudge
func NewRemoteJudge(cfg RemoteJudgeConfig) *RemoteJudge {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &RemoteJudge{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Name 백엔드 식별자
func (j *RemoteJudge) Name() string {
	return j.cfg.Backend
}

// Analyze 트리거 판정 후 원격 호출
func (j *RemoteJudge) Analyze(ctx context.Context, pre *Preprocessed) *LLMResult {
	if !shouldTrigger(pre) {
		return notTriggeredResult()
	}

	result, err := j.call(ctx, pre)
	if err != nil {
		logger.Warn("[판단] 원격 호출 실패 (backend=%s): %v", j.cfg.Backend, err)
		return &LLMResult{
			Score:  0,
			Used:   false,
			Reason: "LLM API 호출 실패",
			Flags:  []string{},
			Error:  err.Error(),
		}
	}
	return result
}

// remoteResponse 원격 응답 구조체
type remoteResponse struct {
	RiskScore  float64  `json:"risk_score"`
	RiskLevel  string   `json:"risk_level"`
	Flags      []string `json:"flags"`
	Reason     string   `json:"reason"`
	Confidence float64  `json:"confidence"`
}

func (j *RemoteJudge) call(ctx context.Context, pre *Preprocessed) (*LLMResult, error) {
	userMessage := j.buildUserMessage(pre)

	rawText, err := j.callProvider(ctx, remoteSystemPrompt, userMessage)
	if err != nil {
		return nil, err
	}

	parsed := j.parseResponse(rawText)
	if parsed.RiskScore < 0 {
		parsed.RiskScore = 0
	}
	if parsed.RiskScore > 100 {
		parsed.RiskScore = 100
	}
	if parsed.Flags == nil {
		parsed.Flags = []string{}
	}
	if parsed.Confidence == 0 {
		parsed.Confidence = 0.5
	}

	return &LLMResult{
		Score:      parsed.RiskScore,
		Used:       true,
		Reason:     parsed.Reason,
		Flags:      parsed.Flags,
		Confidence: parsed.Confidence,
	}, nil
}

// buildUserMessage 분석 대상 텍스트 + 이모지 목록으로 프롬프트 구성
func (j *RemoteJudge) buildUserMessage(pre *Preprocessed) string {
	emojis := make([]string, len(pre.Emojis))
	for i, e := range pre.Emojis {
		emojis[i] = e.Emoji
	}
	var b strings.Builder
	b.WriteString("다음 텍스트를 분석해주세요:\n\n")
	b.WriteString(fmt.Sprintf("텍스트: %q\n", pre.Original))
	b.WriteString(fmt.Sprintf("이모지: %s\n\n", strings.Join(emojis, ", ")))
	b.WriteString("위험도를 평가하고 JSON으로 응답해주세요.")
	return b.String()
}

// callProvider OpenAI 포맷 chat completions 호출
func (j *RemoteJudge) callProvider(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	reqBody := map[string]interface{}{
		"model":       j.cfg.Model,
		"max_tokens":  500,
		"temperature": 0.1,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": userMessage},
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := strings.TrimSuffix(j.cfg.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if j.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+j.cfg.APIKey)
	}

	resp, err := j.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("HTTP 요청 실패: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("응답 읽기 실패: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API 오류 (%d): %s", resp.StatusCode, truncateStr(string(respBody), 200))
	}

	// OpenAI 포맷 파싱
	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("응답 JSON 파싱 실패: %w", err)
	}

	if len(result.Choices) == 0 || result.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("AI 응답에서 텍스트를 찾을 수 없습니다")
	}

	return strings.TrimSpace(result.Choices[0].Message.Content), nil
}

// parseResponse 구조화 응답 파싱. 파싱 불가면 high/medium 문자열 스캔으로 폴백
func (j *RemoteJudge) parseResponse(rawText string) *remoteResponse {
	jsonStr := extractJSON(rawText)

	var resp remoteResponse
	if err := json.Unmarshal([]byte(jsonStr), &resp); err == nil {
		return &resp
	}

	return parseTextResponse(rawText)
}

// extractJSON 코드블록 또는 중괄호 구간에서 JSON 추출
func extractJSON(rawText string) string {
	if idx := strings.Index(rawText, "```"); idx >= 0 {
		start := strings.Index(rawText[idx:], "\n")
		if start >= 0 {
			end := strings.Index(rawText[idx+start+1:], "```")
			if end >= 0 {
				return strings.TrimSpace(rawText[idx+start+1 : idx+start+1+end])
			}
		}
	}
	if open := strings.Index(rawText, "{"); open >= 0 {
		if close := strings.LastIndex(rawText, "}"); close > open {
			return rawText[open : close+1]
		}
	}
	return rawText
}

// parseTextResponse 텍스트 응답 폴백 분류
func parseTextResponse(text string) *remoteResponse {
	level := "low"
	score := 20.0
	if strings.Contains(text, "high") {
		level = "high"
		score = 80
	} else if strings.Contains(text, "medium") {
		level = "medium"
		score = 50
	}
	return &remoteResponse{
		RiskScore:  score,
		RiskLevel:  level,
		Reason:     text,
		Confidence: 0.5,
		Flags:      []string{},
	}
}

func truncateStr(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
