package service

import (
	"context"
	"testing"

	"github.com/drmoti/moti-backend/internal/common"
	"github.com/drmoti/moti-backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimulatedService(t *testing.T) *AnalysisService {
	t.Helper()
	s, err := NewAnalysisService(config.LLMConfig{Backend: "simulated"}, nil)
	require.NoError(t, err)
	return s
}

func TestAnalysisServiceAnalyze(t *testing.T) {
	s := newSimulatedService(t)

	result, err := s.Analyze(context.Background(), "dm 가능? 🍁 가격 말해줘")
	require.NoError(t, err)

	assert.Equal(t, 100, result.FinalScore)
	assert.Equal(t, "high", string(result.RiskLevel))
	assert.True(t, result.Analysis.LLM.Used)
}

func TestAnalysisServiceSwitchUnknownBackend(t *testing.T) {
	s := newSimulatedService(t)

	err := s.Switch("gemini")
	assert.ErrorIs(t, err, common.ErrUnknownBackend)

	// 실패한 교체는 기존 파이프라인을 유지한다
	assert.Equal(t, "simulated", s.Status().CurrentLLM)
	_, err = s.Analyze(context.Background(), "테스트")
	assert.NoError(t, err)
}

func TestAnalysisServiceSwitchWithoutAPIKey(t *testing.T) {
	s := newSimulatedService(t)

	assert.Error(t, s.Switch("openai"))
	assert.Error(t, s.Switch("claude"))
	assert.Equal(t, "simulated", s.Status().CurrentLLM)
}

func TestAnalysisServiceSwitchToConfiguredRemote(t *testing.T) {
	cfg := config.LLMConfig{
		Backend: "simulated",
		OpenAI:  config.LLMProviderCfg{BaseURL: "http://localhost:1", APIKey: "sk-test", Model: "gpt-4"},
	}
	s, err := NewAnalysisService(cfg, nil)
	require.NoError(t, err)

	require.NoError(t, s.Switch("openai"))
	status := s.Status()
	assert.Equal(t, "openai", status.CurrentLLM)
	assert.True(t, status.AvailableLLMs["openai"])
	assert.Equal(t, "configured", status.APIKeys["openai"])
	assert.Equal(t, "missing", status.APIKeys["claude"])
}

func TestAnalysisServiceEmptyBackendDefaultsToSimulated(t *testing.T) {
	s, err := NewAnalysisService(config.LLMConfig{}, nil)
	require.NoError(t, err)
	assert.Equal(t, "simulated", s.Status().CurrentLLM)
}

func TestTextHash(t *testing.T) {
	// 같은 입력은 같은 키, 다른 입력은 다른 키
	assert.Equal(t, textHash("🍁 거래"), textHash("🍁 거래"))
	assert.NotEqual(t, textHash("🍁 거래"), textHash("🍁 거래 "))
	assert.Len(t, textHash(""), 40)
}
