package service

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/drmoti/moti-backend/internal/analyzer"
	"github.com/drmoti/moti-backend/internal/common"
	"github.com/drmoti/moti-backend/internal/config"
	"github.com/drmoti/moti-backend/internal/domain"
	"github.com/drmoti/moti-backend/pkg/cache"
	"github.com/drmoti/moti-backend/pkg/logger"
)

// AnalysisService 분석 파이프라인 실행기.
// 판단 백엔드 교체는 새 Detector를 만들어 원자적으로 바꿔 끼우는 방식이며
// 공유 가변 설정을 변경하지 않는다.
type AnalysisService struct {
	llmCfg   config.LLMConfig
	cacheSvc cache.Service
	detector atomic.Pointer[analyzer.Detector]
}

// NewAnalysisService creates a new AnalysisService with the configured backend.
func NewAnalysisService(llmCfg config.LLMConfig, cacheSvc cache.Service) (*AnalysisService, error) {
	s := &AnalysisService{llmCfg: llmCfg, cacheSvc: cacheSvc}
	if err := s.Switch(llmCfg.Backend); err != nil {
		return nil, err
	}
	return s, nil
}

// Analyze 텍스트 분석 실행. 짧은 TTL의 결과 캐시를 거친다
func (s *AnalysisService) Analyze(ctx context.Context, text string) (*analyzer.Result, error) {
	key := textHash(text)

	if s.cacheSvc != nil && s.cacheSvc.IsAvailable() {
		if data, err := s.cacheSvc.GetAnalysis(ctx, key); err == nil {
			var cached analyzer.Result
			if err := json.Unmarshal(data, &cached); err == nil {
				cacheEventsTotal.WithLabelValues("hit").Inc()
				return &cached, nil
			}
		}
		cacheEventsTotal.WithLabelValues("miss").Inc()
	}

	start := time.Now()
	result := s.detector.Load().Analyze(ctx, text)
	analysisDuration.Observe(time.Since(start).Seconds())

	analysesTotal.WithLabelValues(string(result.RiskLevel)).Inc()
	judgeCallsTotal.WithLabelValues(s.detector.Load().JudgeName(), judgeOutcome(result.Analysis.LLM)).Inc()

	if s.cacheSvc != nil && s.cacheSvc.IsAvailable() {
		if err := s.cacheSvc.SetAnalysis(ctx, key, result); err != nil {
			logger.Warn("분석 결과 캐시 저장 실패: %v", err)
		}
	}

	return result, nil
}

// Switch 판단 백엔드 교체. 유효하지 않은 백엔드면 기존 파이프라인 유지
func (s *AnalysisService) Switch(backend string) error {
	judge, err := buildJudge(s.llmCfg, backend)
	if err != nil {
		return err
	}
	detector, err := analyzer.NewDetector(analyzer.DefaultConfig(), judge)
	if err != nil {
		return err
	}
	s.detector.Store(detector)
	logger.Info("판단 백엔드 교체: %s", backend)
	return nil
}

// Status 현재 백엔드와 설정 가능한 백엔드 목록
func (s *AnalysisService) Status() domain.LLMStatus {
	hasOpenAI := s.llmCfg.OpenAI.APIKey != ""
	hasClaude := s.llmCfg.Claude.APIKey != ""

	keyState := func(configured bool) string {
		if configured {
			return "configured"
		}
		return "missing"
	}

	return domain.LLMStatus{
		CurrentLLM: s.detector.Load().JudgeName(),
		AvailableLLMs: map[string]bool{
			"simulated": true,
			"openai":    hasOpenAI,
			"claude":    hasClaude,
		},
		APIKeys: map[string]string{
			"openai": keyState(hasOpenAI),
			"claude": keyState(hasClaude),
		},
	}
}

// buildJudge 설정에 따라 판단 모듈 구현 선택
func buildJudge(cfg config.LLMConfig, backend string) (analyzer.Judge, error) {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second

	switch backend {
	case "", "simulated":
		return analyzer.NewLocalJudge(), nil
	case "openai":
		if cfg.OpenAI.APIKey == "" {
			return nil, fmt.Errorf("openai API 키가 설정되지 않았습니다")
		}
		return analyzer.NewRemoteJudge(analyzer.RemoteJudgeConfig{
			Backend: "openai",
			BaseURL: cfg.OpenAI.BaseURL,
			APIKey:  cfg.OpenAI.APIKey,
			Model:   cfg.OpenAI.Model,
			Timeout: timeout,
		}), nil
	case "claude":
		if cfg.Claude.APIKey == "" {
			return nil, fmt.Errorf("claude API 키가 설정되지 않았습니다")
		}
		return analyzer.NewRemoteJudge(analyzer.RemoteJudgeConfig{
			Backend: "claude",
			BaseURL: cfg.Claude.BaseURL,
			APIKey:  cfg.Claude.APIKey,
			Model:   cfg.Claude.Model,
			Timeout: timeout,
		}), nil
	default:
		return nil, common.ErrUnknownBackend
	}
}

func judgeOutcome(llm *analyzer.LLMResult) string {
	switch {
	case llm == nil:
		return "unused"
	case llm.Error != "":
		return "error"
	case llm.Used:
		return "used"
	default:
		return "unused"
	}
}

func textHash(text string) string {
	sum := sha1.Sum([]byte(text))
	return hex.EncodeToString(sum[:])
}
