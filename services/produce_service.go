package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"viralpack/clients/openaiclient"
	"viralpack/clients/xaiclient"
	"viralpack/config"
	"viralpack/dto"
	"viralpack/eventbus"
	"viralpack/internal/logger"
	"viralpack/models"
	"viralpack/producer"
	"viralpack/quota"
	"viralpack/repositories"
	"viralpack/trace"
)

// ProduceError 는 상태 코드와 응답 메시지를 함께 나르는 서비스 에러이다.
type ProduceError struct {
	StatusCode int
	Message    string
	Debug      map[string]any
}

func (e *ProduceError) Error() string {
	if e == nil {
		return "produce_failed"
	}
	return e.Message
}

// ProduceService 는 생성 요청 하나를 처리한다: 입력 검증 → 쿼터 →
// 3단계 파이프라인 → 감사 로그/팩 저장 → 이벤트 발행.
// 요청 간 공유되는 가변 상태는 없다. (쿼터 카운터는 자체 락으로 보호된다.)
type ProduceService struct {
	pipeline *producer.Pipeline
	limiter  *quota.ProduceQuotaLimiter
	aiLogs   *repositories.AILogRepository
	packs    *repositories.PackRepository
	bus      eventbus.EventBus

	// misconfig 가 비어 있지 않으면 자격증명 누락 상태: 모든 요청을
	// 제공자 호출 전에 500 으로 거절한다.
	misconfig string
}

// NewProduceServiceFromEnv 는 설정과 환경변수의 자격증명으로 서비스를 조립한다.
// 자격증명이 없어도 기동은 계속하되, 해당 사실을 기록해 둔다.
// 파이프라인 내부는 이후 ambient 상태를 전혀 읽지 않는다.
func NewProduceServiceFromEnv(
	cfg config.AppConfig,
	aiLogs *repositories.AILogRepository,
	packs *repositories.PackRepository,
	bus eventbus.EventBus,
) *ProduceService {
	svc := &ProduceService{
		limiter: quota.NewProduceQuotaLimiterFromConfig(cfg),
		aiLogs:  aiLogs,
		packs:   packs,
		bus:     bus,
	}

	openaiKey := os.Getenv("OPENAI_API_KEY")
	xaiKey := os.Getenv("XAI_API_KEY")
	switch {
	case openaiKey == "":
		svc.misconfig = "Missing env var: OPENAI_API_KEY"
	case xaiKey == "":
		svc.misconfig = "Missing env var: XAI_API_KEY"
	default:
		timeout := time.Duration(cfg.LLMTimeout) * time.Second
		svc.pipeline = producer.NewPipeline(
			openaiclient.New(openaiKey, cfg.OpenAIModel, timeout),
			xaiclient.New(xaiKey, cfg.XAIModel, timeout),
		)
	}
	if svc.misconfig != "" {
		logger.Log.Errorf("produce service disabled: %s", svc.misconfig)
	}
	return svc
}

// NewProduceService 는 이미 조립된 파이프라인으로 서비스를 만든다. (테스트용 포함)
func NewProduceService(
	pipeline *producer.Pipeline,
	limiter *quota.ProduceQuotaLimiter,
	aiLogs *repositories.AILogRepository,
	packs *repositories.PackRepository,
	bus eventbus.EventBus,
) *ProduceService {
	return &ProduceService{
		pipeline: pipeline,
		limiter:  limiter,
		aiLogs:   aiLogs,
		packs:    packs,
		bus:      bus,
	}
}

func (s *ProduceService) Produce(ctx context.Context, req dto.ProduceRequestDTO) (dto.ProduceResponseDTO, *ProduceError) {
	if s.misconfig != "" {
		return dto.ProduceResponseDTO{}, &ProduceError{
			StatusCode: http.StatusInternalServerError,
			Message:    s.misconfig,
		}
	}

	// 제공자 호출 전에 입력을 검증한다.
	input, missing := producer.NewCampaignInput(req.BrandName, req.Product, req.Offer, req.Website, req.Market, req.TopK)
	if len(missing) > 0 {
		return dto.ProduceResponseDTO{}, &ProduceError{
			StatusCode: http.StatusBadRequest,
			Message:    fmt.Sprintf("Missing fields: %s", strings.Join(missing, ", ")),
		}
	}

	if s.limiter != nil {
		allowed, err := s.limiter.WaitAndReserve(ctx)
		if err != nil {
			return dto.ProduceResponseDTO{}, &ProduceError{
				StatusCode: http.StatusInternalServerError,
				Message:    "Request cancelled",
			}
		}
		if !allowed {
			return dto.ProduceResponseDTO{}, &ProduceError{
				StatusCode: http.StatusTooManyRequests,
				Message:    "Daily generation limit reached",
			}
		}
	}

	pack, stages, runErr := s.pipeline.Run(ctx, input)
	s.persistStageLogs(ctx, stages)

	if runErr != nil {
		var finalErr *producer.FinalPackError
		if errors.As(runErr, &finalErr) {
			// 최종 팩에는 안전한 기본값이 없다: 진단용 원문과 함께 실패를 보고한다.
			return dto.ProduceResponseDTO{}, &ProduceError{
				StatusCode: http.StatusBadGateway,
				Message:    "Final model did not return valid JSON",
				Debug: map[string]any{
					"planner_text": finalErr.PlannerText,
					"trend_text":   finalErr.TrendText,
					"final_text":   finalErr.FinalText,
				},
			}
		}
		return dto.ProduceResponseDTO{}, &ProduceError{
			StatusCode: http.StatusInternalServerError,
			Message:    runErr.Error(),
		}
	}

	packID := uuid.NewString()
	s.persistPack(ctx, packID, pack)
	s.publishPackGenerated(ctx, packID, pack)

	return dto.ProduceResponseDTO{
		OK:            true,
		PackID:        packID,
		SchemaVersion: pack.SchemaVersion,
		GeneratedAt:   pack.GeneratedAt,
		Input:         pack.Input,
		Output:        pack.Output,
	}, nil
}

// persistStageLogs 는 LLM 호출 감사 로그를 저장한다. 저장 실패는 요청
// 처리에 영향을 주지 않는다.
func (s *ProduceService) persistStageLogs(ctx context.Context, stages []producer.StageLog) {
	if s.aiLogs == nil || len(stages) == 0 {
		return
	}

	requestID := trace.RequestIDFromContext(ctx)
	now := time.Now()
	logs := make([]models.AILog, 0, len(stages))
	for _, st := range stages {
		l := models.AILog{
			RequestID:      requestID,
			Stage:          st.Stage,
			ModelName:      st.Model,
			DurationMs:     st.LatencyMs,
			InputPrompt:    st.Prompt,
			OutputResponse: st.Response,
			RequestedAt:    now,
		}
		if st.Err != "" {
			msg := st.Err
			l.ErrorMessage = &msg
		}
		logs = append(logs, l)
	}

	if err := s.aiLogs.InsertMany(ctx, logs); err != nil {
		logger.WarnWithFields("ai log persist failed", logger.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		})
	}
}

func (s *ProduceService) persistPack(ctx context.Context, packID string, pack *producer.ContentPack) {
	if s.packs == nil {
		return
	}
	doc := models.Pack{
		PackID:        packID,
		RequestID:     trace.RequestIDFromContext(ctx),
		SchemaVersion: pack.SchemaVersion,
		Input:         pack.Input,
		Output:        pack.Output,
		GeneratedAt:   pack.GeneratedAt,
	}
	if err := s.packs.Insert(ctx, doc); err != nil {
		logger.WarnWithFields("pack persist failed", logger.Fields{
			"pack_id": packID,
			"error":   err.Error(),
		})
	}
}

// publishPackGenerated 는 분석용 이벤트를 발행한다. 실패해도 요청은 성공으로 처리한다.
func (s *ProduceService) publishPackGenerated(ctx context.Context, packID string, pack *producer.ContentPack) {
	if s.bus == nil {
		return
	}
	event, err := eventbus.NewJSONEvent(packID, eventbus.EventPackGenerated, map[string]any{
		"pack_id":      packID,
		"brand_name":   pack.Input.BrandName,
		"market":       pack.Input.Market,
		"top_k":        pack.Input.TopK,
		"generated_at": pack.GeneratedAt,
	})
	if err == nil {
		err = s.bus.Publish(ctx, eventbus.TopicPackEvents, event)
	}
	if err != nil {
		logger.WarnWithFields("pack event publish failed", logger.Fields{
			"pack_id": packID,
			"error":   err.Error(),
		})
	}
}
