package services

import (
	"context"
	"net/http"
	"strings"

	"viralpack/eventbus"
	"viralpack/internal/logger"
	"viralpack/models"
	"viralpack/repositories"
)

const waitlistSource = "viralpack.ai"
const maxEmailLen = 254

// WaitlistError 는 상태 코드와 응답 메시지를 함께 나르는 서비스 에러이다.
type WaitlistError struct {
	StatusCode int
	Message    string
}

func (e *WaitlistError) Error() string {
	if e == nil {
		return "waitlist_failed"
	}
	return e.Message
}

// WaitlistService 는 대기자 명단 이메일 수집을 담당한다.
type WaitlistService struct {
	repo *repositories.WaitlistRepository
	bus  eventbus.EventBus
}

func NewWaitlistService(repo *repositories.WaitlistRepository, bus eventbus.EventBus) *WaitlistService {
	return &WaitlistService{repo: repo, bus: bus}
}

// Join 은 이메일을 검증해 저장한다. 이미 등록된 이메일은 에러가 아니라
// 성공으로 처리한다. (폼 재제출에 안전하도록)
func (s *WaitlistService) Join(ctx context.Context, email, clientIP string) *WaitlistError {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") || len(email) > maxEmailLen {
		return &WaitlistError{StatusCode: http.StatusBadRequest, Message: "Invalid email"}
	}

	entry := models.WaitlistEntry{
		Email:    email,
		Source:   waitlistSource,
		ClientIP: clientIP,
	}
	if err := s.repo.Insert(ctx, entry); err != nil {
		if s.repo.IsDuplicate(err) {
			return nil
		}
		logger.WarnWithFields("waitlist insert failed", logger.Fields{"error": err.Error()})
		return &WaitlistError{StatusCode: http.StatusBadGateway, Message: "Waitlist write failed"}
	}

	s.publishJoined(ctx, email)
	return nil
}

func (s *WaitlistService) publishJoined(ctx context.Context, email string) {
	if s.bus == nil {
		return
	}
	event, err := eventbus.NewJSONEvent("", eventbus.EventWaitlistJoined, map[string]any{
		"email":  email,
		"source": waitlistSource,
	})
	if err == nil {
		err = s.bus.Publish(ctx, eventbus.TopicWaitlistEvents, event)
	}
	if err != nil {
		logger.WarnWithFields("waitlist event publish failed", logger.Fields{"error": err.Error()})
	}
}
