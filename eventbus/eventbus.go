package eventbus

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Event는 발행되는 메시지의 페이로드로 사용되는 구조체입니다.
type Event struct {
	ID      string          `json:"id"`
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// EventBus 인터페이스는 이벤트 발행의 추상화를 정의합니다.
// 이 서비스에서 이벤트는 부가 정보(analytics)일 뿐이므로 발행 실패가
// 요청 처리를 실패시키지 않습니다. 구독 측은 별도 시스템이 담당합니다.
type EventBus interface {
	Publish(ctx context.Context, topic string, event Event) error
	Close()
}

// NewJSONEvent 생성: payload를 JSON으로 인코딩하여 Event를 구성합니다.
// id가 빈 문자열이면 uuid 기반의 ID를 생성합니다.
func NewJSONEvent(id, eventType string, payload any) (Event, error) {
	if id == "" {
		id = uuid.NewString()
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("payload marshal 실패: %w", err)
	}
	return Event{
		ID:      id,
		Type:    eventType,
		Payload: b,
	}, nil
}

// NoopEventBus는 브로커가 설정되지 않은 환경(로컬 개발 등)에서 사용하는
// 빈 구현체입니다.
type NoopEventBus struct{}

func (NoopEventBus) Publish(ctx context.Context, topic string, event Event) error { return nil }
func (NoopEventBus) Close()                                                       {}
