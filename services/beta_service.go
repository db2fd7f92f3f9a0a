package services

import (
	"net/http"
	"os"

	"viralpack/auth"
)

// BetaError 는 상태 코드와 응답 메시지를 함께 나르는 서비스 에러이다.
type BetaError struct {
	StatusCode int
	Message    string
}

func (e *BetaError) Error() string {
	if e == nil {
		return "beta_verify_failed"
	}
	return e.Message
}

// BetaService 는 베타 키 검증과 세션 토큰 발급을 담당한다.
// 허용 키 목록은 기동 시점에 BETA_KEYS 환경변수에서 한 번 읽는다.
type BetaService struct {
	tokens  *auth.BetaTokenManager
	allowed []string
}

func NewBetaServiceFromEnv(tokens *auth.BetaTokenManager) *BetaService {
	return &BetaService{
		tokens:  tokens,
		allowed: auth.ParseKeysList(os.Getenv("BETA_KEYS")),
	}
}

// Verify 는 제출된 키를 확인하고, 유효하면 쿠키에 담을 서명 토큰을 발급한다.
func (s *BetaService) Verify(key string) (string, *BetaError) {
	if key == "" {
		return "", &BetaError{StatusCode: http.StatusBadRequest, Message: "Missing key"}
	}
	if len(s.allowed) == 0 {
		return "", &BetaError{StatusCode: http.StatusInternalServerError, Message: "Server misconfigured (BETA_KEYS missing)"}
	}
	if !auth.MatchKey(s.allowed, key) {
		return "", &BetaError{StatusCode: http.StatusUnauthorized, Message: "Invalid key"}
	}

	token, err := s.tokens.Sign()
	if err != nil {
		return "", &BetaError{StatusCode: http.StatusInternalServerError, Message: "Token issue failed"}
	}
	return token, nil
}

// CookieTTLSeconds 는 발급 쿠키의 Max-Age 값이다.
func (s *BetaService) CookieTTLSeconds() int {
	return int(s.tokens.TTL().Seconds())
}
