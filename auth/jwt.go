package auth

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const ScopeBeta = "beta"

// CookieName 은 베타 세션 토큰을 담는 쿠키 이름이다.
const CookieName = "vp_beta"

// BetaTokenManager 는 HS256 단일 시크릿 문자열을 사용해 베타 세션 토큰을
// 발급/검증한다. 토큰은 vp_beta 쿠키로 전달된다.
type BetaTokenManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewBetaTokenManagerFromEnv 는 환경변수에서 시크릿/issuer 를 읽어
// BetaTokenManager 를 생성한다.
//
// - BETA_COOKIE_SECRET: HS256 서명에 사용할 시크릿 문자열(필수)
// - BETA_COOKIE_ISSUER: iss 클레임 값(선택, 기본값 "viralpack")
func NewBetaTokenManagerFromEnv() (*BetaTokenManager, error) {
	secret := os.Getenv("BETA_COOKIE_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("BETA_COOKIE_SECRET is required")
	}

	issuer := os.Getenv("BETA_COOKIE_ISSUER")
	if issuer == "" {
		issuer = "viralpack"
	}

	return &BetaTokenManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    30 * 24 * time.Hour,
	}, nil
}

// TTL 은 발급되는 토큰(그리고 쿠키)의 수명이다.
func (m *BetaTokenManager) TTL() time.Duration { return m.ttl }

func (m *BetaTokenManager) Sign() (string, error) {
	claims := jwt.MapClaims{
		"scope": ScopeBeta,
		"iss":   m.issuer,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(m.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse 는 토큰을 검증하고 beta scope 인지 확인한다.
func (m *BetaTokenManager) Parse(tokenString string) error {
	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return err
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return fmt.Errorf("invalid token claims")
	}

	scope, _ := claims["scope"].(string)
	if scope != ScopeBeta {
		return fmt.Errorf("token missing beta scope")
	}

	return nil
}
