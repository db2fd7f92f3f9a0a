package auth

import (
	"crypto/subtle"
	"strings"
)

// ParseKeysList 는 BETA_KEYS 환경변수 형식(쉼표 구분 목록)을 파싱한다.
// 공백 항목은 버린다.
func ParseKeysList(raw string) []string {
	var keys []string
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

// MatchKey 는 제출된 키가 허용 목록에 있는지 확인한다.
// 키 비교는 상수 시간 비교를 사용한다.
func MatchKey(allowed []string, key string) bool {
	matched := false
	for _, k := range allowed {
		if len(k) == len(key) && subtle.ConstantTimeCompare([]byte(k), []byte(key)) == 1 {
			matched = true
		}
	}
	return matched
}
