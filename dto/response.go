package dto

// ErrorResponseDTO는 공통 에러 응답 형식을 통일하기 위한 DTO이다.
// 실패 시에도 항상 이 형태의 JSON 봉투가 내려간다.
type ErrorResponseDTO struct {
	OK    bool           `json:"ok"`
	Error string         `json:"error" example:"Missing fields: market"`
	Debug map[string]any `json:"debug,omitempty"`
}

// MessageResponseDTO는 단순 성공 응답 형식을 통일하기 위한 DTO이다.
type MessageResponseDTO struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty" example:"joined"`
}
