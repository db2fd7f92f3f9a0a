package dto

// VerifyBetaKeyRequestDTO는 베타 키 검증 요청 바디이다.
type VerifyBetaKeyRequestDTO struct {
	Key string `json:"key" example:"vp-beta-0001"`
}

// WaitlistRequestDTO는 대기자 명단 등록 요청 바디이다.
type WaitlistRequestDTO struct {
	Email string `json:"email" example:"founder@acme.com"`
}
