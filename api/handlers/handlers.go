package handlers

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"viralpack/auth"
	"viralpack/dto"
	"viralpack/services"
)

// ProduceHandler godoc
// @Summary      Generate a content pack
// @Description  Run the plan -> trend-scan -> pack pipeline for the given campaign input
// @Tags         produce
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ProduceRequestDTO  true  "campaign input"
// @Success      200   {object}  dto.ProduceResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      401   {object}  dto.ErrorResponseDTO
// @Failure      429   {object}  dto.ErrorResponseDTO
// @Failure      502   {object}  dto.ErrorResponseDTO  "final stage produced no usable JSON"
// @Failure      500   {object}  dto.ErrorResponseDTO
// @Router       /produce [post]
func ProduceHandler(svc *services.ProduceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.ProduceRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "Malformed request body"})
			return
		}

		resp, produceErr := svc.Produce(c.Request.Context(), req)
		if produceErr != nil {
			c.JSON(produceErr.StatusCode, dto.ErrorResponseDTO{
				Error: produceErr.Message,
				Debug: produceErr.Debug,
			})
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}

// VerifyBetaKeyHandler godoc
// @Summary      Exchange a beta key for a session cookie
// @Description  Validates the submitted key against the allow list and sets the signed vp_beta cookie
// @Tags         beta
// @Accept       json
// @Produce      json
// @Param        body  body      dto.VerifyBetaKeyRequestDTO  true  "beta key"
// @Success      200   {object}  dto.MessageResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      401   {object}  dto.ErrorResponseDTO
// @Failure      500   {object}  dto.ErrorResponseDTO
// @Router       /beta/verify [post]
func VerifyBetaKeyHandler(svc *services.BetaService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.VerifyBetaKeyRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "Missing key"})
			return
		}

		token, betaErr := svc.Verify(strings.TrimSpace(req.Key))
		if betaErr != nil {
			c.JSON(betaErr.StatusCode, dto.ErrorResponseDTO{Error: betaErr.Message})
			return
		}

		// Mobile-safe cookie flags; Secure only in production.
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(auth.CookieName, token, svc.CookieTTLSeconds(), "/", "", isProduction(), true)
		c.JSON(http.StatusOK, dto.MessageResponseDTO{OK: true})
	}
}

// WaitlistHandler godoc
// @Summary      Join the waitlist
// @Tags         waitlist
// @Accept       json
// @Produce      json
// @Param        body  body      dto.WaitlistRequestDTO  true  "email"
// @Success      200   {object}  dto.MessageResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      502   {object}  dto.ErrorResponseDTO
// @Router       /waitlist [post]
func WaitlistHandler(svc *services.WaitlistService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.WaitlistRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "Invalid email"})
			return
		}

		if waitlistErr := svc.Join(c.Request.Context(), req.Email, c.ClientIP()); waitlistErr != nil {
			c.JSON(waitlistErr.StatusCode, dto.ErrorResponseDTO{Error: waitlistErr.Message})
			return
		}

		c.JSON(http.StatusOK, dto.MessageResponseDTO{OK: true})
	}
}

func isProduction() bool {
	return os.Getenv("APP_ENV") == "production"
}
