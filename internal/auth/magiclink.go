package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pitchmaker-backend/internal/mailer"
	"pitchmaker-backend/internal/profiles"
	sharedauth "pitchmaker-backend/internal/shared/auth"
	"pitchmaker-backend/internal/shared/server/respond"
	"pitchmaker-backend/internal/shared/telemetry"
)

// MagicLinkService handles passwordless sign-in. A request for a magic link
// issues a one-time code, mailed as a callback URL; the same code also works
// as an OTP through the verify endpoint.
type MagicLinkService struct {
	profiles   *profiles.Service
	mailer     mailer.Mailer
	siteURL    string
	uiRedirect string
	codeTTL    time.Duration
	codes      *codeStore
}

// NewMagicLinkService builds a MagicLinkService.
func NewMagicLinkService(profileSvc *profiles.Service, m mailer.Mailer, siteURL, uiRedirect string, codeTTL time.Duration) *MagicLinkService {
	if codeTTL <= 0 {
		codeTTL = 15 * time.Minute
	}
	return &MagicLinkService{
		profiles:   profileSvc,
		mailer:     m,
		siteURL:    strings.TrimRight(siteURL, "/"),
		uiRedirect: uiRedirect,
		codeTTL:    codeTTL,
		codes:      newCodeStore(),
	}
}

// RegisterAPIRoutes attaches the JSON auth endpoints under the API group.
func (s *MagicLinkService) RegisterAPIRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/magic-link", s.request)
	rg.POST("/auth/verify", s.verify)
}

// RegisterCallbackRoutes attaches the browser-facing callback at the root.
func (s *MagicLinkService) RegisterCallbackRoutes(r gin.IRoutes) {
	r.GET("/auth/callback", s.callback)
}

type magicLinkRequest struct {
	Email string `json:"email"`
}

type verifyRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

func (s *MagicLinkService) request(c *gin.Context) {
	var req magicLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "email is required")
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		respond.Error(c, http.StatusBadRequest, "validation_error", "email is required")
		return
	}

	code := uuid.NewString()
	s.codes.put(code, email, time.Now().Add(s.codeTTL))

	link := fmt.Sprintf("%s/auth/callback?code=%s", s.siteURL, url.QueryEscape(code))
	body := fmt.Sprintf("Sign in to Pitch Maker:\n\n%s\n\nThis link expires in %s. You can also enter the code %s directly.", link, s.codeTTL, code)
	if err := s.mailer.Send(c.Request.Context(), email, "Your Pitch Maker sign-in link", body); err != nil {
		telemetry.Error("failed to send magic link", map[string]any{
			"email": email,
			"error": err.Error(),
		})
	}

	// Always accepted so responses do not reveal which emails exist.
	respond.JSON(c, http.StatusAccepted, gin.H{"message": "If the address is valid, a sign-in link has been sent"})
}

func (s *MagicLinkService) callback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		s.redirectError(c, "missing code")
		return
	}

	email, ok := s.codes.consume(code)
	if !ok {
		s.redirectError(c, "invalid or expired code")
		return
	}

	token, _, err := s.issueSession(c.Request.Context(), email)
	if err != nil {
		s.redirectError(c, "failed to issue session")
		return
	}

	redirectURL, err := appendToken(s.uiRedirect, token)
	if err != nil {
		s.redirectError(c, "failed to redirect")
		return
	}
	c.Redirect(http.StatusFound, redirectURL)
}

func (s *MagicLinkService) verify(c *gin.Context) {
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Code == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "email and code are required")
		return
	}

	email, ok := s.codes.consume(req.Code)
	if !ok || !strings.EqualFold(email, strings.TrimSpace(req.Email)) {
		respond.Error(c, http.StatusBadRequest, "invalid_code", "invalid or expired code")
		return
	}

	token, profile, err := s.issueSession(c.Request.Context(), email)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to issue token")
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":        profile.ID,
			"email":     profile.Email,
			"full_name": profile.FullName,
		},
	})
}

// issueSession resolves a stable user id for the email and signs a session
// token. Repeat sign-ins reuse the existing profile row.
func (s *MagicLinkService) issueSession(ctx context.Context, email string) (string, profiles.Profile, error) {
	userID := ""
	existing, err := s.profiles.FindByEmail(ctx, email)
	switch {
	case err == nil:
		userID = existing.ID
	case errors.Is(err, profiles.ErrNotFound):
		userID = uuid.NewString()
	default:
		return "", profiles.Profile{}, err
	}

	profile, err := s.profiles.GetOrCreate(ctx, userID, email, "")
	if err != nil {
		return "", profiles.Profile{}, err
	}

	token, err := sharedauth.SignJWT(sharedauth.Claims{
		Sub:   profile.ID,
		Email: profile.Email,
		Name:  profile.FullName,
	})
	if err != nil {
		return "", profiles.Profile{}, err
	}
	return token, profile, nil
}

func (s *MagicLinkService) redirectError(c *gin.Context, reason string) {
	c.Redirect(http.StatusFound, s.siteURL+"/auth/auth-code-error?error="+url.QueryEscape(reason))
}

func appendToken(rawURL, token string) (string, error) {
	if rawURL == "" {
		return "", errors.New("redirect url required")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
