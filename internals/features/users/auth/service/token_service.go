// internals/features/users/auth/service/token_service.go
package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"citizenvoice_backend/internals/configs"
	agencyService "citizenvoice_backend/internals/features/agencies/service"
	authModel "citizenvoice_backend/internals/features/users/auth/model"
	authRepo "citizenvoice_backend/internals/features/users/auth/repository"
	userModel "citizenvoice_backend/internals/features/users/user/model"
	helper "citizenvoice_backend/internals/helpers"
)

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

func nowUTC() time.Time { return time.Now().UTC() }

func getJWTSecret() (string, error) {
	if configs.JWTSecret == "" {
		return "", errors.New("JWT secret not configured")
	}
	return configs.JWTSecret, nil
}

func getRefreshSecret() (string, error) {
	if configs.JWTRefreshSecret == "" {
		return "", errors.New("JWT refresh secret not configured")
	}
	return configs.JWTRefreshSecret, nil
}

// computeRefreshHash stores only an HMAC of the refresh JWT in the DB.
func computeRefreshHash(token, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}

func buildAccessClaims(user userModel.UserModel, agencyID *uuid.UUID, now time.Time) jwt.MapClaims {
	claims := jwt.MapClaims{
		"sub":           user.ID.String(),
		"user_name":     user.UserName,
		"is_citizen":    user.IsCitizen,
		"is_government": user.IsGovernment,
		"iat":           now.Unix(),
		"exp":           now.Add(accessTTLDefault).Unix(),
	}
	if agencyID != nil {
		claims["agency_id"] = agencyID.String()
	}
	return claims
}

func buildRefreshClaims(userID uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTLDefault).Unix(),
	}
}

func setRefreshCookie(c *fiber.Ctx, refreshToken string, now time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(refreshTTLDefault),
	})
}

func strptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// IssueTokens signs an access + refresh pair for the user (agencyID set for
// agency sessions), persists the refresh hash, sets the refresh cookie, and
// returns the access token.
func IssueTokens(c *fiber.Ctx, db *gorm.DB, user userModel.UserModel, agencyID *uuid.UUID) (string, error) {
	jwtSecret, err := getJWTSecret()
	if err != nil {
		return "", err
	}
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return "", err
	}
	now := nowUTC()

	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(user, agencyID, now)).
		SignedString([]byte(jwtSecret))
	if err != nil {
		return "", err
	}
	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildRefreshClaims(user.ID, now)).
		SignedString([]byte(refreshSecret))
	if err != nil {
		return "", err
	}

	if err := authRepo.CreateRefreshToken(db, &authModel.RefreshTokenModel{
		UserID:    user.ID,
		Token:     computeRefreshHash(refresh, refreshSecret),
		ExpiresAt: now.Add(refreshTTLDefault),
		UserAgent: strptr(c.Get("User-Agent")),
		IP:        strptr(c.IP()),
	}); err != nil {
		return "", err
	}

	setRefreshCookie(c, refresh, now)
	return access, nil
}

// ========================== REFRESH TOKEN ==========================
// POST /api/auth/refresh-token
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	refreshCookie := helper.GetRefreshTokenFromCookie(c)
	if refreshCookie == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Missing refresh token")
	}

	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	tok, err := jwt.Parse(refreshCookie, func(t *jwt.Token) (any, error) {
		return []byte(refreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid refresh token")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid refresh token")
	}

	hash := computeRefreshHash(refreshCookie, refreshSecret)
	exists, err := authRepo.RefreshTokenHashExists(db, hash)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if !exists {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unknown refresh token")
	}

	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account disabled")
	}

	// ROTATE: drop the old hash before issuing a new pair
	_ = authRepo.DeleteRefreshTokenByHash(db, hash)

	// an agency affiliation must survive refresh, or the agency console
	// would 403 until the next code+password login
	var agencyID *uuid.UUID
	if agency, err := agencyService.AgencyForUser(db, userID.String()); err == nil {
		agencyID = &agency.AgencyID
	}

	access, err := IssueTokens(c, db, *user, agencyID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue new tokens")
	}

	return helper.JsonOK(c, "Token refreshed", fiber.Map{
		"access_token": access,
	})
}
