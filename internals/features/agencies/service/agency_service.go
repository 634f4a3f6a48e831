// internals/features/agencies/service/agency_service.go
package service

import (
	"crypto/rand"
	"math/big"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"citizenvoice_backend/internals/features/agencies/model"
)

const codeLength = 6

// maxCodeAttempts bounds the retry loop on agency_code collisions. With a
// 6-digit space the chance of hitting this is negligible; running out is
// reported, not looped forever.
const maxCodeAttempts = 5

// GenerateAgencyCode samples a uniform 6-digit string, leading zeros allowed.
func GenerateAgencyCode() (string, error) {
	var b strings.Builder
	for i := 0; i < codeLength; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		b.WriteByte(byte('0' + n.Int64()))
	}
	return b.String(), nil
}

// EnsurePasswordHashed hashes raw passwords and leaves bcrypt hashes
// untouched, so re-saving an agency is idempotent.
func EnsurePasswordHashed(password string) (string, error) {
	if IsHashedPassword(password) {
		return password, nil
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

func IsHashedPassword(password string) bool {
	return strings.HasPrefix(password, "$2a$") ||
		strings.HasPrefix(password, "$2b$") ||
		strings.HasPrefix(password, "$2y$")
}

func CheckPassword(hash, raw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(raw)) == nil
}

// isUniqueViolation detects a Postgres unique violation ("23505"); string
// fallback keeps it driver-agnostic (lib/pq or wrapped pgx).
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "23505")
}

// CreateAgency runs the explicit pre-insert transforms (hash the password,
// issue a code) and inserts under the unique constraints. A code collision
// retries with a fresh code; any other conflict surfaces as 409.
func CreateAgency(db *gorm.DB, agency *model.AgencyModel) error {
	hashed, err := EnsurePasswordHashed(agency.AgencyPassword)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to hash agency password")
	}
	agency.AgencyPassword = hashed

	return insertWithFreshCode(agency, func(a *model.AgencyModel) error {
		return db.Create(a).Error
	})
}

// insertWithFreshCode issues a code (when absent) and runs the insert under
// the agency_code unique index, retrying with a new code on collision.
func insertWithFreshCode(agency *model.AgencyModel, insert func(*model.AgencyModel) error) error {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		if agency.AgencyCode == "" {
			code, err := GenerateAgencyCode()
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate agency code")
			}
			agency.AgencyCode = code
		}

		err := insert(agency)
		if err == nil {
			return nil
		}
		if isUniqueViolation(err) && strings.Contains(strings.ToLower(err.Error()), "agency_code") {
			// collision with a concurrent insert: retry with a fresh code
			agency.AgencyCode = ""
			continue
		}
		if isUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Agency with that name, email or phone already exists")
		}
		return err
	}
	return fiber.NewError(fiber.StatusInternalServerError, "Could not allocate a unique agency code")
}

// UpdateAgencyPassword re-hashes only when given a raw value.
func UpdateAgencyPassword(db *gorm.DB, agencyID string, password string) error {
	hashed, err := EnsurePasswordHashed(password)
	if err != nil {
		return err
	}
	return db.Model(&model.AgencyModel{}).
		Where("agency_id = ?", agencyID).
		Update("agency_password", hashed).Error
}

// VerifyCredentials authenticates an agency by code + password. Unknown code
// and wrong password collapse into the same error so callers cannot probe
// which codes exist.
func VerifyCredentials(db *gorm.DB, code, rawPassword string) (*model.AgencyModel, error) {
	var agency model.AgencyModel
	err := db.Where("agency_code = ?", strings.TrimSpace(code)).First(&agency).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	}
	if !CheckPassword(agency.AgencyPassword, rawPassword) {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	}
	return &agency, nil
}

// AgencyForUser loads the agency a user is affiliated with, if any.
func AgencyForUser(db *gorm.DB, userID string) (*model.AgencyModel, error) {
	var agency model.AgencyModel
	err := db.Where("agency_user_id = ?", userID).
		Order("agency_created_at ASC").
		First(&agency).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(fiber.StatusForbidden, "User is not associated with an agency")
		}
		return nil, err
	}
	return &agency, nil
}
