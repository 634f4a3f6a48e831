package service

import (
	"errors"
	"regexp"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"citizenvoice_backend/internals/features/agencies/model"
)

func TestGenerateAgencyCode_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^[0-9]{6}$`)
	for i := 0; i < 50; i++ {
		code, err := GenerateAgencyCode()
		require.NoError(t, err)
		assert.Regexp(t, pattern, code)
	}
}

func TestEnsurePasswordHashed(t *testing.T) {
	hashed, err := EnsurePasswordHashed("s3cret-password")
	require.NoError(t, err)
	assert.True(t, IsHashedPassword(hashed))
	assert.True(t, CheckPassword(hashed, "s3cret-password"))
	assert.False(t, CheckPassword(hashed, "wrong"))

	// already-hashed input passes through byte for byte
	again, err := EnsurePasswordHashed(hashed)
	require.NoError(t, err)
	assert.Equal(t, hashed, again)
}

func TestIsHashedPassword(t *testing.T) {
	assert.False(t, IsHashedPassword("plaintext"))
	assert.False(t, IsHashedPassword(""))
	assert.True(t, IsHashedPassword("$2a$10$abcdefghijklmnopqrstuv"))
	assert.True(t, IsHashedPassword("$2b$12$abcdefghijklmnopqrstuv"))
}

func TestInsertWithFreshCode_RetriesOnCodeCollision(t *testing.T) {
	attempts := 0
	seen := map[string]bool{}

	agency := &model.AgencyModel{AgencyName: "Gasabo Water Board"}
	err := insertWithFreshCode(agency, func(a *model.AgencyModel) error {
		attempts++
		seen[a.AgencyCode] = true
		if attempts < 3 {
			return errors.New(`duplicate key value violates unique constraint "idx_agencies_agency_code"`)
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
	assert.Len(t, seen, 3, "each retry must use a fresh code")
	assert.Regexp(t, `^[0-9]{6}$`, agency.AgencyCode)
}

func TestInsertWithFreshCode_GivesUpAfterMaxAttempts(t *testing.T) {
	agency := &model.AgencyModel{AgencyName: "Gasabo Water Board"}
	err := insertWithFreshCode(agency, func(a *model.AgencyModel) error {
		return errors.New(`duplicate key value violates unique constraint "idx_agencies_agency_code"`)
	})

	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusInternalServerError, fe.Code)
}

func TestInsertWithFreshCode_OtherUniqueViolationIsConflict(t *testing.T) {
	agency := &model.AgencyModel{AgencyName: "WASAC"}
	err := insertWithFreshCode(agency, func(a *model.AgencyModel) error {
		return errors.New(`duplicate key value violates unique constraint "idx_agencies_agency_name"`)
	})

	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusConflict, fe.Code)
}

func TestInsertWithFreshCode_KeepsPresetCode(t *testing.T) {
	agency := &model.AgencyModel{AgencyName: "WASAC", AgencyCode: "123456"}
	err := insertWithFreshCode(agency, func(a *model.AgencyModel) error {
		assert.Equal(t, "123456", a.AgencyCode)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "123456", agency.AgencyCode)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(errors.New("ERROR: duplicate key value violates unique constraint (SQLSTATE 23505)")))
	assert.True(t, isUniqueViolation(errors.New("UNIQUE constraint failed: agencies.agency_email")))
	assert.False(t, isUniqueViolation(errors.New("connection refused")))
	assert.False(t, isUniqueViolation(nil))
}
