package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userModel "citizenvoice_backend/internals/features/users/user/model"
)

func TestAccessClaimsCarryAgencyID(t *testing.T) {
	user := userModel.UserModel{
		ID:           uuid.New(),
		UserName:     "wasac.desk",
		IsCitizen:    false,
		IsGovernment: true,
	}
	agencyID := uuid.New()
	now := time.Now()

	// agency session: the claim must be present so reissued tokens keep
	// working against the agency endpoints
	claims := buildAccessClaims(user, &agencyID, now)
	assert.Equal(t, user.ID.String(), claims["sub"])
	assert.Equal(t, agencyID.String(), claims["agency_id"])

	// plain citizen session: no agency claim at all
	claims = buildAccessClaims(user, nil, now)
	_, ok := claims["agency_id"]
	assert.False(t, ok)
}

func TestRefreshClaims(t *testing.T) {
	userID := uuid.New()
	now := time.Now()

	claims := buildRefreshClaims(userID, now)
	assert.Equal(t, userID.String(), claims["sub"])

	exp, ok := claims["exp"].(int64)
	require.True(t, ok)
	assert.Equal(t, now.Add(refreshTTLDefault).Unix(), exp)
}

func TestComputeRefreshHashIsDeterministic(t *testing.T) {
	a := computeRefreshHash("token-a", "secret")
	assert.Equal(t, a, computeRefreshHash("token-a", "secret"))
	assert.NotEqual(t, a, computeRefreshHash("token-b", "secret"))
	assert.NotEqual(t, a, computeRefreshHash("token-a", "other-secret"))
}
