package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// TestGenerateAndParse 测试Token生成与解析往返
func TestGenerateAndParse(t *testing.T) {
	m := NewManager("test-secret", 2*time.Hour, 7*24*time.Hour)

	pair, err := m.GenerateToken(42, "reader@example.com", "书虫", false)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, int64(7200), pair.ExpiresIn)

	claims, err := m.ParseToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "reader@example.com", claims.Email)
	assert.False(t, claims.IsStaff)
}

// TestStaffClaim 测试管理员标记随Claims下发
func TestStaffClaim(t *testing.T) {
	m := NewManager("test-secret", time.Hour, time.Hour)

	pair, err := m.GenerateToken(1, "admin@example.com", "管理员", true)
	require.NoError(t, err)

	claims, err := m.ParseToken(pair.AccessToken)
	require.NoError(t, err)
	assert.True(t, claims.IsStaff)
}

// TestParseToken_WrongSecret 测试签名校验
func TestParseToken_WrongSecret(t *testing.T) {
	m1 := NewManager("secret-a", time.Hour, time.Hour)
	m2 := NewManager("secret-b", time.Hour, time.Hour)

	pair, err := m1.GenerateToken(1, "a@b.c", "n", false)
	require.NoError(t, err)

	_, err = m2.ParseToken(pair.AccessToken)
	assert.Equal(t, apperrors.ErrInvalidToken, err)
}

// TestParseToken_Expired 测试过期Token
func TestParseToken_Expired(t *testing.T) {
	m := NewManager("test-secret", -time.Minute, time.Hour) // 签发即过期

	pair, err := m.GenerateToken(1, "a@b.c", "n", false)
	require.NoError(t, err)

	_, err = m.ParseToken(pair.AccessToken)
	assert.Equal(t, apperrors.ErrTokenExpired, err)
}

// TestParseToken_Garbage 测试非法Token
func TestParseToken_Garbage(t *testing.T) {
	m := NewManager("test-secret", time.Hour, time.Hour)

	_, err := m.ParseToken("not-a-jwt")
	assert.Equal(t, apperrors.ErrInvalidToken, err)
}

// TestRefreshAccessToken 测试刷新Access Token
func TestRefreshAccessToken(t *testing.T) {
	m := NewManager("test-secret", time.Hour, 7*24*time.Hour)

	pair, err := m.GenerateToken(42, "reader@example.com", "书虫", true)
	require.NoError(t, err)

	newToken, err := m.RefreshAccessToken(pair.RefreshToken)
	require.NoError(t, err)

	claims, err := m.ParseToken(newToken)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
}
