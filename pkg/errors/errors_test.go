package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, "数据库查询失败")

	assert.Equal(t, ErrCodeInternal, err.Code)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestGetAppError(t *testing.T) {
	t.Run("AppError原样返回", func(t *testing.T) {
		appErr := GetAppError(ErrBookNotFound)
		assert.Equal(t, ErrCodeBookNotFound, appErr.Code)
	})

	t.Run("包装后仍可提取", func(t *testing.T) {
		wrapped := fmt.Errorf("查询图书: %w", ErrBookNotFound)
		assert.Equal(t, ErrCodeBookNotFound, CodeOf(wrapped))
	})

	t.Run("普通error归为内部错误", func(t *testing.T) {
		assert.Equal(t, ErrCodeInternal, CodeOf(errors.New("boom")))
	})
}

func TestNewValidation(t *testing.T) {
	err := NewValidation(map[string]string{
		"price": "价格格式不正确",
		"stock": "库存必须为整数",
	})

	assert.Equal(t, ErrCodeValidation, err.Code)
	assert.Equal(t, "价格格式不正确", err.Fields["price"])
	assert.Len(t, err.Fields, 2)
}
