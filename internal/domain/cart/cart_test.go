package cart

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCart_Add 测试加入购物车
func TestCart_Add(t *testing.T) {
	t.Run("新条目以快照价加入", func(t *testing.T) {
		c := New()
		c.Add(1, "Go程序设计语言", "99.00", 2)

		assert.Equal(t, 1, c.Len())
		assert.Equal(t, 2, c.Quantity(1))

		item := c.Items[Key(1)]
		assert.Equal(t, "Go程序设计语言", item.Title)
		assert.Equal(t, "99.00", item.Price)
	})

	t.Run("重复加入叠加数量", func(t *testing.T) {
		c := New()
		c.Add(1, "Go程序设计语言", "99.00", 1)
		c.Add(1, "Go程序设计语言", "99.00", 2)

		assert.Equal(t, 1, c.Len(), "同一本书只有一个条目")
		assert.Equal(t, 3, c.Quantity(1), "数量应叠加")
	})

	t.Run("数量省略按1件处理", func(t *testing.T) {
		c := New()
		c.Add(1, "书", "10.00", 0)
		assert.Equal(t, 1, c.Quantity(1))

		c.Add(2, "另一本", "20.00", -5)
		assert.Equal(t, 1, c.Quantity(2))
	})

	t.Run("叠加不改变快照价", func(t *testing.T) {
		c := New()
		c.Add(1, "书", "10.00", 1)
		c.Add(1, "书", "12.00", 1) // 改价后再次加入

		assert.Equal(t, "10.00", c.Items[Key(1)].Price, "保留首次加入时的快照价")
	})

	t.Run("nil map可用", func(t *testing.T) {
		var c Cart
		c.Add(1, "书", "10.00", 1)
		assert.Equal(t, 1, c.Quantity(1))
	})
}

// TestCart_Remove 测试移除条目
func TestCart_Remove(t *testing.T) {
	c := New()
	c.Add(1, "书A", "10.00", 2)
	c.Add(2, "书B", "20.00", 1)

	c.Remove(1)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 0, c.Quantity(1))

	// 幂等：移除不存在的条目不报错
	c.Remove(1)
	c.Remove(999)
	assert.Equal(t, 1, c.Len())
}

// TestCart_BookIDs 测试ID列举
func TestCart_BookIDs(t *testing.T) {
	c := New()
	c.Add(3, "c", "3.00", 1)
	c.Add(1, "a", "1.00", 1)
	c.Add(2, "b", "2.00", 1)

	ids := c.BookIDs()
	assert.ElementsMatch(t, []uint{1, 2, 3}, ids)
}

// TestCart_IsEmpty 测试空购物车判断
func TestCart_IsEmpty(t *testing.T) {
	c := New()
	assert.True(t, c.IsEmpty())

	c.Add(1, "书", "10.00", 1)
	assert.False(t, c.IsEmpty())

	c.Remove(1)
	assert.True(t, c.IsEmpty())
}

// TestKey_ParseKey 测试键编码往返
func TestKey_ParseKey(t *testing.T) {
	key := Key(42)
	assert.Equal(t, "42", key)

	id, err := ParseKey(key)
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	_, err = ParseKey("abc")
	assert.Error(t, err)
}

// TestCart_JSONRoundTrip 测试会话存储使用的JSON编码形状
func TestCart_JSONRoundTrip(t *testing.T) {
	c := New()
	c.Add(7, "Go语言实战", "59.00", 2)

	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":{"7":{"title":"Go语言实战","price":"59.00","quantity":2}}}`, string(data))

	var decoded Cart
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 2, decoded.Quantity(7))
	assert.Equal(t, "59.00", decoded.Items["7"].Price)
}
