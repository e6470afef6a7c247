package cart

import (
	"context"
)

// Store 购物车会话存储接口
// 设计说明：
// 1. 购物车按用户会话存取（键为用户ID），不落关系库
// 2. 接口定义在domain层，Redis实现在infrastructure层
// 3. 同一会话的并发写入为后写覆盖（last-write-wins）
type Store interface {
	// Get 读取用户购物车；不存在时返回空购物车（不报错）
	Get(ctx context.Context, userID uint) (*Cart, error)

	// Save 全量写入用户购物车
	Save(ctx context.Context, userID uint, cart *Cart) error

	// Clear 清空用户购物车（结算成功后调用）
	Clear(ctx context.Context, userID uint) error
}
