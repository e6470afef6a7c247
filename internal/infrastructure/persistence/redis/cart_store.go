package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xiebiao/bookshop/internal/domain/cart"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// CartStore 购物车存储（Redis实现）
// 设计说明：
// 1. 实现domain/cart/store.go定义的接口
// 2. Key设计：cart:{user_id}，整车序列化为JSON存储
// 3. 设置过期时间，长期不活跃的购物车自动清理
type CartStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCartStore 创建购物车存储
func NewCartStore(client *redis.Client, ttl time.Duration) *CartStore {
	return &CartStore{client: client, ttl: ttl}
}

// Get 获取用户购物车
// 业务规则：购物车不存在时返回空车，不算错误
func (s *CartStore) Get(ctx context.Context, userID uint) (*cart.Cart, error) {
	key := s.key(userID)

	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return cart.New(), nil
		}
		return nil, apperrors.Wrap(err, "获取购物车失败")
	}

	var c cart.Cart
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, apperrors.Wrap(err, "购物车数据解析失败")
	}
	if c.Items == nil {
		c.Items = make(map[string]cart.Item)
	}

	return &c, nil
}

// Save 保存用户购物车
// 每次保存刷新过期时间
func (s *CartStore) Save(ctx context.Context, userID uint, c *cart.Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return apperrors.Wrap(err, "购物车数据序列化失败")
	}

	if err := s.client.Set(ctx, s.key(userID), data, s.ttl).Err(); err != nil {
		return apperrors.Wrap(err, "保存购物车失败")
	}

	return nil
}

// Clear 清空用户购物车（结算成功后调用）
func (s *CartStore) Clear(ctx context.Context, userID uint) error {
	if err := s.client.Del(ctx, s.key(userID)).Err(); err != nil {
		return apperrors.Wrap(err, "清空购物车失败")
	}

	return nil
}

func (s *CartStore) key(userID uint) string {
	return fmt.Sprintf("cart:%d", userID)
}
