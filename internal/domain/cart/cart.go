package cart

import (
	"strconv"
)

// Item 购物车条目
// 设计说明：
// 1. Title与Price是加入购物车时的快照，仅用于展示兜底
// 2. Price以字符串保存（如"59.00"），展示与结算一律使用实时价格
// 3. Quantity始终≥1；数量归零通过显式移除完成，而不是自动删除
type Item struct {
	Title    string `json:"title"`
	Price    string `json:"price"` // 加入时的价格快照（元，两位小数）
	Quantity int    `json:"quantity"`
}

// Cart 购物车（会话态，不落关系库）
// 键为图书ID的十进制字符串，与会话存储的JSON编码保持稳定
type Cart struct {
	Items map[string]Item `json:"items"`
}

// New 创建空购物车
func New() *Cart {
	return &Cart{Items: make(map[string]Item)}
}

// Key 图书ID→购物车键
func Key(bookID uint) string {
	return strconv.FormatUint(uint64(bookID), 10)
}

// ParseKey 购物车键→图书ID
func ParseKey(key string) (uint, error) {
	id, err := strconv.ParseUint(key, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// Add 加入图书
// 已存在时叠加数量，否则以价格快照新建条目；加入时不校验库存
func (c *Cart) Add(bookID uint, title, price string, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	if c.Items == nil {
		c.Items = make(map[string]Item)
	}

	key := Key(bookID)
	if item, ok := c.Items[key]; ok {
		item.Quantity += quantity
		c.Items[key] = item
		return
	}
	c.Items[key] = Item{
		Title:    title,
		Price:    price,
		Quantity: quantity,
	}
}

// Remove 移除图书
// 条目不存在时为无操作（幂等，不报错）
func (c *Cart) Remove(bookID uint) {
	delete(c.Items, Key(bookID))
}

// Quantity 返回某图书的数量（不存在返回0）
func (c *Cart) Quantity(bookID uint) int {
	return c.Items[Key(bookID)].Quantity
}

// IsEmpty 购物车是否为空
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Len 条目数
func (c *Cart) Len() int {
	return len(c.Items)
}

// BookIDs 返回购物车内所有图书ID
// 注意：map遍历无序，需要稳定顺序时由调用方排序
func (c *Cart) BookIDs() []uint {
	ids := make([]uint, 0, len(c.Items))
	for key := range c.Items {
		id, err := ParseKey(key)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
