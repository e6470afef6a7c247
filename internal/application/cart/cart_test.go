package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/cart"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

type fakeBookRepo struct {
	books map[uint]*book.Book
}

func newFakeBookRepo(books ...*book.Book) *fakeBookRepo {
	m := make(map[uint]*book.Book, len(books))
	for _, b := range books {
		m[b.ID] = b
	}
	return &fakeBookRepo{books: m}
}

func (r *fakeBookRepo) Create(ctx context.Context, b *book.Book) error { panic("not used") }
func (r *fakeBookRepo) Update(ctx context.Context, b *book.Book) error { panic("not used") }
func (r *fakeBookRepo) Delete(ctx context.Context, id uint) error      { panic("not used") }
func (r *fakeBookRepo) List(ctx context.Context, params book.ListParams) ([]*book.Book, int64, error) {
	panic("not used")
}
func (r *fakeBookRepo) LockByID(ctx context.Context, id uint) (*book.Book, error) {
	return r.FindByID(ctx, id)
}
func (r *fakeBookRepo) UpdateStock(ctx context.Context, id uint, delta int) error {
	panic("not used")
}

func (r *fakeBookRepo) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	b, ok := r.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	cp := *b
	return &cp, nil
}

type memoryStore struct {
	carts map[uint]*cart.Cart
}

func newMemoryStore() *memoryStore {
	return &memoryStore{carts: make(map[uint]*cart.Cart)}
}

func (s *memoryStore) Get(ctx context.Context, userID uint) (*cart.Cart, error) {
	if c, ok := s.carts[userID]; ok {
		return c, nil
	}
	return cart.New(), nil
}

func (s *memoryStore) Save(ctx context.Context, userID uint, c *cart.Cart) error {
	s.carts[userID] = c
	return nil
}

func (s *memoryStore) Clear(ctx context.Context, userID uint) error {
	delete(s.carts, userID)
	return nil
}

// TestAddItem 测试加入购物车
func TestAddItem(t *testing.T) {
	ctx := context.Background()
	repo := newFakeBookRepo(&book.Book{ID: 1, Title: "书A", Price: 1000, Stock: 0})
	store := newMemoryStore()
	uc := NewAddItemUseCase(repo, store)

	t.Run("零库存也可加入(库存只在结算时检查)", func(t *testing.T) {
		result, err := uc.Execute(ctx, AddItemRequest{UserID: 1, BookID: 1, Quantity: 2})
		require.NoError(t, err)
		assert.Equal(t, 2, result.Quantity)
		assert.Equal(t, 1, result.CartSize)
	})

	t.Run("重复加入叠加数量", func(t *testing.T) {
		result, err := uc.Execute(ctx, AddItemRequest{UserID: 1, BookID: 1, Quantity: 1})
		require.NoError(t, err)
		assert.Equal(t, 3, result.Quantity)
		assert.Equal(t, 1, result.CartSize)
	})

	t.Run("数量省略按1件", func(t *testing.T) {
		result, err := uc.Execute(ctx, AddItemRequest{UserID: 2, BookID: 1})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Quantity)
	})

	t.Run("图书不存在返回404", func(t *testing.T) {
		_, err := uc.Execute(ctx, AddItemRequest{UserID: 1, BookID: 999})
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeBookNotFound, apperrors.CodeOf(err))
	})

	t.Run("不同用户的购物车互不影响", func(t *testing.T) {
		c1, _ := store.Get(ctx, 1)
		c2, _ := store.Get(ctx, 2)
		assert.Equal(t, 3, c1.Quantity(1))
		assert.Equal(t, 1, c2.Quantity(1))
	})
}

// TestViewCart 测试查看购物车(实时价格)
func TestViewCart(t *testing.T) {
	ctx := context.Background()
	repo := newFakeBookRepo(
		&book.Book{ID: 1, Title: "书A", Price: 1200, Stock: 5}, // 入车后涨价
		&book.Book{ID: 2, Title: "书B", Price: 450, Stock: 5},
	)
	store := newMemoryStore()

	c := cart.New()
	c.Add(1, "书A", "10.00", 2) // 快照价10.00,现价12.00
	c.Add(2, "书B", "4.50", 1)
	require.NoError(t, store.Save(ctx, 1, c))

	uc := NewViewCartUseCase(repo, store)
	result, err := uc.Execute(ctx, 1)
	require.NoError(t, err)

	require.Len(t, result.Lines, 2)
	assert.False(t, result.IsEmpty)

	// 行按图书ID升序
	assert.Equal(t, uint(1), result.Lines[0].BookID)
	assert.Equal(t, "12.00", result.Lines[0].PriceYuan, "展示实时价而非快照价")
	assert.Equal(t, "24.00", result.Lines[0].SubtotalYuan)

	assert.Equal(t, int64(2400+450), result.Total)
	assert.Equal(t, "28.50", result.TotalYuan)
}

// TestViewCart_Empty 测试空购物车
func TestViewCart_Empty(t *testing.T) {
	ctx := context.Background()
	uc := NewViewCartUseCase(newFakeBookRepo(), newMemoryStore())

	result, err := uc.Execute(ctx, 1)
	require.NoError(t, err)

	assert.True(t, result.IsEmpty)
	assert.Empty(t, result.Lines)
	assert.Equal(t, "0.00", result.TotalYuan)
}

// TestViewCart_DeletedBook 测试车内图书已下架
func TestViewCart_DeletedBook(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()

	c := cart.New()
	c.Add(99, "已下架", "10.00", 1)
	require.NoError(t, store.Save(ctx, 1, c))

	uc := NewViewCartUseCase(newFakeBookRepo(), store)
	_, err := uc.Execute(ctx, 1)

	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeBookNotFound, apperrors.CodeOf(err))
}

// TestRemoveItem 测试移除条目
func TestRemoveItem(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()

	c := cart.New()
	c.Add(1, "书A", "10.00", 2)
	require.NoError(t, store.Save(ctx, 1, c))

	uc := NewRemoveItemUseCase(store)

	result, err := uc.Execute(ctx, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, result.CartSize)

	// 幂等:再次移除同一本
	result, err = uc.Execute(ctx, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, result.CartSize)
}
