package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/cart"
	"github.com/xiebiao/bookshop/internal/domain/order"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// =========================================
// 测试替身
// =========================================

// fakeTxManager 直通事务:直接执行fn,不做真实回滚
// 结算用例在创建订单前完成全部库存检查,
// 失败路径上订单仓储根本不会被调用,因此直通足以验证语义
type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type fakeBookRepo struct {
	books     map[uint]*book.Book
	lockOrder []uint // 记录加锁顺序
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

func (r *fakeBookRepo) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	b, ok := r.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookRepo) LockByID(ctx context.Context, id uint) (*book.Book, error) {
	r.lockOrder = append(r.lockOrder, id)
	return r.FindByID(ctx, id)
}

func (r *fakeBookRepo) UpdateStock(ctx context.Context, id uint, delta int) error {
	b, ok := r.books[id]
	if !ok {
		return book.ErrBookNotFound
	}
	if b.Stock+delta < 0 {
		return book.ErrInsufficientStock
	}
	b.Stock += delta
	return nil
}

type fakeOrderRepo struct {
	created []*order.Order
	nextID  uint
}

func (r *fakeOrderRepo) Create(ctx context.Context, o *order.Order) error {
	r.nextID++
	o.ID = r.nextID
	r.created = append(r.created, o)
	return nil
}

func (r *fakeOrderRepo) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	for _, o := range r.created {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, order.ErrOrderNotFound
}

func (r *fakeOrderRepo) FindByOrderNo(ctx context.Context, orderNo string) (*order.Order, error) {
	for _, o := range r.created {
		if o.OrderNo == orderNo {
			return o, nil
		}
	}
	return nil, order.ErrOrderNotFound
}

func (r *fakeOrderRepo) ListByUserID(ctx context.Context, userID uint, page, pageSize int) ([]*order.Order, int64, error) {
	return r.created, int64(len(r.created)), nil
}

type fakeCartStore struct {
	carts   map[uint]*cart.Cart
	cleared []uint
}

func newFakeCartStore() *fakeCartStore {
	return &fakeCartStore{carts: make(map[uint]*cart.Cart)}
}

func (s *fakeCartStore) Get(ctx context.Context, userID uint) (*cart.Cart, error) {
	if c, ok := s.carts[userID]; ok {
		return c, nil
	}
	return cart.New(), nil
}

func (s *fakeCartStore) Save(ctx context.Context, userID uint, c *cart.Cart) error {
	s.carts[userID] = c
	return nil
}

func (s *fakeCartStore) Clear(ctx context.Context, userID uint) error {
	delete(s.carts, userID)
	s.cleared = append(s.cleared, userID)
	return nil
}

// =========================================
// 测试用例
// =========================================

// TestCheckout_Success 测试整车结算成功
// 场景:2本10.00元 + 1本4.50元 = 24.50元
func TestCheckout_Success(t *testing.T) {
	ctx := context.Background()
	const userID = uint(1)

	bookRepo := newFakeBookRepo(
		&book.Book{ID: 1, Title: "书A", Price: 1000, Stock: 5},
		&book.Book{ID: 2, Title: "书B", Price: 450, Stock: 5},
	)
	orderRepo := &fakeOrderRepo{}
	cartStore := newFakeCartStore()
	txManager := &fakeTxManager{}

	c := cart.New()
	c.Add(1, "书A", "10.00", 2)
	c.Add(2, "书B", "4.50", 1)
	require.NoError(t, cartStore.Save(ctx, userID, c))

	uc := NewCheckoutUseCase(orderRepo, bookRepo, cartStore, txManager)
	result, err := uc.Execute(ctx, userID)
	require.NoError(t, err)

	// 订单总额
	assert.Equal(t, int64(2450), result.Total, "2×10.00 + 1×4.50 = 24.50")
	assert.Equal(t, "24.50", result.TotalYuan)
	assert.NotEmpty(t, result.OrderNo)

	// 订单落库且已完成
	require.Len(t, orderRepo.created, 1)
	created := orderRepo.created[0]
	assert.True(t, created.IsCompleted)
	assert.Equal(t, userID, created.UserID)
	assert.Equal(t, created.Total, created.CalculateTotal())

	// 明细记录下单时单价
	require.Len(t, created.Items, 2)
	assert.Equal(t, int64(1000), created.Items[0].Price)
	assert.Equal(t, 2, created.Items[0].Quantity)
	assert.Equal(t, int64(450), created.Items[1].Price)

	// 库存已扣减
	b1, _ := bookRepo.FindByID(ctx, 1)
	b2, _ := bookRepo.FindByID(ctx, 2)
	assert.Equal(t, 3, b1.Stock)
	assert.Equal(t, 4, b2.Stock)

	// 购物车已清空
	assert.Contains(t, cartStore.cleared, userID)
	after, _ := cartStore.Get(ctx, userID)
	assert.True(t, after.IsEmpty())

	// 全程在事务内执行
	assert.Equal(t, 1, txManager.calls)
}

// TestCheckout_EmptyCart 测试空购物车拒绝结算
func TestCheckout_EmptyCart(t *testing.T) {
	ctx := context.Background()

	bookRepo := newFakeBookRepo()
	orderRepo := &fakeOrderRepo{}
	cartStore := newFakeCartStore()
	txManager := &fakeTxManager{}

	uc := NewCheckoutUseCase(orderRepo, bookRepo, cartStore, txManager)
	_, err := uc.Execute(ctx, 1)

	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeEmptyCart, apperrors.CodeOf(err))
	assert.Equal(t, 0, txManager.calls, "空购物车不应开启事务")
	assert.Empty(t, orderRepo.created)
}

// TestCheckout_InsufficientStock 测试库存不足整单失败
// 场景:库存2件,购买3件
func TestCheckout_InsufficientStock(t *testing.T) {
	ctx := context.Background()
	const userID = uint(1)

	bookRepo := newFakeBookRepo(
		&book.Book{ID: 1, Title: "畅销书", Price: 1000, Stock: 2},
	)
	orderRepo := &fakeOrderRepo{}
	cartStore := newFakeCartStore()
	txManager := &fakeTxManager{}

	c := cart.New()
	c.Add(1, "畅销书", "10.00", 3)
	require.NoError(t, cartStore.Save(ctx, userID, c))

	uc := NewCheckoutUseCase(orderRepo, bookRepo, cartStore, txManager)
	_, err := uc.Execute(ctx, userID)

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	assert.Equal(t, apperrors.ErrCodeInsufficientStock, appErr.Code)
	assert.Contains(t, appErr.Message, "畅销书", "错误信息应点名缺货的书")
	assert.Contains(t, appErr.Message, "2", "错误信息应给出剩余库存")

	// 不留部分订单,不扣库存
	assert.Empty(t, orderRepo.created)
	b, _ := bookRepo.FindByID(ctx, 1)
	assert.Equal(t, 2, b.Stock)

	// 购物车原样保留
	after, _ := cartStore.Get(ctx, userID)
	assert.Equal(t, 3, after.Quantity(1))
	assert.Empty(t, cartStore.cleared)
}

// TestCheckout_PartialShortage 测试多本书其中一本缺货时整单失败
func TestCheckout_PartialShortage(t *testing.T) {
	ctx := context.Background()
	const userID = uint(1)

	bookRepo := newFakeBookRepo(
		&book.Book{ID: 1, Title: "书A", Price: 1000, Stock: 10},
		&book.Book{ID: 2, Title: "书B", Price: 450, Stock: 0},
	)
	orderRepo := &fakeOrderRepo{}
	cartStore := newFakeCartStore()
	txManager := &fakeTxManager{}

	c := cart.New()
	c.Add(1, "书A", "10.00", 1)
	c.Add(2, "书B", "4.50", 1)
	require.NoError(t, cartStore.Save(ctx, userID, c))

	uc := NewCheckoutUseCase(orderRepo, bookRepo, cartStore, txManager)
	_, err := uc.Execute(ctx, userID)

	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInsufficientStock, apperrors.CodeOf(err))

	// 有货的那本也不能被扣
	assert.Empty(t, orderRepo.created)
	b1, _ := bookRepo.FindByID(ctx, 1)
	assert.Equal(t, 10, b1.Stock)
}

// TestCheckout_LivePrice 测试结算价取实时价格而非快照价
func TestCheckout_LivePrice(t *testing.T) {
	ctx := context.Background()
	const userID = uint(1)

	// 入车后改价:快照10.00,现价12.00
	bookRepo := newFakeBookRepo(
		&book.Book{ID: 1, Title: "书A", Price: 1200, Stock: 5},
	)
	orderRepo := &fakeOrderRepo{}
	cartStore := newFakeCartStore()
	txManager := &fakeTxManager{}

	c := cart.New()
	c.Add(1, "书A", "10.00", 1)
	require.NoError(t, cartStore.Save(ctx, userID, c))

	uc := NewCheckoutUseCase(orderRepo, bookRepo, cartStore, txManager)
	result, err := uc.Execute(ctx, userID)
	require.NoError(t, err)

	assert.Equal(t, int64(1200), result.Total, "按实时价格结算")
	assert.Equal(t, int64(1200), orderRepo.created[0].Items[0].Price)
}

// TestCheckout_DeletedBook 测试车内图书已下架
func TestCheckout_DeletedBook(t *testing.T) {
	ctx := context.Background()
	const userID = uint(1)

	bookRepo := newFakeBookRepo() // 图书已不存在
	orderRepo := &fakeOrderRepo{}
	cartStore := newFakeCartStore()
	txManager := &fakeTxManager{}

	c := cart.New()
	c.Add(99, "已下架的书", "10.00", 1)
	require.NoError(t, cartStore.Save(ctx, userID, c))

	uc := NewCheckoutUseCase(orderRepo, bookRepo, cartStore, txManager)
	_, err := uc.Execute(ctx, userID)

	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeBookNotFound, apperrors.CodeOf(err))
	assert.Empty(t, orderRepo.created)
}

// TestCheckout_LockOrder 测试加锁顺序按图书ID升序
func TestCheckout_LockOrder(t *testing.T) {
	ctx := context.Background()
	const userID = uint(1)

	bookRepo := newFakeBookRepo(
		&book.Book{ID: 1, Title: "a", Price: 100, Stock: 9},
		&book.Book{ID: 2, Title: "b", Price: 100, Stock: 9},
		&book.Book{ID: 3, Title: "c", Price: 100, Stock: 9},
	)
	orderRepo := &fakeOrderRepo{}
	cartStore := newFakeCartStore()
	txManager := &fakeTxManager{}

	c := cart.New()
	c.Add(3, "c", "1.00", 1)
	c.Add(1, "a", "1.00", 1)
	c.Add(2, "b", "1.00", 1)
	require.NoError(t, cartStore.Save(ctx, userID, c))

	uc := NewCheckoutUseCase(orderRepo, bookRepo, cartStore, txManager)
	_, err := uc.Execute(ctx, userID)
	require.NoError(t, err)

	assert.Equal(t, []uint{1, 2, 3}, bookRepo.lockOrder, "固定加锁顺序避免死锁")
}
