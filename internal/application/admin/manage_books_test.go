package admin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshop/internal/domain/book"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

type fakeBookRepo struct {
	books  map[uint]*book.Book
	nextID uint
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{books: make(map[uint]*book.Book), nextID: 1}
}

func (r *fakeBookRepo) Create(ctx context.Context, b *book.Book) error {
	b.ID = r.nextID
	r.nextID++
	r.books[b.ID] = b
	return nil
}

func (r *fakeBookRepo) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	b, ok := r.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookRepo) Update(ctx context.Context, b *book.Book) error {
	if _, ok := r.books[b.ID]; !ok {
		return book.ErrBookNotFound
	}
	r.books[b.ID] = b
	return nil
}

func (r *fakeBookRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := r.books[id]; !ok {
		return book.ErrBookNotFound
	}
	delete(r.books, id)
	return nil
}

func (r *fakeBookRepo) List(ctx context.Context, params book.ListParams) ([]*book.Book, int64, error) {
	out := make([]*book.Book, 0, len(r.books))
	for _, b := range r.books {
		out = append(out, b)
	}
	return out, int64(len(out)), nil
}

func (r *fakeBookRepo) LockByID(ctx context.Context, id uint) (*book.Book, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeBookRepo) UpdateStock(ctx context.Context, id uint, delta int) error {
	panic("not used")
}

// TestParsePriceYuan 测试元→分解析
func TestParsePriceYuan(t *testing.T) {
	cases := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{"59", 5900, false},
		{"59.9", 5990, false},
		{"59.90", 5990, false},
		{"0", 0, false},
		{"0.01", 1, false},
		{" 12.34 ", 1234, false},
		{"-5", -500, false}, // 负数由领域校验拦截
		{"", 0, true},
		{"abc", 0, true},
		{"12.345", 0, true}, // 超过两位小数
		{"12.3.4", 0, true},
	}

	for _, tc := range cases {
		got, err := parsePriceYuan(tc.input)
		if tc.wantErr {
			assert.Error(t, err, "输入: %q", tc.input)
			continue
		}
		require.NoError(t, err, "输入: %q", tc.input)
		assert.Equal(t, tc.want, got, "输入: %q", tc.input)
	}
}

// TestManageBooks_Create 测试上架
func TestManageBooks_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("合法表单上架成功", func(t *testing.T) {
		repo := newFakeBookRepo()
		uc := NewManageBooksUseCase(book.NewService(repo))

		item, err := uc.Create(ctx, BookForm{
			Title:  "Go程序设计语言",
			Author: "艾伦·多诺万",
			Price:  "99.00",
			Stock:  "50",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(9900), item.Price)
		assert.Equal(t, "99.00", item.PriceYuan)
		assert.Equal(t, 50, item.Stock)
	})

	t.Run("数值解析失败返回字段级错误且不写入", func(t *testing.T) {
		repo := newFakeBookRepo()
		uc := NewManageBooksUseCase(book.NewService(repo))

		_, err := uc.Create(ctx, BookForm{
			Title:  "书",
			Author: "作者",
			Price:  "不是数字",
			Stock:  "abc",
		})
		require.Error(t, err)

		appErr := apperrors.GetAppError(err)
		assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
		assert.Contains(t, appErr.Fields, "price")
		assert.Contains(t, appErr.Fields, "stock")
		assert.Empty(t, repo.books, "校验失败不能产生写入")
	})

	t.Run("负价格由领域校验拦截", func(t *testing.T) {
		repo := newFakeBookRepo()
		uc := NewManageBooksUseCase(book.NewService(repo))

		_, err := uc.Create(ctx, BookForm{
			Title:  "书",
			Author: "作者",
			Price:  "-1.00",
			Stock:  "1",
		})
		require.Error(t, err)

		appErr := apperrors.GetAppError(err)
		assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
		assert.Contains(t, appErr.Fields, "price")
		assert.Empty(t, repo.books)
	})

	t.Run("空标题与空作者逐字段报错", func(t *testing.T) {
		repo := newFakeBookRepo()
		uc := NewManageBooksUseCase(book.NewService(repo))

		_, err := uc.Create(ctx, BookForm{Price: "1.00", Stock: "1"})
		require.Error(t, err)

		appErr := apperrors.GetAppError(err)
		assert.Contains(t, appErr.Fields, "title")
		assert.Contains(t, appErr.Fields, "author")
	})
}

// TestManageBooks_Update 测试修改
func TestManageBooks_Update(t *testing.T) {
	ctx := context.Background()
	repo := newFakeBookRepo()
	uc := NewManageBooksUseCase(book.NewService(repo))

	created, err := uc.Create(ctx, BookForm{Title: "原名", Author: "作者", Price: "10.00", Stock: "5"})
	require.NoError(t, err)

	t.Run("校验失败时记录保持原样", func(t *testing.T) {
		_, err := uc.Update(ctx, created.ID, BookForm{Title: "新名", Author: "作者", Price: "bad", Stock: "5"})
		require.Error(t, err)

		current, _ := repo.FindByID(ctx, created.ID)
		assert.Equal(t, "原名", current.Title)
		assert.Equal(t, int64(1000), current.Price)
	})

	t.Run("合法修改生效", func(t *testing.T) {
		item, err := uc.Update(ctx, created.ID, BookForm{Title: "新名", Author: "作者", Price: "12.50", Stock: "8"})
		require.NoError(t, err)
		assert.Equal(t, "新名", item.Title)
		assert.Equal(t, "12.50", item.PriceYuan)
	})

	t.Run("不存在的图书返回404", func(t *testing.T) {
		_, err := uc.Update(ctx, 999, BookForm{Title: "书", Author: "作者", Price: "1.00", Stock: "1"})
		assert.Equal(t, apperrors.ErrCodeBookNotFound, apperrors.CodeOf(err))
	})
}

// TestManageBooks_Delete 测试下架
func TestManageBooks_Delete(t *testing.T) {
	ctx := context.Background()
	repo := newFakeBookRepo()
	uc := NewManageBooksUseCase(book.NewService(repo))

	created, err := uc.Create(ctx, BookForm{Title: "书", Author: "作者", Price: "1.00", Stock: "1"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, created.ID))
	_, err = repo.FindByID(ctx, created.ID)
	assert.Equal(t, apperrors.ErrCodeBookNotFound, apperrors.CodeOf(err))

	// 再次删除返回404
	err = uc.Delete(ctx, created.ID)
	assert.Equal(t, apperrors.ErrCodeBookNotFound, apperrors.CodeOf(err))
}
