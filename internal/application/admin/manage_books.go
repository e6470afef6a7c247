package admin

import (
	"context"
	"fmt"

	"github.com/xiebiao/bookshop/internal/domain/book"
)

// ManageBooksUseCase 后台图书管理用例
// 设计说明:
// 1. 聚合增删改查四个操作,统一走book.Service的业务规则校验
// 2. 表单解析错误与领域校验错误都以字段级错误返回(40902)
// 3. 所有操作要求管理员身份,由路由中间件保证
type ManageBooksUseCase struct {
	bookService book.Service
}

// NewManageBooksUseCase 创建图书管理用例
func NewManageBooksUseCase(bookService book.Service) *ManageBooksUseCase {
	return &ManageBooksUseCase{bookService: bookService}
}

// AdminBookItem 后台列表项DTO(含库存与创建时间,供管理页展示)
type AdminBookItem struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Price     int64  `json:"price"`
	PriceYuan string `json:"price_yuan"`
	Stock     int    `json:"stock"`
	CoverURL  string `json:"cover_url"`
	CreatedAt string `json:"created_at"`
}

// AdminBookListResponse 后台列表响应DTO
type AdminBookListResponse struct {
	List     []AdminBookItem `json:"list"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// List 后台图书列表
func (uc *ManageBooksUseCase) List(ctx context.Context, page, pageSize int, keyword string) (*AdminBookListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	books, total, err := uc.bookService.ListBooks(ctx, book.ListParams{
		Page:     page,
		PageSize: pageSize,
		Keyword:  keyword,
	})
	if err != nil {
		return nil, err
	}

	list := make([]AdminBookItem, len(books))
	for i, b := range books {
		list[i] = toAdminItem(b)
	}

	return &AdminBookListResponse{
		List:     list,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Create 上架新书
// 表单非法时返回字段级错误,不产生任何写入
func (uc *ManageBooksUseCase) Create(ctx context.Context, form BookForm) (*AdminBookItem, error) {
	price, stock, err := form.parse()
	if err != nil {
		return nil, err
	}

	b, err := uc.bookService.CreateBook(ctx, form.Title, form.Author, form.Description, price, stock, form.CoverURL)
	if err != nil {
		return nil, err
	}

	item := toAdminItem(b)
	return &item, nil
}

// Update 修改图书
// 校验失败时现有记录保持原样
func (uc *ManageBooksUseCase) Update(ctx context.Context, id uint, form BookForm) (*AdminBookItem, error) {
	price, stock, err := form.parse()
	if err != nil {
		return nil, err
	}

	b, err := uc.bookService.UpdateBook(ctx, id, form.Title, form.Author, form.Description, price, stock, form.CoverURL)
	if err != nil {
		return nil, err
	}

	item := toAdminItem(b)
	return &item, nil
}

// Delete 下架图书
// 无确认步骤,删除无条件执行并级联清理订单明细引用
func (uc *ManageBooksUseCase) Delete(ctx context.Context, id uint) error {
	return uc.bookService.DeleteBook(ctx, id)
}

func toAdminItem(b *book.Book) AdminBookItem {
	return AdminBookItem{
		ID:        b.ID,
		Title:     b.Title,
		Author:    b.Author,
		Price:     b.Price,
		PriceYuan: formatPrice(b.Price),
		Stock:     b.Stock,
		CoverURL:  b.CoverURL,
		CreatedAt: b.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// formatPrice 格式化价格(分→元)
func formatPrice(priceFen int64) string {
	yuan := float64(priceFen) / 100.0
	return fmt.Sprintf("%.2f", yuan)
}
