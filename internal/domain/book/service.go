package book

import (
	"context"

	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// Service 图书领域服务接口
// 设计说明：
// 1. 封装图书的业务规则校验（标题/作者非空、价格与库存非负）
// 2. 校验失败返回字段级错误，不产生任何写入
type Service interface {
	// CreateBook 创建图书（后台上架）
	CreateBook(ctx context.Context, title, author, description string, price int64, stock int, coverURL string) (*Book, error)

	// GetBookByID 根据ID获取图书详情
	GetBookByID(ctx context.Context, id uint) (*Book, error)

	// UpdateBook 更新图书信息
	UpdateBook(ctx context.Context, id uint, title, author, description string, price int64, stock int, coverURL string) (*Book, error)

	// DeleteBook 删除图书（级联删除订单明细引用）
	DeleteBook(ctx context.Context, id uint) error

	// ListBooks 分页查询图书列表
	ListBooks(ctx context.Context, params ListParams) ([]*Book, int64, error)
}

type service struct {
	repo Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreateBook 创建图书
func (s *service) CreateBook(ctx context.Context, title, author, description string, price int64, stock int, coverURL string) (*Book, error) {
	if err := validateFields(title, author, price, stock); err != nil {
		return nil, err
	}

	b := NewBook(title, author, description, price, stock, coverURL)
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// GetBookByID 根据ID获取图书
func (s *service) GetBookByID(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateBook 更新图书信息
// 校验失败时不读不写，现有记录保持原样
func (s *service) UpdateBook(ctx context.Context, id uint, title, author, description string, price int64, stock int, coverURL string) (*Book, error) {
	if err := validateFields(title, author, price, stock); err != nil {
		return nil, err
	}

	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	b.Update(title, author, description, price, stock, coverURL)
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// DeleteBook 删除图书
func (s *service) DeleteBook(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// ListBooks 分页查询图书列表
func (s *service) ListBooks(ctx context.Context, params ListParams) ([]*Book, int64, error) {
	return s.repo.List(ctx, params)
}

// validateFields 图书字段校验
// 业务规则：
// - 标题、作者必填
// - 价格为非负的分值
// - 库存为非负整数
// 返回的错误逐字段携带提示，供后台表单回显
func validateFields(title, author string, price int64, stock int) error {
	fields := map[string]string{}
	if title == "" {
		fields["title"] = "书名不能为空"
	}
	if author == "" {
		fields["author"] = "作者不能为空"
	}
	if price < 0 {
		fields["price"] = "价格不能为负数"
	}
	if stock < 0 {
		fields["stock"] = "库存不能为负数"
	}
	if len(fields) > 0 {
		return apperrors.NewValidation(fields)
	}
	return nil
}
