package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// 集成测试辅助工具
// 运行前提：
// 1. 服务已在本地启动（MySQL、Redis就绪）
// 2. 设置环境变量 BOOKSHOP_INTEGRATION=1
// 3. 后台相关用例额外需要 BOOKSHOP_ADMIN_EMAIL / BOOKSHOP_ADMIN_PASSWORD
//    指向一个已置为管理员的账号（is_staff需在数据库中手工开启）

const (
	// BaseURL API基础URL
	BaseURL = "http://localhost:8080"
	// Timeout HTTP请求超时时间
	Timeout = 10 * time.Second
)

// skipUnlessIntegration 未开启集成测试开关时跳过
func skipUnlessIntegration(t *testing.T) {
	t.Helper()
	if os.Getenv("BOOKSHOP_INTEGRATION") == "" {
		t.Skip("跳过集成测试（设置BOOKSHOP_INTEGRATION=1开启）")
	}
}

// adminCredentials 读取管理员账号，缺失时跳过
func adminCredentials(t *testing.T) (email, password string) {
	t.Helper()
	email = os.Getenv("BOOKSHOP_ADMIN_EMAIL")
	password = os.Getenv("BOOKSHOP_ADMIN_PASSWORD")
	if email == "" || password == "" {
		t.Skip("跳过后台集成测试（需要BOOKSHOP_ADMIN_EMAIL/BOOKSHOP_ADMIN_PASSWORD）")
	}
	return email, password
}

// Response 统一响应结构
type Response struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// LoginData 登录响应数据
type LoginData struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// CheckoutData 结算响应数据
type CheckoutData struct {
	OrderID   uint   `json:"order_id"`
	OrderNo   string `json:"order_no"`
	Total     int64  `json:"total"`
	TotalYuan string `json:"total_yuan"`
}

// AdminBookData 后台创建/更新图书响应数据
type AdminBookData struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	Price     int64  `json:"price"`
	PriceYuan string `json:"price_yuan"`
	Stock     int    `json:"stock"`
}

// PostJSON 发送POST请求并解析JSON响应
func PostJSON(t *testing.T, url string, data interface{}, token string) *Response {
	t.Helper()

	var body io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		require.NoError(t, err, "JSON序列化失败")
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest("POST", url, body)
	require.NoError(t, err, "创建HTTP请求失败")

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return do(t, req)
}

// GetJSON 发送GET请求并解析JSON响应
func GetJSON(t *testing.T, url string, token string) *Response {
	t.Helper()

	req, err := http.NewRequest("GET", url, nil)
	require.NoError(t, err, "创建HTTP请求失败")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return do(t, req)
}

func do(t *testing.T, req *http.Request) *Response {
	t.Helper()

	client := &http.Client{Timeout: Timeout}
	resp, err := client.Do(req)
	require.NoError(t, err, "发送HTTP请求失败")
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "读取响应体失败")

	var result Response
	err = json.Unmarshal(body, &result)
	require.NoError(t, err, "解析JSON响应失败: %s", string(body))

	return &result
}

// GenerateTestEmail 生成唯一的测试邮箱，避免重复运行时冲突
func GenerateTestEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@test.com", prefix, time.Now().UnixNano())
}

// RegisterTestUser 注册测试用户并登录，返回Token
func RegisterTestUser(t *testing.T, nickname string) (email string, token string) {
	t.Helper()

	email = GenerateTestEmail(nickname)
	registerReq := map[string]string{
		"email":    email,
		"password": "Test1234",
		"nickname": nickname,
	}

	registerResp := PostJSON(t, BaseURL+"/register", registerReq, "")
	require.Equal(t, 0, registerResp.Code, "注册失败: %s", registerResp.Message)

	return email, LoginAs(t, email, "Test1234")
}

// LoginAs 登录并返回Access Token
func LoginAs(t *testing.T, email, password string) string {
	t.Helper()

	loginResp := PostJSON(t, BaseURL+"/login", map[string]string{
		"email":    email,
		"password": password,
	}, "")
	require.Equal(t, 0, loginResp.Code, "登录失败: %s", loginResp.Message)

	var loginData LoginData
	err := json.Unmarshal(loginResp.Data, &loginData)
	require.NoError(t, err, "解析登录响应失败")

	return loginData.AccessToken
}

// CreateTestBook 通过后台接口上架图书，返回图书ID
// priceYuan为"12.34"形式的字符串，与后台表单一致
func CreateTestBook(t *testing.T, adminToken, title, priceYuan string, stock int) uint {
	t.Helper()

	form := map[string]interface{}{
		"title":  title,
		"author": "集成测试",
		"price":  priceYuan,
		"stock":  fmt.Sprintf("%d", stock),
	}

	resp := PostJSON(t, BaseURL+"/admin/books/add/", form, adminToken)
	require.Equal(t, 0, resp.Code, "上架图书失败: %s", resp.Message)

	var data AdminBookData
	err := json.Unmarshal(resp.Data, &data)
	require.NoError(t, err, "解析图书响应失败")
	require.NotZero(t, data.ID)

	return data.ID
}

// AddToCart 加入购物车
func AddToCart(t *testing.T, token string, bookID uint, quantity int) *Response {
	t.Helper()

	var body interface{}
	if quantity > 0 {
		body = map[string]int{"quantity": quantity}
	}
	return PostJSON(t, fmt.Sprintf("%s/add-to-cart/%d", BaseURL, bookID), body, token)
}
