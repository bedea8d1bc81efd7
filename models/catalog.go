package models

import (
	"context"
	"fmt"

	"github.com/imroc/req/v3"
	jsoniter "github.com/json-iterator/go"
	utls "github.com/refraction-networking/utls"

	"freemodels/config"
	"freemodels/logger"
	"freemodels/types"
	"freemodels/utils"
)

// Catalog 上游模型列表客户端,每次 Fetch 只发起一次 GET
type Catalog struct {
	client *req.Client
	url    string
}

// NewCatalog 根据上游配置创建模型列表客户端
func NewCatalog(cfg config.UpstreamConfig) *Catalog {
	client := req.C().SetLogger(logger.ReqAdapter{})

	if cfg.Impersonate {
		client.ImpersonateChrome().SetTLSFingerprint(utls.HelloChrome_131)
	}
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}
	if cfg.RetryCount > 0 {
		client.SetCommonRetryCount(cfg.RetryCount).
			SetCommonRetryHook(func(resp *req.Response, err error) {
				logger.Warn("🔁 重试请求模型列表 | error=%v", err)
			})
	}

	return &Catalog{
		client: client,
		url:    cfg.ModelsURL,
	}
}

// Fetch 请求并解析模型列表
func (c *Catalog) Fetch(ctx context.Context) (*types.ModelList, error) {
	logger.Info("🔵 请求模型列表 | url=%s", c.url)

	resp, err := c.client.R().SetContext(ctx).Get(c.url)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("request failed: %w", err)
	}

	body, err := resp.ToBytes()
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	logger.Info("✅ 收到响应: HTTP %d (%d bytes)", resp.StatusCode, len(body))

	// 非 2xx 但响应体仍包含 data 数组时照常使用
	list, err := types.DecodeModelList(body)
	if err != nil {
		logger.Debug("响应内容: %s", utils.Truncate(string(body), 512))
		if !resp.IsSuccessState() {
			return nil, upstreamError(resp.StatusCode, body)
		}
		return nil, err
	}
	if !resp.IsSuccessState() {
		logger.Warn("⚠️  上游返回 HTTP %d, 但响应包含模型列表", resp.StatusCode)
	}
	return list, nil
}

// upstreamError 将非 2xx 响应转换为错误,优先使用上游返回的错误信息
func upstreamError(status int, body []byte) error {
	var errResp types.ErrorResponse
	if err := jsoniter.Unmarshal(body, &errResp); err == nil && errResp.Error != nil && errResp.Error.Message != "" {
		return fmt.Errorf("upstream returned HTTP %d: %s", status, errResp.Error.Message)
	}
	if len(body) == 0 {
		return fmt.Errorf("upstream returned HTTP %d", status)
	}
	return fmt.Errorf("upstream returned HTTP %d: %s", status, utils.Truncate(string(body), 200))
}
