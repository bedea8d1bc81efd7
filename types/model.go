package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ModelList 模型列表接口响应
// data 中的每一项保留原始 JSON,逐条解码,单条损坏不影响整体
type ModelList struct {
	Data []jsoniter.RawMessage `json:"data"`
}

// Model 上游模型记录
// ID、Name、ContextLength 原样透传上游的值: 字符串取其内容,
// 数字保持原始写法,null 输出为 "null"
type Model struct {
	ID            string
	Name          string
	ContextLength string
	Pricing       Pricing
}

// Pricing 模型单价
type Pricing struct {
	Prompt     Price `json:"prompt"`
	Completion Price `json:"completion"`
}

// DecodeModelList 解码列表响应,顶层必须是包含 data 数组的对象
func DecodeModelList(body []byte) (*ModelList, error) {
	var envelope struct {
		Data jsoniter.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("invalid model list: %w", err)
	}
	data := strings.TrimSpace(string(envelope.Data))
	if data == "" || data == "null" {
		return nil, errors.New("invalid model list: missing data")
	}
	if data[0] != '[' {
		return nil, errors.New("invalid model list: data is not an array")
	}

	list := &ModelList{}
	if err := json.Unmarshal(envelope.Data, &list.Data); err != nil {
		return nil, fmt.Errorf("invalid model list: %w", err)
	}
	return list, nil
}

// FreeModel 免费模型
type FreeModel struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ContextLength string `json:"context_length"`
}

// Price 价格字段的原始 JSON,上游可能返回字符串或数字
type Price jsoniter.RawMessage

// UnmarshalJSON 保存原始字节,延迟到 Float 时再解析
func (p *Price) UnmarshalJSON(data []byte) error {
	*p = append((*p)[:0], data...)
	return nil
}

var errMissingField = errors.New("missing field")

// Float 将价格转换为浮点数
func (p Price) Float() (float64, error) {
	raw := strings.TrimSpace(string(p))
	switch {
	case raw == "", raw == "null":
		return 0, errMissingField
	case raw == "true":
		return 1, nil
	case raw == "false":
		return 0, nil
	case raw[0] == '"':
		var s string
		if err := json.Unmarshal([]byte(p), &s); err != nil {
			return 0, err
		}
		return strconv.ParseFloat(strings.TrimSpace(s), 64)
	case raw[0] == '{', raw[0] == '[':
		return 0, fmt.Errorf("price is not a scalar: %s", raw)
	default:
		return strconv.ParseFloat(raw, 64)
	}
}

// DecodeModel 解码单条模型记录,缺少任一必需字段即返回错误
// 字段值的类型不做校验,只有 pricing 需要是对象
func DecodeModel(raw []byte) (Model, error) {
	var record struct {
		Pricing *Pricing `json:"pricing"`
	}
	if err := json.Unmarshal(raw, &record); err != nil {
		return Model{}, err
	}

	var m Model
	var err error
	if m.ID, err = passthrough(raw, "id"); err != nil {
		return Model{}, err
	}
	if m.Name, err = passthrough(raw, "name"); err != nil {
		return Model{}, err
	}
	if m.ContextLength, err = passthrough(raw, "context_length"); err != nil {
		return Model{}, err
	}
	if record.Pricing == nil {
		return Model{}, fmt.Errorf("%w: pricing", errMissingField)
	}
	m.Pricing = *record.Pricing
	return m, nil
}

// passthrough 读取字段的展示文本,字段不存在时返回错误
func passthrough(raw []byte, key string) (string, error) {
	v := json.Get(raw, key)
	switch v.ValueType() {
	case jsoniter.InvalidValue:
		return "", fmt.Errorf("%w: %s", errMissingField, key)
	case jsoniter.NilValue:
		return "null", nil
	default:
		// 字符串返回内容,其余类型返回原始 JSON 文本
		return strings.Clone(v.ToString()), nil
	}
}

// IsFree 判断 prompt 与 completion 是否均为 0
func (m Model) IsFree() (bool, error) {
	prompt, err := m.Pricing.Prompt.Float()
	if err != nil {
		return false, fmt.Errorf("pricing.prompt: %w", err)
	}
	completion, err := m.Pricing.Completion.Float()
	if err != nil {
		return false, fmt.Errorf("pricing.completion: %w", err)
	}
	return prompt == 0 && completion == 0, nil
}
