package service

import (
	"fmt"
	"io"
	"strings"

	"freemodels/logger"
	"freemodels/types"
	"freemodels/utils"
)

// FreeModels 筛选 prompt 与 completion 单价均为 0 的模型
// 保持上游返回的顺序;无法解析的记录直接跳过
func FreeModels(list *types.ModelList) []types.FreeModel {
	if list == nil {
		return nil
	}

	free := make([]types.FreeModel, 0)
	for i, raw := range list.Data {
		m, err := types.DecodeModel(raw)
		if err != nil {
			logger.Debug("跳过第 %d 条记录 | error=%v", i, err)
			continue
		}
		ok, err := m.IsFree()
		if err != nil {
			logger.Debug("跳过模型 %s | error=%v", m.ID, err)
			continue
		}
		if !ok {
			continue
		}
		free = append(free, types.FreeModel{
			ID:            m.ID,
			Name:          m.Name,
			ContextLength: m.ContextLength,
		})
	}

	logger.Info("📋 共 %d 条记录, 免费 %d 条", len(list.Data), len(free))
	if logger.IsVerbose() {
		logger.Verbose("免费模型:\n%s", utils.MarshalIndentToString(free))
	}
	return free
}

// WriteReport 输出免费模型汇总
func WriteReport(w io.Writer, free []types.FreeModel) error {
	if _, err := fmt.Fprintf(w, "Found %d free models:\n", len(free)); err != nil {
		return err
	}
	for _, m := range free {
		if _, err := fmt.Fprintf(w, "- %s (%s) [Ctx: %s]\n", m.Name, m.ID, m.ContextLength); err != nil {
			return err
		}
	}
	return nil
}

// WriteError 输出顶层错误,始终占一行
func WriteError(w io.Writer, err error) {
	msg := strings.ReplaceAll(err.Error(), "\n", " ")
	fmt.Fprintf(w, "Error: %s\n", msg)
}
