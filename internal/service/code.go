package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"

	"WorkTrail/internal/model/dto"
	"WorkTrail/internal/repository"
	pkgerrors "WorkTrail/pkg/errors"
	"WorkTrail/pkg/logger"
	"WorkTrail/storage/database"
)

// 码管理：任务码幂等生成，场所码增删查。
// 码值是不透明的 uuid，打印成二维码贴在现场。

type CodeService struct{}

var (
	codeService *CodeService
	codeOnce    sync.Once
)

func Code() *CodeService {
	codeOnce.Do(func() {
		codeService = &CodeService{}
	})
	return codeService
}

// MintTaskCode 为任务生成扫码值，重复调用返回同一个码。
func (s *CodeService) MintTaskCode(ctx context.Context, companyID, taskID int64) (*dto.TaskCodeData, error) {
	db := database.DB().WithContext(ctx)

	code, err := repository.GetOrCreateTaskCode(db, companyID, taskID)
	if err != nil {
		return nil, err
	}

	return &dto.TaskCodeData{
		TaskID:    strconv.FormatInt(code.TaskID, 10),
		CodeValue: code.CodeValue,
	}, nil
}

// CreateLocationCode 生成租户级场所码。
func (s *CodeService) CreateLocationCode(ctx context.Context, companyID int64, req dto.CreateLocationCodeRequest) (*dto.LocationCodeData, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, pkgerrors.InvalidRequest
	}

	db := database.DB().WithContext(ctx)

	code, err := repository.CreateLocationCode(db, companyID, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create location code: %w", err)
	}

	logger.Logger.Info("Location code created",
		zap.Int64("company_id", companyID),
		zap.Int64("code_id", code.ID),
	)

	return &dto.LocationCodeData{
		ID:        strconv.FormatInt(code.ID, 10),
		Name:      code.Name,
		CodeValue: code.CodeValue,
		CreatedAt: code.CreatedAt,
	}, nil
}

// ListLocationCodes 列出公司全部场所码。
func (s *CodeService) ListLocationCodes(ctx context.Context, companyID int64) ([]dto.LocationCodeData, error) {
	db := database.DB().WithContext(ctx)

	codes, err := repository.ListLocationCodes(db, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list location codes: %w", err)
	}

	result := make([]dto.LocationCodeData, 0, len(codes))
	for _, code := range codes {
		result = append(result, dto.LocationCodeData{
			ID:        strconv.FormatInt(code.ID, 10),
			Name:      code.Name,
			CodeValue: code.CodeValue,
			CreatedAt: code.CreatedAt,
		})
	}
	return result, nil
}

// RemoveLocationCode 删除场所码。
func (s *CodeService) RemoveLocationCode(ctx context.Context, companyID, codeID int64) error {
	db := database.DB().WithContext(ctx)

	if err := repository.DeleteLocationCode(db, companyID, codeID); err != nil {
		return err
	}

	logger.Logger.Info("Location code deleted",
		zap.Int64("company_id", companyID),
		zap.Int64("code_id", codeID),
	)
	return nil
}
