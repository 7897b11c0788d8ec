// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-tours/internal/logger"
	"github.com/MKhiriev/go-tours/models"
)

const notAvailable = "N/A"

type appInfoService struct {
	buildInfo models.BuildInfo

	logger *logger.Logger
}

func NewAppInfoService(buildInfo models.BuildInfo, logger *logger.Logger) AppInfoService {
	for _, v := range []*string{&buildInfo.Version, &buildInfo.Date, &buildInfo.Commit} {
		if *v == "" {
			*v = notAvailable
		}
	}

	return &appInfoService{
		buildInfo: buildInfo,
		logger:    logger,
	}
}

func (s *appInfoService) GetBuildInfo(ctx context.Context) models.BuildInfo {
	return s.buildInfo
}
