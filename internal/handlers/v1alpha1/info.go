package v1alpha1

import (
	"context"

	"github.com/kubev2v/paint-planner/api/v1alpha1"
	"github.com/kubev2v/paint-planner/internal/api/server"
	"github.com/kubev2v/paint-planner/pkg/version"
)

// (GET /health)
func (s *ServiceHandler) Health(ctx context.Context, request server.HealthRequestObject) (server.HealthResponseObject, error) {
	return server.Health200Response{}, nil
}

// (GET /api/v1/info)
func (s *ServiceHandler) GetInfo(ctx context.Context, request server.GetInfoRequestObject) (server.GetInfoResponseObject, error) {
	versionInfo := version.Get()

	response := v1alpha1.Info{
		GitCommit:  versionInfo.GitCommit,
		GitVersion: versionInfo.GitVersion,
		GoVersion:  versionInfo.GoVersion,
		Platform:   versionInfo.Platform,
	}

	return server.GetInfo200JSONResponse(response), nil
}
