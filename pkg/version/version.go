// Package version exposes build information injected with -ldflags:
//
//	-X github.com/kubev2v/paint-planner/pkg/version.gitVersion=v0.1.0
//	-X github.com/kubev2v/paint-planner/pkg/version.gitCommit=$(git rev-parse HEAD)
package version

import (
	"fmt"
	"runtime"
)

var (
	gitVersion = "unknown"
	gitCommit  = ""
)

type Info struct {
	GitVersion string `json:"gitVersion"`
	GitCommit  string `json:"gitCommit"`
	GoVersion  string `json:"goVersion"`
	Platform   string `json:"platform"`
}

func Get() Info {
	return Info{
		GitVersion: gitVersion,
		GitCommit:  gitCommit,
		GoVersion:  runtime.Version(),
		Platform:   fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

func (i Info) String() string {
	if i.GitCommit == "" {
		return i.GitVersion
	}
	return fmt.Sprintf("%s (%s)", i.GitVersion, i.GitCommit)
}
