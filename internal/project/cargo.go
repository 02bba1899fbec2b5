package project

import (
	"fmt"

	"github.com/spf13/viper"
)

// CrateInfo is the [package] table of a Cargo.toml.
type CrateInfo struct {
	Name    string
	Version string
}

// ReadCrate parses the manifest at path. Workspace manifests have no
// [package] table and yield an empty Name.
func ReadCrate(path string) (*CrateInfo, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return &CrateInfo{
		Name:    v.GetString("package.name"),
		Version: v.GetString("package.version"),
	}, nil
}
