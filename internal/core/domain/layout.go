package domain

import (
	"path/filepath"
	"time"
)

const (
	// GravityDirName is the name of the internal working directory.
	GravityDirName = ".gravity"

	// StoreDirName is the name of the source datastore directory.
	StoreDirName = "store"

	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "gravity.yaml"

	// HostsFileName is the name of the exported hosts artifact.
	HostsFileName = "gravity.list"

	// DefaultTimeout bounds every probe and fetch issued for a single source.
	DefaultTimeout = 5 * time.Second

	// DefaultBlockAddress is the address written in front of every exported domain.
	DefaultBlockAddress = "0.0.0.0"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultGravityPath returns the default root directory for gravity state.
func DefaultGravityPath() string {
	return GravityDirName
}

// DefaultStorePath returns the default path of the source datastore.
// It joins .gravity and store.
func DefaultStorePath() string {
	return filepath.Join(GravityDirName, StoreDirName)
}

// DefaultHostsPath returns the default path of the exported hosts artifact.
// It joins .gravity and gravity.list.
func DefaultHostsPath() string {
	return filepath.Join(GravityDirName, HostsFileName)
}
