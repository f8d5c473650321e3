//go:build !windows

package storage

import (
	"fmt"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDiskFullErrorENOSPC(t *testing.T) {
	assert.True(t, IsDiskFullError(syscall.ENOSPC))
	assert.True(t, IsDiskFullError(fmt.Errorf("sync: %w", syscall.ENOSPC)))
	assert.False(t, IsDiskFullError(syscall.EACCES))
}
