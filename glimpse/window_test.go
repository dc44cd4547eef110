//go:build !js

package glimpse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStartProfileDisabled(t *testing.T) {
	assert.Nil(t, startProfile(""))
	assert.Nil(t, startProfile("flamegraph"))
}
