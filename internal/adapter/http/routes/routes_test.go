package routes

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestModeForEnvironment(t *testing.T) {
	assert.Equal(t, gin.ReleaseMode, ModeForEnvironment("production"))
	assert.Equal(t, gin.DebugMode, ModeForEnvironment("development"))
	assert.Equal(t, gin.DebugMode, ModeForEnvironment(""))
}
