package v1

import (
	"strconv"
	"strings"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, apperror.BadRequest("Invalid ID format")
	}
	return id, nil
}

func pathIndex(c *gin.Context, name string) (int, error) {
	index, err := strconv.Atoi(c.Param(name))
	if err != nil || index < 0 {
		return 0, apperror.BadRequest("Invalid index")
	}
	return index, nil
}

// bindPatch reads a JSON object body as a shallow patch
func bindPatch(c *gin.Context) (map[string]any, error) {
	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		return nil, apperror.BadRequest("Request body must be a JSON object")
	}
	return patch, nil
}

// queryList accepts both repeated keys and comma separated values
func queryList(c *gin.Context, key string) []string {
	var out []string
	for _, raw := range c.QueryArray(key) {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

func queryInt64(c *gin.Context, key string) (*int64, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 0 {
		return nil, apperror.BadRequest(key + " must be a non-negative whole number")
	}
	return &n, nil
}

func sessionID(c *gin.Context) string {
	return c.GetString(string(domain.KeySessionID))
}
