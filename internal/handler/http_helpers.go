package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/platelog/internal/service"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func bindJSON(c *gin.Context, dst interface{}, message string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, message)
		return false
	}
	return true
}

// flexNumber 接受 JSON 数字、数字字符串或 null。
// 无法解析的字符串记为 NaN，交给业务层按各自规则处理。
type flexNumber struct {
	value float64
	set   bool
}

func (n *flexNumber) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		*n = flexNumber{}
		return nil
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*n = flexNumber{}
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			v = math.NaN()
		}
		*n = flexNumber{value: v, set: true}
		return nil
	}

	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("expected number, got %s", raw)
	}
	*n = flexNumber{value: v, set: true}
	return nil
}

// Or 返回已设置的值，否则返回 def
func (n flexNumber) Or(def float64) float64 {
	if !n.set {
		return def
	}
	return n.value
}

func handleDiaryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrFoodNameRequired),
		errors.Is(err, service.ErrMealPresetNameRequired),
		errors.Is(err, service.ErrInvalidQuickCalories),
		errors.Is(err, service.ErrInvalidDateKey),
		errors.Is(err, service.ErrNoFoods),
		errors.Is(err, service.ErrBarcodeRequired):
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrMealPresetNotFound),
		errors.Is(err, service.ErrProductNotFound):
		respondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		_ = c.Error(err)
		respondError(c, http.StatusGatewayTimeout, "request timed out")
	case errors.Is(err, service.ErrLookupFailed):
		_ = c.Error(err)
		respondError(c, http.StatusBadGateway, "product lookup failed, try again")
	default:
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, "internal server error")
	}
}
