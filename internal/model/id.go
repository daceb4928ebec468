package model

import "github.com/google/uuid"

// NewID 生成新记录使用的随机标识（UUIDv4，122 位随机数）。
func NewID() string {
	return uuid.NewString()
}
