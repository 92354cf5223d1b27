package models

import (
	"bytes"
	"encoding/json"
)

// Nullable JSON 可选且可为 null 的字段
// Set 表示字段出现在请求体中，Valid 表示值非 null
type Nullable[T any] struct {
	Set   bool
	Valid bool
	Value T
}

// Of 构造一个有值的 Nullable
func Of[T any](v T) Nullable[T] {
	return Nullable[T]{Set: true, Valid: true, Value: v}
}

// Null 构造一个显式为 null 的 Nullable
func Null[T any]() Nullable[T] {
	return Nullable[T]{Set: true}
}

// Ptr 转为指针，null 返回 nil
func (n Nullable[T]) Ptr() *T {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		n.Valid = false
		n.Value = zero
		return nil
	}
	if err := json.Unmarshal(data, &n.Value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}
