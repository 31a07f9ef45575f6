// Package entity はauthフィーチャーのドメインモデルを定義します。
package entity

import "time"

// User は登録済みユーザーを表します。
// 分析APIを利用するための認証情報を保持します。
type User struct {
	// ID はユーザーの一意な識別子です。JWTのsubクレームに入ります。
	ID uint `gorm:"primaryKey"`

	// Email は認証に使用するメールアドレスです。全ユーザーで一意です。
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password はbcryptハッシュ済みパスワードです。平文は保存しません。
	Password string `gorm:"size:255;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
