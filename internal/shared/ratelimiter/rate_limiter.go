// Package ratelimiter はLLM API呼び出しのトークンバジェットに基づくペーシングを提供します。
package ratelimiter

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// デフォルト値はGroq無料枠の制限（8000 TPM）に合わせています。
const (
	DefaultTokensPerMinute = 8000
	DefaultTokensPerTask   = 2150
	DefaultSafetyMargin    = 0.8
)

// TokenPacer は、推定トークン消費量から算出した最小間隔を
// 生成呼び出しの間に強制します。複数ゴルーチンから安全に呼び出せます。
type TokenPacer struct {
	interval time.Duration // 呼び出し間の最小間隔
	mu       sync.Mutex
	lastCall time.Time
}

// NewTokenPacer は新しいTokenPacerのインスタンスを生成します。
// interval = (60s / (tokensPerMinute * safetyMargin)) * tokensPerTask
// 引数が0以下の場合はデフォルト値を使用します。
func NewTokenPacer(tokensPerMinute, tokensPerTask int, safetyMargin float64) *TokenPacer {
	if tokensPerMinute <= 0 {
		tokensPerMinute = DefaultTokensPerMinute
	}
	if tokensPerTask <= 0 {
		tokensPerTask = DefaultTokensPerTask
	}
	if safetyMargin <= 0 || safetyMargin > 1 {
		safetyMargin = DefaultSafetyMargin
	}

	safeTPM := float64(tokensPerMinute) * safetyMargin
	interval := time.Duration(60.0 / safeTPM * float64(tokensPerTask) * float64(time.Second))

	return &TokenPacer{interval: interval}
}

// Interval は呼び出し間に強制される最小間隔を返します。
func (p *TokenPacer) Interval() time.Duration {
	return p.interval
}

// WaitIfNeeded は前回の呼び出しから最小間隔が経過するまで待機します。
// コンテキストがキャンセルされた場合は待機を中断してエラーを返します。
func (p *TokenPacer) WaitIfNeeded(ctx context.Context) error {
	p.mu.Lock()
	now := time.Now()
	var wait time.Duration
	if !p.lastCall.IsZero() {
		if elapsed := now.Sub(p.lastCall); elapsed < p.interval {
			wait = p.interval - elapsed
		}
	}
	// 待機が決まった時点で次回分のスロットを予約する
	p.lastCall = now.Add(wait)
	p.mu.Unlock()

	if wait <= 0 {
		return nil
	}

	slog.Debug("pacing LLM call", "wait", wait)
	select {
	case <-time.After(wait):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
