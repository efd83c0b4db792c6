package goroutine

import (
	"context"
	"runtime/debug"

	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/portfolio-site/internal/logger"
)

// PanicHandler получает значение, переданное в panic.
type PanicHandler func(recovered any)

// SafeGo запускает горутину с обработкой panic.
func SafeGo(fn func()) {
	SafeGoRecover(fn, nil)
}

// SafeGoRecover запускает горутину; после panic вызывается onPanic (если задан).
func SafeGoRecover(fn func(), onPanic PanicHandler) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.L().WithFields(logrus.Fields{
					"panic": r,
					"stack": string(debug.Stack()),
				}).Error("panic в горутине")
				if onPanic != nil {
					onPanic(r)
				}
			}
		}()
		fn()
	}()
}

// SafeGoWithContext запускает горутину с контекстом и обработкой panic.
func SafeGoWithContext(ctx context.Context, fn func(context.Context)) {
	SafeGo(func() { fn(ctx) })
}
