// Package provider владеет единственным состоянием сайта: результатом
// однократной загрузки контента.
package provider

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/portfolio-site/internal/content"
	"github.com/ignatzorin/portfolio-site/internal/goroutine"
	"github.com/ignatzorin/portfolio-site/internal/logger"
)

// Observer получает итоговое состояние и длительность запроса.
type Observer func(s State, took time.Duration)

// Option настраивает провайдер.
type Option func(*Provider)

// WithTimeout ограничивает время единственного запроса.
func WithTimeout(d time.Duration) Option {
	return func(p *Provider) { p.timeout = d }
}

// WithObserver добавляет наблюдателя за завершением запроса.
func WithObserver(o Observer) Option {
	return func(p *Provider) { p.observers = append(p.observers, o) }
}

// Provider загружает документ ровно один раз и отдаёт всем одно и то же состояние.
// Состояние записывается один раз (Loading -> Ready | Failed) и больше не меняется.
type Provider struct {
	store     content.Store
	timeout   time.Duration
	observers []Observer

	once sync.Once
	done chan struct{}

	mu          sync.RWMutex
	state       State
	subscribers []func(State)
}

// New создаёт провайдер в состоянии Loading. Запрос не отправляется до Init.
func New(store content.Store, opts ...Option) *Provider {
	p := &Provider{
		store: store,
		done:  make(chan struct{}),
		state: Loading{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Init запускает загрузку. Повторные вызовы ничего не делают.
// ctx должен жить дольше запроса: обычно это корневой контекст процесса.
func (p *Provider) Init(ctx context.Context) {
	p.once.Do(func() {
		goroutine.SafeGoRecover(func() { p.run(ctx) }, func(r any) {
			p.resolve(Failed{Err: &content.FetchFailure{Reason: fmt.Sprintf("provider: panic при загрузке: %v", r)}}, 0)
		})
	})
}

func (p *Provider) run(ctx context.Context) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	started := time.Now()
	doc, err := p.store.Fetch(ctx)
	took := time.Since(started)

	switch {
	case err != nil:
		p.resolve(Failed{Err: content.AsFetchFailure(err)}, took)
	case doc == nil:
		p.resolve(Failed{Err: &content.FetchFailure{Reason: "provider: хранилище вернуло пустой документ"}}, took)
	default:
		p.resolve(Ready{Data: doc}, took)
	}
}

func (p *Provider) resolve(s State, took time.Duration) {
	p.mu.Lock()
	if _, loading := p.state.(Loading); !loading {
		p.mu.Unlock()
		return
	}
	p.state = s
	subs := p.subscribers
	p.subscribers = nil
	close(p.done)
	p.mu.Unlock()

	entry := logger.Component("provider").WithFields(logrus.Fields{
		"state":       Name(s),
		"duration_ms": took.Milliseconds(),
	})
	if f, ok := s.(Failed); ok {
		entry.WithField("error", f.Message()).Error("контент не загружен")
	} else {
		entry.Info("контент загружен")
	}

	for _, o := range p.observers {
		o(s, took)
	}
	for _, fn := range subs {
		fn(s)
	}
}

// State возвращает текущее состояние.
func (p *Provider) State() State {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

// Snapshot возвращает тройку {data, loading, error}.
func (p *Provider) Snapshot() Snapshot {
	return SnapshotOf(p.State())
}

// Done закрывается при переходе в терминальное состояние.
func (p *Provider) Done() <-chan struct{} {
	return p.done
}

// Wait ждёт терминального состояния или отмены ctx.
func (p *Provider) Wait(ctx context.Context) (State, error) {
	select {
	case <-p.done:
		return p.State(), nil
	case <-ctx.Done():
		return p.State(), ctx.Err()
	}
}

// OnResolve вызывает fn один раз с терминальным состоянием.
// Если провайдер уже завершился, fn вызывается сразу.
func (p *Provider) OnResolve(fn func(State)) {
	p.mu.Lock()
	if _, loading := p.state.(Loading); loading {
		p.subscribers = append(p.subscribers, fn)
		p.mu.Unlock()
		return
	}
	s := p.state
	p.mu.Unlock()
	fn(s)
}
