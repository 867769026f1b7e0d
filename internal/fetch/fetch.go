package fetch

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/fx"
)

// Endpoint resolves to the path appended to the base URL. It is resolved
// when the request is issued, not when the holder is built.
type Endpoint interface {
	Resolve() string
}

type Path string

func (p Path) Resolve() string { return string(p) }

type EndpointFunc func() string

func (f EndpointFunc) Resolve() string { return f() }

// Result is the outcome of one fetch. Exactly one of Data and Err is set.
type Result[T any] struct {
	Data *T
	Err  error
}

func (r Result[T]) OK() bool {
	return r.Err == nil && r.Data != nil
}

// Fetch holds the data and error cells of a single GET. The request is
// issued by the first Run; later calls return the stored result.
type Fetch[T any] struct {
	client   *Client
	endpoint Endpoint

	once sync.Once
	done chan struct{}
	mu   sync.RWMutex
	data *T
	err  error
}

func Use[T any](client *Client, endpoint Endpoint) *Fetch[T] {
	return &Fetch[T]{client: client, endpoint: endpoint, done: make(chan struct{})}
}

// Mount builds a holder whose request starts in the background when the fx
// application starts. Stopping the application does not cancel it.
func Mount[T any](lc fx.Lifecycle, client *Client, endpoint Endpoint) *Fetch[T] {
	f := Use[T](client, endpoint)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go f.Run(context.WithoutCancel(ctx))
			return nil
		},
	})
	return f
}

func (f *Fetch[T]) Run(ctx context.Context) Result[T] {
	f.once.Do(func() {
		data, err := f.do(ctx)

		f.mu.Lock()
		if err != nil {
			f.err = err
		} else {
			f.data = data
		}
		f.mu.Unlock()
		close(f.done)
	})
	return f.Result()
}

// Done is closed once the request has settled.
func (f *Fetch[T]) Done() <-chan struct{} {
	return f.done
}

func (f *Fetch[T]) do(ctx context.Context) (*T, error) {
	url := f.client.baseURL + f.endpoint.Resolve()

	body, err := f.client.get(ctx, url)
	if err != nil {
		return nil, err
	}

	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Data returns the data cell; ok is false until a successful Run.
func (f *Fetch[T]) Data() (data T, ok bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.data == nil {
		return data, false
	}
	return *f.data, true
}

// Err returns the error cell; nil until a failed Run.
func (f *Fetch[T]) Err() error {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.err
}

func (f *Fetch[T]) Result() Result[T] {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return Result[T]{Data: f.data, Err: f.err}
}
