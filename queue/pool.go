package queue

import (
	"context"
	"errors"
	"log"
	"time"

	cache "github.com/Code-Hex/go-generics-cache"
	"github.com/neha-maurya01/SahaayAI/backend"
	"github.com/neha-maurya01/SahaayAI/metrics"
	"github.com/neha-maurya01/SahaayAI/metrics/dbmetrics"
	"github.com/panjf2000/ants/v2"
	typedsf "github.com/t2bot/go-typed-singleflight"
)

type PoolResult struct {
	// Nil if there was an error. Otherwise, contains the backend's reply.
	Response *backend.Response

	// True when the reply came from the reply cache rather than a fresh backend request.
	Cached bool

	// The error forwarding the message, if any.
	Err error
}

type PoolConfig struct {
	ConcurrentPools int
	SizePerPool     int

	// How long successful replies are reused for identical messages. Zero disables the cache.
	ReplyCacheTtl time.Duration

	// Upper bound on a single forwarded message, including backend retries.
	RequestTimeout time.Duration
}

type Pool struct {
	client         backend.Client
	internal       *ants.MultiPool
	sf             *typedsf.Group[*backend.Response] // keyed by replyKey
	replies        *cache.Cache[string, *backend.Response]
	replyTtl       time.Duration
	requestTimeout time.Duration
}

func NewPool(config *PoolConfig, client backend.Client) (*Pool, error) {
	internal, err := ants.NewMultiPool(config.ConcurrentPools, config.SizePerPool, ants.RoundRobin, ants.WithOptions(ants.Options{
		ExpiryDuration:   1 * time.Minute,
		PreAlloc:         false,
		MaxBlockingTasks: 0, // no limit on submissions
		Nonblocking:      false,
		// If we don't supply a panic handler then ants will print a stack trace for us
		Logger:       log.Default(),
		DisablePurge: false,
	}))
	if err != nil {
		return nil, err
	}
	requestTimeout := config.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = 1 * time.Minute
	}
	return &Pool{
		client:         client,
		internal:       internal,
		sf:             new(typedsf.Group[*backend.Response]),
		replies:        cache.New[string, *backend.Response](cache.WithJanitorInterval[string, *backend.Response](1 * time.Minute)),
		replyTtl:       config.ReplyCacheTtl,
		requestTimeout: requestTimeout,
	}, nil
}

// replyKey - Replies are personalised by the backend, so the identifier is part of the key alongside the language
// and message.
func replyKey(req *backend.Request) string {
	return req.Identifier + "\x00" + req.Language + "\x00" + req.Message
}

// Submit asks the pool to forward the message to the backend. If `waitCh` is non-nil, it will be
// called with the result upon completion or error. The `waitCh` is not called if there was a submission
// error - that is instead returned from Submit.
func (p *Pool) Submit(ctx context.Context, req *backend.Request, waitCh chan<- *PoolResult) error {
	t := metrics.StartQueueTimer()

	// Note: waitCh might be nil or unbuffered, so we spawn this in a goroutine later on.
	notifyResult := func(res *backend.Response, cached bool, err error) {
		if err == nil && cached {
			t.ObserveDuration("cached")
		} else if err == nil {
			t.ObserveDuration("result")
		} else if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			t.ObserveDuration("timeout")
		} else {
			t.ObserveDuration("error")
		}

		if waitCh != nil {
			poolRes := &PoolResult{
				Response: res,
				Cached:   cached,
				Err:      err,
			}

			// First, check to see if the channel is likely going to be closed already
			if err := ctx.Err(); err != nil {
				log.Printf("Result channel closed, not sending result (cached=%t): %s", cached, err)
				return
			}

			// Consider the context in our delivery of the result
			select {
			case waitCh <- poolRes:
			case <-ctx.Done():
				log.Printf("Result channel closed, not sending result (cached=%t): %s", cached, ctx.Err())
			}
		}
	}

	workFn := func() {
		// If the context is cancelled, save the backend a request
		if err := ctx.Err(); err != nil {
			log.Printf("Not forwarding message because context was cancelled/timed out: %s", err)
			go notifyResult(nil, false, err)
			return
		}

		key := replyKey(req)
		if p.replyTtl > 0 {
			cached, ok := p.replies.Get(key)
			dbmetrics.RecordReplyCacheRequest(ok)
			if ok {
				go notifyResult(cached, true, nil)
				return
			}
		}

		// Ask the singleflight to do the work (deduplicating identical in-flight messages)
		res, err, shared := p.sf.Do(key, func() (*backend.Response, error) {
			// We create a new context because the singleflight might span multiple requests, and we don't want
			// to tie results for all requests to the first (maybe cancelled) request.
			sendCtx, cancel := context.WithTimeout(context.Background(), p.requestTimeout)
			defer cancel()

			res, err := p.client.Send(sendCtx, req)
			if err == nil && res != nil && res.Success && p.replyTtl > 0 {
				p.replies.Set(key, res, cache.WithExpiration(p.replyTtl))
			}
			return res, err
		})
		if err != nil {
			log.Printf("Error forwarding message to %s backend (shared=%t): %s", p.client.Name(), shared, err)
		}
		if res == nil && err == nil {
			// "should never happen"
			err = errors.New("nil result")
		}
		go notifyResult(res, false, err)
	}

	return p.internal.Submit(workFn)
}

// Close - Stops accepting work and waits (briefly) for in-flight messages to finish.
func (p *Pool) Close() error {
	return p.internal.ReleaseTimeout(5 * time.Second)
}
