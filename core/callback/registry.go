// Copyright 2024 bbaa
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package callback gives callback click events a runtime home. A registered
// callback is reachable through a short chat command until its uses run out
// or its lifetime ends.
package callback

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"git.bbaa.fun/bbaa/minecraft-text-dsl/core/tellraw"
)

const (
	DefaultCommandPrefix = "!!callback"
	DefaultSweepInterval = time.Minute
)

var (
	ErrCallbackNotFound = errors.New("callback not found")
	ErrCallbackExpired  = errors.New("callback expired")
	ErrSweeperStarted   = errors.New("callback sweeper already started")
)

type Option func(*Registry)

func WithClock(clock clockwork.Clock) Option {
	return func(r *Registry) {
		r.clock = clock
	}
}

// WithCommandPrefix sets the chat command a bound click event runs, e.g. "!!callback".
func WithCommandPrefix(prefix string) Option {
	return func(r *Registry) {
		r.prefix = strings.TrimSpace(prefix)
	}
}

func WithSweepInterval(interval time.Duration) Option {
	return func(r *Registry) {
		r.interval = interval
	}
}

type entry struct {
	fn      tellraw.ClickCallback
	uses    int
	expires time.Time
}

type Registry struct {
	clock     clockwork.Clock
	prefix    string
	interval  time.Duration
	lock      sync.Mutex
	entries   map[string]*entry
	scheduler gocron.Scheduler
}

func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		clock:    clockwork.NewRealClock(),
		prefix:   DefaultCommandPrefix,
		interval: DefaultSweepInterval,
		entries:  make(map[string]*entry),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Prefix is the chat command without its token.
func (r *Registry) Prefix() string {
	return r.prefix
}

func (r *Registry) Command(token string) string {
	return r.prefix + " " + token
}

// Register stores fn and returns the command that triggers it.
func (r *Registry) Register(fn tellraw.ClickCallback, options tellraw.CallbackOptions) (string, error) {
	token, err := r.register(fn, options)
	if err != nil {
		return "", err
	}
	return r.Command(token), nil
}

func (r *Registry) register(fn tellraw.ClickCallback, options tellraw.CallbackOptions) (string, error) {
	event, err := tellraw.Callback(fn, options)
	if err != nil {
		return "", err
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	token := r.newToken(uuid.New())
	r.entries[token] = &entry{
		fn:      event.Callback,
		uses:    event.Options.Uses,
		expires: r.clock.Now().Add(event.Options.Lifetime),
	}
	return token, nil
}

func (r *Registry) newToken(id uuid.UUID) string {
	for {
		token := fmt.Sprintf("%016x", xxhash.Sum64String(id.String()))[8:]
		if _, ok := r.entries[token]; !ok {
			return token
		}
		id = uuid.New()
	}
}

// Dispatch runs the callback behind token on behalf of player. The callback
// runs on the calling goroutine, outside the registry lock.
func (r *Registry) Dispatch(player string, token string) error {
	r.lock.Lock()
	e, ok := r.entries[token]
	if !ok {
		r.lock.Unlock()
		return fmt.Errorf("%w: %s", ErrCallbackNotFound, token)
	}
	if !r.clock.Now().Before(e.expires) {
		delete(r.entries, token)
		r.lock.Unlock()
		return fmt.Errorf("%w: %s", ErrCallbackExpired, token)
	}
	if e.uses != tellraw.UnlimitedUses {
		e.uses--
		if e.uses <= 0 {
			delete(r.entries, token)
		}
	}
	fn := e.fn
	r.lock.Unlock()
	fn(player)
	return nil
}

func (r *Registry) Len() int {
	r.lock.Lock()
	defer r.lock.Unlock()
	return len(r.entries)
}

func (r *Registry) remove(tokens []string) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, token := range tokens {
		delete(r.entries, token)
	}
}

// Sweep drops expired callbacks and reports how many were dropped.
func (r *Registry) Sweep() int {
	r.lock.Lock()
	defer r.lock.Unlock()
	now := r.clock.Now()
	removed := 0
	for token, e := range r.entries {
		if !now.Before(e.expires) {
			delete(r.entries, token)
			removed++
		}
	}
	return removed
}

// Start sweeps expired callbacks every sweep interval until Shutdown.
func (r *Registry) Start() error {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.scheduler != nil {
		return ErrSweeperStarted
	}
	scheduler, err := gocron.NewScheduler(gocron.WithClock(r.clock))
	if err != nil {
		return err
	}
	_, err = scheduler.NewJob(
		gocron.DurationJob(r.interval),
		gocron.NewTask(func() {
			r.Sweep()
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		scheduler.Shutdown()
		return err
	}
	scheduler.Start()
	r.scheduler = scheduler
	return nil
}

func (r *Registry) Shutdown() error {
	r.lock.Lock()
	scheduler := r.scheduler
	r.scheduler = nil
	r.lock.Unlock()
	if scheduler == nil {
		return nil
	}
	return scheduler.Shutdown()
}
