// Package app runs long-lived dependencies until one fails, the context is
// cancelled, or the OS asks for a shutdown. The stream consumer runs under
// it so a SIGTERM closes the connection cleanly.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
)

// Dependency is one unit of the running application.
type Dependency interface {
	// Start runs the dependency. Long-lived dependencies block inside Start
	// until they finish or fail.
	Start() error
	// Stop asks the dependency to wind down.
	Stop() error
	// Name identifies the dependency in logs only.
	Name() string
}

type App struct {
	serviceName string
	deps        []Dependency
	// depFailChan carries the first failure out of any dependency.
	depFailChan chan error
	// depDoneChan is signalled when a dependency's Start returns cleanly;
	// a finite workload ends the application the same way a signal does.
	depDoneChan  chan string
	osSignalChan chan os.Signal
	stopCalled   *atomic.Bool
	runCalled    *atomic.Bool
	stopTimeout  time.Duration
}

type Config struct {
	ServiceName string
	StopTimeout time.Duration
}

func (c *Config) validate() error {
	var errs []error
	if c.ServiceName == "" {
		errs = append(errs, errors.New("service name is required"))
	}
	if c.StopTimeout == 0 {
		errs = append(errs, errors.New("stop timeout is required"))
	}
	return errors.Join(errs...)
}

// New creates an application around the provided dependencies.
func New(cfg *Config, deps ...Dependency) (*App, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &App{
		serviceName:  cfg.ServiceName,
		deps:         deps,
		stopTimeout:  cfg.StopTimeout,
		stopCalled:   &atomic.Bool{},
		runCalled:    &atomic.Bool{},
		depFailChan:  make(chan error, len(deps)),
		depDoneChan:  make(chan string, len(deps)),
		osSignalChan: make(chan os.Signal, 1),
	}, nil
}

// Run starts every dependency and blocks until the first failure, clean
// completion, OS signal, or context cancel, then stops the rest.
func (a *App) Run(ctx context.Context) error {
	if !a.runCalled.CompareAndSwap(false, true) {
		return errors.New("run has already been called")
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	for _, dep := range a.deps {
		go func(dep Dependency) {
			defer func() {
				if r := recover(); r != nil {
					a.depFailChan <- fmt.Errorf("panic in Start() for dependency %s: %v", dep.Name(), r)
				}
			}()

			log.Info().Msg("Starting dependency: " + dep.Name())
			if err := dep.Start(); err != nil {
				a.depFailChan <- fmt.Errorf("failure in Start() for dependency %s: %w", dep.Name(), err)
				return
			}
			a.depDoneChan <- dep.Name()
		}(dep)
	}

	signal.Notify(a.osSignalChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(a.osSignalChan)

	var runErr error
	select {
	case <-runCtx.Done():
		log.Info().Msg("App context cancelled: shutting down")
	case name := <-a.depDoneChan:
		log.Info().Msg("Dependency finished: " + name)
	case depErr := <-a.depFailChan:
		log.Error().Msg("Dependency failed: " + depErr.Error())
		runErr = depErr
	case sig := <-a.osSignalChan:
		log.Info().Msg("OS signal received: " + sig.String() + ", shutdown beginning")
	}

	if err := a.stop(); err != nil {
		log.Error().Msg("Error stopping application: " + err.Error())
		return errors.Join(runErr, err)
	}
	return runErr
}

// stop winds the dependencies down in reverse start order, bounded by the
// stop timeout.
func (a *App) stop() error {
	if !a.stopCalled.CompareAndSwap(false, true) {
		return errors.New("stop has already been called")
	}

	done := make(chan error, 1)
	go func() {
		var errs []error
		for i := len(a.deps) - 1; i >= 0; i-- {
			dep := a.deps[i]
			log.Info().Msg("Stopping dependency: " + dep.Name())
			if err := dep.Stop(); err != nil {
				errs = append(errs, fmt.Errorf("failure in Stop() for dependency %s: %w", dep.Name(), err))
			}
		}
		done <- errors.Join(errs...)
	}()

	select {
	case err := <-done:
		return err
	case <-time.After(a.stopTimeout):
		return fmt.Errorf("%s: stop timed out after %s", a.serviceName, a.stopTimeout)
	}
}
