// SPDX-License-Identifier: MIT
// Package catalog: sentinel error set.
//
// Every construction failure is a configuration error: the catalog is
// rejected before any search runs. Callers match with errors.Is; the
// constructors wrap the sentinels with the offending name for context.

package catalog

import "errors"

var (
	// ErrNoKinds is returned when a build catalog declares no resource kinds.
	ErrNoKinds = errors.New("catalog: no resource kinds declared")

	// ErrTooManyKinds is returned when more kinds are declared than resource.MaxKinds.
	ErrTooManyKinds = errors.New("catalog: too many resource kinds")

	// ErrDuplicateKind is returned when a kind name is declared twice.
	ErrDuplicateKind = errors.New("catalog: duplicate resource kind")

	// ErrUnknownKind is returned when a cost, effect, base rate or target
	// references a kind that was not declared.
	ErrUnknownKind = errors.New("catalog: unknown resource kind")

	// ErrNegativeCost is returned for negative costs, effects, base rates or values.
	ErrNegativeCost = errors.New("catalog: negative cost or effect")

	// ErrDuplicateProducer is returned when a producer name is declared twice.
	ErrDuplicateProducer = errors.New("catalog: duplicate producer")

	// ErrTooManyProducers is returned when the producer count exceeds MaxProducers.
	ErrTooManyProducers = errors.New("catalog: too many producers")

	// ErrDuplicateLocation is returned when a location name is declared twice.
	ErrDuplicateLocation = errors.New("catalog: duplicate location")

	// ErrUnknownLocation is returned when a tunnel or the start references an
	// undeclared location.
	ErrUnknownLocation = errors.New("catalog: unknown location")

	// ErrUnreachable is returned when a producer cannot be reached from the start.
	ErrUnreachable = errors.New("catalog: producer unreachable from start")

	// ErrEmptyName is returned for producers, kinds or locations without a name.
	ErrEmptyName = errors.New("catalog: empty name")
)
