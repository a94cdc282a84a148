// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package startup registers the operators of every backend and seals the registry.
//
// Registration is explicit: the host runtime calls Initialize once during its own
// initialization, before any goroutine queries the registry.
package startup

import (
	"github.com/gomlx/opregistry/pkg/core/opinfo"
	"github.com/gomlx/opregistry/pkg/core/opinfo/akg/gpu"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Module is a named set of operator registrations, usually one per backend.
type Module struct {
	Name     string
	Register func(r *opinfo.Registry) error
}

// Modules run by RegisterAll, in order.
var Modules = []Module{
	{Name: "akg/gpu", Register: gpu.Register},
}

// RegisterAll runs the registration of every module in r and then seals it.
//
// Registration errors are fatal for the host: on error r is left open and partially populated.
func RegisterAll(r *opinfo.Registry) error {
	for _, module := range Modules {
		before := r.Len()
		if err := module.Register(r); err != nil {
			return errors.WithMessagef(err, "registering operators of module %q", module.Name)
		}
		klog.V(1).Infof("module %q registered %d operators", module.Name, r.Len()-before)
	}
	r.Seal()
	return nil
}

// Initialize runs RegisterAll on the process-wide registry, opinfo.Default().
func Initialize() error {
	return RegisterAll(opinfo.Default())
}
